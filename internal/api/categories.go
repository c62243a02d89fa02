package api

import (
	"context"
	"fmt"
	"net/http"
	"taskClient/internal/models"
)

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/categories/", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) GetCategory(ctx context.Context, id int) (*models.Category, error) {
	var category models.Category
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/categories/%d/", id), nil, nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) CreateCategory(ctx context.Context, draft models.CreateCategoryRequest) (*models.Category, error) {
	var category models.Category
	if err := c.do(ctx, http.MethodPost, "/categories/", nil, draft, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int, patch models.UpdateCategoryRequest) (*models.Category, error) {
	var category models.Category
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/categories/%d/", id), nil, patch, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d/", id), nil, nil, nil)
}
