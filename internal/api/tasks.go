package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"taskClient/internal/models"
)

func (c *Client) ListTasks(ctx context.Context, params url.Values) (*models.TasksResponse, error) {
	var page models.TasksResponse
	if err := c.do(ctx, http.MethodGet, "/tasks/", params, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetTask(ctx context.Context, id int) (*models.Task, error) {
	var task models.Task
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tasks/%d/", id), nil, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) CreateTask(ctx context.Context, draft models.CreateTaskRequest) (*models.Task, error) {
	var task models.Task
	if err := c.do(ctx, http.MethodPost, "/tasks/", nil, draft, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) UpdateTask(ctx context.Context, id int, patch models.UpdateTaskRequest) (*models.Task, error) {
	var task models.Task
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d/", id), nil, patch, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d/", id), nil, nil, nil)
}

func (c *Client) CompleteTask(ctx context.Context, id int) (*models.Task, error) {
	var task models.Task
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/tasks/%d/complete/", id), nil, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// запрос короче 2 символов не уходит на сервер
func (c *Client) SearchTasks(ctx context.Context, query string) ([]models.Task, error) {
	if len(strings.TrimSpace(query)) < 2 {
		return []models.Task{}, nil
	}

	params := url.Values{}
	params.Set("q", query)

	var tasks []models.Task
	if err := c.do(ctx, http.MethodGet, "/tasks/search/", params, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) UrgentTasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.do(ctx, http.MethodGet, "/tasks/urgent/list/", nil, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) OverdueTasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.do(ctx, http.MethodGet, "/tasks/overdue/list/", nil, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) Statistics(ctx context.Context) (*models.TaskStatistics, error) {
	var stats models.TaskStatistics
	if err := c.do(ctx, http.MethodGet, "/tasks/statistics/", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

type reorderRequest struct {
	TaskIDs   []int `json:"task_ids"`
	Positions []int `json:"positions"`
}

func (c *Client) ReorderTasks(ctx context.Context, taskIDs, positions []int) error {
	body := reorderRequest{TaskIDs: taskIDs, Positions: positions}
	return c.do(ctx, http.MethodPut, "/tasks/reorder/", nil, body, nil)
}
