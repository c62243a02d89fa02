package store

import (
	"context"
	"net/url"
	"taskClient/internal/api"
	"taskClient/internal/models"
)

type TasksAPI interface {
	ListTasks(ctx context.Context, params url.Values) (*models.TasksResponse, error)
	GetTask(ctx context.Context, id int) (*models.Task, error)
	CreateTask(ctx context.Context, draft models.CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, id int, patch models.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, id int) error
	CompleteTask(ctx context.Context, id int) (*models.Task, error)
	SearchTasks(ctx context.Context, query string) ([]models.Task, error)
	UrgentTasks(ctx context.Context) ([]models.Task, error)
	OverdueTasks(ctx context.Context) ([]models.Task, error)
	Statistics(ctx context.Context) (*models.TaskStatistics, error)
	ReorderTasks(ctx context.Context, taskIDs, positions []int) error
}

type CategoriesAPI interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id int) (*models.Category, error)
	CreateCategory(ctx context.Context, draft models.CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int, patch models.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int) error
}

var _ TasksAPI = (*api.Client)(nil)
var _ CategoriesAPI = (*api.Client)(nil)
