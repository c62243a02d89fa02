package store

import "taskClient/internal/models"

// FilterOption - точечное изменение одного поля фильтра,
// не заданные опции оставляют остальные поля как есть
type FilterOption func(*models.TaskFilters)

func WithCategory(id int) FilterOption {
	return func(f *models.TaskFilters) {
		f.CategoryID = &id
	}
}

func WithAnyCategory() FilterOption {
	return func(f *models.TaskFilters) {
		f.CategoryID = nil
	}
}

func WithPriority(priority models.Priority) FilterOption {
	return func(f *models.TaskFilters) {
		f.Priority = &priority
	}
}

func WithAnyPriority() FilterOption {
	return func(f *models.TaskFilters) {
		f.Priority = nil
	}
}

func WithStatus(status models.Status) FilterOption {
	return func(f *models.TaskFilters) {
		f.Status = &status
	}
}

func WithAnyStatus() FilterOption {
	return func(f *models.TaskFilters) {
		f.Status = nil
	}
}
