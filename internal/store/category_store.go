package store

import (
	"context"
	"sync"
	"taskClient/internal/logger"
	"taskClient/internal/models"
	"taskClient/internal/notify"
	"taskClient/internal/validate"

	"go.uber.org/zap"
)

// CategoryStore - простой CRUD-кэш категорий без поиска и производных
// представлений: после подтверждения сервером локальный список
// правится на месте
type CategoryStore struct {
	api      CategoriesAPI
	notifier notify.Notifier

	mtx        *sync.RWMutex
	categories []models.Category
	loading    bool
	lastErr    error
}

func NewCategoryStore(categoriesAPI CategoriesAPI, notifier notify.Notifier) *CategoryStore {
	return &CategoryStore{
		api:        categoriesAPI,
		notifier:   notifier,
		mtx:        &sync.RWMutex{},
		categories: []models.Category{},
	}
}

func (s *CategoryStore) FetchCategories(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	s.mtx.Lock()
	s.lastErr = nil
	s.mtx.Unlock()

	categories, err := s.api.ListCategories(ctx)
	if err != nil {
		logger.Error("Store: Ошибка загрузки категорий", err)
		s.mtx.Lock()
		s.lastErr = err
		s.mtx.Unlock()
		return
	}

	s.mtx.Lock()
	s.categories = categories
	s.mtx.Unlock()
}

func (s *CategoryStore) CreateCategory(ctx context.Context, draft models.CreateCategoryRequest) (*models.Category, error) {
	if err := validate.Struct(draft); err != nil {
		logger.Warn("Store: Невалидная категория", zap.Error(err))
		return nil, err
	}

	s.setLoading(true)
	defer s.setLoading(false)

	created, err := s.api.CreateCategory(ctx, draft)
	if err != nil {
		logger.Error("Store: Ошибка создания категории", err)
		return nil, err
	}

	s.mtx.Lock()
	s.categories = append(s.categories, *created)
	s.mtx.Unlock()

	s.notifier.Notify("Категория создана", notify.SeveritySuccess, 0)
	return created, nil
}

func (s *CategoryStore) UpdateCategory(ctx context.Context, id int, patch models.UpdateCategoryRequest) (*models.Category, error) {
	if err := validate.Struct(patch); err != nil {
		logger.Warn("Store: Невалидное обновление категории", zap.Int("category_id", id), zap.Error(err))
		return nil, err
	}

	s.setLoading(true)
	defer s.setLoading(false)

	updated, err := s.api.UpdateCategory(ctx, id, patch)
	if err != nil {
		logger.Error("Store: Ошибка обновления категории", err, zap.Int("category_id", id))
		return nil, err
	}

	s.mtx.Lock()
	for ind, cat := range s.categories {
		if cat.ID == id {
			s.categories[ind] = *updated
			break
		}
	}
	s.mtx.Unlock()

	s.notifier.Notify("Категория обновлена", notify.SeveritySuccess, 0)
	return updated, nil
}

func (s *CategoryStore) DeleteCategory(ctx context.Context, id int) error {
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.api.DeleteCategory(ctx, id); err != nil {
		logger.Error("Store: Ошибка удаления категории", err, zap.Int("category_id", id))
		return err
	}

	s.mtx.Lock()
	for ind, cat := range s.categories {
		if cat.ID == id {
			s.categories = append(s.categories[:ind], s.categories[ind+1:]...)
			break
		}
	}
	s.mtx.Unlock()

	s.notifier.Notify("Категория удалена", notify.SeveritySuccess, 0)
	return nil
}

func (s *CategoryStore) Categories() []models.Category {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.categories
}

func (s *CategoryStore) Loading() bool {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.loading
}

func (s *CategoryStore) Err() error {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.lastErr
}

func (s *CategoryStore) setLoading(loading bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.loading = loading
}
