package store

import (
	"context"
	"errors"
	"sync"
	"taskClient/internal/logger"
	"taskClient/internal/models"
	"taskClient/internal/notify"
	"taskClient/internal/validate"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// источник отображаемого списка: либо страница, либо результаты поиска,
// никогда оба сразу
type displaySource int

const (
	sourceListing displaySource = iota
	sourceSearching
)

var ErrInitFailed = errors.New("не удалось инициализировать хранилище")

type TaskStore struct {
	api      TasksAPI
	notifier notify.Notifier

	mtx           *sync.RWMutex
	tasks         []models.Task
	searchResults []models.Task
	source        displaySource
	filters       models.TaskFilters
	sort          models.TaskSort
	pagination    models.Pagination
	urgentData    []models.Task
	overdueData   []models.Task
	statistics    *models.TaskStatistics
	loading       bool
	lastErr       error
}

func NewTaskStore(tasksAPI TasksAPI, notifier notify.Notifier, pageSize int) *TaskStore {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &TaskStore{
		api:      tasksAPI,
		notifier: notifier,
		mtx:      &sync.RWMutex{},
		tasks:    []models.Task{},
		source:   sourceListing,
		sort: models.TaskSort{
			Field: models.SortByDueDate,
			Order: models.SortAsc,
		},
		pagination: models.Pagination{
			Page: 1,
			Size: pageSize,
		},
	}
}

// Init запускается один раз на сессию и прогревает всё состояние разом
func (s *TaskStore) Init(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.refreshAll(ctx); err != nil {
		logger.Error("Store: Ошибка инициализации", err)
		s.setErr(ErrInitFailed)
	}
}

// FetchTasks загружает страницу списка и сбрасывает режим поиска.
// Ошибка не отдаётся наружу - она доступна через Err()
func (s *TaskStore) FetchTasks(ctx context.Context, overrides *ListOverrides) {
	s.setLoading(true)
	defer s.setLoading(false)

	s.fetchTasks(ctx, overrides)
}

func (s *TaskStore) fetchTasks(ctx context.Context, overrides *ListOverrides) error {
	s.mtx.Lock()
	s.lastErr = nil
	params := buildListQuery(s.filters, s.sort, s.pagination, overrides)
	s.mtx.Unlock()

	page, err := s.api.ListTasks(ctx, params)
	if err != nil {
		logger.Error("Store: Ошибка загрузки задач", err)
		s.setErr(err)
		return err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.tasks = page.Items
	s.pagination = models.Pagination{
		Page:  page.Page,
		Size:  page.Size,
		Total: page.Total,
		Pages: page.Pages,
	}
	s.source = sourceListing
	s.searchResults = nil
	return nil
}

// SearchTasks переключает хранилище в режим поиска.
// Запрос короче 2 символов снимает режим поиска и возвращает обычный список
func (s *TaskStore) SearchTasks(ctx context.Context, query string) {
	if len(query) < 2 {
		s.mtx.Lock()
		s.source = sourceListing
		s.searchResults = nil
		s.filters.Search = ""
		s.mtx.Unlock()

		s.FetchTasks(ctx, nil)
		return
	}

	results, err := s.api.SearchTasks(ctx, query)
	if err != nil {
		// прежние результаты не трогаем
		logger.Warn("Store: Ошибка поиска", zap.String("query", query), zap.Error(err))
		return
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.source = sourceSearching
	s.searchResults = results
	s.filters.Search = query // только для отображения строки поиска
}

func (s *TaskStore) CreateTask(ctx context.Context, draft models.CreateTaskRequest) (*models.Task, error) {
	if err := validate.Struct(draft); err != nil {
		logger.Warn("Store: Невалидная задача", zap.Error(err))
		return nil, err
	}

	s.setLoading(true)
	defer s.setLoading(false)

	created, err := s.api.CreateTask(ctx, draft)
	if err != nil {
		logger.Error("Store: Ошибка создания задачи", err)
		return nil, err
	}

	s.refreshAll(ctx)
	s.notifier.Notify("Задача создана", notify.SeveritySuccess, 0)
	return created, nil
}

func (s *TaskStore) UpdateTask(ctx context.Context, id int, patch models.UpdateTaskRequest) (*models.Task, error) {
	if err := validate.Struct(patch); err != nil {
		logger.Warn("Store: Невалидное обновление", zap.Int("task_id", id), zap.Error(err))
		return nil, err
	}

	s.setLoading(true)
	defer s.setLoading(false)

	updated, err := s.api.UpdateTask(ctx, id, patch)
	if err != nil {
		logger.Error("Store: Ошибка обновления задачи", err, zap.Int("task_id", id))
		return nil, err
	}

	s.refreshAll(ctx)
	s.notifier.Notify("Задача обновлена", notify.SeveritySuccess, 0)
	return updated, nil
}

func (s *TaskStore) DeleteTask(ctx context.Context, id int) error {
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.api.DeleteTask(ctx, id); err != nil {
		logger.Error("Store: Ошибка удаления задачи", err, zap.Int("task_id", id))
		return err
	}

	s.refreshAll(ctx)
	s.notifier.Notify("Задача удалена", notify.SeveritySuccess, 0)
	return nil
}

func (s *TaskStore) CompleteTask(ctx context.Context, id int) (*models.Task, error) {
	completed, err := s.api.CompleteTask(ctx, id)
	if err != nil {
		logger.Error("Store: Ошибка завершения задачи", err, zap.Int("task_id", id))
		return nil, err
	}

	s.refreshAll(ctx)
	s.notifier.Notify("Задача завершена", notify.SeveritySuccess, 0)
	return completed, nil
}

// ReorderTasks отправляет новый порядок и перечитывает только список
func (s *TaskStore) ReorderTasks(ctx context.Context, taskIDs, positions []int) error {
	if err := s.api.ReorderTasks(ctx, taskIDs, positions); err != nil {
		logger.Error("Store: Ошибка изменения порядка", err)
		return err
	}

	s.FetchTasks(ctx, nil)
	s.notifier.Notify("Порядок задач обновлён", notify.SeveritySuccess, 0)
	return nil
}

// SetFilters меняет фильтры, сбрасывает страницу и режим поиска
// и дожидается перезагрузки списка
func (s *TaskStore) SetFilters(ctx context.Context, opts ...FilterOption) {
	s.mtx.Lock()
	for _, opt := range opts {
		opt(&s.filters)
	}
	s.resetPageLocked()
	s.mtx.Unlock()

	s.FetchTasks(ctx, nil)
}

func (s *TaskStore) SetSort(ctx context.Context, field models.SortField, order models.SortOrder) {
	s.mtx.Lock()
	s.sort = models.TaskSort{Field: field, Order: order}
	s.resetPageLocked()
	s.mtx.Unlock()

	s.FetchTasks(ctx, nil)
}

func (s *TaskStore) ResetFilters(ctx context.Context) {
	s.mtx.Lock()
	s.filters = models.TaskFilters{}
	s.resetPageLocked()
	s.mtx.Unlock()

	s.FetchTasks(ctx, nil)
}

func (s *TaskStore) resetPageLocked() {
	s.pagination.Page = 1
	s.source = sourceListing
	s.searchResults = nil
	s.filters.Search = ""
}

// FetchUrgentTasks - best effort: при ошибке остаётся прежний снимок
func (s *TaskStore) FetchUrgentTasks(ctx context.Context) {
	s.fetchUrgent(ctx)
}

func (s *TaskStore) fetchUrgent(ctx context.Context) error {
	tasks, err := s.api.UrgentTasks(ctx)
	if err != nil {
		logger.Warn("Store: Ошибка загрузки срочных задач", zap.Error(err))
		return err
	}

	s.mtx.Lock()
	s.urgentData = tasks
	s.mtx.Unlock()
	return nil
}

func (s *TaskStore) FetchOverdueTasks(ctx context.Context) {
	s.fetchOverdue(ctx)
}

func (s *TaskStore) fetchOverdue(ctx context.Context) error {
	tasks, err := s.api.OverdueTasks(ctx)
	if err != nil {
		logger.Warn("Store: Ошибка загрузки просроченных задач", zap.Error(err))
		return err
	}

	s.mtx.Lock()
	s.overdueData = tasks
	s.mtx.Unlock()
	return nil
}

func (s *TaskStore) FetchStatistics(ctx context.Context) {
	s.fetchStatistics(ctx)
}

func (s *TaskStore) fetchStatistics(ctx context.Context) error {
	stats, err := s.api.Statistics(ctx)
	if err != nil {
		logger.Warn("Store: Ошибка загрузки статистики", zap.Error(err))
		return err
	}

	s.mtx.Lock()
	s.statistics = stats
	s.mtx.Unlock()
	return nil
}

// refreshAll - полная пересинхронизация после подтверждённой записи.
// Четыре запроса идут параллельно, сбой любой из веток не мешает остальным
func (s *TaskStore) refreshAll(ctx context.Context) error {
	var g errgroup.Group

	g.Go(func() error { return s.fetchTasks(ctx, nil) })
	g.Go(func() error { return s.fetchUrgent(ctx) })
	g.Go(func() error { return s.fetchOverdue(ctx) })
	g.Go(func() error { return s.fetchStatistics(ctx) })

	return g.Wait()
}

func (s *TaskStore) setLoading(loading bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.loading = loading
}

func (s *TaskStore) setErr(err error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.lastErr = err
}

// --- доступ к состоянию

func (s *TaskStore) Tasks() []models.Task {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.tasks
}

func (s *TaskStore) SearchResults() []models.Task {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.searchResults
}

func (s *TaskStore) Searching() bool {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.source == sourceSearching
}

func (s *TaskStore) Filters() models.TaskFilters {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.filters
}

func (s *TaskStore) Sort() models.TaskSort {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.sort
}

func (s *TaskStore) Pagination() models.Pagination {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.pagination
}

func (s *TaskStore) Statistics() *models.TaskStatistics {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.statistics
}

func (s *TaskStore) Loading() bool {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.loading
}

func (s *TaskStore) Err() error {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.lastErr
}
