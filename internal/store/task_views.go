package store

import "taskClient/internal/models"

// производные представления: чистые функции от состояния,
// пересчитываются при каждом чтении

// FilteredTasks - видимый список: результаты поиска в режиме поиска,
// иначе текущая страница
func (s *TaskStore) FilteredTasks() []models.Task {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	if s.source == sourceSearching {
		return s.searchResults
	}
	return s.tasks
}

// UrgentTasks отдаёт серверный снимок срочных задач,
// до первой успешной загрузки - фильтр по текущей странице
func (s *TaskStore) UrgentTasks() []models.Task {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	if len(s.urgentData) > 0 {
		return s.urgentData
	}

	res := []models.Task{}
	for _, t := range s.tasks {
		if t.IsUrgent && t.Status != models.StatusDone {
			res = append(res, t)
		}
	}
	return res
}

func (s *TaskStore) OverdueTasks() []models.Task {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	if len(s.overdueData) > 0 {
		return s.overdueData
	}

	res := []models.Task{}
	for _, t := range s.tasks {
		if t.IsOverdue && t.Status != models.StatusDone {
			res = append(res, t)
		}
	}
	return res
}

func (s *TaskStore) CompletedTasks() []models.Task {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []models.Task{}
	for _, t := range s.tasks {
		if t.Status == models.StatusDone {
			res = append(res, t)
		}
	}
	return res
}

// TasksByPriority раскладывает страницу по трём приоритетам,
// задачи с неизвестным приоритетом отбрасываются
func (s *TaskStore) TasksByPriority() map[models.Priority][]models.Task {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	grouped := map[models.Priority][]models.Task{
		models.PriorityHigh:   {},
		models.PriorityMedium: {},
		models.PriorityLow:    {},
	}

	for _, t := range s.tasks {
		if _, ok := grouped[t.Priority]; ok {
			grouped[t.Priority] = append(grouped[t.Priority], t)
		}
	}
	return grouped
}
