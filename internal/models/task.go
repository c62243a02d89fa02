package models

import "time"

type Task struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CategoryID  int       `json:"category_id"`
	Category    *Category `json:"category,omitempty"`
	Priority    Priority  `json:"priority"`
	DueDate     time.Time `json:"due_date"`
	Status      Status    `json:"status"`
	Position    int       `json:"position"`
	IsUrgent    bool      `json:"is_urgent"`
	IsOverdue   bool      `json:"is_overdue"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Priority string
type Status string

const PriorityHigh Priority = "high"
const PriorityMedium Priority = "medium"
const PriorityLow Priority = "low"

const StatusPending Status = "pending"
const StatusInProgress Status = "in progress"
const StatusDone Status = "done"

type CreateTaskRequest struct {
	Title       string    `json:"title" validate:"required,min=1,max=200"`
	Description string    `json:"description,omitempty" validate:"max=1000"`
	CategoryID  int       `json:"category_id" validate:"required,gt=0"`
	Priority    Priority  `json:"priority" validate:"required,oneof=high medium low"`
	DueDate     time.Time `json:"due_date" validate:"required,future_date"`
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=1000"`
	CategoryID  *int       `json:"category_id,omitempty" validate:"omitempty,gt=0"`
	Priority    *Priority  `json:"priority,omitempty" validate:"omitempty,oneof=high medium low"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      *Status    `json:"status,omitempty" validate:"omitempty,oneof=pending 'in progress' done"`
}

// IsUrgent/IsOverdue считает сервер, клиент их не выводит сам
type TaskStatistics struct {
	TotalCount          int `json:"total_count"`
	CompletedCount      int `json:"completed_count"`
	PendingCount        int `json:"pending_count"`
	InProgressCount     int `json:"in_progress_count"`
	UrgentCount         int `json:"urgent_count"`
	OverdueCount        int `json:"overdue_count"`
	HighPriorityCount   int `json:"high_priority_count"`
	MediumPriorityCount int `json:"medium_priority_count"`
	LowPriorityCount    int `json:"low_priority_count"`
}
