package models

type TaskFilters struct {
	CategoryID *int      `json:"category_id,omitempty"`
	Priority   *Priority `json:"priority,omitempty"`
	Status     *Status   `json:"status,omitempty"`
	Search     string    `json:"search,omitempty"`
}

type SortField string
type SortOrder string

const SortByDueDate SortField = "due_date"
const SortByPriority SortField = "priority"
const SortByCreatedAt SortField = "created_at"
const SortByTitle SortField = "title"

const SortAsc SortOrder = "asc"
const SortDesc SortOrder = "desc"

type TaskSort struct {
	Field SortField `json:"field"`
	Order SortOrder `json:"order"`
}

// Total и Pages всегда приходят от сервера, клиент их не пересчитывает
type Pagination struct {
	Page  int `json:"page"`
	Size  int `json:"size"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type TasksResponse struct {
	Items []Task `json:"items"`
	Page  int    `json:"page"`
	Size  int    `json:"size"`
	Total int    `json:"total"`
	Pages int    `json:"pages"`
}
