package store

import (
	"net/url"
	"strconv"
	"taskClient/internal/models"
)

// разовые переопределения параметров одного запроса,
// не трогают сохранённые фильтры и сортировку
type ListOverrides struct {
	CategoryID *int
	Priority   *models.Priority
	Status     *models.Status
	SortBy     *models.SortField
	SortOrder  *models.SortOrder
	Page       *int
	Size       *int
}

// buildListQuery собирает параметры списка без пустых значений.
// Поисковая строка сюда не попадает - поиск идёт отдельным путём
func buildListQuery(filters models.TaskFilters, sort models.TaskSort, p models.Pagination, o *ListOverrides) url.Values {
	params := url.Values{}

	if filters.CategoryID != nil {
		setInt(params, "category_id", *filters.CategoryID)
	}
	if filters.Priority != nil {
		setString(params, "priority", string(*filters.Priority))
	}
	if filters.Status != nil {
		setString(params, "status", string(*filters.Status))
	}

	setString(params, "sort_by", string(sort.Field))
	setString(params, "sort_order", string(sort.Order))
	setInt(params, "page", p.Page)
	setInt(params, "size", p.Size)

	if o == nil {
		return params
	}

	if o.CategoryID != nil {
		setInt(params, "category_id", *o.CategoryID)
	}
	if o.Priority != nil {
		setString(params, "priority", string(*o.Priority))
	}
	if o.Status != nil {
		setString(params, "status", string(*o.Status))
	}
	if o.SortBy != nil {
		setString(params, "sort_by", string(*o.SortBy))
	}
	if o.SortOrder != nil {
		setString(params, "sort_order", string(*o.SortOrder))
	}
	if o.Page != nil {
		setInt(params, "page", *o.Page)
	}
	if o.Size != nil {
		setInt(params, "size", *o.Size)
	}

	return params
}

func setString(params url.Values, key, value string) {
	if value == "" {
		return
	}
	params.Set(key, value)
}

func setInt(params url.Values, key string, value int) {
	if value == 0 {
		return
	}
	params.Set(key, strconv.Itoa(value))
}
