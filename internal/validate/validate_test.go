package validate_test

import (
	"testing"
	"time"

	"taskClient/internal/models"
	"taskClient/internal/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() models.CreateTaskRequest {
	return models.CreateTaskRequest{
		Title:      "write report",
		CategoryID: 1,
		Priority:   models.PriorityHigh,
		DueDate:    time.Now().Add(72 * time.Hour),
	}
}

func TestStruct_CreateTaskRequest(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*models.CreateTaskRequest)
		expectedField string
	}{
		{
			name:   "valid draft",
			mutate: func(d *models.CreateTaskRequest) {},
		},
		{
			name:          "missing title",
			mutate:        func(d *models.CreateTaskRequest) { d.Title = "" },
			expectedField: "Title",
		},
		{
			name:          "missing category",
			mutate:        func(d *models.CreateTaskRequest) { d.CategoryID = 0 },
			expectedField: "CategoryID",
		},
		{
			name:          "unknown priority",
			mutate:        func(d *models.CreateTaskRequest) { d.Priority = "urgent" },
			expectedField: "Priority",
		},
		{
			name:          "due date in the past",
			mutate:        func(d *models.CreateTaskRequest) { d.DueDate = time.Now().Add(-24 * time.Hour) },
			expectedField: "DueDate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)

			err := validate.Struct(draft)

			if tt.expectedField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var fields validate.FieldErrors
			require.ErrorAs(t, err, &fields)
			assert.Contains(t, fields, tt.expectedField)
		})
	}
}

func TestStruct_UpdateTaskRequest(t *testing.T) {
	// пустой патч валиден - все поля опциональны
	assert.NoError(t, validate.Struct(models.UpdateTaskRequest{}))

	empty := ""
	err := validate.Struct(models.UpdateTaskRequest{Title: &empty})
	require.Error(t, err)

	status := models.StatusInProgress
	assert.NoError(t, validate.Struct(models.UpdateTaskRequest{Status: &status}))
}

func TestStruct_CategoryRequests(t *testing.T) {
	assert.NoError(t, validate.Struct(models.CreateCategoryRequest{Name: "work", Color: "#ff0000"}))

	err := validate.Struct(models.CreateCategoryRequest{Name: "work", Color: "red"})
	require.Error(t, err)
	var fields validate.FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "Color")

	err = validate.Struct(models.CreateCategoryRequest{})
	require.Error(t, err)
}

func TestFieldErrors_Error(t *testing.T) {
	fields := validate.FieldErrors{"Title": "поле обязательно"}
	assert.Contains(t, fields.Error(), "Title")
	assert.Contains(t, fields.Error(), "поле обязательно")
}
