package store_test

import (
	"context"
	"testing"
	"time"

	"taskClient/internal/api"
	"taskClient/internal/models"
	"taskClient/internal/notify"
	"taskClient/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCategoriesAPI - мок клиента категорий
type MockCategoriesAPI struct {
	mock.Mock
}

func (m *MockCategoriesAPI) ListCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoriesAPI) GetCategory(ctx context.Context, id int) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoriesAPI) CreateCategory(ctx context.Context, draft models.CreateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoriesAPI) UpdateCategory(ctx context.Context, id int, patch models.UpdateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoriesAPI) DeleteCategory(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ store.CategoriesAPI = (*MockCategoriesAPI)(nil)

func makeCategory(id int, name string) models.Category {
	return models.Category{ID: id, Name: name, Color: "#ff0000"}
}

func TestCategoryStore_FetchCategories(t *testing.T) {
	tests := []struct {
		name        string
		setupMock   func(*MockCategoriesAPI)
		expectedLen int
		expectError bool
	}{
		{
			name: "success",
			setupMock: func(m *MockCategoriesAPI) {
				m.On("ListCategories", mock.Anything).
					Return([]models.Category{makeCategory(1, "work"), makeCategory(2, "home")}, nil)
			},
			expectedLen: 2,
		},
		{
			name: "error - state preserved",
			setupMock: func(m *MockCategoriesAPI) {
				m.On("ListCategories", mock.Anything).
					Return([]models.Category{makeCategory(1, "work")}, nil).Once()
				m.On("ListCategories", mock.Anything).
					Return(nil, &api.Error{Message: "server down", Status: 500}).Once()
			},
			expectedLen: 1,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAPI := new(MockCategoriesAPI)
			tt.setupMock(mockAPI)

			s := store.NewCategoryStore(mockAPI, newNotifier())
			s.FetchCategories(context.Background())

			if tt.expectError {
				s.FetchCategories(context.Background())
				assert.Error(t, s.Err())
			} else {
				assert.NoError(t, s.Err())
			}

			assert.Len(t, s.Categories(), tt.expectedLen)
			assert.False(t, s.Loading())
		})
	}
}

func TestCategoryStore_CreateCategory(t *testing.T) {
	created := makeCategory(3, "hobby")

	mockAPI := new(MockCategoriesAPI)
	mockAPI.On("CreateCategory", mock.Anything, mock.Anything).Return(&created, nil)

	notifier := newNotifier()
	s := store.NewCategoryStore(mockAPI, notifier)

	category, err := s.CreateCategory(context.Background(), models.CreateCategoryRequest{Name: "hobby"})

	require.NoError(t, err)
	assert.Equal(t, 3, category.ID)
	// подтверждённая категория дописывается в локальный список
	assert.Len(t, s.Categories(), 1)
	notifier.AssertCalled(t, "Notify", "Категория создана", notify.SeveritySuccess, time.Duration(0))
}

func TestCategoryStore_CreateCategory_ValidationError(t *testing.T) {
	mockAPI := new(MockCategoriesAPI)
	s := store.NewCategoryStore(mockAPI, newNotifier())

	_, err := s.CreateCategory(context.Background(), models.CreateCategoryRequest{})

	require.Error(t, err)
	mockAPI.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything)
}

func TestCategoryStore_UpdateCategory(t *testing.T) {
	renamed := makeCategory(1, "renamed")

	mockAPI := new(MockCategoriesAPI)
	mockAPI.On("ListCategories", mock.Anything).
		Return([]models.Category{makeCategory(1, "work"), makeCategory(2, "home")}, nil)
	mockAPI.On("UpdateCategory", mock.Anything, 1, mock.Anything).Return(&renamed, nil)

	s := store.NewCategoryStore(mockAPI, newNotifier())
	s.FetchCategories(context.Background())

	name := "renamed"
	category, err := s.UpdateCategory(context.Background(), 1, models.UpdateCategoryRequest{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "renamed", category.Name)

	categories := s.Categories()
	require.Len(t, categories, 2)
	assert.Equal(t, "renamed", categories[0].Name)
	assert.Equal(t, "home", categories[1].Name)
}

func TestCategoryStore_DeleteCategory(t *testing.T) {
	mockAPI := new(MockCategoriesAPI)
	mockAPI.On("ListCategories", mock.Anything).
		Return([]models.Category{makeCategory(1, "work"), makeCategory(2, "home")}, nil)
	mockAPI.On("DeleteCategory", mock.Anything, 1).Return(nil)

	notifier := newNotifier()
	s := store.NewCategoryStore(mockAPI, notifier)
	s.FetchCategories(context.Background())

	err := s.DeleteCategory(context.Background(), 1)

	require.NoError(t, err)
	categories := s.Categories()
	require.Len(t, categories, 1)
	assert.Equal(t, 2, categories[0].ID)
	notifier.AssertCalled(t, "Notify", "Категория удалена", notify.SeveritySuccess, time.Duration(0))
}

func TestCategoryStore_DeleteCategory_Failure(t *testing.T) {
	mockAPI := new(MockCategoriesAPI)
	mockAPI.On("ListCategories", mock.Anything).
		Return([]models.Category{makeCategory(1, "work")}, nil)
	mockAPI.On("DeleteCategory", mock.Anything, 9).
		Return(&api.Error{Message: "Категория не найдена", Status: 404})

	notifier := newNotifier()
	s := store.NewCategoryStore(mockAPI, notifier)
	s.FetchCategories(context.Background())

	err := s.DeleteCategory(context.Background(), 9)

	require.Error(t, err)
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
	assert.Len(t, s.Categories(), 1)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
	assert.False(t, s.Loading())
}
