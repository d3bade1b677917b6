package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blogpost/pkg/apperrors"
	"blogpost/services/post/internal/entity"
	"blogpost/services/post/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTaxonomyUseCase struct {
	mock.Mock
}

func (m *MockTaxonomyUseCase) ListTags(ctx context.Context) ([]*entity.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Tag), args.Error(1)
}

func (m *MockTaxonomyUseCase) GetTag(ctx context.Context, id string) (*entity.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tag), args.Error(1)
}

func (m *MockTaxonomyUseCase) CreateTag(ctx context.Context, name, tagSlug, color string) (*entity.Tag, error) {
	args := m.Called(ctx, name, tagSlug, color)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Tag), args.Error(1)
}

func (m *MockTaxonomyUseCase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *MockTaxonomyUseCase) GetCategory(ctx context.Context, id string) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockTaxonomyUseCase) CreateCategory(ctx context.Context, name, categorySlug, description string) (*entity.Category, error) {
	args := m.Called(ctx, name, categorySlug, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

var _ usecase.TaxonomyUseCase = (*MockTaxonomyUseCase)(nil)

func TestListCategories(t *testing.T) {
	mockUseCase := new(MockTaxonomyUseCase)
	handler := NewTaxonomyHandler(mockUseCase, testLogger())

	router := setupTestRouter(t)
	router.GET("/categories", handler.ListCategories)

	mockUseCase.On("ListCategories", mock.Anything).Return([]*entity.Category{{ID: "c1", Name: "Go", Slug: "go", PostsCount: 3}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/categories", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"posts_count":3`)
}

func TestCreateTag_BadColor(t *testing.T) {
	mockUseCase := new(MockTaxonomyUseCase)
	handler := NewTaxonomyHandler(mockUseCase, testLogger())

	router := setupTestRouter(t)
	router.POST("/admin/tags", handler.CreateTag)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/tags", strings.NewReader(`{"name":"go","color":"blue"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"color"`)
}

func TestCreateTag_Conflict(t *testing.T) {
	mockUseCase := new(MockTaxonomyUseCase)
	handler := NewTaxonomyHandler(mockUseCase, testLogger())

	router := setupTestRouter(t)
	router.POST("/admin/tags", handler.CreateTag)

	mockUseCase.On("CreateTag", mock.Anything, "go", "", "#00add8").Return(nil, apperrors.Conflict("a tag with this name or slug already exists"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/tags", strings.NewReader(`{"name":"go","color":"#00add8"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
