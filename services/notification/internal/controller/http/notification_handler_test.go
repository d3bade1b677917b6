package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogpost/pkg/apperrors"
	"blogpost/pkg/logger"
	"blogpost/pkg/queue"
	"blogpost/pkg/validation"
	"blogpost/services/notification/internal/entity"
	"blogpost/services/notification/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotificationUseCase struct {
	mock.Mock
}

var _ usecase.NotificationUseCase = (*MockNotificationUseCase)(nil)

func (m *MockNotificationUseCase) HandleTask(ctx context.Context, task queue.NotificationTask) error {
	return m.Called(ctx, task).Error(0)
}

func (m *MockNotificationUseCase) ListNotifications(ctx context.Context, userID string, limit, offset int) ([]*entity.Notification, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationUseCase) ClearNotifications(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func setupTestRouter(t *testing.T) (*gin.Engine, *MockNotificationUseCase, *NotificationHandler) {
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.Register())

	mockUseCase := new(MockNotificationUseCase)
	handler := NewNotificationHandler(mockUseCase, logger.NewWithWriter(io.Discard, "error"))
	return gin.New(), mockUseCase, handler
}

func asUser(userID string, h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		h(c)
	}
}

func TestGetNotifications(t *testing.T) {
	router, mockUseCase, handler := setupTestRouter(t)
	router.GET("/notifications", asUser("alice", handler.GetNotifications))

	mockUseCase.On("ListNotifications", mock.Anything, "alice", 5, 0).Return([]*entity.Notification{
		{ID: "n1", Type: "like", Message: "bob liked your post", PostID: "p1"},
	}, int64(1), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/notifications?limit=5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"bob liked your post"`)
	assert.Contains(t, w.Body.String(), `"limit":5`)
	assert.NotContains(t, w.Body.String(), "comment_id")
}

func TestGetNotifications_Unauthorized(t *testing.T) {
	router, mockUseCase, handler := setupTestRouter(t)
	router.GET("/notifications", handler.GetNotifications)

	mockUseCase.On("ListNotifications", mock.Anything, "", 0, 0).Return(nil, int64(0), apperrors.Unauthorized("authentication required"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/notifications", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetNotifications_BadLimit(t *testing.T) {
	router, mockUseCase, handler := setupTestRouter(t)
	router.GET("/notifications", asUser("alice", handler.GetNotifications))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/notifications?limit=500", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "ListNotifications", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestClearNotifications(t *testing.T) {
	router, mockUseCase, handler := setupTestRouter(t)
	router.DELETE("/notifications", asUser("alice", handler.ClearNotifications))

	mockUseCase.On("ClearNotifications", mock.Anything, "alice").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/notifications", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
