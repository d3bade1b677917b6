package http

import (
	"net/http"
	"time"

	"blogpost/pkg/logger"
	"blogpost/pkg/middleware"
	"blogpost/pkg/response"
	"blogpost/services/notification/internal/entity"
	"blogpost/services/notification/internal/usecase"

	"github.com/gin-gonic/gin"
)

type listQuery struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	ActorID   string    `json:"actor_id"`
	PostID    string    `json:"post_id"`
	CommentID string    `json:"comment_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationListResponse struct {
	Count   int64                  `json:"count"`
	Limit   int                    `json:"limit"`
	Offset  int                    `json:"offset"`
	Results []NotificationResponse `json:"results"`
}

func toNotificationResponse(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		ActorID:   n.ActorID,
		PostID:    n.PostID,
		CommentID: n.CommentID,
		CreatedAt: n.CreatedAt,
	}
}

type NotificationHandler struct {
	notificationUseCase usecase.NotificationUseCase
	logger              *logger.Logger
}

func NewNotificationHandler(notificationUseCase usecase.NotificationUseCase, logger *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
		logger:              logger,
	}
}

// GetNotifications godoc
// @Summary      My notifications
// @Description  Newest first; only the most recent 100 are kept
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query int false "Page size (max 100)"
// @Param        offset  query int false "Offset"
// @Success      200  {object}  NotificationListResponse
// @Failure      401  {object}  map[string]string
// @Router       /notifications [get]
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	items, total, err := h.notificationUseCase.ListNotifications(c.Request.Context(), middleware.UserID(c), q.Limit, q.Offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	results := make([]NotificationResponse, len(items))
	for i, item := range items {
		results[i] = toNotificationResponse(item)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = usecase.DefaultLimit
	}
	c.JSON(http.StatusOK, NotificationListResponse{Count: total, Limit: limit, Offset: q.Offset, Results: results})
}

// ClearNotifications godoc
// @Summary      Clear my notifications
// @Tags         notifications
// @Security     BearerAuth
// @Success      204
// @Router       /notifications [delete]
func (h *NotificationHandler) ClearNotifications(c *gin.Context) {
	if err := h.notificationUseCase.ClearNotifications(c.Request.Context(), middleware.UserID(c)); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
