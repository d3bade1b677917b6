package http

import (
	"net/http"

	"blogpost/pkg/logger"
	"blogpost/pkg/middleware"
	"blogpost/pkg/response"
	"blogpost/services/interaction/internal/usecase"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 20

type LikeHandler struct {
	likeUseCase usecase.LikeUseCase
	logger      *logger.Logger
}

func NewLikeHandler(likeUseCase usecase.LikeUseCase, logger *logger.Logger) *LikeHandler {
	return &LikeHandler{
		likeUseCase: likeUseCase,
		logger:      logger,
	}
}

// ToggleLike godoc
// @Summary      Toggle a like
// @Description  Likes the post when the caller has not liked it yet and removes the like otherwise.
// @Tags         likes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body LikeRequest true "Post to toggle"
// @Success      201  {object}  ToggleResponse "Like created"
// @Success      200  {object}  ToggleResponse "Like removed"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /likes/toggle [post]
func (h *LikeHandler) ToggleLike(c *gin.Context) {
	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.likeUseCase.ToggleLike(c.Request.Context(), middleware.UserID(c), req.PostID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if !result.Created {
		c.JSON(http.StatusOK, ToggleResponse{Created: false})
		return
	}
	like := toLikeResponse(result.Like)
	c.JSON(http.StatusCreated, ToggleResponse{Created: true, Like: &like})
}

// CreateLike godoc
// @Summary      Like a post
// @Tags         likes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body LikeRequest true "Post to like"
// @Success      201  {object}  LikeResponse
// @Failure      400  {object}  map[string]string
// @Router       /likes [post]
func (h *LikeHandler) CreateLike(c *gin.Context) {
	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	like, err := h.likeUseCase.CreateLike(c.Request.Context(), middleware.UserID(c), req.PostID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, toLikeResponse(like))
}

// DeleteLike godoc
// @Summary      Remove a like
// @Tags         likes
// @Security     BearerAuth
// @Param        id   path string true "Like ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /likes/{id} [delete]
func (h *LikeHandler) DeleteLike(c *gin.Context) {
	if err := h.likeUseCase.DeleteLike(c.Request.Context(), c.Param("id"), middleware.UserID(c)); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListLikes godoc
// @Summary      List likes
// @Tags         likes
// @Produce      json
// @Param        post    query string false "Post ID"
// @Param        user    query string false "User ID"
// @Param        limit   query int    false "Page size (max 100)"
// @Param        offset  query int    false "Offset"
// @Success      200  {object}  LikeListResponse
// @Router       /likes [get]
func (h *LikeHandler) ListLikes(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	likes, total, err := h.likeUseCase.ListLikes(c.Request.Context(), q.toFilter())
	if err != nil {
		response.Error(c, err)
		return
	}

	results := make([]LikeResponse, len(likes))
	for i, like := range likes {
		results[i] = toLikeResponse(like)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	c.JSON(http.StatusOK, LikeListResponse{Count: total, Limit: limit, Offset: q.Offset, Results: results})
}

// GetStats godoc
// @Summary      Like statistics for a post
// @Tags         likes
// @Produce      json
// @Param        post_id  path string true "Post ID"
// @Success      200  {object}  entity.LikeStats
// @Failure      404  {object}  map[string]string
// @Router       /likes/stats/{post_id} [get]
func (h *LikeHandler) GetStats(c *gin.Context) {
	stats, err := h.likeUseCase.GetStats(c.Request.Context(), c.Param("post_id"), middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
