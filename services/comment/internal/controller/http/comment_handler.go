package http

import (
	"net/http"

	"blogpost/pkg/logger"
	"blogpost/pkg/middleware"
	"blogpost/pkg/response"
	"blogpost/services/comment/internal/entity"
	"blogpost/services/comment/internal/usecase"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 20

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	logger         *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, logger *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		logger:         logger,
	}
}

// CreateComment godoc
// @Summary      Create a comment
// @Description  Comments on a published post. parent_id must name a comment on the same post.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateCommentRequest true "Comment data"
// @Success      201  {object}  CommentDetail
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	comment, err := h.commentUseCase.CreateComment(c.Request.Context(), middleware.UserID(c), entity.CreateCommentInput{
		PostID:   req.PostID,
		Content:  req.Content,
		ParentID: req.ParentID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, toDetail(comment))
}

// ReplyToComment godoc
// @Summary      Reply to a comment
// @Description  The reply joins the parent's post. Unapproved comments cannot be replied to.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path string         true "Parent comment ID"
// @Param        request  body ContentRequest true "Reply"
// @Success      201  {object}  CommentDetail
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id}/reply [post]
func (h *CommentHandler) ReplyToComment(c *gin.Context) {
	var req ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	reply, err := h.commentUseCase.ReplyToComment(c.Request.Context(), c.Param("id"), middleware.UserID(c), req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, toDetail(reply))
}

// ListComments godoc
// @Summary      List comments
// @Description  Approved comments, plus the caller's own. A deleted post answers 404.
// @Tags         comments
// @Produce      json
// @Param        post         query string false "Post ID"
// @Param        author       query string false "Author ID"
// @Param        parent       query string false "Parent comment ID"
// @Param        top_level    query bool   false "Only comments without a parent"
// @Param        is_approved  query bool   false "Approval state"
// @Param        is_edited    query bool   false "Edited state"
// @Param        search       query string false "Search in content and author username"
// @Param        ordering     query string false "created_at, -created_at, updated_at, -updated_at"
// @Param        limit        query int    false "Page size (max 100)"
// @Param        offset       query int    false "Offset"
// @Success      200  {object}  CommentListResponse
// @Failure      404  {object}  map[string]string
// @Router       /comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	comments, total, err := h.commentUseCase.ListComments(c.Request.Context(), q.toFilter(middleware.UserID(c)))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toListResponse(comments, total, pageSize(q.Limit), q.Offset))
}

// ListMyComments godoc
// @Summary      List my comments
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query int false "Page size (max 100)"
// @Param        offset  query int false "Offset"
// @Success      200  {object}  CommentListResponse
// @Router       /comments/mine [get]
func (h *CommentHandler) ListMyComments(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	comments, total, err := h.commentUseCase.ListMyComments(c.Request.Context(), middleware.UserID(c), q.Limit, q.Offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toListResponse(comments, total, pageSize(q.Limit), q.Offset))
}

// ListPendingComments godoc
// @Summary      List comments awaiting approval
// @Description  Unapproved comments on the caller's posts, oldest first.
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query int false "Page size (max 100)"
// @Param        offset  query int false "Offset"
// @Success      200  {object}  CommentListResponse
// @Router       /comments/pending [get]
func (h *CommentHandler) ListPendingComments(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	comments, total, err := h.commentUseCase.ListPendingComments(c.Request.Context(), middleware.UserID(c), q.Limit, q.Offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toListResponse(comments, total, pageSize(q.Limit), q.Offset))
}

// AdminListComments godoc
// @Summary      List all comments (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        include_deleted  query bool   false "Include soft-deleted comments"
// @Param        post             query string false "Post ID"
// @Success      200  {object}  CommentListResponse
// @Failure      403  {object}  map[string]string
// @Router       /admin/comments [get]
func (h *CommentHandler) AdminListComments(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	filter := q.toFilter(middleware.UserID(c))
	filter.IncludeDeleted = includeDeleted(c)

	comments, total, err := h.commentUseCase.AdminListComments(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toListResponse(comments, total, pageSize(q.Limit), q.Offset))
}

// GetComment godoc
// @Summary      Get a comment
// @Description  Includes direct replies, oldest first.
// @Tags         comments
// @Produce      json
// @Param        id   path string true "Comment ID"
// @Success      200  {object}  CommentDetail
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [get]
func (h *CommentHandler) GetComment(c *gin.Context) {
	comment, err := h.commentUseCase.GetComment(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toDetail(comment))
}

// UpdateComment godoc
// @Summary      Edit a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path string         true "Comment ID"
// @Param        request  body ContentRequest true "New content"
// @Success      200  {object}  CommentDetail
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var req ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	comment, err := h.commentUseCase.UpdateComment(c.Request.Context(), c.Param("id"), middleware.UserID(c), req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toDetail(comment))
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Tags         comments
// @Security     BearerAuth
// @Param        id   path string true "Comment ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.commentUseCase.DeleteComment(c.Request.Context(), c.Param("id"), middleware.UserID(c)); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ApproveComment godoc
// @Summary      Approve a comment
// @Description  Only the author of the comment's post may approve.
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "Comment ID"
// @Success      200  {object}  CommentDetail
// @Failure      403  {object}  map[string]string
// @Router       /comments/{id}/approve [post]
func (h *CommentHandler) ApproveComment(c *gin.Context) {
	comment, err := h.commentUseCase.ApproveComment(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toDetail(comment))
}

// DisapproveComment godoc
// @Summary      Disapprove a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "Comment ID"
// @Success      200  {object}  CommentDetail
// @Failure      403  {object}  map[string]string
// @Router       /comments/{id}/disapprove [post]
func (h *CommentHandler) DisapproveComment(c *gin.Context) {
	comment, err := h.commentUseCase.DisapproveComment(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toDetail(comment))
}

func pageSize(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	return limit
}
