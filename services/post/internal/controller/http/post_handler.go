package http

import (
	"net/http"

	"blogpost/pkg/apperrors"
	"blogpost/pkg/logger"
	"blogpost/pkg/middleware"
	"blogpost/pkg/response"
	"blogpost/services/post/internal/usecase"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 20

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

// CreatePost godoc
// @Summary      Create a post
// @Description  Creates a post authored by the caller. The slug is derived from the title when omitted.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePostRequest true "Post data"
// @Success      201  {object}  PostDetail
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	post, err := h.postUseCase.CreatePost(c.Request.Context(), middleware.UserID(c), req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, toDetail(post))
}

// ListPosts godoc
// @Summary      List posts
// @Description  Published posts, plus the caller's own drafts when authenticated. Soft-deleted posts are never listed.
// @Tags         posts
// @Produce      json
// @Param        category      query string false "Category ID"
// @Param        tag           query string false "Tag ID"
// @Param        author        query string false "Author ID"
// @Param        is_published  query bool   false "Publication state"
// @Param        search        query string false "Search in title, content and author username"
// @Param        ordering      query string false "created_at, -created_at, updated_at, -updated_at, title, -title"
// @Param        limit         query int    false "Page size (max 100)"
// @Param        offset        query int    false "Offset"
// @Success      200  {object}  PostListResponse
// @Failure      400  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	posts, total, err := h.postUseCase.ListPosts(c.Request.Context(), q.toFilter(middleware.UserID(c)))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toListResponse(posts, total, pageSize(q.Limit), q.Offset))
}

// ListMyPosts godoc
// @Summary      List my posts
// @Description  The caller's non-deleted posts, drafts included.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query int false "Page size (max 100)"
// @Param        offset  query int false "Offset"
// @Success      200  {object}  PostListResponse
// @Failure      401  {object}  map[string]string
// @Router       /posts/mine [get]
func (h *PostHandler) ListMyPosts(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	posts, total, err := h.postUseCase.ListMyPosts(c.Request.Context(), middleware.UserID(c), q.Limit, q.Offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toListResponse(posts, total, pageSize(q.Limit), q.Offset))
}

// AdminListPosts godoc
// @Summary      List all posts (admin)
// @Description  Ignores visibility. Soft-deleted posts are included when include_deleted=true.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        include_deleted  query bool false "Include soft-deleted posts"
// @Param        author           query string false "Author ID"
// @Param        limit            query int false "Page size (max 100)"
// @Param        offset           query int false "Offset"
// @Success      200  {object}  PostListResponse
// @Failure      403  {object}  map[string]string
// @Router       /admin/posts [get]
func (h *PostHandler) AdminListPosts(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}

	filter := q.toFilter(middleware.UserID(c))
	filter.IncludeDeleted = includeDeleted(c)

	posts, total, err := h.postUseCase.AdminListPosts(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toListResponse(posts, total, pageSize(q.Limit), q.Offset))
}

// GetPost godoc
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        id   path string true "Post ID"
// @Success      200  {object}  PostDetail
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postUseCase.GetPost(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toDetail(post))
}

// UpdatePost godoc
// @Summary      Update a post
// @Description  Partial update; only the author may update. category_id: null detaches the category.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path string            true "Post ID"
// @Param        request  body UpdatePostRequest true "Fields to change"
// @Success      200  {object}  PostDetail
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	post, err := h.postUseCase.UpdatePost(c.Request.Context(), c.Param("id"), middleware.UserID(c), req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toDetail(post))
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Soft delete; only the author may delete.
// @Tags         posts
// @Security     BearerAuth
// @Param        id   path string true "Post ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.postUseCase.DeletePost(c.Request.Context(), c.Param("id"), middleware.UserID(c)); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// PublishPost godoc
// @Summary      Publish a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "Post ID"
// @Success      200  {object}  PostDetail
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/publish [post]
func (h *PostHandler) PublishPost(c *gin.Context) {
	post, err := h.postUseCase.PublishPost(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toDetail(post))
}

// UnpublishPost godoc
// @Summary      Unpublish a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "Post ID"
// @Success      200  {object}  PostDetail
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/unpublish [post]
func (h *PostHandler) UnpublishPost(c *gin.Context) {
	post, err := h.postUseCase.UnpublishPost(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toDetail(post))
}

// UploadImage godoc
// @Summary      Upload a cover image
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id     path     string true "Post ID"
// @Param        image  formData file   true "Image (max 5MB)"
// @Success      200  {object}  PostDetail
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /posts/{id}/image [post]
func (h *PostHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		response.Error(c, apperrors.Validation("image file is required"))
		return
	}

	post, err := h.postUseCase.UploadImage(c.Request.Context(), c.Param("id"), middleware.UserID(c), file)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toDetail(post))
}

func pageSize(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	return limit
}
