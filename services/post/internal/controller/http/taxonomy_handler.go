package http

import (
	"net/http"

	"blogpost/pkg/logger"
	"blogpost/pkg/response"
	"blogpost/services/post/internal/usecase"

	"github.com/gin-gonic/gin"
)

type TaxonomyHandler struct {
	taxonomyUseCase usecase.TaxonomyUseCase
	logger          *logger.Logger
}

func NewTaxonomyHandler(taxonomyUseCase usecase.TaxonomyUseCase, logger *logger.Logger) *TaxonomyHandler {
	return &TaxonomyHandler{taxonomyUseCase: taxonomyUseCase, logger: logger}
}

// ListTags godoc
// @Summary      List tags
// @Tags         tags
// @Produce      json
// @Success      200  {array}  entity.Tag
// @Router       /tags [get]
func (h *TaxonomyHandler) ListTags(c *gin.Context) {
	tags, err := h.taxonomyUseCase.ListTags(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

// GetTag godoc
// @Summary      Get a tag
// @Tags         tags
// @Produce      json
// @Param        id   path string true "Tag ID"
// @Success      200  {object}  entity.Tag
// @Failure      404  {object}  map[string]string
// @Router       /tags/{id} [get]
func (h *TaxonomyHandler) GetTag(c *gin.Context) {
	tag, err := h.taxonomyUseCase.GetTag(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

// CreateTag godoc
// @Summary      Create a tag (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateTagRequest true "Tag"
// @Success      201  {object}  entity.Tag
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/tags [post]
func (h *TaxonomyHandler) CreateTag(c *gin.Context) {
	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	tag, err := h.taxonomyUseCase.CreateTag(c.Request.Context(), req.Name, req.Slug, req.Color)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

// ListCategories godoc
// @Summary      List categories
// @Description  posts_count counts published, non-deleted posts.
// @Tags         categories
// @Produce      json
// @Success      200  {array}  entity.Category
// @Router       /categories [get]
func (h *TaxonomyHandler) ListCategories(c *gin.Context) {
	categories, err := h.taxonomyUseCase.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategory godoc
// @Summary      Get a category
// @Tags         categories
// @Produce      json
// @Param        id   path string true "Category ID"
// @Success      200  {object}  entity.Category
// @Failure      404  {object}  map[string]string
// @Router       /categories/{id} [get]
func (h *TaxonomyHandler) GetCategory(c *gin.Context) {
	category, err := h.taxonomyUseCase.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// CreateCategory godoc
// @Summary      Create a category (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateCategoryRequest true "Category"
// @Success      201  {object}  entity.Category
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /admin/categories [post]
func (h *TaxonomyHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	category, err := h.taxonomyUseCase.CreateCategory(c.Request.Context(), req.Name, req.Slug, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}
