package http

import (
	"net/http"

	"blogpost/pkg/apperrors"
	"blogpost/pkg/logger"
	"blogpost/pkg/middleware"
	"blogpost/pkg/response"
	"blogpost/services/auth/internal/entity"
	"blogpost/services/auth/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      *logger.Logger
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates an account and returns a token for it
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      201  {object}  AuthResponse
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	user, token, err := h.authUseCase.Register(c.Request.Context(), entity.RegisterInput{
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{Token: token, User: toUserResponse(user)})
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200  {object}  AuthResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	user, token, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, User: toUserResponse(user)})
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  UserResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authUseCase.Me(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateMe godoc
// @Summary      Update the current user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateMeRequest true "Fields to change"
// @Success      200  {object}  UserResponse
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /auth/me [patch]
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	user, err := h.authUseCase.UpdateProfile(c.Request.Context(), middleware.UserID(c), entity.ProfileUpdate{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// UploadAvatar godoc
// @Summary      Upload an avatar
// @Tags         auth
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        avatar  formData file true "Image (max 2MB)"
// @Success      200  {object}  UserResponse
// @Failure      400  {object}  map[string]string
// @Router       /auth/avatar [post]
func (h *AuthHandler) UploadAvatar(c *gin.Context) {
	file, err := c.FormFile("avatar")
	if err != nil {
		response.Error(c, apperrors.Validation("avatar file is required"))
		return
	}

	user, err := h.authUseCase.UploadAvatar(c.Request.Context(), middleware.UserID(c), file)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// LinkProvider godoc
// @Summary      Link an external account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body LinkProviderRequest true "Provider account"
// @Success      201  {object}  ProviderResponse
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /auth/providers [post]
func (h *AuthHandler) LinkProvider(c *gin.Context) {
	var req LinkProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	link, err := h.authUseCase.LinkProvider(c.Request.Context(), middleware.UserID(c), entity.LinkProviderInput{
		Provider:       entity.Provider(req.Provider),
		ProviderUserID: req.ProviderUserID,
		Username:       req.Username,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, toProviderResponse(link))
}

// ListProviders godoc
// @Summary      Linked external accounts
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ProviderResponse
// @Router       /auth/providers [get]
func (h *AuthHandler) ListProviders(c *gin.Context) {
	links, err := h.authUseCase.ListProviders(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toProviderResponses(links))
}
