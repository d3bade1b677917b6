package usecase

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"blogpost/pkg/apperrors"
	"blogpost/pkg/jwt"
	"blogpost/pkg/logger"
	"blogpost/pkg/s3"
	"blogpost/services/auth/internal/entity"
	"blogpost/services/auth/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

const (
	maxAvatarSize      = 2 << 20
	invalidCredentials = "invalid credentials"
)

type AuthUseCase interface {
	Register(ctx context.Context, input entity.RegisterInput) (*entity.User, string, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	Me(ctx context.Context, userID string) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, update entity.ProfileUpdate) (*entity.User, error)
	UploadAvatar(ctx context.Context, userID string, file *multipart.FileHeader) (*entity.User, error)
	LinkProvider(ctx context.Context, userID string, input entity.LinkProviderInput) (*entity.AuthProvider, error)
	ListProviders(ctx context.Context, userID string) ([]*entity.AuthProvider, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	storage    s3.Uploader
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	storage s3.Uploader,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		storage:    storage,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(ctx context.Context, input entity.RegisterInput) (*entity.User, string, error) {
	email := normalizeEmail(input.Email)
	username := strings.TrimSpace(input.Username)
	if email == "" || username == "" {
		return nil, "", apperrors.Validation("email and username are required")
	}

	if err := uc.ensureAvailable(ctx, &email, &username, ""); err != nil {
		return nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", apperrors.Internal("failed to process registration", err)
	}

	user := &entity.User{
		Email:     email,
		Username:  username,
		Password:  string(hashedPassword),
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Role:      entity.RoleUser,
		IsActive:  true,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, "", apperrors.Conflict("a user with this email or username already exists")
		}
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", apperrors.Internal("failed to create user", err)
	}

	token, err := uc.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (uc *authUseCase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", apperrors.Unauthorized(invalidCredentials)
		}
		uc.logger.Error("Failed to load user for login: %v", err)
		return nil, "", apperrors.Internal("failed to log in", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperrors.Unauthorized(invalidCredentials)
	}

	if !user.IsActive {
		return nil, "", apperrors.PermissionDenied("account is deactivated")
	}

	token, err := uc.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (uc *authUseCase) Me(ctx context.Context, userID string) (*entity.User, error) {
	if userID == "" {
		return nil, apperrors.Unauthorized("authentication required")
	}
	return uc.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies the non-nil fields of update. Email and username
// stay unique across users, the caller's own row excluded.
func (uc *authUseCase) UpdateProfile(ctx context.Context, userID string, update entity.ProfileUpdate) (*entity.User, error) {
	if userID == "" {
		return nil, apperrors.Unauthorized("authentication required")
	}

	if update.Email != nil {
		email := normalizeEmail(*update.Email)
		if email == "" {
			return nil, apperrors.Validation("email must not be blank")
		}
		update.Email = &email
	}
	if update.Username != nil {
		username := strings.TrimSpace(*update.Username)
		if username == "" {
			return nil, apperrors.Validation("username must not be blank")
		}
		update.Username = &username
	}

	if err := uc.ensureAvailable(ctx, update.Email, update.Username, userID); err != nil {
		return nil, err
	}

	if !update.Empty() {
		if err := uc.userRepo.UpdateProfile(ctx, userID, update); err != nil {
			switch {
			case errors.Is(err, apperrors.ErrNotFound):
				return nil, err
			case errors.Is(err, apperrors.ErrConflict):
				return nil, apperrors.Conflict("a user with this email or username already exists")
			}
			uc.logger.Error("Failed to update profile of %s: %v", userID, err)
			return nil, apperrors.Internal("failed to update profile", err)
		}
	}

	return uc.userRepo.GetByID(ctx, userID)
}

func (uc *authUseCase) UploadAvatar(ctx context.Context, userID string, file *multipart.FileHeader) (*entity.User, error) {
	if userID == "" {
		return nil, apperrors.Unauthorized("authentication required")
	}
	if file == nil {
		return nil, apperrors.Validation("avatar file is required")
	}
	if file.Size > maxAvatarSize {
		return nil, apperrors.Validation("avatar must not exceed 2MB")
	}
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, apperrors.Validation("file must be an image")
	}
	if uc.storage == nil {
		return nil, apperrors.Internal("avatar storage is not configured", nil)
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.Validation("failed to read uploaded file")
	}
	defer src.Close()

	url, err := uc.storage.Upload(ctx, s3.ObjectKey("avatars", userID, file.Filename), src, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload avatar for %s: %v", userID, err)
		return nil, apperrors.Internal("failed to upload avatar", err)
	}

	if err := uc.userRepo.SetAvatarURL(ctx, userID, url); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		uc.logger.Error("Failed to save avatar url for %s: %v", userID, err)
		return nil, apperrors.Internal("failed to save avatar", err)
	}

	return uc.userRepo.GetByID(ctx, userID)
}

// LinkProvider attaches an external account to the caller. An account can
// belong to one user only.
func (uc *authUseCase) LinkProvider(ctx context.Context, userID string, input entity.LinkProviderInput) (*entity.AuthProvider, error) {
	if userID == "" {
		return nil, apperrors.Unauthorized("authentication required")
	}
	if !input.Provider.Valid() {
		return nil, apperrors.Validation("unsupported provider")
	}
	providerUserID := strings.TrimSpace(input.ProviderUserID)
	if providerUserID == "" {
		return nil, apperrors.Validation("provider_user_id must not be blank")
	}

	link := &entity.AuthProvider{
		UserID:         userID,
		Provider:       input.Provider,
		ProviderUserID: providerUserID,
		Username:       input.Username,
	}
	if err := uc.userRepo.LinkProvider(ctx, link); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.Conflict("this " + string(input.Provider) + " account is already linked")
		}
		uc.logger.Error("Failed to link %s account for %s: %v", input.Provider, userID, err)
		return nil, apperrors.Internal("failed to link provider", err)
	}
	return link, nil
}

func (uc *authUseCase) ListProviders(ctx context.Context, userID string) ([]*entity.AuthProvider, error) {
	if userID == "" {
		return nil, apperrors.Unauthorized("authentication required")
	}

	links, err := uc.userRepo.ListProviders(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to list providers of %s: %v", userID, err)
		return nil, apperrors.Internal("failed to list providers", err)
	}
	return links, nil
}

func (uc *authUseCase) ensureAvailable(ctx context.Context, email, username *string, excludeID string) error {
	if email != nil {
		taken, err := uc.userRepo.EmailTaken(ctx, *email, excludeID)
		if err != nil {
			uc.logger.Error("Failed to check email: %v", err)
			return apperrors.Internal("failed to check email", err)
		}
		if taken {
			return apperrors.Conflict("user with this email already exists")
		}
	}
	if username != nil {
		taken, err := uc.userRepo.UsernameTaken(ctx, *username, excludeID)
		if err != nil {
			uc.logger.Error("Failed to check username: %v", err)
			return apperrors.Internal("failed to check username", err)
		}
		if taken {
			return apperrors.Conflict("username already taken")
		}
	}
	return nil
}

func (uc *authUseCase) issueToken(user *entity.User) (string, error) {
	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return "", apperrors.Internal("failed to generate token", err)
	}
	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
