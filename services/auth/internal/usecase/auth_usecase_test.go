package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"blogpost/pkg/apperrors"
	"blogpost/pkg/jwt"
	"blogpost/pkg/logger"
	"blogpost/services/auth/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newTestAuthUseCase() (*authUseCase, *MockUserRepository, *MockUploader) {
	userRepo := new(MockUserRepository)
	uploader := new(MockUploader)
	uc := NewAuthUseCase(userRepo, jwt.NewService(testSecret), uploader, logger.NewWithWriter(io.Discard, "error")).(*authUseCase)
	return uc, userRepo, uploader
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestRegister(t *testing.T) {
	uc, userRepo, _ := newTestAuthUseCase()
	ctx := context.Background()

	userRepo.On("EmailTaken", ctx, "alice@example.com", "").Return(false, nil)
	userRepo.On("UsernameTaken", ctx, "alice", "").Return(false, nil)
	userRepo.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "alice@example.com" &&
			u.Role == entity.RoleUser &&
			u.IsActive &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("s3cret-pass")) == nil
	})).Return(nil)

	user, token, err := uc.Register(ctx, entity.RegisterInput{
		Email:    "  Alice@Example.com ",
		Username: "alice",
		Password: "s3cret-pass",
	})

	require.NoError(t, err)
	assert.Equal(t, "generated-id", user.ID)

	claims, err := jwt.NewService(testSecret).ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "generated-id", claims.UserID)
	assert.Equal(t, "user", claims.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, userRepo, _ := newTestAuthUseCase()
	ctx := context.Background()
	userRepo.On("EmailTaken", ctx, "alice@example.com", "").Return(true, nil)

	_, _, err := uc.Register(ctx, entity.RegisterInput{Email: "alice@example.com", Username: "alice", Password: "s3cret-pass"})

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	uc, userRepo, _ := newTestAuthUseCase()
	ctx := context.Background()
	userRepo.On("EmailTaken", ctx, "alice@example.com", "").Return(false, nil)
	userRepo.On("UsernameTaken", ctx, "alice", "").Return(true, nil)

	_, _, err := uc.Register(ctx, entity.RegisterInput{Email: "alice@example.com", Username: "alice", Password: "s3cret-pass"})

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "username already taken", apperrors.MessageOf(err))
}

func TestRegister_RaceOnInsertIsConflict(t *testing.T) {
	uc, userRepo, _ := newTestAuthUseCase()
	ctx := context.Background()
	userRepo.On("EmailTaken", ctx, mock.Anything, "").Return(false, nil)
	userRepo.On("UsernameTaken", ctx, mock.Anything, "").Return(false, nil)
	userRepo.On("Create", ctx, mock.Anything).Return(apperrors.Conflict("user already exists"))

	_, _, err := uc.Register(ctx, entity.RegisterInput{Email: "alice@example.com", Username: "alice", Password: "s3cret-pass"})

	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestLogin(t *testing.T) {
	uc, userRepo, _ := newTestAuthUseCase()
	ctx := context.Background()
	userRepo.On("GetByEmail", ctx, "alice@example.com").Return(&entity.User{
		ID: "u1", Email: "alice@example.com", Password: hashed(t, "s3cret-pass"), Role: entity.RoleAdmin, IsActive: true,
	}, nil)

	user, token, err := uc.Login(ctx, "alice@example.com", "s3cret-pass")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	claims, err := jwt.NewService(testSecret).ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, userRepo, _ := newTestAuthUseCase()
	ctx := context.Background()
	userRepo.On("GetByEmail", ctx, "alice@example.com").Return(&entity.User{
		ID: "u1", Password: hashed(t, "s3cret-pass"), IsActive: true,
	}, nil)

	_, _, err := uc.Login(ctx, "alice@example.com", "wrong")

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc, userRepo, _ := newTestAuthUseCase()
	ctx := context.Background()
	userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, apperrors.NotFound("user not found"))

	_, _, err := uc.Login(ctx, "nobody@example.com", "whatever")

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Equal(t, invalidCredentials, apperrors.MessageOf(err))
}

func TestLogin_Inactive(t *testing.T) {
	uc, userRepo, _ := newTestAuthUseCase()
	ctx := context.Background()
	userRepo.On("GetByEmail", ctx, "alice@example.com").Return(&entity.User{
		ID: "u1", Password: hashed(t, "s3cret-pass"), IsActive: false,
	}, nil)

	_, _, err := uc.Login(ctx, "alice@example.com", "s3cret-pass")

	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestUpdateProfile_EmailUniquenessExcludesSelf(t *testing.T) {
	uc, userRepo, _ := newTestAuthUseCase()
	ctx := context.Background()
	email := "Alice@Example.com"
	normalized := "alice@example.com"

	userRepo.On("EmailTaken", ctx, normalized, "u1").Return(false, nil)
	userRepo.On("UpdateProfile", ctx, "u1", entity.ProfileUpdate{Email: &normalized}).Return(nil)
	userRepo.On("GetByID", ctx, "u1").Return(&entity.User{ID: "u1", Email: normalized}, nil)

	user, err := uc.UpdateProfile(ctx, "u1", entity.ProfileUpdate{Email: &email})

	require.NoError(t, err)
	assert.Equal(t, normalized, user.Email)
}

func TestUpdateProfile_UsernameTaken(t *testing.T) {
	uc, userRepo, _ := newTestAuthUseCase()
	ctx := context.Background()
	username := "bob"
	userRepo.On("UsernameTaken", ctx, "bob", "u1").Return(true, nil)

	_, err := uc.UpdateProfile(ctx, "u1", entity.ProfileUpdate{Username: &username})

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	userRepo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateProfile_BlankUsername(t *testing.T) {
	uc, _, _ := newTestAuthUseCase()
	blank := "   "

	_, err := uc.UpdateProfile(context.Background(), "u1", entity.ProfileUpdate{Username: &blank})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func newAvatarHeader(t *testing.T, name, contentType string, body []byte) *multipart.FileHeader {
	t.Helper()
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="avatar"; filename="` + name + `"`}
	header["Content-Type"] = []string{contentType}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(body)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["avatar"][0]
}

func TestUploadAvatar(t *testing.T) {
	uc, userRepo, uploader := newTestAuthUseCase()
	ctx := context.Background()
	url := "https://cdn/avatars/u1/a.png"

	uploader.On("Upload", ctx, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "avatars/u1/") && strings.HasSuffix(key, ".png")
	}), mock.Anything, "image/png").Return(url, nil)
	userRepo.On("SetAvatarURL", ctx, "u1", url).Return(nil)
	userRepo.On("GetByID", ctx, "u1").Return(&entity.User{ID: "u1", AvatarURL: &url}, nil)

	user, err := uc.UploadAvatar(ctx, "u1", newAvatarHeader(t, "a.png", "image/png", []byte("png")))

	require.NoError(t, err)
	assert.Equal(t, url, *user.AvatarURL)
}

func TestUploadAvatar_RejectsNonImage(t *testing.T) {
	uc, _, uploader := newTestAuthUseCase()

	_, err := uc.UploadAvatar(context.Background(), "u1", newAvatarHeader(t, "a.txt", "text/plain", []byte("hi")))

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	uploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadAvatar_StorageFailure(t *testing.T) {
	uc, userRepo, uploader := newTestAuthUseCase()
	ctx := context.Background()
	uploader.On("Upload", ctx, mock.Anything, mock.Anything, "image/png").Return("", errors.New("s3 down"))

	_, err := uc.UploadAvatar(ctx, "u1", newAvatarHeader(t, "a.png", "image/png", []byte("png")))

	assert.ErrorIs(t, err, apperrors.ErrInternal)
	userRepo.AssertNotCalled(t, "SetAvatarURL", mock.Anything, mock.Anything, mock.Anything)
}

func TestLinkProvider(t *testing.T) {
	uc, userRepo, _ := newTestAuthUseCase()
	ctx := context.Background()
	userRepo.On("LinkProvider", ctx, mock.MatchedBy(func(l *entity.AuthProvider) bool {
		return l.UserID == "u1" && l.Provider == entity.ProviderDiscord && l.ProviderUserID == "1234"
	})).Return(nil)

	link, err := uc.LinkProvider(ctx, "u1", entity.LinkProviderInput{Provider: entity.ProviderDiscord, ProviderUserID: " 1234 "})

	require.NoError(t, err)
	assert.Equal(t, "link-id", link.ID)
}

func TestLinkProvider_AlreadyLinked(t *testing.T) {
	uc, userRepo, _ := newTestAuthUseCase()
	ctx := context.Background()
	userRepo.On("LinkProvider", ctx, mock.Anything).Return(apperrors.Conflict("provider account already exists"))

	_, err := uc.LinkProvider(ctx, "u2", entity.LinkProviderInput{Provider: entity.ProviderGitHub, ProviderUserID: "42"})

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "this github account is already linked", apperrors.MessageOf(err))
}

func TestLinkProvider_UnknownProvider(t *testing.T) {
	uc, userRepo, _ := newTestAuthUseCase()

	_, err := uc.LinkProvider(context.Background(), "u1", entity.LinkProviderInput{Provider: "myspace", ProviderUserID: "1"})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	userRepo.AssertNotCalled(t, "LinkProvider", mock.Anything, mock.Anything)
}

func TestMe_Anonymous(t *testing.T) {
	uc, _, _ := newTestAuthUseCase()

	_, err := uc.Me(context.Background(), "")

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
