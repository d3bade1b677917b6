package usecase

import (
	"context"
	"io"

	"blogpost/pkg/s3"
	"blogpost/services/auth/internal/entity"
	"blogpost/services/auth/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil && user.ID == "" {
		user.ID = "generated-id"
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) EmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UsernameTaken(ctx context.Context, username, excludeID string) (bool, error) {
	args := m.Called(ctx, username, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id string, update entity.ProfileUpdate) error {
	return m.Called(ctx, id, update).Error(0)
}

func (m *MockUserRepository) SetAvatarURL(ctx context.Context, id, url string) error {
	return m.Called(ctx, id, url).Error(0)
}

func (m *MockUserRepository) LinkProvider(ctx context.Context, link *entity.AuthProvider) error {
	args := m.Called(ctx, link)
	if args.Error(0) == nil && link.ID == "" {
		link.ID = "link-id"
	}
	return args.Error(0)
}

func (m *MockUserRepository) ListProviders(ctx context.Context, userID string) ([]*entity.AuthProvider, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.AuthProvider), args.Error(1)
}

type MockUploader struct {
	mock.Mock
}

var _ s3.Uploader = (*MockUploader)(nil)

func (m *MockUploader) Upload(ctx context.Context, key string, body io.ReadSeeker, contentType string) (string, error) {
	args := m.Called(ctx, key, body, contentType)
	return args.String(0), args.Error(1)
}
