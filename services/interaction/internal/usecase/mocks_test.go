package usecase

import (
	"context"

	"blogpost/pkg/queue"
	"blogpost/services/interaction/internal/entity"
	"blogpost/services/interaction/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Create(ctx context.Context, like *entity.Like) error {
	args := m.Called(ctx, like)
	if args.Error(0) == nil && like.ID == "" {
		like.ID = "generated-id"
	}
	return args.Error(0)
}

func (m *MockLikeRepository) GetByID(ctx context.Context, id string) (*entity.Like, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Like), args.Error(1)
}

func (m *MockLikeRepository) Delete(ctx context.Context, userID, postID string) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) Exists(ctx context.Context, userID, postID string) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) Count(ctx context.Context, postID string) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeRepository) List(ctx context.Context, filter entity.LikeFilter) ([]*entity.Like, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Like), args.Get(1).(int64), args.Error(2)
}

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) GetPost(ctx context.Context, postID string) (*entity.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishNotification(ctx context.Context, task queue.NotificationTask) error {
	return m.Called(ctx, task).Error(0)
}

var (
	_ persistent.LikeRepository = (*MockLikeRepository)(nil)
	_ persistent.PostRepository = (*MockPostRepository)(nil)
	_ queue.Publisher           = (*MockPublisher)(nil)
)
