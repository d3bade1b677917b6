package usecase

import (
	"context"
	"time"

	"blogpost/pkg/queue"
	"blogpost/services/comment/internal/entity"
	"blogpost/services/comment/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	args := m.Called(ctx, comment)
	if args.Error(0) == nil && comment.ID == "" {
		comment.ID = "generated-id"
	}
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) List(ctx context.Context, filter entity.CommentFilter) ([]*entity.Comment, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepository) Replies(ctx context.Context, parentID, viewerID string) ([]*entity.Comment, error) {
	args := m.Called(ctx, parentID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) UpdateContent(ctx context.Context, id, content string, at time.Time) error {
	args := m.Called(ctx, id, content, at)
	return args.Error(0)
}

func (m *MockCommentRepository) SetApproved(ctx context.Context, id string, approved bool) error {
	args := m.Called(ctx, id, approved)
	return args.Error(0)
}

func (m *MockCommentRepository) SoftDelete(ctx context.Context, id string, at time.Time) (bool, error) {
	args := m.Called(ctx, id, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommentRepository) GetPost(ctx context.Context, postID string) (*entity.Post, error) {
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
	args := m.Called(ctx, task)
	return args.Error(0)
}

var (
	_ persistent.CommentRepository = (*MockCommentRepository)(nil)
	_ queue.Publisher              = (*MockPublisher)(nil)
)
