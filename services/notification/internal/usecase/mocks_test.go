package usecase

import (
	"context"

	"blogpost/services/notification/internal/entity"
	"blogpost/services/notification/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

type MockInboxRepository struct {
	mock.Mock
}

var _ persistent.InboxRepository = (*MockInboxRepository)(nil)

func (m *MockInboxRepository) Push(ctx context.Context, notification *entity.Notification) error {
	return m.Called(ctx, notification).Error(0)
}

func (m *MockInboxRepository) List(ctx context.Context, userID string, limit, offset int) ([]*entity.Notification, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *MockInboxRepository) Clear(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) Username(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
