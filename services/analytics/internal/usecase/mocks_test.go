package usecase

import (
	"context"

	"blogpost/services/analytics/internal/entity"
	"blogpost/services/analytics/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

type MockStatsRepository struct {
	mock.Mock
}

var _ persistent.StatsRepository = (*MockStatsRepository)(nil)

func (m *MockStatsRepository) GetPost(ctx context.Context, postID string) (*entity.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockStatsRepository) CountAuthorPosts(ctx context.Context, authorID string) (entity.PostCounts, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).(entity.PostCounts), args.Error(1)
}

func (m *MockStatsRepository) AuthorEngagement(ctx context.Context, authorID string) (entity.Engagement, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).(entity.Engagement), args.Error(1)
}

func (m *MockStatsRepository) PostEngagement(ctx context.Context, postID string) (entity.Engagement, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(entity.Engagement), args.Error(1)
}
