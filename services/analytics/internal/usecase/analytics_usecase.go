package usecase

import (
	"context"
	"errors"

	"blogpost/pkg/apperrors"
	"blogpost/pkg/logger"
	"blogpost/pkg/policy"
	"blogpost/services/analytics/internal/entity"
	"blogpost/services/analytics/internal/repo/persistent"
)

type AnalyticsUseCase interface {
	AuthorStats(ctx context.Context, authorID string) (*entity.AuthorStats, error)
	PostStats(ctx context.Context, callerID, postID string) (*entity.PostStats, error)
}

type analyticsUseCase struct {
	statsRepo persistent.StatsRepository
	logger    *logger.Logger
}

func NewAnalyticsUseCase(statsRepo persistent.StatsRepository, logger *logger.Logger) AnalyticsUseCase {
	return &analyticsUseCase{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

// AuthorStats reports on the caller's own posts. Engagement on deleted posts
// is left out of the totals.
func (uc *analyticsUseCase) AuthorStats(ctx context.Context, authorID string) (*entity.AuthorStats, error) {
	if authorID == "" {
		return nil, apperrors.Unauthorized("authentication required")
	}

	counts, err := uc.statsRepo.CountAuthorPosts(ctx, authorID)
	if err != nil {
		return nil, uc.repoError(err, "failed to count posts")
	}
	engagement, err := uc.statsRepo.AuthorEngagement(ctx, authorID)
	if err != nil {
		return nil, uc.repoError(err, "failed to count engagement")
	}

	return &entity.AuthorStats{AuthorID: authorID, Posts: counts, Engagement: engagement}, nil
}

func (uc *analyticsUseCase) PostStats(ctx context.Context, callerID, postID string) (*entity.PostStats, error) {
	if callerID == "" {
		return nil, apperrors.Unauthorized("authentication required")
	}

	post, err := uc.statsRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, uc.repoError(err, "failed to load post")
	}
	if post.IsDeleted() {
		return nil, apperrors.NotFound("post not found")
	}
	if err := policy.Authorize(callerID, policy.ActionViewStats, policy.Target{Resource: policy.ResourcePost, OwnerID: post.AuthorID}); err != nil {
		return nil, err
	}

	engagement, err := uc.statsRepo.PostEngagement(ctx, postID)
	if err != nil {
		return nil, uc.repoError(err, "failed to count engagement")
	}
	return &entity.PostStats{PostID: postID, IsPublished: post.IsPublished, Engagement: engagement}, nil
}

func (uc *analyticsUseCase) repoError(err error, msg string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	uc.logger.Error("%s: %v", msg, err)
	return apperrors.Internal(msg, err)
}
