package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blogpost/pkg/apperrors"
	"blogpost/pkg/logger"
	"blogpost/pkg/metrics"
	"blogpost/pkg/policy"
	"blogpost/pkg/queue"
	"blogpost/services/interaction/internal/entity"
	"blogpost/services/interaction/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
)

const (
	likeCountTTL      = 5 * time.Minute
	likePriority      = 3
	maxToggleAttempts = 5
	alreadyLikedError = "you have already liked this post"
)

var errToggleContended = errors.New("like toggle contended")

type LikeUseCase interface {
	ToggleLike(ctx context.Context, userID, postID string) (*entity.ToggleResult, error)
	CreateLike(ctx context.Context, userID, postID string) (*entity.Like, error)
	DeleteLike(ctx context.Context, likeID, callerID string) error
	ListLikes(ctx context.Context, filter entity.LikeFilter) ([]*entity.Like, int64, error)
	GetStats(ctx context.Context, postID, viewerID string) (*entity.LikeStats, error)
}

type likeUseCase struct {
	likeRepo    persistent.LikeRepository
	postRepo    persistent.PostRepository
	redisClient *redis.Client
	publisher   queue.Publisher
	logger      *logger.Logger
}

func NewLikeUseCase(
	likeRepo persistent.LikeRepository,
	postRepo persistent.PostRepository,
	redisClient *redis.Client,
	publisher queue.Publisher,
	logger *logger.Logger,
) LikeUseCase {
	return &likeUseCase{
		likeRepo:    likeRepo,
		postRepo:    postRepo,
		redisClient: redisClient,
		publisher:   publisher,
		logger:      logger,
	}
}

// ToggleLike removes the caller's like when present and creates it
// otherwise. A writer that loses the insert race on the (user_id, post_id)
// constraint deletes instead, so callers never see the conflict. When
// another writer removed the row first, the cycle starts over so that every
// successful toggle changes the state exactly once.
func (uc *likeUseCase) ToggleLike(ctx context.Context, userID, postID string) (*entity.ToggleResult, error) {
	post, err := uc.likeablePost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxToggleAttempts; attempt++ {
		removed, err := uc.likeRepo.Delete(ctx, userID, postID)
		if err != nil {
			return nil, uc.repoError(err, "failed to toggle like")
		}
		if removed {
			return uc.toggledOff(ctx, postID), nil
		}

		like := &entity.Like{UserID: userID, PostID: postID}
		err = uc.likeRepo.Create(ctx, like)
		if err == nil {
			metrics.LikeTogglesTotal.WithLabelValues(metrics.ToggleCreated).Inc()
			uc.invalidateCount(ctx, postID)
			uc.notify(ctx, post, like)
			return &entity.ToggleResult{Created: true, Like: like}, nil
		}
		if !errors.Is(err, apperrors.ErrConflict) {
			return nil, uc.repoError(err, "failed to toggle like")
		}

		metrics.LikeToggleConflictsTotal.Inc()
		removed, err = uc.likeRepo.Delete(ctx, userID, postID)
		if err != nil {
			return nil, uc.repoError(err, "failed to toggle like")
		}
		if removed {
			return uc.toggledOff(ctx, postID), nil
		}
	}

	uc.logger.Error("Like toggle for user %s on post %s kept losing races", userID, postID)
	return nil, apperrors.Internal("failed to toggle like", errToggleContended)
}

func (uc *likeUseCase) toggledOff(ctx context.Context, postID string) *entity.ToggleResult {
	metrics.LikeTogglesTotal.WithLabelValues(metrics.ToggleDeleted).Inc()
	uc.invalidateCount(ctx, postID)
	return &entity.ToggleResult{Created: false}
}

func (uc *likeUseCase) CreateLike(ctx context.Context, userID, postID string) (*entity.Like, error) {
	post, err := uc.likeablePost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	exists, err := uc.likeRepo.Exists(ctx, userID, postID)
	if err != nil {
		return nil, uc.repoError(err, "failed to check like")
	}
	if exists {
		return nil, apperrors.Validation(alreadyLikedError)
	}

	like := &entity.Like{UserID: userID, PostID: postID}
	if err := uc.likeRepo.Create(ctx, like); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.Validation(alreadyLikedError)
		}
		return nil, uc.repoError(err, "failed to create like")
	}

	uc.invalidateCount(ctx, postID)
	uc.notify(ctx, post, like)
	return like, nil
}

func (uc *likeUseCase) DeleteLike(ctx context.Context, likeID, callerID string) error {
	if callerID == "" {
		return apperrors.Unauthorized("authentication required")
	}

	like, err := uc.likeRepo.GetByID(ctx, likeID)
	if err != nil {
		return uc.repoError(err, "failed to load like")
	}

	target := policy.Target{Resource: policy.ResourceLike, OwnerID: like.UserID}
	if err := policy.Authorize(callerID, policy.ActionDelete, target); err != nil {
		return err
	}

	removed, err := uc.likeRepo.DeleteByID(ctx, likeID)
	if err != nil {
		return uc.repoError(err, "failed to delete like")
	}
	if !removed {
		return apperrors.NotFound("like not found")
	}

	uc.invalidateCount(ctx, like.PostID)
	return nil
}

func (uc *likeUseCase) ListLikes(ctx context.Context, filter entity.LikeFilter) ([]*entity.Like, int64, error) {
	likes, total, err := uc.likeRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("Failed to list likes: %v", err)
		return nil, 0, apperrors.Internal("failed to list likes", err)
	}
	return likes, total, nil
}

// GetStats reads the like count through the redis cache. Posts the viewer
// cannot see, deleted ones included, are reported as not found.
func (uc *likeUseCase) GetStats(ctx context.Context, postID, viewerID string) (*entity.LikeStats, error) {
	post, err := uc.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, uc.repoError(err, "failed to load post")
	}
	if !policy.CanViewPost(viewerID, post.AuthorID, post.IsPublished, post.IsDeleted()) {
		return nil, apperrors.NotFound("post not found")
	}

	count, err := uc.likeCount(ctx, postID)
	if err != nil {
		return nil, err
	}

	stats := &entity.LikeStats{PostID: postID, LikesCount: count}
	if viewerID != "" {
		liked, err := uc.likeRepo.Exists(ctx, viewerID, postID)
		if err != nil {
			return nil, uc.repoError(err, "failed to check like")
		}
		stats.UserHasLiked = liked
	}
	return stats, nil
}

// likeablePost enforces the like precondition before any write: the post
// exists, is published and is not deleted.
func (uc *likeUseCase) likeablePost(ctx context.Context, userID, postID string) (*entity.Post, error) {
	if userID == "" {
		return nil, apperrors.Unauthorized("authentication required")
	}

	post, err := uc.postRepo.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Validation("post does not exist")
		}
		return nil, uc.repoError(err, "failed to load post")
	}
	if post.IsDeleted() {
		return nil, apperrors.Validation("cannot like a deleted post")
	}
	if !post.IsPublished {
		return nil, apperrors.Validation("cannot like an unpublished post")
	}
	return post, nil
}

func likeCountKey(postID string) string {
	return fmt.Sprintf("post:likes:%s", postID)
}

// likeVersionKey is bumped on every invalidation. Readers watch it while
// counting so a count read before a concurrent write is never cached.
func likeVersionKey(postID string) string {
	return fmt.Sprintf("post:likes:%s:version", postID)
}

func (uc *likeUseCase) likeCount(ctx context.Context, postID string) (int64, error) {
	if uc.redisClient == nil {
		return uc.countFromRepo(ctx, postID)
	}

	key := likeCountKey(postID)
	var (
		count   int64
		counted bool
		repoErr error
	)
	err := uc.redisClient.Watch(ctx, func(tx *redis.Tx) error {
		cached, err := tx.Get(ctx, key).Int64()
		if err == nil {
			count = cached
			return nil
		}
		if !errors.Is(err, redis.Nil) {
			uc.logger.Warn("Failed to read like count cache for post %s: %v", postID, err)
		}

		count, repoErr = uc.countFromRepo(ctx, postID)
		if repoErr != nil {
			return repoErr
		}
		counted = true

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, count, likeCountTTL)
			return nil
		})
		return err
	}, likeVersionKey(postID))

	switch {
	case repoErr != nil:
		return 0, repoErr
	case err == nil, errors.Is(err, redis.TxFailedErr):
		return count, nil
	}

	uc.logger.Warn("Failed to cache like count for post %s: %v", postID, err)
	if counted {
		return count, nil
	}
	return uc.countFromRepo(ctx, postID)
}

func (uc *likeUseCase) countFromRepo(ctx context.Context, postID string) (int64, error) {
	count, err := uc.likeRepo.Count(ctx, postID)
	if err != nil {
		return 0, uc.repoError(err, "failed to count likes")
	}
	return count, nil
}

func (uc *likeUseCase) invalidateCount(ctx context.Context, postID string) {
	if uc.redisClient == nil {
		return
	}
	versionKey := likeVersionKey(postID)
	_, err := uc.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey)
		pipe.Expire(ctx, versionKey, 2*likeCountTTL)
		pipe.Del(ctx, likeCountKey(postID))
		return nil
	})
	if err != nil {
		uc.logger.Warn("Failed to invalidate like count for post %s: %v", postID, err)
	}
}

func (uc *likeUseCase) notify(ctx context.Context, post *entity.Post, like *entity.Like) {
	if uc.publisher == nil || post.AuthorID == like.UserID {
		return
	}

	task := queue.NotificationTask{
		Type:        queue.TaskLike,
		RecipientID: post.AuthorID,
		ActorID:     like.UserID,
		PostID:      post.ID,
		Priority:    likePriority,
		CreatedAt:   like.CreatedAt,
	}
	if err := uc.publisher.PublishNotification(ctx, task); err != nil {
		uc.logger.Warn("Failed to publish like notification for post %s: %v", post.ID, err)
	}
}

func (uc *likeUseCase) repoError(err error, msg string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	uc.logger.Error("%s: %v", msg, err)
	return apperrors.Internal(msg, err)
}
