package persistent

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"blogpost/pkg/logger"
	"blogpost/services/notification/internal/entity"

	"github.com/redis/go-redis/v9"
)

const (
	inboxSize = 100
	inboxTTL  = 30 * 24 * time.Hour
)

// InboxRepository keeps the most recent notifications of each user, newest
// first.
type InboxRepository interface {
	Push(ctx context.Context, notification *entity.Notification) error
	List(ctx context.Context, userID string, limit, offset int) ([]*entity.Notification, int64, error)
	Clear(ctx context.Context, userID string) error
}

type inboxRepository struct {
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewInboxRepository(redisClient *redis.Client, logger *logger.Logger) InboxRepository {
	return &inboxRepository{redisClient: redisClient, logger: logger}
}

// InboxKey is both the list holding a user's inbox and the pub/sub channel
// live clients subscribe to.
func InboxKey(userID string) string {
	return fmt.Sprintf("notifications:%s", userID)
}

// Push stores the notification and announces it to live subscribers. The
// inbox is the source of truth, so a failed publish is only logged.
func (r *inboxRepository) Push(ctx context.Context, notification *entity.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	key := InboxKey(notification.RecipientID)
	_, err = r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, payload)
		pipe.LTrim(ctx, key, 0, inboxSize-1)
		pipe.Expire(ctx, key, inboxTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	if err := r.redisClient.Publish(ctx, key, payload).Err(); err != nil {
		r.logger.Warn("Failed to publish notification %s on %s: %v", notification.ID, key, err)
	}
	return nil
}

func (r *inboxRepository) List(ctx context.Context, userID string, limit, offset int) ([]*entity.Notification, int64, error) {
	key := InboxKey(userID)

	total, err := r.redisClient.LLen(ctx, key).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	raw, err := r.redisClient.LRange(ctx, key, int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get notifications: %w", err)
	}

	notifications := make([]*entity.Notification, 0, len(raw))
	for _, item := range raw {
		var n entity.Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			continue
		}
		notifications = append(notifications, &n)
	}
	return notifications, total, nil
}

func (r *inboxRepository) Clear(ctx context.Context, userID string) error {
	return r.redisClient.Del(ctx, InboxKey(userID)).Err()
}
