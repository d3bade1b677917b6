package usecase

import (
	"context"
	"fmt"
	"time"

	"blogpost/pkg/apperrors"
	"blogpost/pkg/logger"
	"blogpost/pkg/metrics"
	"blogpost/pkg/queue"
	"blogpost/services/notification/internal/entity"
	"blogpost/services/notification/internal/repo/persistent"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100

	unknownActor = "Someone"
)

type NotificationUseCase interface {
	// HandleTask turns a queued task into an inbox entry for its recipient.
	HandleTask(ctx context.Context, task queue.NotificationTask) error
	ListNotifications(ctx context.Context, userID string, limit, offset int) ([]*entity.Notification, int64, error)
	ClearNotifications(ctx context.Context, userID string) error
}

type notificationUseCase struct {
	inboxRepo persistent.InboxRepository
	userRepo  persistent.UserRepository
	logger    *logger.Logger
	now       func() time.Time
}

func NewNotificationUseCase(inboxRepo persistent.InboxRepository, userRepo persistent.UserRepository, logger *logger.Logger) NotificationUseCase {
	return &notificationUseCase{
		inboxRepo: inboxRepo,
		userRepo:  userRepo,
		logger:    logger,
		now:       time.Now,
	}
}

func (uc *notificationUseCase) HandleTask(ctx context.Context, task queue.NotificationTask) error {
	if task.RecipientID == "" || task.ActorID == "" || task.PostID == "" {
		return fmt.Errorf("%w: %s task is missing recipient, actor or post", queue.ErrDiscard, task.Type)
	}
	if task.RecipientID == task.ActorID {
		return nil
	}

	actor, err := uc.userRepo.Username(ctx, task.ActorID)
	if err != nil {
		uc.logger.Warn("[NOTIFICATION HANDLER] Failed to resolve actor %s: %v", task.ActorID, err)
		actor = unknownActor
	}

	title, message, err := render(task.Type, actor)
	if err != nil {
		return err
	}

	notification := &entity.Notification{
		ID:          uuid.New().String(),
		RecipientID: task.RecipientID,
		Type:        string(task.Type),
		Title:       title,
		Message:     message,
		ActorID:     task.ActorID,
		PostID:      task.PostID,
		CommentID:   task.CommentID,
		CreatedAt:   uc.now().UTC(),
	}
	if err := uc.inboxRepo.Push(ctx, notification); err != nil {
		uc.logger.Error("[NOTIFICATION HANDLER] Failed to deliver %s notification to %s: %v", task.Type, task.RecipientID, err)
		return err
	}

	metrics.NotificationsDeliveredTotal.WithLabelValues(string(task.Type)).Inc()
	uc.logger.Debug("[NOTIFICATION HANDLER] Delivered %s notification to %s", task.Type, task.RecipientID)
	return nil
}

func render(taskType queue.TaskType, actor string) (string, string, error) {
	switch taskType {
	case queue.TaskLike:
		return "New Like!", actor + " liked your post", nil
	case queue.TaskComment:
		return "New Comment!", actor + " commented on your post", nil
	case queue.TaskReply:
		return "New Reply!", actor + " replied to your comment", nil
	default:
		return "", "", fmt.Errorf("%w: unknown notification type %q", queue.ErrDiscard, taskType)
	}
}

func (uc *notificationUseCase) ListNotifications(ctx context.Context, userID string, limit, offset int) ([]*entity.Notification, int64, error) {
	if userID == "" {
		return nil, 0, apperrors.Unauthorized("authentication required")
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}

	notifications, total, err := uc.inboxRepo.List(ctx, userID, limit, offset)
	if err != nil {
		uc.logger.Error("Failed to list notifications of %s: %v", userID, err)
		return nil, 0, apperrors.Internal("failed to list notifications", err)
	}
	return notifications, total, nil
}

func (uc *notificationUseCase) ClearNotifications(ctx context.Context, userID string) error {
	if userID == "" {
		return apperrors.Unauthorized("authentication required")
	}
	if err := uc.inboxRepo.Clear(ctx, userID); err != nil {
		uc.logger.Error("Failed to clear notifications of %s: %v", userID, err)
		return apperrors.Internal("failed to clear notifications", err)
	}
	return nil
}
