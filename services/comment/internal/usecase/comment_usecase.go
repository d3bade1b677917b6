package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"blogpost/pkg/apperrors"
	"blogpost/pkg/logger"
	"blogpost/pkg/metrics"
	"blogpost/pkg/policy"
	"blogpost/pkg/queue"
	"blogpost/services/comment/internal/entity"
	"blogpost/services/comment/internal/repo/persistent"
)

const (
	commentPriority = 5
	replyPriority   = 6
)

type CommentUseCase interface {
	CreateComment(ctx context.Context, authorID string, input entity.CreateCommentInput) (*entity.Comment, error)
	ReplyToComment(ctx context.Context, parentID, authorID, content string) (*entity.Comment, error)
	GetComment(ctx context.Context, commentID, viewerID string) (*entity.Comment, error)
	ListComments(ctx context.Context, filter entity.CommentFilter) ([]*entity.Comment, int64, error)
	ListMyComments(ctx context.Context, callerID string, limit, offset int) ([]*entity.Comment, int64, error)
	ListPendingComments(ctx context.Context, callerID string, limit, offset int) ([]*entity.Comment, int64, error)
	AdminListComments(ctx context.Context, filter entity.CommentFilter) ([]*entity.Comment, int64, error)
	UpdateComment(ctx context.Context, commentID, callerID, content string) (*entity.Comment, error)
	DeleteComment(ctx context.Context, commentID, callerID string) error
	ApproveComment(ctx context.Context, commentID, callerID string) (*entity.Comment, error)
	DisapproveComment(ctx context.Context, commentID, callerID string) (*entity.Comment, error)
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	publisher   queue.Publisher
	logger      *logger.Logger
	now         func() time.Time
}

func NewCommentUseCase(commentRepo persistent.CommentRepository, publisher queue.Publisher, logger *logger.Logger) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
	}
}

func (uc *commentUseCase) CreateComment(ctx context.Context, authorID string, input entity.CreateCommentInput) (*entity.Comment, error) {
	if authorID == "" {
		return nil, apperrors.Unauthorized("authentication required")
	}
	content, err := nonBlankContent(input.Content)
	if err != nil {
		return nil, err
	}

	post, err := uc.commentablePost(ctx, input.PostID, authorID)
	if err != nil {
		return nil, err
	}

	var parent *entity.Comment
	if input.ParentID != nil && *input.ParentID != "" {
		parent, err = uc.commentRepo.GetByID(ctx, *input.ParentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.Validation("parent comment does not exist")
			}
			return nil, uc.repoError(err, "failed to load parent comment")
		}
		if parent.PostID != post.ID {
			return nil, apperrors.Validation("parent comment must belong to the same post")
		}
		if !parent.IsApproved {
			return nil, apperrors.Validation("cannot reply to an unapproved comment")
		}
	}

	return uc.create(ctx, post, parent, authorID, content)
}

// ReplyToComment takes the post and parent from the parent comment.
func (uc *commentUseCase) ReplyToComment(ctx context.Context, parentID, authorID, content string) (*entity.Comment, error) {
	if authorID == "" {
		return nil, apperrors.Unauthorized("authentication required")
	}
	content, err := nonBlankContent(content)
	if err != nil {
		return nil, err
	}

	parent, err := uc.commentRepo.GetByID(ctx, parentID)
	if err != nil {
		return nil, uc.repoError(err, "failed to load comment")
	}
	if !parent.IsApproved {
		return nil, apperrors.Validation("cannot reply to an unapproved comment")
	}

	post, err := uc.commentablePost(ctx, parent.PostID, authorID)
	if err != nil {
		return nil, err
	}

	return uc.create(ctx, post, parent, authorID, content)
}

func (uc *commentUseCase) create(ctx context.Context, post *entity.Post, parent *entity.Comment, authorID, content string) (*entity.Comment, error) {
	comment := &entity.Comment{
		Content:    content,
		AuthorID:   authorID,
		PostID:     post.ID,
		IsApproved: true,
	}
	if parent != nil {
		comment.ParentID = &parent.ID
	}

	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		uc.logger.Error("Failed to create comment on post %s: %v", post.ID, err)
		return nil, apperrors.Internal("failed to create comment", err)
	}

	uc.notify(ctx, queue.TaskComment, post.AuthorID, authorID, post.ID, comment.ID, commentPriority)
	if parent != nil && parent.AuthorID != post.AuthorID {
		uc.notify(ctx, queue.TaskReply, parent.AuthorID, authorID, post.ID, comment.ID, replyPriority)
	}
	return comment, nil
}

// commentablePost loads the post a new comment goes to. Deleted posts and
// other people's drafts take no comments.
func (uc *commentUseCase) commentablePost(ctx context.Context, postID, callerID string) (*entity.Post, error) {
	post, err := uc.commentRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, uc.repoError(err, "failed to load post")
	}
	if post.IsDeleted() {
		return nil, apperrors.Validation("cannot comment on a deleted post")
	}
	if !post.IsPublished && post.AuthorID != callerID {
		return nil, apperrors.Validation("cannot comment on an unpublished post")
	}
	return post, nil
}

func (uc *commentUseCase) notify(ctx context.Context, taskType queue.TaskType, recipientID, actorID, postID, commentID string, priority int) {
	if uc.publisher == nil || recipientID == "" || recipientID == actorID {
		return
	}

	task := queue.NotificationTask{
		Type:        taskType,
		RecipientID: recipientID,
		ActorID:     actorID,
		PostID:      postID,
		CommentID:   commentID,
		Priority:    priority,
		CreatedAt:   uc.now().UTC(),
	}
	if err := uc.publisher.PublishNotification(ctx, task); err != nil {
		uc.logger.Warn("Failed to publish %s notification for comment %s: %v", taskType, commentID, err)
	}
}

// GetComment returns a visible comment with its visible direct replies.
func (uc *commentUseCase) GetComment(ctx context.Context, commentID, viewerID string) (*entity.Comment, error) {
	comment, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, uc.repoError(err, "failed to load comment")
	}
	if !policy.CanViewComment(viewerID, comment.AuthorID, comment.IsApproved, comment.IsDeleted()) {
		return nil, apperrors.NotFound("comment not found")
	}

	post, err := uc.commentRepo.GetPost(ctx, comment.PostID)
	if err != nil {
		return nil, uc.repoError(err, "failed to load post")
	}
	if !policy.CanViewPost(viewerID, post.AuthorID, post.IsPublished, post.IsDeleted()) {
		return nil, apperrors.NotFound("comment not found")
	}

	replies, err := uc.commentRepo.Replies(ctx, comment.ID, viewerID)
	if err != nil {
		return nil, uc.repoError(err, "failed to load replies")
	}
	comment.Replies = replies
	return comment, nil
}

func (uc *commentUseCase) ListComments(ctx context.Context, filter entity.CommentFilter) ([]*entity.Comment, int64, error) {
	if filter.PostID != "" {
		post, err := uc.commentRepo.GetPost(ctx, filter.PostID)
		if err != nil {
			return nil, 0, uc.repoError(err, "failed to load post")
		}
		if post.IsDeleted() {
			return nil, 0, apperrors.NotFound("post not found")
		}
	}

	filter.IgnoreVisibility = false
	filter.IncludeDeleted = false
	filter.PostAuthorID = ""
	return uc.list(ctx, filter)
}

func (uc *commentUseCase) ListMyComments(ctx context.Context, callerID string, limit, offset int) ([]*entity.Comment, int64, error) {
	if callerID == "" {
		return nil, 0, apperrors.Unauthorized("authentication required")
	}
	return uc.list(ctx, entity.CommentFilter{
		ViewerID: callerID,
		AuthorID: callerID,
		Limit:    limit,
		Offset:   offset,
	})
}

// ListPendingComments lists unapproved comments on the caller's posts.
func (uc *commentUseCase) ListPendingComments(ctx context.Context, callerID string, limit, offset int) ([]*entity.Comment, int64, error) {
	if callerID == "" {
		return nil, 0, apperrors.Unauthorized("authentication required")
	}
	notApproved := false
	return uc.list(ctx, entity.CommentFilter{
		ViewerID:         callerID,
		PostAuthorID:     callerID,
		IsApproved:       &notApproved,
		IgnoreVisibility: true,
		Ordering:         "created_at",
		Limit:            limit,
		Offset:           offset,
	})
}

func (uc *commentUseCase) AdminListComments(ctx context.Context, filter entity.CommentFilter) ([]*entity.Comment, int64, error) {
	filter.IgnoreVisibility = true
	return uc.list(ctx, filter)
}

func (uc *commentUseCase) list(ctx context.Context, filter entity.CommentFilter) ([]*entity.Comment, int64, error) {
	comments, total, err := uc.commentRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("Failed to list comments: %v", err)
		return nil, 0, apperrors.Internal("failed to list comments", err)
	}
	return comments, total, nil
}

func (uc *commentUseCase) UpdateComment(ctx context.Context, commentID, callerID, content string) (*entity.Comment, error) {
	if _, err := uc.authorizedComment(ctx, commentID, callerID, policy.ActionUpdate); err != nil {
		return nil, err
	}
	content, err := nonBlankContent(content)
	if err != nil {
		return nil, err
	}

	if err := uc.commentRepo.UpdateContent(ctx, commentID, content, uc.now()); err != nil {
		return nil, uc.repoError(err, "failed to update comment")
	}
	return uc.reload(ctx, commentID)
}

func (uc *commentUseCase) DeleteComment(ctx context.Context, commentID, callerID string) error {
	if _, err := uc.authorizedComment(ctx, commentID, callerID, policy.ActionDelete); err != nil {
		return err
	}

	deleted, err := uc.commentRepo.SoftDelete(ctx, commentID, uc.now())
	if err != nil {
		uc.logger.Error("Failed to delete comment %s: %v", commentID, err)
		return apperrors.Internal("failed to delete comment", err)
	}
	if !deleted {
		return apperrors.NotFound("comment not found")
	}

	metrics.SoftDeletesTotal.WithLabelValues("comment").Inc()
	return nil
}

func (uc *commentUseCase) ApproveComment(ctx context.Context, commentID, callerID string) (*entity.Comment, error) {
	return uc.setApproved(ctx, commentID, callerID, true)
}

func (uc *commentUseCase) DisapproveComment(ctx context.Context, commentID, callerID string) (*entity.Comment, error) {
	return uc.setApproved(ctx, commentID, callerID, false)
}

func (uc *commentUseCase) setApproved(ctx context.Context, commentID, callerID string, approved bool) (*entity.Comment, error) {
	action := policy.ActionApprove
	if !approved {
		action = policy.ActionDisapprove
	}

	if _, err := uc.authorizedComment(ctx, commentID, callerID, action); err != nil {
		return nil, err
	}
	if err := uc.commentRepo.SetApproved(ctx, commentID, approved); err != nil {
		return nil, uc.repoError(err, "failed to "+string(action)+" comment")
	}
	return uc.reload(ctx, commentID)
}

// authorizedComment loads a non-deleted comment and checks the caller
// against the rule for action. The post is only read for moderation rules.
func (uc *commentUseCase) authorizedComment(ctx context.Context, commentID, callerID string, action policy.Action) (*entity.Comment, error) {
	if callerID == "" {
		return nil, apperrors.Unauthorized("authentication required")
	}

	comment, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, uc.repoError(err, "failed to load comment")
	}

	target := policy.Target{Resource: policy.ResourceComment, OwnerID: comment.AuthorID}
	if action == policy.ActionApprove || action == policy.ActionDisapprove {
		post, err := uc.commentRepo.GetPost(ctx, comment.PostID)
		if err != nil {
			return nil, uc.repoError(err, "failed to load post")
		}
		target.PostAuthorID = post.AuthorID
	}

	if err := policy.Authorize(callerID, action, target); err != nil {
		return nil, err
	}
	return comment, nil
}

func (uc *commentUseCase) reload(ctx context.Context, commentID string) (*entity.Comment, error) {
	comment, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, uc.repoError(err, "failed to load comment")
	}
	return comment, nil
}

func (uc *commentUseCase) repoError(err error, msg string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	uc.logger.Error("%s: %v", msg, err)
	return apperrors.Internal(msg, err)
}

func nonBlankContent(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", apperrors.Validation("content must not be blank")
	}
	return trimmed, nil
}
