package persistent

import (
	"context"
	"strings"
	"time"

	"blogpost/pkg/database"
	"blogpost/pkg/softdelete"
	"blogpost/services/comment/internal/entity"
	"blogpost/services/comment/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

var orderings = map[string]string{
	"created_at":  "comments.created_at ASC",
	"-created_at": "comments.created_at DESC",
	"updated_at":  "comments.updated_at ASC",
	"-updated_at": "comments.updated_at DESC",
}

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	// GetByID returns non-deleted comments only, with RepliesCount filled.
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	List(ctx context.Context, filter entity.CommentFilter) ([]*entity.Comment, int64, error)
	// Replies returns the non-deleted direct children of parentID, oldest
	// first. A non-empty viewerID also keeps that viewer's unapproved replies.
	Replies(ctx context.Context, parentID, viewerID string) ([]*entity.Comment, error)
	UpdateContent(ctx context.Context, id, content string, at time.Time) error
	SetApproved(ctx context.Context, id string, approved bool) error
	SoftDelete(ctx context.Context, id string, at time.Time) (bool, error)

	// GetPost returns the post whether or not it is deleted.
	GetPost(ctx context.Context, postID string) (*entity.Post, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(commentModel).Error; err != nil {
		return database.Translate(err, "comment")
	}

	created, err := r.GetByID(ctx, commentModel.ID)
	if err != nil {
		return err
	}
	*comment = *created
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	var commentModel model.CommentModel
	err := r.db.WithContext(ctx).
		Preload("Author").
		Scopes(softdelete.Active).
		Where("id = ?", id).
		First(&commentModel).Error
	if err != nil {
		return nil, database.Translate(err, "comment")
	}

	comments := []*entity.Comment{ToCommentEntity(&commentModel)}
	if err := r.fillRepliesCount(ctx, comments); err != nil {
		return nil, err
	}
	return comments[0], nil
}

func (r *commentRepository) List(ctx context.Context, filter entity.CommentFilter) ([]*entity.Comment, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.CommentModel{})

	query = query.Scopes(softdelete.Scope("comments", filter.IncludeDeleted))
	if !filter.IgnoreVisibility {
		visiblePosts := r.db.Model(&model.PostModel{}).Select("id").Scopes(softdelete.Active)
		if filter.ViewerID != "" {
			visiblePosts = visiblePosts.Where("(is_published = ? OR author_id = ?)", true, filter.ViewerID)
			query = query.Where("(comments.is_approved = ? OR comments.author_id = ?)", true, filter.ViewerID)
		} else {
			visiblePosts = visiblePosts.Where("is_published = ?", true)
			query = query.Where("comments.is_approved = ?", true)
		}
		query = query.Where("comments.post_id IN (?)", visiblePosts)
	}
	if filter.PostAuthorID != "" {
		ownPosts := r.db.Model(&model.PostModel{}).Select("id").Scopes(softdelete.Active).Where("author_id = ?", filter.PostAuthorID)
		query = query.Where("comments.post_id IN (?)", ownPosts)
	}
	if filter.PostID != "" {
		query = query.Where("comments.post_id = ?", filter.PostID)
	}
	if filter.AuthorID != "" {
		query = query.Where("comments.author_id = ?", filter.AuthorID)
	}
	if filter.ParentID != "" {
		query = query.Where("comments.parent_id = ?", filter.ParentID)
	}
	if filter.TopLevel {
		query = query.Where("comments.parent_id IS NULL")
	}
	if filter.IsApproved != nil {
		query = query.Where("comments.is_approved = ?", *filter.IsApproved)
	}
	if filter.IsEdited != nil {
		query = query.Where("comments.is_edited = ?", *filter.IsEdited)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		authors := r.db.Table("users").Select("id").Where("LOWER(username) LIKE ?", pattern)
		query = query.Where("(LOWER(comments.content) LIKE ? OR comments.author_id IN (?))", pattern, authors)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, ok := orderings[filter.Ordering]
	if !ok {
		order = orderings["-created_at"]
	}

	var commentModels []model.CommentModel
	err := query.
		Preload("Author").
		Order(order).
		Order("comments.id ASC").
		Limit(clampLimit(filter.Limit)).
		Offset(max(filter.Offset, 0)).
		Find(&commentModels).Error
	if err != nil {
		return nil, 0, err
	}

	comments := toEntities(commentModels)
	if err := r.fillRepliesCount(ctx, comments); err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *commentRepository) Replies(ctx context.Context, parentID, viewerID string) ([]*entity.Comment, error) {
	query := r.db.WithContext(ctx).
		Preload("Author").
		Scopes(softdelete.Active).
		Where("parent_id = ?", parentID)
	if viewerID != "" {
		query = query.Where("(is_approved = ? OR author_id = ?)", true, viewerID)
	} else {
		query = query.Where("is_approved = ?", true)
	}

	var commentModels []model.CommentModel
	if err := query.Order("created_at ASC").Order("id ASC").Find(&commentModels).Error; err != nil {
		return nil, err
	}

	replies := toEntities(commentModels)
	if err := r.fillRepliesCount(ctx, replies); err != nil {
		return nil, err
	}
	return replies, nil
}

type repliesCountRow struct {
	ParentID string
	Replies  int64
}

// fillRepliesCount sets RepliesCount from one grouped query over the
// non-deleted children of comments.
func (r *commentRepository) fillRepliesCount(ctx context.Context, comments []*entity.Comment) error {
	if len(comments) == 0 {
		return nil
	}

	ids := make([]string, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
	}

	var rows []repliesCountRow
	err := r.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Select("parent_id, COUNT(*) AS replies").
		Scopes(softdelete.Active).
		Where("parent_id IN ?", ids).
		Group("parent_id").
		Scan(&rows).Error
	if err != nil {
		return err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.ParentID] = row.Replies
	}
	for _, c := range comments {
		c.RepliesCount = counts[c.ID]
	}
	return nil
}

func (r *commentRepository) UpdateContent(ctx context.Context, id, content string, at time.Time) error {
	return r.update(ctx, id, map[string]interface{}{
		"content":    content,
		"is_edited":  true,
		"updated_at": at,
	})
}

// SetApproved writes is_approved alone.
func (r *commentRepository) SetApproved(ctx context.Context, id string, approved bool) error {
	result := r.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Scopes(softdelete.Active).
		Where("id = ?", id).
		UpdateColumn("is_approved", approved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return database.Translate(gorm.ErrRecordNotFound, "comment")
	}
	return nil
}

func (r *commentRepository) update(ctx context.Context, id string, values map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Scopes(softdelete.Active).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return database.Translate(gorm.ErrRecordNotFound, "comment")
	}
	return nil
}

func (r *commentRepository) SoftDelete(ctx context.Context, id string, at time.Time) (bool, error) {
	return softdelete.Mark(r.db.WithContext(ctx), &model.CommentModel{}, id, at)
}

func (r *commentRepository) GetPost(ctx context.Context, postID string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.WithContext(ctx).Where("id = ?", postID).First(&postModel).Error; err != nil {
		return nil, database.Translate(err, "post")
	}
	return ToPostEntity(&postModel), nil
}

func toEntities(models []model.CommentModel) []*entity.Comment {
	comments := make([]*entity.Comment, len(models))
	for i := range models {
		comments[i] = ToCommentEntity(&models[i])
	}
	return comments
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
