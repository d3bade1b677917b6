package persistent

import (
	"context"

	"blogpost/pkg/database"
	"blogpost/pkg/softdelete"
	"blogpost/services/interaction/internal/entity"
	"blogpost/services/interaction/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type LikeRepository interface {
	// Create fails with a Conflict error when the user already likes the post.
	Create(ctx context.Context, like *entity.Like) error
	GetByID(ctx context.Context, id string) (*entity.Like, error)
	// Delete removes the user's like on the post and reports whether a row
	// was removed.
	Delete(ctx context.Context, userID, postID string) (bool, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
	Exists(ctx context.Context, userID, postID string) (bool, error)
	Count(ctx context.Context, postID string) (int64, error)
	// List skips likes on deleted posts.
	List(ctx context.Context, filter entity.LikeFilter) ([]*entity.Like, int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	likeModel := ToLikeModel(like)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(likeModel).Error; err != nil {
		return database.Translate(err, "like")
	}

	created, err := r.GetByID(ctx, likeModel.ID)
	if err != nil {
		return err
	}
	*like = *created
	return nil
}

func (r *likeRepository) GetByID(ctx context.Context, id string) (*entity.Like, error) {
	var likeModel model.LikeModel
	if err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&likeModel).Error; err != nil {
		return nil, database.Translate(err, "like")
	}
	return ToLikeEntity(&likeModel), nil
}

func (r *likeRepository) Delete(ctx context.Context, userID, postID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.LikeModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *likeRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.LikeModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *likeRepository) Exists(ctx context.Context, userID, postID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (r *likeRepository) Count(ctx context.Context, postID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.LikeModel{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *likeRepository) List(ctx context.Context, filter entity.LikeFilter) ([]*entity.Like, int64, error) {
	livePosts := r.db.Model(&model.PostModel{}).Select("id").Scopes(softdelete.Active)
	query := r.db.WithContext(ctx).Model(&model.LikeModel{}).Where("likes.post_id IN (?)", livePosts)

	if filter.PostID != "" {
		query = query.Where("likes.post_id = ?", filter.PostID)
	}
	if filter.UserID != "" {
		query = query.Where("likes.user_id = ?", filter.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var likeModels []model.LikeModel
	err := query.
		Preload("User").
		Order("likes.created_at DESC").
		Order("likes.id ASC").
		Limit(clampLimit(filter.Limit)).
		Offset(max(filter.Offset, 0)).
		Find(&likeModels).Error
	if err != nil {
		return nil, 0, err
	}

	likes := make([]*entity.Like, len(likeModels))
	for i := range likeModels {
		likes[i] = ToLikeEntity(&likeModels[i])
	}
	return likes, total, nil
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
