package persistent

import (
	"context"

	"blogpost/pkg/database"
	"blogpost/pkg/softdelete"
	"blogpost/services/analytics/internal/entity"
	"blogpost/services/analytics/internal/model"

	"gorm.io/gorm"
)

type StatsRepository interface {
	// GetPost returns the post whether or not it is deleted.
	GetPost(ctx context.Context, postID string) (*entity.Post, error)
	CountAuthorPosts(ctx context.Context, authorID string) (entity.PostCounts, error)
	// AuthorEngagement sums likes and comments over the author's posts that
	// are not deleted.
	AuthorEngagement(ctx context.Context, authorID string) (entity.Engagement, error)
	PostEngagement(ctx context.Context, postID string) (entity.Engagement, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) GetPost(ctx context.Context, postID string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.WithContext(ctx).Where("id = ?", postID).First(&postModel).Error; err != nil {
		return nil, database.Translate(err, "post")
	}
	return ToPostEntity(&postModel), nil
}

func (r *statsRepository) CountAuthorPosts(ctx context.Context, authorID string) (entity.PostCounts, error) {
	var counts entity.PostCounts
	posts := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&model.PostModel{}).Where("author_id = ?", authorID)
	}

	if err := posts().Scopes(softdelete.Active).Where("is_published = ?", true).Count(&counts.Published).Error; err != nil {
		return counts, err
	}
	if err := posts().Scopes(softdelete.Active).Where("is_published = ?", false).Count(&counts.Drafts).Error; err != nil {
		return counts, err
	}
	if err := posts().Where(softdelete.Column + " IS NOT NULL").Count(&counts.Deleted).Error; err != nil {
		return counts, err
	}
	return counts, nil
}

func (r *statsRepository) AuthorEngagement(ctx context.Context, authorID string) (entity.Engagement, error) {
	authorPosts := r.db.Model(&model.PostModel{}).
		Select("id").
		Where("author_id = ?", authorID).
		Scopes(softdelete.Active)

	return r.engagement(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("post_id IN (?)", authorPosts)
	})
}

func (r *statsRepository) PostEngagement(ctx context.Context, postID string) (entity.Engagement, error) {
	return r.engagement(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("post_id = ?", postID)
	})
}

func (r *statsRepository) engagement(ctx context.Context, onPosts func(*gorm.DB) *gorm.DB) (entity.Engagement, error) {
	var e entity.Engagement
	db := r.db.WithContext(ctx)

	if err := db.Model(&model.LikeModel{}).Scopes(onPosts).Count(&e.Likes).Error; err != nil {
		return e, err
	}

	comments := func() *gorm.DB {
		return db.Model(&model.CommentModel{}).Scopes(onPosts, softdelete.Active)
	}
	if err := comments().Where("is_approved = ?", true).Count(&e.Comments).Error; err != nil {
		return e, err
	}
	if err := comments().Where("is_approved = ? AND parent_id IS NOT NULL", true).Count(&e.Replies).Error; err != nil {
		return e, err
	}
	if err := comments().Where("is_approved = ?", false).Count(&e.Pending).Error; err != nil {
		return e, err
	}
	return e, nil
}
