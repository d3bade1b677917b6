package persistent

import (
	"context"

	"blogpost/pkg/database"
	"blogpost/services/interaction/internal/entity"
	"blogpost/services/interaction/internal/model"

	"gorm.io/gorm"
)

type PostRepository interface {
	// GetPost returns the post whether or not it is deleted.
	GetPost(ctx context.Context, postID string) (*entity.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) GetPost(ctx context.Context, postID string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.WithContext(ctx).Where("id = ?", postID).First(&postModel).Error; err != nil {
		return nil, database.Translate(err, "post")
	}
	return ToPostEntity(&postModel), nil
}
