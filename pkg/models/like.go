package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like has no soft delete: removing it frees the (user, post) pair at once.
type Like struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:unique_user_post_like,priority:1;index:idx_likes_user_created,priority:1" json:"user_id"`
	PostID    string    `gorm:"type:uuid;not null;uniqueIndex:unique_user_post_like,priority:2;index:idx_likes_post_created,priority:1" json:"post_id"`
	CreatedAt time.Time `gorm:"index:idx_likes_user_created,priority:2;index:idx_likes_post_created,priority:2" json:"created_at"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
