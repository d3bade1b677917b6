package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LikeModel rows are hard-deleted; (user_id, post_id) is unique.
type LikeModel struct {
	ID        string     `gorm:"type:uuid;primary_key"`
	UserID    string     `gorm:"type:uuid;not null;uniqueIndex:unique_user_post_like"`
	User      *UserModel `gorm:"foreignKey:UserID"`
	PostID    string     `gorm:"type:uuid;not null;uniqueIndex:unique_user_post_like"`
	CreatedAt time.Time
}

func (LikeModel) TableName() string {
	return "likes"
}

func (l *LikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

type PostModel struct {
	ID          string `gorm:"type:uuid;primary_key"`
	AuthorID    string
	IsPublished bool
	DeletedAt   *time.Time
}

func (PostModel) TableName() string {
	return "posts"
}

type UserModel struct {
	ID       string `gorm:"type:uuid;primary_key"`
	Username string
}

func (UserModel) TableName() string {
	return "users"
}
