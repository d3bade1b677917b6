package model

import "time"

// PostModel reads the columns of posts that statistics need.
type PostModel struct {
	ID          string `gorm:"type:uuid;primary_key"`
	AuthorID    string
	IsPublished bool
	DeletedAt   *time.Time
}

func (PostModel) TableName() string {
	return "posts"
}

type CommentModel struct {
	ID         string  `gorm:"type:uuid;primary_key"`
	PostID     string  `gorm:"type:uuid;not null"`
	AuthorID   string  `gorm:"type:uuid;not null"`
	ParentID   *string `gorm:"type:uuid"`
	Content    string
	IsApproved bool
	CreatedAt  time.Time
	DeletedAt  *time.Time
}

func (CommentModel) TableName() string {
	return "comments"
}

type LikeModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	UserID    string `gorm:"type:uuid;not null"`
	PostID    string `gorm:"type:uuid;not null"`
	CreatedAt time.Time
}

func (LikeModel) TableName() string {
	return "likes"
}
