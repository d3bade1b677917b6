package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentModel struct {
	ID         string     `gorm:"type:uuid;primary_key"`
	Content    string     `gorm:"type:text;not null"`
	AuthorID   string     `gorm:"type:uuid;not null;index"`
	Author     *UserModel `gorm:"foreignKey:AuthorID"`
	PostID     string     `gorm:"type:uuid;not null;index"`
	ParentID   *string    `gorm:"type:uuid;index"`
	IsApproved bool
	IsEdited   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time `gorm:"index"`
}

func (CommentModel) TableName() string {
	return "comments"
}

func (c *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// PostModel reads the columns of posts that comment rules need.
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
