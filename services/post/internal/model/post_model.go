package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostModel maps the posts table. DeletedAt is a plain column; reads choose
// their soft-delete scope explicitly.
type PostModel struct {
	ID          string         `gorm:"type:uuid;primary_key"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Slug        string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	Content     string         `gorm:"type:text;not null"`
	AuthorID    string         `gorm:"type:uuid;not null;index"`
	Author      *UserModel     `gorm:"foreignKey:AuthorID"`
	CategoryID  *string        `gorm:"type:uuid;index"`
	Category    *CategoryModel `gorm:"foreignKey:CategoryID"`
	ImageURL    *string        `gorm:"type:varchar(500)"`
	IsPublished bool
	Tags        []TagModel `gorm:"many2many:post_tags;joinForeignKey:PostID;joinReferences:TagID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time `gorm:"index"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type PostTagModel struct {
	PostID string `gorm:"type:uuid;primaryKey"`
	TagID  string `gorm:"type:uuid;primaryKey"`
}

func (PostTagModel) TableName() string {
	return "post_tags"
}

// UserModel is the slice of users this service reads for author names.
type UserModel struct {
	ID       string `gorm:"type:uuid;primary_key"`
	Username string
}

func (UserModel) TableName() string {
	return "users"
}
