package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Slug        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

type Tag struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Slug      string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"slug"`
	Color     string    `gorm:"type:varchar(7);default:'#007bff'" json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

// Post is soft-deletable through DeletedAt. It is a plain nullable column,
// not gorm.DeletedAt: reads choose softdelete.Active or softdelete.All
// explicitly instead of relying on an implicit global filter.
type Post struct {
	ID          string     `gorm:"type:uuid;primary_key" json:"id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Slug        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	AuthorID    string     `gorm:"type:uuid;not null;index:idx_posts_author_created,priority:1" json:"author_id"`
	CategoryID  *string    `gorm:"type:uuid;index:idx_posts_category_created,priority:1" json:"category_id"`
	ImageURL    *string    `gorm:"type:varchar(500)" json:"image_url"`
	IsPublished bool       `gorm:"default:false;index:idx_posts_published_created,priority:1" json:"is_published"`
	CreatedAt   time.Time  `gorm:"index:idx_posts_author_created,priority:2;index:idx_posts_category_created,priority:2;index:idx_posts_published_created,priority:2" json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `gorm:"index" json:"deleted_at"`
	Tags        []Tag      `gorm:"many2many:post_tags" json:"tags"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
