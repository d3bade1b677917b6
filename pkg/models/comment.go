package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment optionally references a parent comment on the same post. Replies
// are looked up through the (parent_id, created_at) index.
type Comment struct {
	ID         string     `gorm:"type:uuid;primary_key" json:"id"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	AuthorID   string     `gorm:"type:uuid;not null;index:idx_comments_author_created,priority:1" json:"author_id"`
	PostID     string     `gorm:"type:uuid;not null;index:idx_comments_post_created,priority:1" json:"post_id"`
	ParentID   *string    `gorm:"type:uuid;index:idx_comments_parent_created,priority:1" json:"parent_id"`
	IsApproved bool       `gorm:"default:true" json:"is_approved"`
	IsEdited   bool       `gorm:"default:false" json:"is_edited"`
	CreatedAt  time.Time  `gorm:"index:idx_comments_post_created,priority:2;index:idx_comments_author_created,priority:2;index:idx_comments_parent_created,priority:2" json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `gorm:"index" json:"deleted_at"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
