package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TagModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	Name      string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Slug      string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Color     string `gorm:"type:varchar(7)"`
	CreatedAt time.Time
}

func (TagModel) TableName() string {
	return "tags"
}

func (t *TagModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

type CategoryModel struct {
	ID          string `gorm:"type:uuid;primary_key"`
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Slug        string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CategoryModel) TableName() string {
	return "categories"
}

func (c *CategoryModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
