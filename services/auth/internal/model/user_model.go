package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID        string  `gorm:"type:uuid;primary_key"`
	Email     string  `gorm:"uniqueIndex;not null"`
	Username  string  `gorm:"uniqueIndex;not null"`
	Password  string  `gorm:"not null"`
	FirstName string  `gorm:"type:varchar(150)"`
	LastName  string  `gorm:"type:varchar(150)"`
	AvatarURL *string `gorm:"type:varchar(500)"`
	Role      string  `gorm:"type:varchar(20)"`
	IsActive  bool
	Providers []AuthProviderModel `gorm:"foreignKey:UserID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// AuthProviderModel maps user_auth_providers. Provider tokens are never
// read by this service.
type AuthProviderModel struct {
	ID             string  `gorm:"type:uuid;primary_key"`
	UserID         string  `gorm:"type:uuid;not null;index"`
	Provider       string  `gorm:"type:varchar(50);not null"`
	ProviderUserID string  `gorm:"type:varchar(255);not null"`
	Username       *string `gorm:"type:varchar(255)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (AuthProviderModel) TableName() string {
	return "user_auth_providers"
}

func (p *AuthProviderModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
