package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	FirstName string    `gorm:"type:varchar(150)" json:"first_name"`
	LastName  string    `gorm:"type:varchar(150)" json:"last_name"`
	AvatarURL *string   `gorm:"type:varchar(500)" json:"avatar_url"`
	Role      UserRole  `gorm:"type:varchar(20);default:'user'" json:"role"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

type AuthProvider string

const (
	ProviderDiscord AuthProvider = "discord"
	ProviderGoogle  AuthProvider = "google"
	ProviderGitHub  AuthProvider = "github"
)

// UserAuthProvider links a user to an identity at an external provider.
// A provider account can be linked to at most one user.
type UserAuthProvider struct {
	ID             string       `gorm:"type:uuid;primary_key" json:"id"`
	UserID         string       `gorm:"type:uuid;not null;index" json:"user_id"`
	Provider       AuthProvider `gorm:"type:varchar(50);not null;uniqueIndex:uq_provider_user_id_per_provider" json:"provider"`
	ProviderUserID string       `gorm:"type:varchar(255);not null;uniqueIndex:uq_provider_user_id_per_provider" json:"provider_user_id"`
	Username       *string      `gorm:"type:varchar(255)" json:"username"`
	AccessToken    *string      `json:"-"`
	RefreshToken   *string      `json:"-"`
	TokenExpiresAt *time.Time   `json:"-"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

func (p *UserAuthProvider) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
