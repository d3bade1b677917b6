package entity

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID        string
	Email     string
	Username  string
	Password  string
	FirstName string
	LastName  string
	AvatarURL *string
	Role      UserRole
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
	Providers []*AuthProvider
}

type Provider string

const (
	ProviderDiscord Provider = "discord"
	ProviderGoogle  Provider = "google"
	ProviderGitHub  Provider = "github"
)

func (p Provider) Valid() bool {
	switch p {
	case ProviderDiscord, ProviderGoogle, ProviderGitHub:
		return true
	}
	return false
}

// AuthProvider links a user to an account at an external identity provider.
type AuthProvider struct {
	ID             string
	UserID         string
	Provider       Provider
	ProviderUserID string
	Username       *string
	CreatedAt      time.Time
}

type RegisterInput struct {
	Email     string
	Username  string
	Password  string
	FirstName string
	LastName  string
}

// ProfileUpdate carries the fields a user may change on their own profile.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
}

func (u ProfileUpdate) Empty() bool {
	return u.Username == nil && u.Email == nil && u.FirstName == nil && u.LastName == nil
}

type LinkProviderInput struct {
	Provider       Provider
	ProviderUserID string
	Username       *string
}
