package http

import (
	"time"

	"blogpost/services/auth/internal/entity"
)

type ProviderResponse struct {
	ID             string    `json:"id"`
	Provider       string    `json:"provider"`
	ProviderUserID string    `json:"provider_user_id"`
	Username       *string   `json:"username"`
	CreatedAt      time.Time `json:"created_at"`
}

type UserResponse struct {
	ID        string             `json:"id"`
	Email     string             `json:"email"`
	Username  string             `json:"username"`
	FirstName string             `json:"first_name"`
	LastName  string             `json:"last_name"`
	AvatarURL *string            `json:"avatar_url"`
	Role      string             `json:"role"`
	IsActive  bool               `json:"is_active"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
	Providers []ProviderResponse `json:"providers"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func toProviderResponse(p *entity.AuthProvider) ProviderResponse {
	return ProviderResponse{
		ID:             p.ID,
		Provider:       string(p.Provider),
		ProviderUserID: p.ProviderUserID,
		Username:       p.Username,
		CreatedAt:      p.CreatedAt,
	}
}

func toProviderResponses(links []*entity.AuthProvider) []ProviderResponse {
	out := make([]ProviderResponse, len(links))
	for i, link := range links {
		out[i] = toProviderResponse(link)
	}
	return out
}

func toUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		AvatarURL: u.AvatarURL,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		Providers: toProviderResponses(u.Providers),
	}
}
