package persistent

import (
	"blogpost/services/auth/internal/entity"
	"blogpost/services/auth/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	user := &entity.User{
		ID:        m.ID,
		Email:     m.Email,
		Username:  m.Username,
		Password:  m.Password,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		AvatarURL: m.AvatarURL,
		Role:      entity.UserRole(m.Role),
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if len(m.Providers) > 0 {
		user.Providers = make([]*entity.AuthProvider, len(m.Providers))
		for i := range m.Providers {
			user.Providers[i] = ToAuthProviderEntity(&m.Providers[i])
		}
	}
	return user
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:        e.ID,
		Email:     e.Email,
		Username:  e.Username,
		Password:  e.Password,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		AvatarURL: e.AvatarURL,
		Role:      string(e.Role),
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToAuthProviderEntity(m *model.AuthProviderModel) *entity.AuthProvider {
	if m == nil {
		return nil
	}

	return &entity.AuthProvider{
		ID:             m.ID,
		UserID:         m.UserID,
		Provider:       entity.Provider(m.Provider),
		ProviderUserID: m.ProviderUserID,
		Username:       m.Username,
		CreatedAt:      m.CreatedAt,
	}
}

func ToAuthProviderModel(e *entity.AuthProvider) *model.AuthProviderModel {
	if e == nil {
		return nil
	}

	return &model.AuthProviderModel{
		ID:             e.ID,
		UserID:         e.UserID,
		Provider:       string(e.Provider),
		ProviderUserID: e.ProviderUserID,
		Username:       e.Username,
		CreatedAt:      e.CreatedAt,
	}
}
