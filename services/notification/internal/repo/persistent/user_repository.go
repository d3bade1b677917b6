package persistent

import (
	"context"

	"blogpost/pkg/database"
	"blogpost/services/notification/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Username(ctx context.Context, id string) (string, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Username(ctx context.Context, id string) (string, error) {
	var userModel model.UserModel
	err := r.db.WithContext(ctx).Select("id", "username").Where("id = ?", id).First(&userModel).Error
	if err != nil {
		return "", database.Translate(err, "user")
	}
	return userModel.Username, nil
}
