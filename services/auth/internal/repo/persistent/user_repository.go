package persistent

import (
	"context"

	"blogpost/pkg/database"
	"blogpost/services/auth/internal/entity"
	"blogpost/services/auth/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// GetByID loads the user together with its linked providers.
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// EmailTaken and UsernameTaken ignore the row with id excludeID.
	EmailTaken(ctx context.Context, email, excludeID string) (bool, error)
	UsernameTaken(ctx context.Context, username, excludeID string) (bool, error)
	UpdateProfile(ctx context.Context, id string, update entity.ProfileUpdate) error
	SetAvatarURL(ctx context.Context, id, url string) error
	LinkProvider(ctx context.Context, link *entity.AuthProvider) error
	ListProviders(ctx context.Context, userID string) ([]*entity.AuthProvider, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := ToUserModel(user)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(userModel).Error; err != nil {
		return database.Translate(err, "user")
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.UserModel
	err := r.db.WithContext(ctx).
		Preload("Providers", func(db *gorm.DB) *gorm.DB {
			return db.Order("user_auth_providers.created_at ASC")
		}).
		Where("id = ?", id).
		First(&userModel).Error
	if err != nil {
		return nil, database.Translate(err, "user")
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, database.Translate(err, "user")
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) EmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	return r.taken(ctx, "email", email, excludeID)
}

func (r *userRepository) UsernameTaken(ctx context.Context, username, excludeID string) (bool, error) {
	return r.taken(ctx, "username", username, excludeID)
}

func (r *userRepository) taken(ctx context.Context, column, value, excludeID string) (bool, error) {
	query := r.db.WithContext(ctx).Model(&model.UserModel{}).Where(column+" = ?", value)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id string, update entity.ProfileUpdate) error {
	columns := map[string]interface{}{}
	if update.Username != nil {
		columns["username"] = *update.Username
	}
	if update.Email != nil {
		columns["email"] = *update.Email
	}
	if update.FirstName != nil {
		columns["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		columns["last_name"] = *update.LastName
	}
	if len(columns) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return database.Translate(result.Error, "user")
	}
	if result.RowsAffected == 0 {
		return database.Translate(gorm.ErrRecordNotFound, "user")
	}
	return nil
}

func (r *userRepository) SetAvatarURL(ctx context.Context, id, url string) error {
	result := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Update("avatar_url", url)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return database.Translate(gorm.ErrRecordNotFound, "user")
	}
	return nil
}

func (r *userRepository) LinkProvider(ctx context.Context, link *entity.AuthProvider) error {
	linkModel := ToAuthProviderModel(link)
	if err := r.db.WithContext(ctx).Create(linkModel).Error; err != nil {
		return database.Translate(err, "provider account")
	}
	*link = *ToAuthProviderEntity(linkModel)
	return nil
}

func (r *userRepository) ListProviders(ctx context.Context, userID string) ([]*entity.AuthProvider, error) {
	var linkModels []model.AuthProviderModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&linkModels).Error
	if err != nil {
		return nil, err
	}

	links := make([]*entity.AuthProvider, len(linkModels))
	for i := range linkModels {
		links[i] = ToAuthProviderEntity(&linkModels[i])
	}
	return links, nil
}
