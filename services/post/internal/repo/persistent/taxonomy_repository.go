package persistent

import (
	"context"

	"blogpost/pkg/database"
	"blogpost/services/post/internal/entity"
	"blogpost/services/post/internal/model"

	"gorm.io/gorm"
)

type TaxonomyRepository interface {
	ListTags(ctx context.Context) ([]*entity.Tag, error)
	GetTag(ctx context.Context, id string) (*entity.Tag, error)
	CreateTag(ctx context.Context, tag *entity.Tag) error
	// CountTags counts how many of ids name existing tags.
	CountTags(ctx context.Context, ids []string) (int64, error)

	ListCategories(ctx context.Context) ([]*entity.Category, error)
	GetCategory(ctx context.Context, id string) (*entity.Category, error)
	CreateCategory(ctx context.Context, category *entity.Category) error
	CategoryExists(ctx context.Context, id string) (bool, error)
}

type taxonomyRepository struct {
	db *gorm.DB
}

func NewTaxonomyRepository(db *gorm.DB) TaxonomyRepository {
	return &taxonomyRepository{db: db}
}

func (r *taxonomyRepository) ListTags(ctx context.Context) ([]*entity.Tag, error) {
	var tagModels []model.TagModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&tagModels).Error; err != nil {
		return nil, err
	}

	tags := make([]*entity.Tag, len(tagModels))
	for i := range tagModels {
		tags[i] = ToTagEntity(&tagModels[i])
	}
	return tags, nil
}

func (r *taxonomyRepository) GetTag(ctx context.Context, id string) (*entity.Tag, error) {
	var tagModel model.TagModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tagModel).Error; err != nil {
		return nil, database.Translate(err, "tag")
	}
	return ToTagEntity(&tagModel), nil
}

func (r *taxonomyRepository) CreateTag(ctx context.Context, tag *entity.Tag) error {
	tagModel := ToTagModel(tag)
	if err := r.db.WithContext(ctx).Create(tagModel).Error; err != nil {
		return database.Translate(err, "tag")
	}
	*tag = *ToTagEntity(tagModel)
	return nil
}

func (r *taxonomyRepository) CountTags(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&model.TagModel{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

// categoryRow carries posts_count: published, non-deleted posts only.
type categoryRow struct {
	model.CategoryModel `gorm:"embedded"`
	PostsCount          int64
}

func (r *taxonomyRepository) categoriesWithCount(ctx context.Context) *gorm.DB {
	postsCount := r.db.Table("posts").
		Select("COUNT(*)").
		Where("posts.category_id = categories.id AND posts.is_published = ? AND posts.deleted_at IS NULL", true)

	return r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Select("categories.*, (?) AS posts_count", postsCount)
}

func (r *taxonomyRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var rows []categoryRow
	if err := r.categoriesWithCount(ctx).Order("categories.name ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	categories := make([]*entity.Category, len(rows))
	for i := range rows {
		categories[i] = ToCategoryEntity(&rows[i].CategoryModel, rows[i].PostsCount)
	}
	return categories, nil
}

func (r *taxonomyRepository) GetCategory(ctx context.Context, id string) (*entity.Category, error) {
	var rows []categoryRow
	if err := r.categoriesWithCount(ctx).Where("categories.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, database.Translate(gorm.ErrRecordNotFound, "category")
	}
	return ToCategoryEntity(&rows[0].CategoryModel, rows[0].PostsCount), nil
}

func (r *taxonomyRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	categoryModel := ToCategoryModel(category)
	if err := r.db.WithContext(ctx).Create(categoryModel).Error; err != nil {
		return database.Translate(err, "category")
	}
	*category = *ToCategoryEntity(categoryModel, 0)
	return nil
}

func (r *taxonomyRepository) CategoryExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CategoryModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
