package persistent

import (
	"context"
	"strings"
	"time"

	"blogpost/pkg/database"
	"blogpost/pkg/softdelete"
	"blogpost/services/post/internal/entity"
	"blogpost/services/post/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// orderings maps the accepted ordering parameter to SQL.
var orderings = map[string]string{
	"created_at":  "posts.created_at ASC",
	"-created_at": "posts.created_at DESC",
	"updated_at":  "posts.updated_at ASC",
	"-updated_at": "posts.updated_at DESC",
	"title":       "posts.title ASC",
	"-title":      "posts.title DESC",
}

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post, tagIDs []string) error
	// GetByID returns non-deleted posts only.
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	List(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, int64, error)
	Update(ctx context.Context, post *entity.Post, tagIDs *[]string) error
	SetPublished(ctx context.Context, id string, published bool) error
	SetImageURL(ctx context.Context, id, url string) error
	SoftDelete(ctx context.Context, id string, at time.Time) (bool, error)
	// SlugExists checks every row, deleted ones included, except excludeID.
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) preload(db *gorm.DB) *gorm.DB {
	return db.Preload("Author").Preload("Category").Preload("Tags", func(db *gorm.DB) *gorm.DB {
		return db.Order("tags.name ASC")
	})
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post, tagIDs []string) error {
	postModel := ToPostModel(post)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(postModel).Error; err != nil {
			return err
		}
		return replaceTags(tx, postModel.ID, tagIDs)
	})
	if err != nil {
		return database.Translate(err, "post")
	}

	created, err := r.GetByID(ctx, postModel.ID)
	if err != nil {
		return err
	}
	*post = *created
	return nil
}

func replaceTags(tx *gorm.DB, postID string, tagIDs []string) error {
	if err := tx.Where("post_id = ?", postID).Delete(&model.PostTagModel{}).Error; err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		return nil
	}

	rows := make([]model.PostTagModel, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, model.PostTagModel{PostID: postID, TagID: tagID})
	}
	return tx.Create(&rows).Error
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	var postModel model.PostModel
	err := r.preload(r.db.WithContext(ctx)).
		Scopes(softdelete.Active).
		Where("id = ?", id).
		First(&postModel).Error
	if err != nil {
		return nil, database.Translate(err, "post")
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) List(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.PostModel{})

	query = query.Scopes(softdelete.Scope("posts", filter.IncludeDeleted))
	if !filter.IgnoreVisibility {
		if filter.ViewerID != "" {
			query = query.Where("(posts.is_published = ? OR posts.author_id = ?)", true, filter.ViewerID)
		} else {
			query = query.Where("posts.is_published = ?", true)
		}
	}
	if filter.AuthorID != "" {
		query = query.Where("posts.author_id = ?", filter.AuthorID)
	}
	if filter.CategoryID != "" {
		query = query.Where("posts.category_id = ?", filter.CategoryID)
	}
	if filter.TagID != "" {
		query = query.Where("posts.id IN (?)", r.db.Table("post_tags").Select("post_id").Where("tag_id = ?", filter.TagID))
	}
	if filter.IsPublished != nil {
		query = query.Where("posts.is_published = ?", *filter.IsPublished)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		authors := r.db.Table("users").Select("id").Where("LOWER(username) LIKE ?", pattern)
		query = query.Where("(LOWER(posts.title) LIKE ? OR LOWER(posts.content) LIKE ? OR posts.author_id IN (?))", pattern, pattern, authors)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, ok := orderings[filter.Ordering]
	if !ok {
		order = orderings["-created_at"]
	}

	var postModels []model.PostModel
	err := r.preload(query).
		Order(order).
		Order("posts.id ASC").
		Limit(clampLimit(filter.Limit)).
		Offset(max(filter.Offset, 0)).
		Find(&postModels).Error
	if err != nil {
		return nil, 0, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, total, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func (r *postRepository) Update(ctx context.Context, post *entity.Post, tagIDs *[]string) error {
	postModel := ToPostModel(post)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(postModel).
			Scopes(softdelete.Active).
			Select("title", "slug", "content", "is_published", "category_id", "updated_at").
			Updates(postModel)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if tagIDs != nil {
			return replaceTags(tx, postModel.ID, *tagIDs)
		}
		return nil
	})
	if err != nil {
		return database.Translate(err, "post")
	}

	updated, err := r.GetByID(ctx, post.ID)
	if err != nil {
		return err
	}
	*post = *updated
	return nil
}

func (r *postRepository) SetPublished(ctx context.Context, id string, published bool) error {
	return r.updateColumn(ctx, id, "is_published", published)
}

func (r *postRepository) SetImageURL(ctx context.Context, id, url string) error {
	return r.updateColumn(ctx, id, "image_url", url)
}

func (r *postRepository) updateColumn(ctx context.Context, id, column string, value interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Scopes(softdelete.Active).
		Where("id = ?", id).
		Updates(map[string]interface{}{column: value, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return database.Translate(gorm.ErrRecordNotFound, "post")
	}
	return nil
}

func (r *postRepository) SoftDelete(ctx context.Context, id string, at time.Time) (bool, error) {
	return softdelete.Mark(r.db.WithContext(ctx), &model.PostModel{}, id, at)
}

func (r *postRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	query := r.db.WithContext(ctx).Model(&model.PostModel{}).Scopes(softdelete.All).Where("slug = ?", slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
