package persistent

import (
	"blogpost/services/post/internal/entity"
	"blogpost/services/post/internal/model"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:          m.ID,
		Title:       m.Title,
		Slug:        m.Slug,
		Content:     m.Content,
		AuthorID:    m.AuthorID,
		CategoryID:  m.CategoryID,
		ImageURL:    m.ImageURL,
		IsPublished: m.IsPublished,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   m.DeletedAt,
		Tags:        make([]entity.Tag, 0, len(m.Tags)),
	}

	if m.Author != nil {
		post.Author = &entity.Author{ID: m.Author.ID, Username: m.Author.Username}
	}
	if m.Category != nil {
		post.Category = ToCategoryEntity(m.Category, 0)
	}
	for i := range m.Tags {
		post.Tags = append(post.Tags, *ToTagEntity(&m.Tags[i]))
	}

	return post
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:          e.ID,
		Title:       e.Title,
		Slug:        e.Slug,
		Content:     e.Content,
		AuthorID:    e.AuthorID,
		CategoryID:  e.CategoryID,
		ImageURL:    e.ImageURL,
		IsPublished: e.IsPublished,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		DeletedAt:   e.DeletedAt,
	}
}

func ToTagEntity(m *model.TagModel) *entity.Tag {
	return &entity.Tag{
		ID:        m.ID,
		Name:      m.Name,
		Slug:      m.Slug,
		Color:     m.Color,
		CreatedAt: m.CreatedAt,
	}
}

func ToTagModel(e *entity.Tag) *model.TagModel {
	return &model.TagModel{
		ID:        e.ID,
		Name:      e.Name,
		Slug:      e.Slug,
		Color:     e.Color,
		CreatedAt: e.CreatedAt,
	}
}

func ToCategoryEntity(m *model.CategoryModel, postsCount int64) *entity.Category {
	return &entity.Category{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		PostsCount:  postsCount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToCategoryModel(e *entity.Category) *model.CategoryModel {
	return &model.CategoryModel{
		ID:          e.ID,
		Name:        e.Name,
		Slug:        e.Slug,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
