package persistent

import (
	"blogpost/services/interaction/internal/entity"
	"blogpost/services/interaction/internal/model"
)

func ToLikeEntity(m *model.LikeModel) *entity.Like {
	if m == nil {
		return nil
	}

	like := &entity.Like{
		ID:        m.ID,
		UserID:    m.UserID,
		PostID:    m.PostID,
		CreatedAt: m.CreatedAt,
	}
	if m.User != nil {
		like.User = &entity.User{ID: m.User.ID, Username: m.User.Username}
	}
	return like
}

func ToLikeModel(e *entity.Like) *model.LikeModel {
	if e == nil {
		return nil
	}
	return &model.LikeModel{
		ID:        e.ID,
		UserID:    e.UserID,
		PostID:    e.PostID,
		CreatedAt: e.CreatedAt,
	}
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}
	return &entity.Post{
		ID:          m.ID,
		AuthorID:    m.AuthorID,
		IsPublished: m.IsPublished,
		DeletedAt:   m.DeletedAt,
	}
}
