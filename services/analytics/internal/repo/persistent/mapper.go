package persistent

import (
	"blogpost/services/analytics/internal/entity"
	"blogpost/services/analytics/internal/model"
)

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
