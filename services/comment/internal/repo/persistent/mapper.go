package persistent

import (
	"blogpost/services/comment/internal/entity"
	"blogpost/services/comment/internal/model"
)

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	comment := &entity.Comment{
		ID:         m.ID,
		Content:    m.Content,
		AuthorID:   m.AuthorID,
		PostID:     m.PostID,
		ParentID:   m.ParentID,
		IsApproved: m.IsApproved,
		IsEdited:   m.IsEdited,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		DeletedAt:  m.DeletedAt,
	}
	if m.Author != nil {
		comment.Author = &entity.Author{ID: m.Author.ID, Username: m.Author.Username}
	}
	return comment
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		ID:         e.ID,
		Content:    e.Content,
		AuthorID:   e.AuthorID,
		PostID:     e.PostID,
		ParentID:   e.ParentID,
		IsApproved: e.IsApproved,
		IsEdited:   e.IsEdited,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
		DeletedAt:  e.DeletedAt,
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
