package http

import (
	"time"

	"blogpost/services/comment/internal/entity"
)

type CommentListItem struct {
	ID           string    `json:"id"`
	Content      string    `json:"content"`
	AuthorID     string    `json:"author_id"`
	Author       string    `json:"author"`
	PostID       string    `json:"post_id"`
	ParentID     *string   `json:"parent_id"`
	IsApproved   bool      `json:"is_approved"`
	IsEdited     bool      `json:"is_edited"`
	IsReply      bool      `json:"is_reply"`
	RepliesCount int64     `json:"replies_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CommentDetail adds deletion state and one level of replies.
type CommentDetail struct {
	CommentListItem
	DeletedAt *time.Time        `json:"deleted_at"`
	IsDeleted bool              `json:"is_deleted"`
	Replies   []CommentListItem `json:"replies"`
}

type CommentListResponse struct {
	Count   int64             `json:"count"`
	Limit   int               `json:"limit"`
	Offset  int               `json:"offset"`
	Results []CommentListItem `json:"results"`
}

func toListItem(c *entity.Comment) CommentListItem {
	item := CommentListItem{
		ID:           c.ID,
		Content:      c.Content,
		AuthorID:     c.AuthorID,
		PostID:       c.PostID,
		ParentID:     c.ParentID,
		IsApproved:   c.IsApproved,
		IsEdited:     c.IsEdited,
		IsReply:      c.IsReply(),
		RepliesCount: c.RepliesCount,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	if c.Author != nil {
		item.Author = c.Author.Username
	}
	return item
}

func toDetail(c *entity.Comment) CommentDetail {
	replies := make([]CommentListItem, len(c.Replies))
	for i, reply := range c.Replies {
		replies[i] = toListItem(reply)
	}
	return CommentDetail{
		CommentListItem: toListItem(c),
		DeletedAt:       c.DeletedAt,
		IsDeleted:       c.IsDeleted(),
		Replies:         replies,
	}
}

func toListResponse(comments []*entity.Comment, total int64, limit, offset int) CommentListResponse {
	items := make([]CommentListItem, len(comments))
	for i, c := range comments {
		items[i] = toListItem(c)
	}
	return CommentListResponse{Count: total, Limit: limit, Offset: offset, Results: items}
}
