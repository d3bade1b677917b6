package http

import (
	"time"

	"blogpost/services/interaction/internal/entity"
)

type LikeRequest struct {
	PostID string `json:"post_id" binding:"required,uuid"`
}

type listQuery struct {
	Post   string `form:"post" binding:"omitempty,uuid"`
	User   string `form:"user" binding:"omitempty,uuid"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
}

func (q listQuery) toFilter() entity.LikeFilter {
	return entity.LikeFilter{PostID: q.Post, UserID: q.User, Limit: q.Limit, Offset: q.Offset}
}

type LikeResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	User      string    `json:"user"`
	PostID    string    `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ToggleResponse omits like when the toggle removed it.
type ToggleResponse struct {
	Created bool          `json:"created"`
	Like    *LikeResponse `json:"like,omitempty"`
}

type LikeListResponse struct {
	Count   int64          `json:"count"`
	Limit   int            `json:"limit"`
	Offset  int            `json:"offset"`
	Results []LikeResponse `json:"results"`
}

func toLikeResponse(l *entity.Like) LikeResponse {
	resp := LikeResponse{ID: l.ID, UserID: l.UserID, PostID: l.PostID, CreatedAt: l.CreatedAt}
	if l.User != nil {
		resp.User = l.User.Username
	}
	return resp
}
