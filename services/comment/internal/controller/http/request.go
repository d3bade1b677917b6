package http

import (
	"strconv"

	"blogpost/services/comment/internal/entity"

	"github.com/gin-gonic/gin"
)

type CreateCommentRequest struct {
	PostID   string  `json:"post_id" binding:"required,uuid"`
	Content  string  `json:"content" binding:"required,notblank"`
	ParentID *string `json:"parent_id" binding:"omitempty,uuid"`
}

type ContentRequest struct {
	Content string `json:"content" binding:"required,notblank"`
}

type listQuery struct {
	Post       string `form:"post" binding:"omitempty,uuid"`
	Author     string `form:"author" binding:"omitempty,uuid"`
	Parent     string `form:"parent" binding:"omitempty,uuid"`
	TopLevel   bool   `form:"top_level"`
	IsApproved *bool  `form:"is_approved"`
	IsEdited   *bool  `form:"is_edited"`
	Search     string `form:"search"`
	Ordering   string `form:"ordering" binding:"omitempty,oneof=created_at -created_at updated_at -updated_at"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset     int    `form:"offset" binding:"omitempty,min=0"`
}

func (q listQuery) toFilter(viewerID string) entity.CommentFilter {
	return entity.CommentFilter{
		ViewerID:   viewerID,
		PostID:     q.Post,
		AuthorID:   q.Author,
		ParentID:   q.Parent,
		TopLevel:   q.TopLevel,
		IsApproved: q.IsApproved,
		IsEdited:   q.IsEdited,
		Search:     q.Search,
		Ordering:   q.Ordering,
		Limit:      q.Limit,
		Offset:     q.Offset,
	}
}

func includeDeleted(c *gin.Context) bool {
	v, err := strconv.ParseBool(c.DefaultQuery("include_deleted", "false"))
	return err == nil && v
}
