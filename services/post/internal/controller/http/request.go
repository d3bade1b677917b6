package http

import (
	"encoding/json"
	"strconv"

	"blogpost/services/post/internal/entity"

	"github.com/gin-gonic/gin"
)

type CreatePostRequest struct {
	Title       string   `json:"title" binding:"required,notblank,max=255"`
	Slug        string   `json:"slug" binding:"omitempty,slug,max=255"`
	Content     string   `json:"content" binding:"required,notblank"`
	IsPublished bool     `json:"is_published"`
	CategoryID  *string  `json:"category_id" binding:"omitempty,uuid"`
	TagIDs      []string `json:"tag_ids" binding:"omitempty,dive,uuid"`
}

func (r CreatePostRequest) toInput() entity.CreatePostInput {
	return entity.CreatePostInput{
		Title:       r.Title,
		Slug:        r.Slug,
		Content:     r.Content,
		IsPublished: r.IsPublished,
		CategoryID:  r.CategoryID,
		TagIDs:      r.TagIDs,
	}
}

// NullableString tells an absent field apart from an explicit null.
type NullableString struct {
	Set   bool
	Value *string
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

type UpdatePostRequest struct {
	Title       *string        `json:"title" binding:"omitempty,notblank,max=255"`
	Slug        *string        `json:"slug" binding:"omitempty,slug,max=255"`
	Content     *string        `json:"content" binding:"omitempty,notblank"`
	IsPublished *bool          `json:"is_published"`
	CategoryID  NullableString `json:"category_id"`
	TagIDs      *[]string      `json:"tag_ids" binding:"omitempty,dive,uuid"`
}

func (r UpdatePostRequest) toInput() entity.UpdatePostInput {
	input := entity.UpdatePostInput{
		Title:       r.Title,
		Slug:        r.Slug,
		Content:     r.Content,
		IsPublished: r.IsPublished,
		TagIDs:      r.TagIDs,
	}
	if r.CategoryID.Set {
		if r.CategoryID.Value == nil || *r.CategoryID.Value == "" {
			input.ClearCategory = true
		} else {
			input.CategoryID = r.CategoryID.Value
		}
	}
	return input
}

type CreateTagRequest struct {
	Name  string `json:"name" binding:"required,notblank,max=50"`
	Slug  string `json:"slug" binding:"omitempty,slug,max=50"`
	Color string `json:"color" binding:"omitempty,tagcolor"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,notblank,max=100"`
	Slug        string `json:"slug" binding:"omitempty,slug,max=100"`
	Description string `json:"description"`
}

type listQuery struct {
	Category    string `form:"category" binding:"omitempty,uuid"`
	Tag         string `form:"tag" binding:"omitempty,uuid"`
	Author      string `form:"author" binding:"omitempty,uuid"`
	IsPublished *bool  `form:"is_published"`
	Search      string `form:"search"`
	Ordering    string `form:"ordering" binding:"omitempty,oneof=created_at -created_at updated_at -updated_at title -title"`
	Limit       int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset      int    `form:"offset" binding:"omitempty,min=0"`
}

func (q listQuery) toFilter(viewerID string) entity.PostFilter {
	return entity.PostFilter{
		ViewerID:    viewerID,
		AuthorID:    q.Author,
		CategoryID:  q.Category,
		TagID:       q.Tag,
		IsPublished: q.IsPublished,
		Search:      q.Search,
		Ordering:    q.Ordering,
		Limit:       q.Limit,
		Offset:      q.Offset,
	}
}

func includeDeleted(c *gin.Context) bool {
	v, err := strconv.ParseBool(c.DefaultQuery("include_deleted", "false"))
	return err == nil && v
}
