package http

import (
	"time"

	"blogpost/services/post/internal/entity"
)

// PostListItem is the list representation: an excerpt instead of content.
type PostListItem struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Slug        string           `json:"slug"`
	Excerpt     string           `json:"excerpt"`
	AuthorID    string           `json:"author_id"`
	Author      string           `json:"author"`
	IsPublished bool             `json:"is_published"`
	Tags        []entity.Tag     `json:"tags"`
	Category    *entity.Category `json:"category"`
	ImageURL    *string          `json:"image_url"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type PostDetail struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Slug        string           `json:"slug"`
	Content     string           `json:"content"`
	AuthorID    string           `json:"author_id"`
	Author      string           `json:"author"`
	IsPublished bool             `json:"is_published"`
	Tags        []entity.Tag     `json:"tags"`
	Category    *entity.Category `json:"category"`
	ImageURL    *string          `json:"image_url"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   *time.Time       `json:"deleted_at"`
	IsDeleted   bool             `json:"is_deleted"`
}

type PostListResponse struct {
	Count   int64          `json:"count"`
	Limit   int            `json:"limit"`
	Offset  int            `json:"offset"`
	Results []PostListItem `json:"results"`
}

func authorName(p *entity.Post) string {
	if p.Author != nil {
		return p.Author.Username
	}
	return ""
}

func tagsOf(p *entity.Post) []entity.Tag {
	if p.Tags == nil {
		return []entity.Tag{}
	}
	return p.Tags
}

func toListItem(p *entity.Post) PostListItem {
	return PostListItem{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt(),
		AuthorID:    p.AuthorID,
		Author:      authorName(p),
		IsPublished: p.IsPublished,
		Tags:        tagsOf(p),
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toDetail(p *entity.Post) PostDetail {
	return PostDetail{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Content:     p.Content,
		AuthorID:    p.AuthorID,
		Author:      authorName(p),
		IsPublished: p.IsPublished,
		Tags:        tagsOf(p),
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		DeletedAt:   p.DeletedAt,
		IsDeleted:   p.IsDeleted(),
	}
}

func toListResponse(posts []*entity.Post, total int64, limit, offset int) PostListResponse {
	items := make([]PostListItem, len(posts))
	for i, p := range posts {
		items[i] = toListItem(p)
	}
	return PostListResponse{Count: total, Limit: limit, Offset: offset, Results: items}
}
