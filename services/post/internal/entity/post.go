package entity

import (
	"time"
	"unicode/utf8"
)

const ExcerptLength = 150

type Author struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type Post struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	AuthorID    string     `json:"author_id"`
	Author      *Author    `json:"author,omitempty"`
	CategoryID  *string    `json:"category_id"`
	Category    *Category  `json:"category,omitempty"`
	ImageURL    *string    `json:"image_url"`
	IsPublished bool       `json:"is_published"`
	Tags        []Tag      `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at"`
}

func (p *Post) IsDeleted() bool {
	return p.DeletedAt != nil
}

// Excerpt is the first ExcerptLength characters of the content, with an
// ellipsis when the content was cut.
func (p *Post) Excerpt() string {
	if utf8.RuneCountInString(p.Content) <= ExcerptLength {
		return p.Content
	}
	return string([]rune(p.Content)[:ExcerptLength]) + "..."
}

type CreatePostInput struct {
	Title       string
	Slug        string
	Content     string
	IsPublished bool
	CategoryID  *string
	TagIDs      []string
}

// UpdatePostInput carries a partial update: nil fields are left untouched.
// ClearCategory detaches the category; TagIDs, when set, replaces the tag set.
type UpdatePostInput struct {
	Title         *string
	Slug          *string
	Content       *string
	IsPublished   *bool
	CategoryID    *string
	ClearCategory bool
	TagIDs        *[]string
}

type PostFilter struct {
	// ViewerID is the caller; "" for anonymous requests.
	ViewerID    string
	AuthorID    string
	CategoryID  string
	TagID       string
	IsPublished *bool
	Search      string
	Ordering    string
	Limit       int
	Offset      int

	// Administrative reads: skip visibility and optionally keep deleted rows.
	IgnoreVisibility bool
	IncludeDeleted   bool
}
