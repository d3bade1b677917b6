package entity

import "time"

type Author struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Post is the part of a post that comment rules depend on.
type Post struct {
	ID          string
	AuthorID    string
	IsPublished bool
	DeletedAt   *time.Time
}

func (p *Post) IsDeleted() bool {
	return p.DeletedAt != nil
}

type Comment struct {
	ID         string
	Content    string
	AuthorID   string
	Author     *Author
	PostID     string
	ParentID   *string
	IsApproved bool
	IsEdited   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time

	// RepliesCount counts non-deleted direct children.
	RepliesCount int64
	// Replies is only loaded for the detail view.
	Replies []*Comment
}

func (c *Comment) IsDeleted() bool {
	return c.DeletedAt != nil
}

func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}

type CreateCommentInput struct {
	PostID   string
	Content  string
	ParentID *string
}

type CommentFilter struct {
	ViewerID   string
	PostID     string
	AuthorID   string
	ParentID   string
	TopLevel   bool
	IsApproved *bool
	IsEdited   *bool
	Search     string
	Ordering   string
	Limit      int
	Offset     int

	// PostAuthorID keeps comments on posts written by this user.
	PostAuthorID string

	IgnoreVisibility bool
	IncludeDeleted   bool
}
