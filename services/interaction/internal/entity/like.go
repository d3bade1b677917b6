package entity

import "time"

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type Like struct {
	ID        string
	UserID    string
	User      *User
	PostID    string
	CreatedAt time.Time
}

// Post is the part of a post that like rules depend on.
type Post struct {
	ID          string
	AuthorID    string
	IsPublished bool
	DeletedAt   *time.Time
}

func (p *Post) IsDeleted() bool {
	return p.DeletedAt != nil
}

// Likeable reports whether the post accepts new likes.
func (p *Post) Likeable() bool {
	return p.IsPublished && !p.IsDeleted()
}

// ToggleResult carries the like only when Created is true.
type ToggleResult struct {
	Created bool
	Like    *Like
}

type LikeStats struct {
	PostID       string `json:"post_id"`
	LikesCount   int64  `json:"likes_count"`
	UserHasLiked bool   `json:"user_has_liked"`
}

type LikeFilter struct {
	PostID string
	UserID string
	Limit  int
	Offset int
}
