package entity

import "time"

type Post struct {
	ID          string
	AuthorID    string
	IsPublished bool
	DeletedAt   *time.Time
}

func (p *Post) IsDeleted() bool {
	return p.DeletedAt != nil
}

// PostCounts splits an author's posts by state. Deleted posts are counted
// once, as deleted, whatever their publication flag.
type PostCounts struct {
	Published int64
	Drafts    int64
	Deleted   int64
}

// Engagement counts likes and comments on one or more posts. Comments are
// approved and not deleted, Pending are awaiting approval, and Replies is
// the subset of Comments with a parent.
type Engagement struct {
	Likes    int64
	Comments int64
	Replies  int64
	Pending  int64
}

type AuthorStats struct {
	AuthorID string
	Posts    PostCounts
	Engagement
}

type PostStats struct {
	PostID      string
	IsPublished bool
	Engagement
}
