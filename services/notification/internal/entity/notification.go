package entity

import "time"

// Notification is an inbox entry telling RecipientID that ActorID
// interacted with their content.
type Notification struct {
	ID          string    `json:"id"`
	RecipientID string    `json:"recipient_id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	ActorID     string    `json:"actor_id"`
	PostID      string    `json:"post_id"`
	CommentID   string    `json:"comment_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
