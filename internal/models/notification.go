package models

import "time"

// NotificationType classifies a notification
type NotificationType string

const (
	NotificationReply  NotificationType = "reply"
	NotificationVote   NotificationType = "vote"
	NotificationSystem NotificationType = "system"
)

// Notification is addressed to one user and only ever mutated by read toggling
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"` // recipient
	Type      NotificationType `json:"type"`
	CreatedAt time.Time        `json:"created_at"`
	Read      bool             `json:"read"`
	Data      NotificationData `json:"data"`
}

// NotificationData is the payload rendered by the client
type NotificationData struct {
	PostID    string  `json:"post_id"`
	CommentID *string `json:"comment_id,omitempty"`
	FromUser  string  `json:"from_user"`
	Message   string  `json:"message"`
}
