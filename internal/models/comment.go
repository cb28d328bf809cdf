package models

import "time"

// Comment represents a comment on a post. Replies point at their parent
// through ParentCommentID, which always belongs to the same post.
type Comment struct {
	ID              string    `json:"id"`
	PostID          string    `json:"post_id"`
	Author          string    `json:"author"`
	AuthorID        string    `json:"author_id,omitempty"`
	Content         string    `json:"content"`
	CreatedAt       time.Time `json:"created_at"`
	ParentCommentID *string   `json:"parent_comment_id,omitempty"`
}

// CreateCommentInput holds the fields of a new comment
type CreateCommentInput struct {
	PostID          string
	Content         string
	ParentCommentID *string
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Content         string  `json:"content" validate:"required,trimmed_min=1,max=2000"`
	ParentCommentID *string `json:"parent_comment_id,omitempty" validate:"omitempty,min=1"`
}

// UpdateCommentRequest defines the request body for updating an existing comment
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,trimmed_min=1,max=2000"`
}
