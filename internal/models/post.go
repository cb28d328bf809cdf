package models

import "time"

// Post represents a forum post
type Post struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	CategoryID CategoryID `json:"category_id"`
	FacultyID  FacultyID  `json:"faculty_id"`
	Author     string     `json:"author"`              // display name at creation time
	AuthorID   string     `json:"author_id,omitempty"` // empty for authors outside the roster
	CreatedAt  time.Time  `json:"created_at"`
	CourseID   *string    `json:"course_id,omitempty"`
}

// CreatePostInput holds the fields of a new post
type CreatePostInput struct {
	Title      string
	Content    string
	CategoryID CategoryID
	FacultyID  FacultyID
	CourseID   *string
}

// PostPatch is a partial update of a post. Nil fields keep their value.
type PostPatch struct {
	ID         string
	Title      *string
	Content    *string
	CategoryID *CategoryID
	FacultyID  *FacultyID
	CourseID   Nullable[string]
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title      string  `json:"title" validate:"required,trimmed_min=8,max=200"`
	Content    string  `json:"content" validate:"required,trimmed_min=20,max=10000"`
	CategoryID string  `json:"category_id" validate:"required,category"`
	FacultyID  string  `json:"faculty_id" validate:"required,faculty"`
	CourseID   *string `json:"course_id,omitempty" validate:"omitempty,min=1"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	Title      *string          `json:"title,omitempty" validate:"omitempty,trimmed_min=8,max=200"`
	Content    *string          `json:"content,omitempty" validate:"omitempty,trimmed_min=20,max=10000"`
	CategoryID *string          `json:"category_id,omitempty" validate:"omitempty,category"`
	FacultyID  *string          `json:"faculty_id,omitempty" validate:"omitempty,faculty"`
	CourseID   Nullable[string] `json:"course_id"`
}
