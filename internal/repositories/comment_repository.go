package repositories

import (
	"fmt"
	"slices"

	"github.com/sanmarcos/conecta/backend/internal/models"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(comment models.Comment) error
	GetCommentByID(id string) (models.Comment, bool)
	GetCommentsByPostID(postID string) []models.Comment
	UpdateComment(comment models.Comment) error
	DeleteComments(ids map[string]struct{}) int
	DeleteCommentsByPostID(postID string) int
	ChildrenIndex() map[string][]string
}

// MemoryCommentRepository implements CommentRepository over a slice kept in
// insertion order
type MemoryCommentRepository struct {
	comments []models.Comment
}

// NewMemoryCommentRepository creates a MemoryCommentRepository holding a copy of seed
func NewMemoryCommentRepository(seed []models.Comment) *MemoryCommentRepository {
	return &MemoryCommentRepository{comments: slices.Clone(seed)}
}

// CreateComment appends a comment
func (r *MemoryCommentRepository) CreateComment(comment models.Comment) error {
	if r.indexOf(comment.ID) != -1 {
		return fmt.Errorf("comment %s: %w", comment.ID, ErrDuplicateID)
	}
	r.comments = append(r.comments, comment)
	return nil
}

// GetCommentByID retrieves a comment by ID
func (r *MemoryCommentRepository) GetCommentByID(id string) (models.Comment, bool) {
	idx := r.indexOf(id)
	if idx == -1 {
		return models.Comment{}, false
	}
	return r.comments[idx], true
}

// GetCommentsByPostID retrieves the comments of a post, oldest first. Ties
// keep insertion order so a reply never sorts ahead of its parent.
func (r *MemoryCommentRepository) GetCommentsByPostID(postID string) []models.Comment {
	out := make([]models.Comment, 0)
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	slices.SortStableFunc(out, func(a, b models.Comment) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out
}

// UpdateComment replaces the stored comment with the same ID
func (r *MemoryCommentRepository) UpdateComment(comment models.Comment) error {
	idx := r.indexOf(comment.ID)
	if idx == -1 {
		return fmt.Errorf("comment %s: %w", comment.ID, ErrNotFound)
	}
	r.comments[idx] = comment
	return nil
}

// DeleteComments removes every comment whose ID is in ids
func (r *MemoryCommentRepository) DeleteComments(ids map[string]struct{}) int {
	before := len(r.comments)
	r.comments = slices.DeleteFunc(r.comments, func(c models.Comment) bool {
		_, ok := ids[c.ID]
		return ok
	})
	return before - len(r.comments)
}

// DeleteCommentsByPostID removes every comment of a post
func (r *MemoryCommentRepository) DeleteCommentsByPostID(postID string) int {
	before := len(r.comments)
	r.comments = slices.DeleteFunc(r.comments, func(c models.Comment) bool { return c.PostID == postID })
	return before - len(r.comments)
}

// ChildrenIndex maps each parent comment ID to the IDs of its direct replies
func (r *MemoryCommentRepository) ChildrenIndex() map[string][]string {
	index := make(map[string][]string)
	for _, c := range r.comments {
		if c.ParentCommentID != nil {
			index[*c.ParentCommentID] = append(index[*c.ParentCommentID], c.ID)
		}
	}
	return index
}

func (r *MemoryCommentRepository) indexOf(id string) int {
	return slices.IndexFunc(r.comments, func(c models.Comment) bool { return c.ID == id })
}
