package repositories

import (
	"fmt"
	"slices"

	"github.com/sanmarcos/conecta/backend/internal/models"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post models.Post) error
	GetPostByID(id string) (models.Post, bool)
	GetAllPosts() []models.Post
	GetPostsByCategory(categoryID models.CategoryID) []models.Post
	GetPostsByFaculty(facultyID models.FacultyID) []models.Post
	UpdatePost(post models.Post) error
	DeletePost(id string) bool
}

// MemoryPostRepository implements PostRepository over a slice kept newest
// first. It is not safe for concurrent use; the forum service serializes
// access.
type MemoryPostRepository struct {
	posts []models.Post
}

// NewMemoryPostRepository creates a MemoryPostRepository holding a copy of seed
func NewMemoryPostRepository(seed []models.Post) *MemoryPostRepository {
	return &MemoryPostRepository{posts: slices.Clone(seed)}
}

// CreatePost prepends a post
func (r *MemoryPostRepository) CreatePost(post models.Post) error {
	if r.indexOf(post.ID) != -1 {
		return fmt.Errorf("post %s: %w", post.ID, ErrDuplicateID)
	}
	r.posts = slices.Insert(r.posts, 0, post)
	return nil
}

// GetPostByID retrieves a post by ID
func (r *MemoryPostRepository) GetPostByID(id string) (models.Post, bool) {
	idx := r.indexOf(id)
	if idx == -1 {
		return models.Post{}, false
	}
	return r.posts[idx], true
}

// GetAllPosts retrieves all posts, newest first
func (r *MemoryPostRepository) GetAllPosts() []models.Post {
	return slices.Clone(r.posts)
}

// GetPostsByCategory retrieves the posts of one category
func (r *MemoryPostRepository) GetPostsByCategory(categoryID models.CategoryID) []models.Post {
	return r.filter(func(p models.Post) bool { return p.CategoryID == categoryID })
}

// GetPostsByFaculty retrieves the posts of one faculty
func (r *MemoryPostRepository) GetPostsByFaculty(facultyID models.FacultyID) []models.Post {
	return r.filter(func(p models.Post) bool { return p.FacultyID == facultyID })
}

// UpdatePost replaces the stored post with the same ID
func (r *MemoryPostRepository) UpdatePost(post models.Post) error {
	idx := r.indexOf(post.ID)
	if idx == -1 {
		return fmt.Errorf("post %s: %w", post.ID, ErrNotFound)
	}
	r.posts[idx] = post
	return nil
}

// DeletePost removes a post by ID and reports whether it existed
func (r *MemoryPostRepository) DeletePost(id string) bool {
	before := len(r.posts)
	r.posts = slices.DeleteFunc(r.posts, func(p models.Post) bool { return p.ID == id })
	return len(r.posts) != before
}

func (r *MemoryPostRepository) indexOf(id string) int {
	return slices.IndexFunc(r.posts, func(p models.Post) bool { return p.ID == id })
}

func (r *MemoryPostRepository) filter(keep func(models.Post) bool) []models.Post {
	out := make([]models.Post, 0)
	for _, p := range r.posts {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
