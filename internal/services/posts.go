package services

import (
	"fmt"

	"github.com/sanmarcos/conecta/backend/internal/models"
)

// Posts returns every post, newest first
func (s *ForumService) Posts() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.postRepository.GetAllPosts()
}

// PostByID looks up a post
func (s *ForumService) PostByID(id string) (models.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.postRepository.GetPostByID(id)
}

// PostsByCategory returns the posts of one category, newest first
func (s *ForumService) PostsByCategory(categoryID models.CategoryID) []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.postRepository.GetPostsByCategory(categoryID)
}

// PostsByFaculty returns the posts of one faculty, newest first
func (s *ForumService) PostsByFaculty(facultyID models.FacultyID) []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.postRepository.GetPostsByFaculty(facultyID)
}

// CreatePost publishes a post as the current user. Input is assumed to be
// validated by the caller.
func (s *ForumService) CreatePost(input models.CreatePostInput) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.freshID(PostIDPrefix, func(id string) bool {
		_, taken := s.postRepository.GetPostByID(id)
		return taken
	})
	if err != nil {
		return models.Post{}, fmt.Errorf("create post: %w", err)
	}

	author := s.currentUserLocked()
	post := models.Post{
		ID:         id,
		Title:      input.Title,
		Content:    input.Content,
		CategoryID: input.CategoryID,
		FacultyID:  input.FacultyID,
		Author:     author.Name,
		AuthorID:   author.ID,
		CreatedAt:  s.now(),
		CourseID:   input.CourseID,
	}
	if err := s.postRepository.CreatePost(post); err != nil {
		return models.Post{}, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// UpdatePost merges the fields present in patch into the post. It returns
// false when the post does not exist.
func (s *ForumService) UpdatePost(patch models.PostPatch) (models.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.postRepository.GetPostByID(patch.ID)
	if !ok {
		return models.Post{}, false
	}

	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Content != nil {
		post.Content = *patch.Content
	}
	if patch.CategoryID != nil {
		post.CategoryID = *patch.CategoryID
	}
	if patch.FacultyID != nil {
		post.FacultyID = *patch.FacultyID
	}
	if patch.CourseID.Set {
		post.CourseID = patch.CourseID.Ptr()
	}

	if err := s.postRepository.UpdatePost(post); err != nil {
		return models.Post{}, false
	}
	return post, true
}

// DeletePost removes a post together with its comments and reports.
// Deleting a missing post is a no-op.
func (s *ForumService) DeletePost(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.postRepository.DeletePost(id)
	s.commentRepository.DeleteCommentsByPostID(id)
	s.reportRepository.DeleteReportsByPostID(id)
}
