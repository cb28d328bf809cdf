package services

import (
	"fmt"
	"strings"

	"github.com/sanmarcos/conecta/backend/internal/models"
)

// CommentsByPostID returns the comments of a post, oldest first. Clients
// rebuild the reply tree from ParentCommentID.
func (s *ForumService) CommentsByPostID(postID string) []models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commentRepository.GetCommentsByPostID(postID)
}

// CommentByID looks up a comment
func (s *ForumService) CommentByID(id string) (models.Comment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commentRepository.GetCommentByID(id)
}

type pendingNotification struct {
	recipient models.User
	message   string
}

// CreateComment adds a comment as the current user and notifies the parent
// comment's author and the post's author, skipping the commenter. Both can
// fire for the same comment.
func (s *ForumService) CreateComment(input models.CreateCommentInput) (models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	parentID := input.ParentCommentID
	if parentID != nil && *parentID == "" {
		parentID = nil
	}

	actor := s.currentUserLocked()

	var pending []pendingNotification
	if parentID != nil {
		parent, ok := s.commentRepository.GetCommentByID(*parentID)
		if !ok || parent.PostID != input.PostID {
			return models.Comment{}, fmt.Errorf("reply to %s on post %s: %w", *parentID, input.PostID, ErrInvalidParent)
		}
		if parent.AuthorID != actor.ID {
			if target, ok := s.userRepository.GetUserByID(parent.AuthorID); ok {
				pending = append(pending, pendingNotification{
					recipient: target,
					message:   fmt.Sprintf("%s respondió a tu comentario.", actor.Name),
				})
			}
		}
	}
	if post, ok := s.postRepository.GetPostByID(input.PostID); ok && post.AuthorID != actor.ID {
		if target, ok := s.userRepository.GetUserByID(post.AuthorID); ok {
			pending = append(pending, pendingNotification{
				recipient: target,
				message:   fmt.Sprintf("%s comentó tu publicación.", actor.Name),
			})
		}
	}

	// Mint every ID up front so nothing is stored unless all of them exist.
	commentID, err := s.freshID(CommentIDPrefix, func(id string) bool {
		_, taken := s.commentRepository.GetCommentByID(id)
		return taken
	})
	if err != nil {
		return models.Comment{}, fmt.Errorf("create comment: %w", err)
	}
	minted := make(map[string]struct{}, len(pending))
	notificationIDs := make([]string, len(pending))
	for i := range pending {
		id, err := s.freshID(NotificationIDPrefix, func(id string) bool {
			if _, dup := minted[id]; dup {
				return true
			}
			_, taken := s.notificationRepository.GetNotificationByID(id)
			return taken
		})
		if err != nil {
			return models.Comment{}, fmt.Errorf("create comment notification: %w", err)
		}
		minted[id] = struct{}{}
		notificationIDs[i] = id
	}

	now := s.now()
	comment := models.Comment{
		ID:              commentID,
		PostID:          input.PostID,
		Author:          actor.Name,
		AuthorID:        actor.ID,
		Content:         strings.TrimSpace(input.Content),
		CreatedAt:       now,
		ParentCommentID: parentID,
	}
	if err := s.commentRepository.CreateComment(comment); err != nil {
		return models.Comment{}, fmt.Errorf("create comment: %w", err)
	}

	for i, p := range pending {
		commentRef := comment.ID
		notification := models.Notification{
			ID:        notificationIDs[i],
			UserID:    p.recipient.ID,
			Type:      models.NotificationReply,
			CreatedAt: now,
			Data: models.NotificationData{
				PostID:    input.PostID,
				CommentID: &commentRef,
				FromUser:  actor.Name,
				Message:   p.message,
			},
		}
		if err := s.notificationRepository.CreateNotification(notification); err != nil {
			return comment, fmt.Errorf("notify %s: %w", p.recipient.ID, err)
		}
	}

	return comment, nil
}

// UpdateComment replaces a comment's content. It returns false when the
// comment does not exist.
func (s *ForumService) UpdateComment(id, content string) (models.Comment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.commentRepository.GetCommentByID(id)
	if !ok {
		return models.Comment{}, false
	}
	comment.Content = strings.TrimSpace(content)
	if err := s.commentRepository.UpdateComment(comment); err != nil {
		return models.Comment{}, false
	}
	return comment, true
}

// DeleteComment removes a comment and every reply beneath it, returning
// how many comments were removed. Deleting a missing comment is a no-op.
func (s *ForumService) DeleteComment(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.commentRepository.DeleteComments(descendantsOf(id, s.commentRepository.ChildrenIndex()))
}

// descendantsOf walks the reply tree below root with an explicit stack.
// The visited set keeps malformed (cyclic) data from looping.
func descendantsOf(root string, children map[string][]string) map[string]struct{} {
	visited := make(map[string]struct{})
	stack := []string{root}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := visited[current]; seen {
			continue
		}
		visited[current] = struct{}{}
		for _, child := range children[current] {
			if _, seen := visited[child]; !seen {
				stack = append(stack, child)
			}
		}
	}
	return visited
}
