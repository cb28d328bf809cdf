package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sanmarcos/conecta/backend/internal/models"
	"github.com/sanmarcos/conecta/backend/internal/services"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct{}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/comments", h.CreateComment)
	g.GET("/posts/:post_id/comments", h.GetCommentsByPostID)
	g.PUT("/comments/:id", h.UpdateComment)
	g.DELETE("/comments/:id", h.DeleteComment)
}

// CreateComment creates a new comment or reply on a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	sess, _, err := requireActiveUser(c)
	if err != nil {
		return err
	}
	postID := c.Param("post_id")

	var req models.CreateCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	// Verify post exists
	if _, ok := sess.Forum().PostByID(postID); !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	comment, err := sess.CreateComment(models.CreateCommentInput{
		PostID:          postID,
		Content:         req.Content,
		ParentCommentID: req.ParentCommentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidParent):
			return echo.NewHTTPError(http.StatusBadRequest, "Parent comment not found on this post")
		case errors.Is(err, services.ErrIDExhausted):
			return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, comment)
}

// GetCommentsByPostID retrieves all comments for a post, oldest first
func (h *CommentHandler) GetCommentsByPostID(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	postID := c.Param("post_id")

	// Verify post exists
	if _, ok := sess.Forum().PostByID(postID); !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	if notModified(c, "comments", sess.Versions().Comments) {
		return c.NoContent(http.StatusNotModified)
	}

	return c.JSON(http.StatusOK, sess.Forum().CommentsByPostID(postID))
}

// UpdateComment updates an existing comment. Only the author may edit it.
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	sess, err := requireLogin(c)
	if err != nil {
		return err
	}
	commentID := c.Param("id")

	var req models.UpdateCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	existing, ok := sess.Forum().CommentByID(commentID)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
	}
	if !canModify(sess.CurrentUser(), existing.AuthorID) {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to update this comment")
	}

	comment, ok := sess.UpdateComment(commentID, req.Content)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
	}

	return c.JSON(http.StatusOK, comment)
}

// DeleteComment deletes a comment and all replies beneath it
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	sess, err := requireLogin(c)
	if err != nil {
		return err
	}
	commentID := c.Param("id")

	existing, ok := sess.Forum().CommentByID(commentID)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
	}
	user := sess.CurrentUser()
	if !canModify(user, existing.AuthorID) && !canModerate(user) {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this comment")
	}

	removed := sess.DeleteComment(commentID)

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"deleted": removed}})
}
