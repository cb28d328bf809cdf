package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sanmarcos/conecta/backend/internal/models"
	"github.com/sanmarcos/conecta/backend/internal/services"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct{}

// NewPostHandler creates a new PostHandler
func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/:id", h.GetPost)
	g.PUT("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
}

// CreatePost creates a new post as the logged-in user
func (h *PostHandler) CreatePost(c echo.Context) error {
	sess, _, err := requireActiveUser(c)
	if err != nil {
		return err
	}

	var req models.CreatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := sess.CreatePost(models.CreatePostInput{
		Title:      strings.TrimSpace(req.Title),
		Content:    strings.TrimSpace(req.Content),
		CategoryID: models.CategoryID(req.CategoryID),
		FacultyID:  models.FacultyID(req.FacultyID),
		CourseID:   req.CourseID,
	})
	if err != nil {
		if errors.Is(err, services.ErrIDExhausted) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, post)
}

// GetPost retrieves a post by ID
func (h *PostHandler) GetPost(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}

	post, ok := sess.Forum().PostByID(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	return c.JSON(http.StatusOK, enrichPost(sess, post))
}

// UpdatePost updates an existing post. Only the author may edit it.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	sess, err := requireLogin(c)
	if err != nil {
		return err
	}
	postID := c.Param("id")

	var req models.UpdatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	existingPost, ok := sess.Forum().PostByID(postID)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	// Ensure the user updating the post is the owner
	if !canModify(sess.CurrentUser(), existingPost.AuthorID) {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to update this post")
	}

	patch := models.PostPatch{ID: postID, CourseID: req.CourseID}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		patch.Title = &title
	}
	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		patch.Content = &content
	}
	if req.CategoryID != nil {
		categoryID := models.CategoryID(*req.CategoryID)
		patch.CategoryID = &categoryID
	}
	if req.FacultyID != nil {
		facultyID := models.FacultyID(*req.FacultyID)
		patch.FacultyID = &facultyID
	}

	post, ok := sess.UpdatePost(patch)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	return c.JSON(http.StatusOK, post)
}

// DeletePost deletes a post with its comments and reports. Authors may
// delete their own posts; moderators may delete any.
func (h *PostHandler) DeletePost(c echo.Context) error {
	sess, err := requireLogin(c)
	if err != nil {
		return err
	}
	postID := c.Param("id")

	existingPost, ok := sess.Forum().PostByID(postID)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	user := sess.CurrentUser()
	if !canModify(user, existingPost.AuthorID) && !canModerate(user) {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this post")
	}

	sess.DeletePost(postID)

	return c.NoContent(http.StatusNoContent)
}
