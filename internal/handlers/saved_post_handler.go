package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sanmarcos/conecta/backend/internal/models"
)

// SavedPostHandler handles saved post HTTP requests
type SavedPostHandler struct{}

// NewSavedPostHandler creates a new SavedPostHandler
func NewSavedPostHandler() *SavedPostHandler {
	return &SavedPostHandler{}
}

// RegisterSavedPostRoutes registers saved post routes
func (h *SavedPostHandler) RegisterSavedPostRoutes(g *echo.Group) {
	g.POST("/posts/:id/save", h.ToggleSavePost)
	g.GET("/saved", h.GetSavedPosts)
}

// ToggleSavePost saves or unsaves a post
func (h *SavedPostHandler) ToggleSavePost(c echo.Context) error {
	sess, err := requireLogin(c)
	if err != nil {
		return err
	}

	postID := c.Param("id")

	// Verify post exists
	if _, ok := sess.Forum().PostByID(postID); !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	saved := sess.ToggleSavePost(postID)

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"saved": saved}})
}

// GetSavedPosts returns the saved posts in the order they were saved.
// Posts deleted since are skipped.
func (h *SavedPostHandler) GetSavedPosts(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}

	ids := sess.SavedPosts()
	posts := make([]models.Post, 0, len(ids))
	for _, id := range ids {
		if p, ok := sess.Forum().PostByID(id); ok {
			posts = append(posts, p)
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"posts": enrichPosts(sess, posts)}})
}
