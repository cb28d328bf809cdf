package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sanmarcos/conecta/backend/internal/models"
)

// AdminHandler serves the moderation tools. Its routes sit behind
// middleware.RequireAdmin.
type AdminHandler struct{}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// RegisterAdminRoutes registers moderation routes
func (h *AdminHandler) RegisterAdminRoutes(g *echo.Group) {
	g.GET("/reports", h.GetReportedPosts)
	g.PUT("/users/:id/block", h.BlockUser)
}

// GetReportedPosts lists reported posts, most reported first
func (h *AdminHandler) GetReportedPosts(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"posts": sess.Forum().ReportedPosts()}})
}

// BlockUser blocks or unblocks a user
func (h *AdminHandler) BlockUser(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	userID := c.Param("id")

	var req models.BlockUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if userID == sess.CurrentUser().ID {
		return echo.NewHTTPError(http.StatusBadRequest, "You cannot block yourself")
	}

	user, ok := sess.SetUserBlocked(userID, *req.Blocked)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	return c.JSON(http.StatusOK, user)
}
