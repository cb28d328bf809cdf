package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sanmarcos/conecta/backend/internal/models"
)

// UserHandler handles HTTP requests related to users
type UserHandler struct{}

// NewUserHandler creates a new UserHandler
func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// RegisterProfileRoutes registers user profile-related routes
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/profile", h.GetProfile)    // Get own profile
	g.PUT("/profile", h.UpdateProfile) // Update own profile
	g.GET("/users", h.GetUsers)
	g.GET("/users/:id", h.GetUser)
}

// GetUsers lists the roster
func (h *UserHandler) GetUsers(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sess.Forum().Users())
}

func (h *UserHandler) GetUser(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	user, ok := sess.Forum().UserByID(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
	}
	return c.JSON(http.StatusOK, user)
}

// GetProfile retrieves the current user's profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sess.CurrentUser())
}

// UpdateProfile updates the logged-in user's profile
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	sess, err := requireLogin(c)
	if err != nil {
		return err
	}

	var req models.UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, ok := sess.UpdateProfile(req.Patch())
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
	}
	return c.JSON(http.StatusOK, user)
}
