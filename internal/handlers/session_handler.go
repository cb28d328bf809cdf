package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/sanmarcos/conecta/backend/internal/models"
	"github.com/sanmarcos/conecta/backend/internal/services"
	"github.com/sanmarcos/conecta/backend/internal/session"
)

// SessionHandler handles session and authentication HTTP requests
type SessionHandler struct {
	sessions  *session.Manager
	jwtSecret string
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(sessions *session.Manager, jwtSecret string) *SessionHandler {
	return &SessionHandler{
		sessions:  sessions,
		jwtSecret: jwtSecret,
	}
}

// RegisterPublicRoutes registers the routes reachable without a token
func (h *SessionHandler) RegisterPublicRoutes(g *echo.Group) {
	g.POST("/sessions", h.CreateSession)
}

// RegisterSessionRoutes registers session and auth routes
func (h *SessionHandler) RegisterSessionRoutes(g *echo.Group) {
	g.DELETE("/sessions", h.DeleteSession)
	g.GET("/session", h.GetSession)
	g.POST("/auth/login", h.Login)
	g.POST("/auth/logout", h.Logout)
}

// SessionView is everything a client needs to render its chrome
type SessionView struct {
	ID            string           `json:"id"`
	Authenticated bool             `json:"authenticated"`
	IsAdmin       bool             `json:"is_admin"`
	CurrentUser   models.User      `json:"current_user"`
	Versions      session.Versions `json:"versions"`
	SavedPosts    []string         `json:"saved_posts"`
	PostVotes     map[string]int   `json:"post_votes"`
	CommentVotes  map[string]int   `json:"comment_votes"`
	UnreadCount   int              `json:"unread_notifications"`
}

func newSessionView(sess *session.Session) SessionView {
	user := sess.CurrentUser()
	postVotes, commentVotes := sess.Ballots()
	authenticated := sess.IsAuthenticated()
	return SessionView{
		ID:            sess.ID,
		Authenticated: authenticated,
		IsAdmin:       authenticated && services.IsAdmin(user),
		CurrentUser:   user,
		Versions:      sess.Versions(),
		SavedPosts:    sess.SavedPosts(),
		PostVotes:     postVotes,
		CommentVotes:  commentVotes,
		UnreadCount:   sess.UnreadNotificationsCount(),
	}
}

// CreateSession starts an anonymous session and returns its token
func (h *SessionHandler) CreateSession(c echo.Context) error {
	sess := h.sessions.Create()

	token, err := h.generateJWT(sess.ID)
	if err != nil {
		h.sessions.Delete(sess.ID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(http.StatusCreated, echo.Map{"token": token, "session": newSessionView(sess)})
}

// DeleteSession discards the caller's session and everything in it
func (h *SessionHandler) DeleteSession(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	h.sessions.Delete(sess.ID)
	return c.NoContent(http.StatusNoContent)
}

// GetSession returns the caller's session state
func (h *SessionHandler) GetSession(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newSessionView(sess))
}

// Login authenticates the session as a roster user, by email only
func (h *SessionHandler) Login(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}

	var req models.LoginCredentials
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := sess.Login(req); err != nil {
		var authErr *services.AuthError
		if errors.As(err, &authErr) {
			return echo.NewHTTPError(http.StatusUnauthorized, authErr.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, newSessionView(sess))
}

// Logout returns the session to the anonymous default user
func (h *SessionHandler) Logout(c echo.Context) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	sess.Logout()
	return c.JSON(http.StatusOK, newSessionView(sess))
}

// generateJWT generates a token naming the session
func (h *SessionHandler) generateJWT(sessionID string) (string, error) {
	claims := &models.SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  sessionID,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		return "", err
	}
	return t, nil
}
