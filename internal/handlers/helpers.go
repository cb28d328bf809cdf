package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sanmarcos/conecta/backend/internal/middleware"
	"github.com/sanmarcos/conecta/backend/internal/models"
	"github.com/sanmarcos/conecta/backend/internal/services"
	"github.com/sanmarcos/conecta/backend/internal/session"
)

// getSession returns the caller's session, loaded by the auth middleware
func getSession(c echo.Context) (*session.Session, error) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Session not found")
	}
	return sess, nil
}

// requireLogin is getSession for routes that change forum data
func requireLogin(c echo.Context) (*session.Session, error) {
	sess, err := getSession(c)
	if err != nil {
		return nil, err
	}
	if !sess.IsAuthenticated() {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	return sess, nil
}

// requireActiveUser also rejects blocked users, for routes that publish content
func requireActiveUser(c echo.Context) (*session.Session, models.User, error) {
	sess, err := requireLogin(c)
	if err != nil {
		return nil, models.User{}, err
	}
	user := sess.CurrentUser()
	if user.IsBlocked {
		return nil, models.User{}, echo.NewHTTPError(http.StatusForbidden, "User is blocked")
	}
	return sess, user, nil
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	return nil
}

// canModify reports whether user may edit or delete content written by authorID
func canModify(user models.User, authorID string) bool {
	return authorID != "" && user.ID == authorID
}

func canModerate(user models.User) bool {
	return services.IsAdmin(user)
}

func pageParams(c echo.Context, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = defaultLimit
	}
	return page, limit
}

func paginate[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := min(start+limit, len(items))
	return items[start:end]
}

func pageMeta(page, limit, totalItems int) echo.Map {
	totalPages := int(math.Ceil(float64(totalItems) / float64(limit)))
	return echo.Map{
		"currentPage":     page,
		"totalPages":      totalPages,
		"totalItems":      totalItems,
		"itemsPerPage":    limit,
		"hasNextPage":     page < totalPages,
		"hasPreviousPage": page > 1,
	}
}

// notModified sets a weak ETag for a versioned collection and reports
// whether the client already holds that version
func notModified(c echo.Context, collection string, version uint64) bool {
	tag := fmt.Sprintf(`W/"%s-%d"`, collection, version)
	c.Response().Header().Set("ETag", tag)
	return c.Request().Header.Get("If-None-Match") == tag
}
