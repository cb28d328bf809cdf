package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/sanmarcos/conecta/backend/internal/models"
	"github.com/sanmarcos/conecta/backend/internal/services"
	"github.com/sanmarcos/conecta/backend/internal/session"
)

const (
	sessionKey = "session"
	claimsKey  = "claims"
)

// SessionAuthMiddleware checks for a valid session token and loads the
// session it names into the context.
func SessionAuthMiddleware(jwtSecret string, sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing Authorization header")
			}

			// Expecting "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization header format")
			}
			tokenString := parts[1]

			claims := &models.SessionClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unexpected signing method")
				}
				return []byte(jwtSecret), nil
			})
			if err != nil {
				if errors.Is(err, jwt.ErrSignatureInvalid) {
					return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token signature")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}
			if !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			sess, ok := sessions.Get(claims.SessionID)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Session not found")
			}

			c.Set(claimsKey, claims)
			c.Set(sessionKey, sess)

			return next(c)
		}
	}
}

// RequireAdmin only lets logged-in moderators through. It must run after
// SessionAuthMiddleware.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := GetSession(c)
			if !ok || !sess.IsAuthenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
			}
			if !services.IsAdmin(sess.CurrentUser()) {
				return echo.NewHTTPError(http.StatusForbidden, "Admin access required")
			}
			return next(c)
		}
	}
}

// GetSession returns the session loaded by SessionAuthMiddleware
func GetSession(c echo.Context) (*session.Session, bool) {
	sess, ok := c.Get(sessionKey).(*session.Session)
	return sess, ok && sess != nil
}

// GetClaims returns the parsed token claims
func GetClaims(c echo.Context) (*models.SessionClaims, bool) {
	claims, ok := c.Get(claimsKey).(*models.SessionClaims)
	return claims, ok && claims != nil
}
