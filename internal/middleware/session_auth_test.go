package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/sanmarcos/conecta/backend/internal/models"
	"github.com/sanmarcos/conecta/backend/internal/session"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, sessionID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.SessionClaims{SessionID: sessionID})
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func run(t *testing.T, mw echo.MiddlewareFunc, authHeader string, next echo.HandlerFunc) (error, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())
	return mw(next)(c), c
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestSessionAuthMiddlewareRejects(t *testing.T) {
	sessions := session.NewManager(session.DefaultLimits())
	sess := sessions.Create()
	mw := SessionAuthMiddleware(testSecret, sessions)
	next := func(c echo.Context) error {
		t.Fatal("next must not run")
		return nil
	}

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic " + signToken(t, testSecret, sess.ID)},
		{"garbage token", "Bearer abc.def.ghi"},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", sess.ID)},
		{"unknown session", "Bearer " + signToken(t, testSecret, "no-such-session")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err, _ := run(t, mw, tt.header, next)
			if code := statusOf(t, err); code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", code)
			}
		})
	}
}

func TestSessionAuthMiddlewareLoadsSession(t *testing.T) {
	sessions := session.NewManager(session.DefaultLimits())
	sess := sessions.Create()
	mw := SessionAuthMiddleware(testSecret, sessions)

	called := false
	err, c := run(t, mw, "Bearer "+signToken(t, testSecret, sess.ID), func(c echo.Context) error {
		called = true
		return nil
	})
	if err != nil || !called {
		t.Fatalf("expected next to run, err=%v", err)
	}
	got, ok := GetSession(c)
	if !ok || got != sess {
		t.Fatal("expected the session in the context")
	}
	if claims, ok := GetClaims(c); !ok || claims.SessionID != sess.ID {
		t.Fatal("expected the claims in the context")
	}
}

func TestRequireAdmin(t *testing.T) {
	sessions := session.NewManager(session.DefaultLimits())
	sess := sessions.Create()

	call := func() error {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/admin/reports", nil), httptest.NewRecorder())
		c.Set(sessionKey, sess)
		return RequireAdmin()(func(c echo.Context) error { return nil })(c)
	}

	if code := statusOf(t, call()); code != http.StatusUnauthorized {
		t.Fatalf("anonymous: expected 401, got %d", code)
	}

	sess.Login(models.LoginCredentials{Email: "ana.castillo@unmsm.edu.pe"})
	if code := statusOf(t, call()); code != http.StatusForbidden {
		t.Fatalf("student: expected 403, got %d", code)
	}

	sess.Login(models.LoginCredentials{Email: "admin@unmsm.edu.pe"})
	if err := call(); err != nil {
		t.Fatalf("admin: expected access, got %v", err)
	}
}
