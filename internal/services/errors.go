package services

import (
	"errors"
	"strings"

	"github.com/sanmarcos/conecta/backend/internal/models"
)

// ErrInvalidParent is returned when a reply names a parent comment that
// does not exist or belongs to another post
var ErrInvalidParent = errors.New("parent comment must exist on the same post")

// AuthError is returned by Login when no roster user has the given email.
// Its message is shown to the user verbatim.
type AuthError struct {
	Email string
}

func (e *AuthError) Error() string {
	return "Usuario no encontrado. Usa un correo registrado."
}

// IsAdmin reports whether u may use the moderation tools
func IsAdmin(u models.User) bool {
	return strings.Contains(strings.ToLower(u.Email), "admin") ||
		strings.Contains(strings.ToLower(u.Name), "admin")
}
