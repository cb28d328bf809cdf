package repositories

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sanmarcos/conecta/backend/internal/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	GetUserByID(id string) (models.User, bool)
	GetUserByEmail(email string) (models.User, bool)
	GetUsers() []models.User
	UpdateUser(user models.User) error
}

// MemoryUserRepository implements UserRepository over the fixed roster
type MemoryUserRepository struct {
	users []models.User
}

// NewMemoryUserRepository creates a MemoryUserRepository holding a copy of seed
func NewMemoryUserRepository(seed []models.User) *MemoryUserRepository {
	return &MemoryUserRepository{users: slices.Clone(seed)}
}

// GetUserByID retrieves a user by ID
func (r *MemoryUserRepository) GetUserByID(id string) (models.User, bool) {
	idx := slices.IndexFunc(r.users, func(u models.User) bool { return u.ID == id })
	if idx == -1 {
		return models.User{}, false
	}
	return r.users[idx], true
}

// GetUserByEmail retrieves a user by email, ignoring case and surrounding spaces
func (r *MemoryUserRepository) GetUserByEmail(email string) (models.User, bool) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return models.User{}, false
	}
	for _, u := range r.users {
		if strings.ToLower(u.Email) == email {
			return u, true
		}
	}
	return models.User{}, false
}

// GetUsers retrieves the whole roster
func (r *MemoryUserRepository) GetUsers() []models.User {
	return slices.Clone(r.users)
}

// UpdateUser replaces the stored user with the same ID
func (r *MemoryUserRepository) UpdateUser(user models.User) error {
	idx := slices.IndexFunc(r.users, func(u models.User) bool { return u.ID == user.ID })
	if idx == -1 {
		return fmt.Errorf("user %s: %w", user.ID, ErrNotFound)
	}
	r.users[idx] = user
	return nil
}
