package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User is a member of the roster. The roster is fixed at startup; only
// profile fields change.
type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	FacultyID FacultyID  `json:"faculty_id"`
	Program   string     `json:"program"`
	Email     string     `json:"email,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	Bio       *string    `json:"bio,omitempty"`
	AvatarURL *string    `json:"avatar_url,omitempty"`
	BannerURL *string    `json:"banner_url,omitempty"`
	Interests *string    `json:"interests,omitempty"` // comma separated
	Hobbies   *string    `json:"hobbies,omitempty"`   // comma separated
	Phone     *string    `json:"phone,omitempty"`
	Location  *string    `json:"location,omitempty"`
	IsBlocked bool       `json:"is_blocked"`
}

// Clone returns a copy of u that shares no pointers with it
func (u User) Clone() User {
	u.CreatedAt = clonePtr(u.CreatedAt)
	u.Bio = clonePtr(u.Bio)
	u.AvatarURL = clonePtr(u.AvatarURL)
	u.BannerURL = clonePtr(u.BannerURL)
	u.Interests = clonePtr(u.Interests)
	u.Hobbies = clonePtr(u.Hobbies)
	u.Phone = clonePtr(u.Phone)
	u.Location = clonePtr(u.Location)
	return u
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// UserPatch is a partial profile update. Nil fields keep their value.
type UserPatch struct {
	Name      *string
	Program   *string
	Bio       *string
	AvatarURL *string
	BannerURL *string
	Interests *string
	Hobbies   *string
	Phone     *string
	Location  *string
	IsBlocked *bool
}

// LoginCredentials identifies a roster user by email (mock auth, no passwords)
type LoginCredentials struct {
	Email string `json:"email" validate:"required,trimmed_min=1"`
}

// UpdateProfileRequest defines the request body for updating the own profile
type UpdateProfileRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=2,max=80"`
	Program   *string `json:"program,omitempty" validate:"omitempty,max=120"`
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	BannerURL *string `json:"banner_url,omitempty"`
	Interests *string `json:"interests,omitempty" validate:"omitempty,max=300"`
	Hobbies   *string `json:"hobbies,omitempty" validate:"omitempty,max=300"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Location  *string `json:"location,omitempty" validate:"omitempty,max=120"`
}

// Patch converts the request into a profile patch
func (r UpdateProfileRequest) Patch() UserPatch {
	return UserPatch{
		Name:      r.Name,
		Program:   r.Program,
		Bio:       r.Bio,
		AvatarURL: r.AvatarURL,
		BannerURL: r.BannerURL,
		Interests: r.Interests,
		Hobbies:   r.Hobbies,
		Phone:     r.Phone,
		Location:  r.Location,
	}
}

// BlockUserRequest defines the request body for blocking or unblocking a user
type BlockUserRequest struct {
	Blocked *bool `json:"blocked" validate:"required"`
}

// SessionClaims are the JWT claims identifying an API session
type SessionClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}
