package services

import (
	"strings"

	"github.com/sanmarcos/conecta/backend/internal/models"
	"github.com/sanmarcos/conecta/backend/pkg/imageurl"
)

// Users returns the roster with image URLs normalized
func (s *ForumService) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.userRepository.GetUsers()
	for i := range users {
		users[i] = s.presentUser(users[i])
	}
	return users
}

// UserByID looks up a roster user
func (s *ForumService) UserByID(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.userRepository.GetUserByID(id)
	if !ok {
		return models.User{}, false
	}
	return s.presentUser(u), true
}

// CurrentUser returns the user this forum instance is acting as
func (s *ForumService) CurrentUser() models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.presentUser(s.currentUserLocked())
}

// Login switches the current user to the roster user with the given
// email. Matching ignores case and surrounding spaces.
func (s *ForumService) Login(credentials models.LoginCredentials) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.userRepository.GetUserByEmail(credentials.Email)
	if !ok {
		return models.User{}, &AuthError{Email: strings.TrimSpace(credentials.Email)}
	}
	s.currentUserID = user.ID
	return s.presentUser(user), nil
}

// Logout resets the current user to the default user
func (s *ForumService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUserID = s.defaultUserID
}

// UpdateUserProfile merges patch into the user's record. Image URLs are
// normalized on the way in; a blank image clears it back to the default.
func (s *ForumService) UpdateUserProfile(userID string, patch models.UserPatch) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.userRepository.GetUserByID(userID)
	if !ok {
		return models.User{}, false
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Program != nil {
		user.Program = *patch.Program
	}
	if patch.Bio != nil {
		user.Bio = stringCopy(*patch.Bio)
	}
	if patch.AvatarURL != nil {
		user.AvatarURL = s.normalizedOrNil(*patch.AvatarURL)
	}
	if patch.BannerURL != nil {
		user.BannerURL = s.normalizedOrNil(*patch.BannerURL)
	}
	if patch.Interests != nil {
		user.Interests = stringCopy(*patch.Interests)
	}
	if patch.Hobbies != nil {
		user.Hobbies = stringCopy(*patch.Hobbies)
	}
	if patch.Phone != nil {
		user.Phone = stringCopy(*patch.Phone)
	}
	if patch.Location != nil {
		user.Location = stringCopy(*patch.Location)
	}
	if patch.IsBlocked != nil {
		user.IsBlocked = *patch.IsBlocked
	}

	if err := s.userRepository.UpdateUser(user); err != nil {
		return models.User{}, false
	}
	return s.presentUser(user), true
}

func (s *ForumService) currentUserLocked() models.User {
	if u, ok := s.userRepository.GetUserByID(s.currentUserID); ok {
		return u
	}
	if u, ok := s.userRepository.GetUserByID(s.defaultUserID); ok {
		return u
	}
	return models.User{ID: s.defaultUserID}
}

// presentUser fills profile defaults and normalizes image URLs
func (s *ForumService) presentUser(u models.User) models.User {
	u = u.Clone()
	if u.CreatedAt == nil {
		now := s.now()
		u.CreatedAt = &now
	}
	if u.Bio == nil {
		empty := ""
		u.Bio = &empty
	}
	avatar := s.images.OrDefault(u.AvatarURL, imageurl.DefaultAvatar)
	banner := s.images.OrDefault(u.BannerURL, imageurl.DefaultBanner)
	u.AvatarURL = &avatar
	u.BannerURL = &banner
	return u
}

func stringCopy(v string) *string {
	return &v
}

func (s *ForumService) normalizedOrNil(url string) *string {
	out := s.images.Normalize(url)
	if out == "" {
		return nil
	}
	return &out
}
