package session

import (
	"errors"
	"maps"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sanmarcos/conecta/backend/internal/models"
	"github.com/sanmarcos/conecta/backend/internal/services"
)

// ErrInvalidVote is returned for ballots other than +1 and -1
var ErrInvalidVote = errors.New("vote value must be 1 or -1")

// Versions are bumped after every mutation of the matching collection.
// Clients compare them to decide when to re-read; the values mean nothing
// beyond "changed".
type Versions struct {
	Posts         uint64 `json:"posts"`
	Comments      uint64 `json:"comments"`
	Reports       uint64 `json:"reports"`
	Notifications uint64 `json:"notifications"`
}

// Session is one client's view of the forum: its own forum instance plus
// the state the forum does not own (auth flag, ballots, saved posts).
type Session struct {
	ID        string
	CreatedAt time.Time

	lastSeen atomic.Int64

	mu            sync.RWMutex
	forum         *services.ForumService
	authenticated bool
	postVotes     map[string]int
	commentVotes  map[string]int
	saved         []string
	versions      Versions
}

// New creates an anonymous session over forum
func New(id string, forum *services.ForumService) *Session {
	s := &Session{
		ID:           id,
		CreatedAt:    time.Now(),
		forum:        forum,
		postVotes:    make(map[string]int),
		commentVotes: make(map[string]int),
	}
	s.touch(s.CreatedAt)
	return s
}

// LastSeen reports when the session was last looked up
func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

func (s *Session) touch(t time.Time) {
	s.lastSeen.Store(t.UnixNano())
}

// Forum exposes the session's forum for read-only queries. Mutations go
// through the Session so version counters stay in step.
func (s *Session) Forum() *services.ForumService {
	return s.forum
}

// Login authenticates the session as the roster user with the given email.
// A failed login leaves the session untouched.
func (s *Session) Login(credentials models.LoginCredentials) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.forum.Login(credentials)
	if err != nil {
		return models.User{}, err
	}
	s.authenticated = true
	s.versions.Notifications++
	return u, nil
}

// Logout returns the session to the anonymous state
func (s *Session) Logout() models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.forum.Logout()
	s.authenticated = false
	s.versions.Notifications++
	return s.forum.CurrentUser()
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *Session) CurrentUser() models.User {
	return s.forum.CurrentUser()
}

func (s *Session) Versions() Versions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.versions
}

// VotePost casts a ballot on a post. Repeating the held value clears it;
// the opposite value replaces it.
func (s *Session) VotePost(postID string, value int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return toggleBallot(s.postVotes, postID, value)
}

// VoteComment casts a ballot on a comment, with the same rules as VotePost
func (s *Session) VoteComment(commentID string, value int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return toggleBallot(s.commentVotes, commentID, value)
}

func toggleBallot(ballots map[string]int, id string, value int) (int, error) {
	if value != 1 && value != -1 {
		return 0, ErrInvalidVote
	}
	if ballots[id] == value {
		delete(ballots, id)
		return 0, nil
	}
	ballots[id] = value
	return value, nil
}

// PostVote returns the session's ballot on a post, 0 when there is none
func (s *Session) PostVote(postID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.postVotes[postID]
}

func (s *Session) CommentVote(commentID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.commentVotes[commentID]
}

// PostScore is the score shown for a post. There is no tally across
// sessions, so it is the session's own ballot.
func (s *Session) PostScore(postID string) int {
	return s.PostVote(postID)
}

func (s *Session) CommentScore(commentID string) int {
	return s.CommentVote(commentID)
}

// Ballots returns copies of the session's post and comment ballots
func (s *Session) Ballots() (posts, comments map[string]int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.postVotes), maps.Clone(s.commentVotes)
}

// ToggleSavePost flips a post's membership in the saved set and reports
// whether it is saved afterwards
func (s *Session) ToggleSavePost(postID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := slices.Index(s.saved, postID); idx != -1 {
		s.saved = slices.Delete(s.saved, idx, idx+1)
		return false
	}
	s.saved = append(s.saved, postID)
	return true
}

func (s *Session) IsPostSaved(postID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.saved, postID)
}

// SavedPosts returns the saved post IDs in the order they were saved
func (s *Session) SavedPosts() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.saved)
}

func (s *Session) CreatePost(input models.CreatePostInput) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.forum.CreatePost(input)
	if err != nil {
		return models.Post{}, err
	}
	s.versions.Posts++
	return p, nil
}

func (s *Session) UpdatePost(patch models.PostPatch) (models.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.forum.UpdatePost(patch)
	if ok {
		s.versions.Posts++
	}
	return p, ok
}

// DeletePost removes a post and everything hanging off it
func (s *Session) DeletePost(postID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.forum.DeletePost(postID)
	s.versions.Posts++
	s.versions.Comments++
	s.versions.Reports++
}

// CreateComment posts a comment; the fan-out notifications bump the
// notification version as well
func (s *Session) CreateComment(input models.CreateCommentInput) (models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.forum.CreateComment(input)
	if err != nil {
		return models.Comment{}, err
	}
	s.versions.Comments++
	s.versions.Notifications++
	return c, nil
}

func (s *Session) UpdateComment(commentID, content string) (models.Comment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.forum.UpdateComment(commentID, content)
	if ok {
		s.versions.Comments++
	}
	return c, ok
}

func (s *Session) DeleteComment(commentID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.forum.DeleteComment(commentID)
	s.versions.Comments++
	return removed
}

func (s *Session) CreateReport(input models.CreateReportInput) (models.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.forum.CreateReport(input)
	if err != nil {
		return models.Report{}, err
	}
	s.versions.Reports++
	return r, nil
}

// Notifications returns the current user's notifications, newest first
func (s *Session) Notifications() []models.Notification {
	return s.forum.NotificationsForUser(s.forum.CurrentUser().ID)
}

func (s *Session) UnreadNotificationsCount() int {
	return s.forum.UnreadNotificationCount(s.forum.CurrentUser().ID)
}

func (s *Session) MarkNotificationAsRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok := s.forum.MarkNotificationAsRead(id)
	s.versions.Notifications++
	return ok
}

func (s *Session) MarkAllNotificationsAsRead() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.forum.MarkAllNotificationsAsRead(s.forum.CurrentUser().ID)
	s.versions.Notifications++
	return n
}

// UpdateProfile patches the current user's profile
func (s *Session) UpdateProfile(patch models.UserPatch) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.forum.UpdateUserProfile(s.forum.CurrentUser().ID, patch)
}

// SetUserBlocked blocks or unblocks a roster user
func (s *Session) SetUserBlocked(userID string, blocked bool) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.forum.UpdateUserProfile(userID, models.UserPatch{IsBlocked: &blocked})
}
