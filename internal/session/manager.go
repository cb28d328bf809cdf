package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sanmarcos/conecta/backend/internal/services"
)

const (
	DefaultIdleTimeout = 2 * time.Hour
	DefaultMaxSessions = 10000
)

// Limits bound how much the Manager keeps alive. A session unused for
// longer than IdleTimeout is dropped, and once MaxSessions are live the
// least recently used one makes room for a new session.
type Limits struct {
	IdleTimeout time.Duration
	MaxSessions int
}

// DefaultLimits returns the limits used when nothing is configured
func DefaultLimits() Limits {
	return Limits{IdleTimeout: DefaultIdleTimeout, MaxSessions: DefaultMaxSessions}
}

// Manager keeps the live sessions. Each session gets a freshly seeded forum
// of its own; nothing is shared between sessions.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	options  []services.Option
	limits   Limits
	now      func() time.Time
}

// NewManager creates a Manager whose forums are built with opts. Zero
// fields in limits fall back to the defaults.
func NewManager(limits Limits, opts ...services.Option) *Manager {
	if limits.IdleTimeout <= 0 {
		limits.IdleTimeout = DefaultIdleTimeout
	}
	if limits.MaxSessions <= 0 {
		limits.MaxSessions = DefaultMaxSessions
	}
	return &Manager{
		sessions: make(map[string]*Session),
		options:  opts,
		limits:   limits,
		now:      time.Now,
	}
}

// Create starts an anonymous session, evicting the least recently used
// one when the manager is full
func (m *Manager) Create() *Session {
	s := New(uuid.NewString(), services.NewSeededForumService(m.options...))

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweepLocked(now)
	if len(m.sessions) >= m.limits.MaxSessions {
		m.evictOldestLocked()
	}
	s.touch(now)
	m.sessions[s.ID] = s
	return s
}

// Get looks up a live session and marks it as used. Sessions past their
// idle timeout are dropped here even if no sweep has run yet.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	now := m.now()
	if m.expired(s, now) {
		delete(m.sessions, id)
		return nil, false
	}
	s.touch(now)
	return s, true
}

// Delete drops a session. Unknown IDs are ignored.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep drops every idle session and returns how many were removed
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sweepLocked(m.now())
}

// Run sweeps idle sessions every interval until ctx is done
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				log.Printf("Removed %d idle sessions", n)
			}
		}
	}
}

func (m *Manager) expired(s *Session, now time.Time) bool {
	return now.Sub(s.LastSeen()) > m.limits.IdleTimeout
}

func (m *Manager) sweepLocked(now time.Time) int {
	removed := 0
	for id, s := range m.sessions {
		if m.expired(s, now) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

func (m *Manager) evictOldestLocked() {
	var oldestID string
	var oldest time.Time
	for id, s := range m.sessions {
		if seen := s.LastSeen(); oldestID == "" || seen.Before(oldest) {
			oldestID, oldest = id, seen
		}
	}
	if oldestID != "" {
		delete(m.sessions, oldestID)
	}
}
