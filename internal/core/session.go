package core

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"attendance.service/internal/core/model"
)

// Session is an authenticated user's server-side state, created at login and
// destroyed at logout.
type Session struct {
	Token     string      `json:"token"`
	User      *model.User `json:"user"`
	StartedAt time.Time   `json:"startedAt"`
}

// SessionManager owns the live sessions. It replaces the global mutable
// "current user" the original app kept: session state has exactly one owner
// here, with login creating and logout destroying it.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionManager creates an empty session manager.
func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*Session)}
}

// Start creates a session for the given user and returns it.
func (m *SessionManager) Start(user *model.User) *Session {
	s := &Session{
		Token:     uuid.NewString(),
		User:      user,
		StartedAt: time.Now().UTC(),
	}

	m.mu.Lock()
	m.sessions[s.Token] = s
	m.mu.Unlock()
	return s
}

// Get resolves a session token.
func (m *SessionManager) Get(token string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[token]
	return s, ok
}

// End destroys the session with the given token.
func (m *SessionManager) End(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}
