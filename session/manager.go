package session

import "sync"

// Session bundles the mutable state owned by one shopper session.
// Mutate a Session from a single goroutine at a time.
type Session struct {
	Key          string
	Profile      *Profile
	Conversation *Conversation
}

// NewSession creates a fresh session with empty state.
func NewSession(key string) *Session {
	return &Session{
		Key:          key,
		Profile:      NewProfile(),
		Conversation: NewConversation(),
	}
}

// Manager owns the session table and guarantees one Session instance per
// key. It is safe for concurrent use; the Sessions it hands out are not.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for the key, creating it on first use.
func (m *Manager) Get(key string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.sessions[key]; ok {
		return existing
	}
	created := NewSession(key)
	m.sessions[key] = created
	return created
}

// End disposes of a session's state. Safe to call for unknown keys.
func (m *Manager) End(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, key)
}

// Len returns the number of active sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
