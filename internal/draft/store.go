package draft

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("draft session not found")

// Store keeps live draft sessions in memory, keyed by session ID.
// Sessions are per-server state; an abandoned draft simply ages out
// with the process.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Open creates a new session for the user.
func (st *Store) Open(userID uuid.UUID) *Session {
	s := NewSession(userID)

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	return s
}

// Get returns the session owned by userID, or ErrSessionNotFound. A
// session belonging to another user is reported as missing rather than
// forbidden.
func (st *Store) Get(id, userID uuid.UUID) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()

	if !ok || s.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Close removes the session once submitted or abandoned.
func (st *Store) Close(id uuid.UUID) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
