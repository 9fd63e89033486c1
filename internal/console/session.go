package console

import (
	"sync"
	"time"

	"recs-admin/internal/form"

	"github.com/google/uuid"
)

// Session is one operator's view. All access goes through its mutex.
type Session struct {
	ID uuid.UUID

	mu       sync.Mutex
	view     View
	lastSeen time.Time
}

func newSession(id uuid.UUID, now time.Time) *Session {
	return &Session{ID: id, lastSeen: now}
}

// View returns a copy of the current view.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

func (s *Session) begin(submitted *form.State) form.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if submitted != nil {
		s.view.Form = *submitted
	}
	s.view.Message = ""
	return s.view.Form
}

func (s *Session) apply(u Update) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Apply(u)
	return s.view
}

// Sessions keeps operator sessions in memory, keyed by id.
type Sessions struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	now      func() time.Time
}

func NewSessions() *Sessions {
	return &Sessions{
		sessions: make(map[uuid.UUID]*Session),
		now:      time.Now,
	}
}

// Get returns the session for id, creating an empty one if needed.
func (ss *Sessions) Get(id uuid.UUID) *Session {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	now := ss.now()
	s, ok := ss.sessions[id]
	if !ok {
		s = newSession(id, now)
		ss.sessions[id] = s
	}
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
	return s
}

// Len reports the number of live sessions.
func (ss *Sessions) Len() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return len(ss.sessions)
}

// Prune drops sessions idle for longer than maxIdle and reports how many
// were removed.
func (ss *Sessions) Prune(maxIdle time.Duration) int {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	cutoff := ss.now().Add(-maxIdle)
	removed := 0
	for id, s := range ss.sessions {
		s.mu.Lock()
		idle := s.lastSeen.Before(cutoff)
		s.mu.Unlock()
		if idle {
			delete(ss.sessions, id)
			removed++
		}
	}
	return removed
}
