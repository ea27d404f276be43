// Package session owns per-conversation state: creation, lookup, expiry and
// history recording. State is process-local and never persisted.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"insurance-agent/internal/domain"
)

// ErrNotFound is returned by Get when no session exists under the given id.
var ErrNotFound = errors.New("session: not found")

// Session is one bounded conversation between a user and the assistant.
//
// The embedded mutex serializes whole dispatch cycles against the same
// session; callers must hold it while reading or mutating LastActiveAt,
// MessageCount, History or Context. ID, UserID and CreatedAt are immutable
// after creation.
type Session struct {
	sync.Mutex

	ID        string
	UserID    string
	CreatedAt time.Time

	LastActiveAt time.Time
	MessageCount int
	History      []domain.Turn
	Context      map[string]string
}

// AppendExchange records a completed user/assistant exchange, in that order.
// When maxHistory > 0 the oldest turns are dropped to stay within the cap.
// Callers must hold the session lock.
func (s *Session) AppendExchange(userText, assistantText string, maxHistory int) {
	s.History = append(s.History,
		domain.Turn{Role: domain.RoleUser, Content: userText},
		domain.Turn{Role: domain.RoleAssistant, Content: assistantText},
	)
	if maxHistory > 0 && len(s.History) > maxHistory {
		s.History = s.History[len(s.History)-maxHistory:]
	}
}

// Store is a concurrency-safe mapping of session id to session state.
type Store struct {
	mu         sync.Mutex
	sessions   map[string]*Session
	maxHistory int

	now func() time.Time
}

// NewStore creates an empty Store. maxHistory caps each session's recorded
// turns, oldest dropped first; zero disables the cap.
func NewStore(maxHistory int) *Store {
	return &Store{
		sessions:   make(map[string]*Session),
		maxHistory: maxHistory,
		now:        time.Now,
	}
}

// MaxHistory returns the configured history cap, zero meaning unbounded.
func (s *Store) MaxHistory() int {
	return s.maxHistory
}

// GetOrCreate returns the session under sessionID, touching its last-active
// timestamp. An empty sessionID gets a freshly generated id; an unknown
// caller-supplied id creates a new session under that id rather than failing.
func (s *Store) GetOrCreate(sessionID, userID string) *Session {
	if sessionID == "" {
		sessionID = newSessionID()
	}

	s.mu.Lock()
	sess, existed := s.sessions[sessionID]
	if !existed {
		now := s.now()
		sess = &Session{
			ID:           sessionID,
			UserID:       userID,
			CreatedAt:    now,
			LastActiveAt: now,
			Context:      make(map[string]string),
		}
		s.sessions[sessionID] = sess
	}
	s.mu.Unlock()

	// Touch outside the store lock so a busy session only blocks its own
	// callers, not the whole store.
	if existed {
		sess.Lock()
		sess.LastActiveAt = s.now()
		sess.Unlock()
	}
	return sess
}

// Get returns the session under id, or ErrNotFound. Unlike GetOrCreate it
// does not touch the last-active timestamp.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

// Delete removes the session under id and reports whether one was removed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok
}

// Sweep removes every session whose last activity is older than timeout and
// returns how many were removed. There is no background scheduler; callers
// run Sweep on each dispatch so expiry latency is bounded by request arrival.
func (s *Store) Sweep(timeout time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, sess := range s.sessions {
		// A session locked by an in-flight dispatch is active; skip it
		// rather than blocking the store on its model call.
		if !sess.TryLock() {
			continue
		}
		expired := now.Sub(sess.LastActiveAt) > timeout
		sess.Unlock()
		if expired {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

var newSessionID = func() string {
	return uuid.NewString()
}
