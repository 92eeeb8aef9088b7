// Package session owns the in-memory authenticated-user state: the
// observable session store, the bootstrap that rebuilds a session from a
// persisted credential, and the controller exposing every auth operation.
package session

import (
	"sync"

	"github.com/vortextv/vortexcli/internal/client/models"
)

// Session is the single in-memory authentication state. It is replaced
// wholesale on every transition, never mutated in place by consumers.
//
// Invariant: IsAuthenticated implies User != nil.
type Session struct {
	User            *models.User
	IsAuthenticated bool
	IsLoading       bool
	Error           string
	Success         string
}

// Navigator is where the controller sends the user after auth transitions.
// The CLI implements it with its current-route state.
type Navigator interface {
	NavigateTo(route string)
}

// Store holds the current Session and broadcasts replacements to
// subscribers. It replaces the context/provider broadcast of a UI tree with
// an explicit publish-subscribe object.
type Store struct {
	mu     sync.RWMutex
	cur    Session
	subs   map[int]func(Session)
	nextID int
}

// NewStore starts in the loading state: a bootstrap is expected before the
// first guard evaluation.
func NewStore() *Store {
	return &Store{
		cur:  Session{IsLoading: true},
		subs: make(map[int]func(Session)),
	}
}

// NewTestStore returns a Store seeded with an initial session. For tests.
func NewTestStore(initial Session) *Store {
	return &Store{
		cur:  initial,
		subs: make(map[int]func(Session)),
	}
}

// Current returns the session as of now.
func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Subscribe registers fn to be called with every session replacement.
// The returned function unsubscribes.
func (s *Store) Subscribe(fn func(Session)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// update replaces the session with a mutated copy and notifies subscribers.
func (s *Store) update(mut func(*Session)) {
	s.mu.Lock()
	next := s.cur
	mut(&next)
	s.cur = next

	fns := make([]func(Session), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(next)
	}
}
