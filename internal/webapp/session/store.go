package session

import (
	"context"
	"sync"

	"github.com/lifebit/platform/internal/core/domain"
)

// AuthAPI is the slice of the collaborator API the session gate consumes.
type AuthAPI interface {
	// Refresh exchanges the server-held refresh credential for a fresh
	// access token and user record. It fails when no valid session exists.
	Refresh(ctx context.Context) (*Credentials, error)
}

// Store is the single process-wide holder of session state. Readers
// subscribe to changes; writers are limited to Bootstrap and the explicit
// auth actions below. All methods are safe for concurrent use, though the
// intended host is a single-threaded UI loop.
type Store struct {
	api AuthAPI

	mu           sync.Mutex
	state        State
	bootstrapped bool
	subs         map[int]func(State)
	nextSub      int
}

// NewStore creates a Store in the initial state.
func NewStore(api AuthAPI) *Store {
	return &Store{
		api:   api,
		state: State{Status: StatusInitial},
		subs:  make(map[int]func(State)),
	}
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to run after every state change and returns an
// unsubscribe function. fn is called with the new snapshot while the store
// lock is held, so it must not call back into the store.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Bootstrap issues the one-time session refresh. Only the first call has any
// effect: remount churn from the host framework's double-invoke behaviour
// must not trigger a second request. The call blocks until the refresh
// resolves; callers run it in the background.
//
// Success moves the store to loggedIn; any failure — expired credential,
// network error, server error — collapses silently to loggedOut. The guard's
// redirect path handles the rest, so no error is ever surfaced here.
func (s *Store) Bootstrap(ctx context.Context) {
	s.mu.Lock()
	if s.bootstrapped || s.state.Status != StatusInitial {
		s.mu.Unlock()
		return
	}
	s.bootstrapped = true
	s.setStateLocked(State{Status: StatusLoading})
	s.mu.Unlock()

	creds, err := s.api.Refresh(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil || creds == nil || creds.User == nil {
		s.setStateLocked(State{Status: StatusLoggedOut})
		return
	}
	s.setStateLocked(State{
		Status:      StatusLoggedIn,
		User:        creds.User,
		AccessToken: creds.AccessToken,
	})
}

// SetLoggedIn records a successful explicit login.
func (s *Store) SetLoggedIn(creds Credentials) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setStateLocked(State{
		Status:      StatusLoggedIn,
		User:        creds.User,
		AccessToken: creds.AccessToken,
	})
}

// Invalidate drops the session locally: explicit logout, token invalidation
// or a confirmed email change (the next login uses the new address).
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setStateLocked(State{Status: StatusLoggedOut})
}

// UpdateUser replaces the user record after a profile mutation. Ignored
// unless logged in.
func (s *Store) UpdateUser(user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Status != StatusLoggedIn || user == nil {
		return
	}
	next := s.state
	next.User = user
	s.setStateLocked(next)
}

// setStateLocked writes the new state and notifies subscribers. The user
// invariant is enforced here so no writer can break it.
func (s *Store) setStateLocked(next State) {
	if next.Status != StatusLoggedIn {
		next.User = nil
		next.AccessToken = ""
	}
	s.state = next

	for _, fn := range s.subs {
		fn(next)
	}
}
