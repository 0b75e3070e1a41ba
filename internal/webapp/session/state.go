// Package session implements the client-side session gate: a single
// process-wide state container bootstrapped once per application load, and a
// pure guard function that decides whether a protected view may render.
package session

import "github.com/lifebit/platform/internal/core/domain"

// Status is the lifecycle state of the session.
type Status int

const (
	// StatusInitial is the state before the bootstrap refresh has started.
	StatusInitial Status = iota
	// StatusLoading is the state while the refresh request is in flight.
	StatusLoading
	// StatusLoggedIn means a valid session is confirmed; User is non-nil.
	StatusLoggedIn
	// StatusLoggedOut covers everything else: no session, expired session,
	// network failure, explicit logout. The UI never distinguishes them.
	StatusLoggedOut
)

func (s Status) String() string {
	switch s {
	case StatusInitial:
		return "initial"
	case StatusLoading:
		return "loading"
	case StatusLoggedIn:
		return "loggedIn"
	case StatusLoggedOut:
		return "loggedOut"
	}
	return "unknown"
}

// State is a snapshot of the session. User is non-nil if and only if
// Status == StatusLoggedIn; the store enforces the invariant on every write.
type State struct {
	Status      Status
	User        *domain.User
	AccessToken string
}

// Role returns the current user's role, or "" when logged out.
func (s State) Role() domain.Role {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}

// Credentials is what a successful login or refresh hands back.
type Credentials struct {
	AccessToken string
	User        *domain.User
}
