// Package verifyemail implements the landing page behind the link in the
// email-change verification mail. It confirms the token at most once, shows
// the outcome, and on success counts down before redirecting to the login
// view so the user signs in with the new address.
package verifyemail

import (
	"context"
	"sync"
)

// Phase is the page's visible state.
type Phase int

const (
	// PhaseVerifying shows the spinner while the confirmation is in flight.
	PhaseVerifying Phase = iota
	// PhaseSuccess shows the confirmation and the redirect countdown.
	PhaseSuccess
	// PhaseError shows the failure message with a link back to login.
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseVerifying:
		return "verifying"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	}
	return "unknown"
}

// Messages shown by the page.
const (
	msgMissingToken = "El enlace de verificación no es válido o ha expirado"
	msgGenericError = "Ocurrió un error inesperado. Intenta de nuevo."
)

// API is the slice of the collaborator API the page consumes.
type API interface {
	// ConfirmEmailChange applies the pending email change identified by token.
	ConfirmEmailChange(ctx context.Context, token string) error
}

// Session is the part of the session store the page touches on success: the
// old credential no longer matches the account, so it is dropped locally.
type Session interface {
	Invalidate()
}

// State is a snapshot of the page.
type State struct {
	Phase     Phase
	Message   string
	Countdown int
}

// Page owns the verification landing state. All methods are safe for
// concurrent use.
type Page struct {
	api      API
	sess     Session
	redirect func()

	mu         sync.Mutex
	state      State
	loaded     bool
	redirected bool
}

// NewPage creates a Page that counts down from countdown ticks on success
// and then invokes redirect exactly once.
func NewPage(api API, sess Session, countdown int, redirect func()) *Page {
	return &Page{
		api:      api,
		sess:     sess,
		redirect: redirect,
		state:    State{Phase: PhaseVerifying, Countdown: countdown},
	}
}

// State returns the current snapshot.
func (p *Page) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Load runs the confirmation for token. Only the first call has any effect:
// remount churn must not consume the single-use token twice. An empty token
// moves straight to the error phase with no request issued.
func (p *Page) Load(ctx context.Context, token string) {
	p.mu.Lock()
	if p.loaded {
		p.mu.Unlock()
		return
	}
	p.loaded = true
	if token == "" {
		p.state.Phase = PhaseError
		p.state.Message = msgMissingToken
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()

	err := p.api.ConfirmEmailChange(ctx, token)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.state.Phase = PhaseError
		p.state.Message = errorMessage(err)
		return
	}
	p.state.Phase = PhaseSuccess
	p.sess.Invalidate()
}

// Tick advances the success countdown by one unit. At zero it fires the
// redirect; further ticks are no-ops, so the redirect never runs twice.
func (p *Page) Tick() {
	p.mu.Lock()
	if p.state.Phase != PhaseSuccess || p.redirected {
		p.mu.Unlock()
		return
	}
	if p.state.Countdown > 0 {
		p.state.Countdown--
	}
	if p.state.Countdown > 0 {
		p.mu.Unlock()
		return
	}
	p.redirected = true
	p.mu.Unlock()

	p.redirect()
}

func errorMessage(err error) string {
	type messager interface{ ErrorMessage() string }
	if m, ok := err.(messager); ok {
		if msg := m.ErrorMessage(); msg != "" {
			return msg
		}
	}
	return msgGenericError
}
