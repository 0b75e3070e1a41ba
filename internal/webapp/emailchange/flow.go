package emailchange

import (
	"context"
	"regexp"
	"sync"
)

// API is the slice of the collaborator API the flow consumes.
type API interface {
	// VerifyPassword checks the current password without side effects.
	VerifyPassword(ctx context.Context, password string) error
	// RequestEmailChange stores the pending address and sends the
	// verification mail.
	RequestEmailChange(ctx context.Context, newEmail string) error
}

// Messages shown without a server round trip.
const (
	msgPasswordRequired = "Ingresa tu contraseña"
	msgEmailInvalid     = "Ingresa un correo electrónico válido"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const maxEmailLen = 255

// Flow runs the email-change dialog: it owns the State, performs the server
// calls for each step, and drops responses that arrive after the dialog was
// closed. All methods are safe for concurrent use.
type Flow struct {
	api API

	mu       sync.Mutex
	state    State
	gen      int
	onChange func(State)
}

// NewFlow creates a Flow in the initial state. onChange, if non-nil, runs
// after every state change with the new snapshot; it is called while the flow
// lock is held and must not call back into the flow.
func NewFlow(api API, onChange func(State)) *Flow {
	return &Flow{api: api, state: Initial(), onChange: onChange}
}

// State returns the current snapshot.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// SubmitPassword runs the first step. An empty password fails locally with
// no request issued.
func (f *Flow) SubmitPassword(ctx context.Context, password string) {
	if password == "" {
		f.fail(StepVerifyPassword, msgPasswordRequired)
		return
	}
	f.submit(ctx, StepVerifyPassword, "", func(ctx context.Context) error {
		return f.api.VerifyPassword(ctx, password)
	})
}

// SubmitNewEmail runs the second step. A malformed or over-long address
// fails locally with no request issued.
func (f *Flow) SubmitNewEmail(ctx context.Context, newEmail string) {
	if len(newEmail) > maxEmailLen || !emailPattern.MatchString(newEmail) {
		f.fail(StepEnterNewEmail, msgEmailInvalid)
		return
	}
	f.submit(ctx, StepEnterNewEmail, newEmail, func(ctx context.Context) error {
		return f.api.RequestEmailChange(ctx, newEmail)
	})
}

// Close dismisses the dialog and resets it, so the next open starts at the
// password step with no stale error. A request still in flight keeps running
// but its outcome is discarded.
func (f *Flow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gen++
	f.apply(Closed{})
}

// submit dispatches one step's server call. The generation captured before
// the call guards the result: Close bumps it, so a late response from a
// dismissed dialog never mutates the fresh state.
func (f *Flow) submit(ctx context.Context, step Step, email string, call func(context.Context) error) {
	f.mu.Lock()
	if f.state.Step != step || f.state.Submitting {
		f.mu.Unlock()
		return
	}
	f.apply(Submitted{})
	gen := f.gen
	f.mu.Unlock()

	err := call(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gen != gen {
		return
	}
	if err != nil {
		f.apply(Failed{Message: errorMessage(err)})
		return
	}
	f.apply(Succeeded{Email: email})
}

// fail records a local validation error, gated on the step the input
// belongs to so a stray submit cannot write an error onto another step.
func (f *Flow) fail(step Step, msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state.Step != step || f.state.Submitting {
		return
	}
	f.state.APIError = msg
	f.notify()
}

func (f *Flow) apply(e Event) {
	f.state = Reduce(f.state, e)
	f.notify()
}

func (f *Flow) notify() {
	if f.onChange != nil {
		f.onChange(f.state)
	}
}

// errorMessage surfaces the server-provided message verbatim when there is
// one, with a generic fallback for transport failures.
func errorMessage(err error) string {
	type messager interface{ ErrorMessage() string }
	if m, ok := err.(messager); ok {
		if msg := m.ErrorMessage(); msg != "" {
			return msg
		}
	}
	return "Ocurrió un error inesperado. Intenta de nuevo."
}
