// Package emailchange implements the guarded multi-step flow behind the
// "change email" dialog: verify the current password, submit the new
// address, show the confirmation notice. The state machine is a value type
// with a pure reducer so every transition is testable without any UI.
package emailchange

// Step is the dialog's current position in the flow.
type Step int

const (
	// StepVerifyPassword is the initial step on every open.
	StepVerifyPassword Step = iota
	// StepEnterNewEmail is reached only after the server accepts the password.
	StepEnterNewEmail
	// StepConfirmationSent is terminal; it displays the pending address.
	StepConfirmationSent
)

func (s Step) String() string {
	switch s {
	case StepVerifyPassword:
		return "verifyPassword"
	case StepEnterNewEmail:
		return "enterNewEmail"
	case StepConfirmationSent:
		return "confirmationSent"
	}
	return "unknown"
}

// State is one snapshot of the dialog. Steps only advance; the sole way back
// is closing the dialog, which discards the whole value.
type State struct {
	Step         Step
	PendingEmail string
	Submitting   bool
	APIError     string
}

// Initial returns the state every dialog open starts from.
func Initial() State {
	return State{Step: StepVerifyPassword}
}

// Event drives the reducer.
type Event interface{ isEvent() }

// Submitted marks the start of a server round trip for the current step.
type Submitted struct{}

// Succeeded marks the server accepting the current step. Email carries the
// submitted address and is only meaningful when leaving StepEnterNewEmail.
type Succeeded struct{ Email string }

// Failed carries the server-provided message for the current step.
type Failed struct{ Message string }

// Closed discards the dialog state.
type Closed struct{}

func (Submitted) isEvent() {}
func (Succeeded) isEvent() {}
func (Failed) isEvent()    {}
func (Closed) isEvent()    {}

// Reduce is the pure transition function. Unknown combinations leave the
// state untouched, so no event can move the flow backwards or skip a step.
func Reduce(s State, e Event) State {
	switch e := e.(type) {
	case Submitted:
		if s.Submitting || s.Step == StepConfirmationSent {
			return s
		}
		s.Submitting = true
		s.APIError = ""
		return s

	case Succeeded:
		if !s.Submitting {
			return s
		}
		s.Submitting = false
		switch s.Step {
		case StepVerifyPassword:
			s.Step = StepEnterNewEmail
		case StepEnterNewEmail:
			s.Step = StepConfirmationSent
			s.PendingEmail = e.Email
		}
		return s

	case Failed:
		if !s.Submitting {
			return s
		}
		s.Submitting = false
		s.APIError = e.Message
		return s

	case Closed:
		return Initial()
	}
	return s
}
