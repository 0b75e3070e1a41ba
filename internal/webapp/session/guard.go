package session

import "github.com/lifebit/platform/internal/core/domain"

// Decision is the outcome of a guard evaluation. Every input maps to exactly
// one decision; there is no undefined branch.
type Decision int

const (
	// ShowLoading renders the interstitial spinner. Returned while the
	// bootstrap has not resolved, so an eventually-logged-in user never sees
	// a flash of the login page.
	ShowLoading Decision = iota
	// RedirectLogin sends the user to the login view, replacing the history
	// entry so the back button cannot return to the protected page.
	RedirectLogin
	// RedirectDenied sends an authenticated but under-privileged user to the
	// access-denied view, also replacing the history entry.
	RedirectDenied
	// Render permits the nested route to render.
	Render
)

func (d Decision) String() string {
	switch d {
	case ShowLoading:
		return "showLoading"
	case RedirectLogin:
		return "redirectLogin"
	case RedirectDenied:
		return "redirectDenied"
	case Render:
		return "render"
	}
	return "unknown"
}

// Decide is the route guard: a pure function of the session status, the
// current role and the roles the route declares. A nil or empty allowed set
// means authentication-only. Safe to call on every render — it has no side
// effects and owns nothing.
func Decide(status Status, role domain.Role, allowed []domain.Role) Decision {
	switch status {
	case StatusInitial, StatusLoading:
		return ShowLoading
	case StatusLoggedIn:
		if len(allowed) == 0 {
			return Render
		}
		for _, r := range allowed {
			if r == role {
				return Render
			}
		}
		return RedirectDenied
	default:
		return RedirectLogin
	}
}

// Evaluate runs Decide against a state snapshot.
func Evaluate(state State, allowed []domain.Role) Decision {
	return Decide(state.Status, state.Role(), allowed)
}

// EvaluateNested runs an outer authentication-only guard before the inner
// role-restricted one, the way role-specific branches are mounted inside the
// authenticated shell. An unauthenticated user always reaches RedirectLogin
// before any role check runs.
func EvaluateNested(state State, allowed []domain.Role) Decision {
	if outer := Evaluate(state, nil); outer != Render {
		return outer
	}
	return Evaluate(state, allowed)
}
