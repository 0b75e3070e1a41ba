package session

import (
	"strings"

	"github.com/lifebit/platform/internal/core/domain"
)

// Route declares one navigable path and its authorization policy. The table
// keeps policy out of the rendering tree: guards consume it, tests exercise
// it, and the server ships the same table for its own groups.
type Route struct {
	Path      string
	Protected bool
	// AllowedRoles restricts a protected route further; empty means any
	// authenticated user.
	AllowedRoles []domain.Role
}

// Routes is the full client-side route surface.
var Routes = []Route{
	{Path: "/"},
	{Path: "/login"},
	{Path: "/auth/callback"},
	{Path: "/auth/verificar-email"},
	{Path: "/reset-password"},
	{Path: "/finalizar-registro"},
	{Path: "/acceso-denegado"},

	{Path: "/dashboard", Protected: true},
	{Path: "/dashboard/mi-cuenta", Protected: true},
	{Path: "/dashboard/ayuda", Protected: true},
	{Path: "/dashboard/residentes", Protected: true, AllowedRoles: []domain.Role{domain.RoleOwner, domain.RoleAdministrator}},
	{Path: "/dashboard/recursos", Protected: true, AllowedRoles: []domain.Role{domain.RoleOwner, domain.RoleAdministrator}},
	{Path: "/dashboard/setup", Protected: true, AllowedRoles: []domain.Role{domain.RoleOwner}},
	{Path: "/dashboard/contratos", Protected: true, AllowedRoles: []domain.Role{domain.RoleOwner}},
}

// Lookup finds the route declared for path.
func Lookup(path string) (Route, bool) {
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// Fallback returns the redirect target for an unmatched path: unknown nested
// dashboard paths land on the dashboard index, everything else on the
// landing page.
func Fallback(path string) string {
	if strings.HasPrefix(path, "/dashboard/") {
		return "/dashboard"
	}
	return "/"
}

// DecideFor resolves path against the table and evaluates the nested guards
// for it. Unprotected routes always render; unknown paths never reach the
// guard because the router redirects them first via Fallback.
func DecideFor(state State, path string) Decision {
	route, ok := Lookup(path)
	if !ok || !route.Protected {
		return Render
	}
	return EvaluateNested(state, route.AllowedRoles)
}
