package api

import "github.com/lifebit/platform/internal/core/domain"

// RoutePolicy binds a route prefix to the roles allowed to use it. The table
// is the single authorization policy of the API; the router consumes it when
// registering groups, and the client ships a mirror of it for its guards.
// An empty AllowedRoles slice means authentication-only.
type RoutePolicy struct {
	Prefix       string
	AllowedRoles []domain.Role
}

// Policies is ordered from most to least privileged; order has no semantic
// effect, prefixes never overlap.
var Policies = []RoutePolicy{
	{Prefix: "/setup", AllowedRoles: []domain.Role{domain.RoleOwner}},
	{Prefix: "/residentes", AllowedRoles: []domain.Role{domain.RoleOwner, domain.RoleAdministrator}},
	{Prefix: "/recursos", AllowedRoles: []domain.Role{domain.RoleOwner, domain.RoleAdministrator}},
	{Prefix: "/perfil", AllowedRoles: nil},
}

// RolesFor returns the allowed roles for a route prefix, or nil when the
// prefix is authentication-only or unknown.
func RolesFor(prefix string) []domain.Role {
	for _, p := range Policies {
		if p.Prefix == prefix {
			return p.AllowedRoles
		}
	}
	return nil
}
