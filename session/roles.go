package session

// Role is the role claim the backend attaches to a session. The set is
// closed: these are exactly the literals the backend can emit. Strings
// outside the set parse to RoleUnknown, which routes like an advocate.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleAdvocate Role = "ADVOCATE"
	RoleStaff    Role = "STAFF"
	RoleClient   Role = "CLIENT"
	RoleUnknown  Role = ""
)

// Dashboard route paths, matching the SPA routes the backend's web
// frontend uses.
const (
	AdvocateDashboardRoute = "/dashboard"
	ClientDashboardRoute   = "/client-dashboard"
	LoginRoute             = "/login"
)

// ParseRole maps a raw role string onto the closed role set.
func ParseRole(raw string) Role {
	switch Role(raw) {
	case RoleAdmin:
		return RoleAdmin
	case RoleAdvocate:
		return RoleAdvocate
	case RoleStaff:
		return RoleStaff
	case RoleClient:
		return RoleClient
	}
	return RoleUnknown
}

// DashboardRoute dispatches a role to its dashboard root. The switch
// is exhaustive over the closed role set so a new backend role is a
// visible change here rather than a silent fallthrough; only clients
// get the restricted portal, everything else lands on the advocate
// workspace.
func (r Role) DashboardRoute() string {
	switch r {
	case RoleClient:
		return ClientDashboardRoute
	case RoleAdmin, RoleAdvocate, RoleStaff, RoleUnknown:
		return AdvocateDashboardRoute
	}
	return AdvocateDashboardRoute
}

// IsClient reports whether the role is restricted to the client portal.
func (r Role) IsClient() bool {
	return r == RoleClient
}
