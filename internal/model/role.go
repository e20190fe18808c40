package model

// Role is the access level resolved for a caller.
type Role string

const (
	// RoleNone means no user record exists for the caller.
	RoleNone           Role = ""
	RoleGuest          Role = "guest"
	RoleHost           Role = "host"
	RoleAdmin          Role = "admin"
	RolePendingRequest Role = "requested"
)

// ParseRole maps a stored role string onto the closed set of roles.
// Unknown values resolve to RoleNone so they never pass a guard.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleGuest, RoleHost, RoleAdmin, RolePendingRequest:
		return Role(s)
	default:
		return RoleNone
	}
}

// Satisfies reports whether a caller holding r may pass a guard requiring required.
func (r Role) Satisfies(required Role) bool {
	switch required {
	case RoleAdmin:
		return r == RoleAdmin
	case RoleHost:
		return r == RoleHost
	case RoleGuest:
		return r == RoleGuest || r == RoleHost || r == RoleAdmin || r == RolePendingRequest
	case RolePendingRequest:
		return r == RolePendingRequest
	case RoleNone:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	if r == RoleNone {
		return "none"
	}
	return string(r)
}
