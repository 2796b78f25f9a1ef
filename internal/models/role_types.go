package models

// Role is the closed set of permission tiers. The small integer stored in
// the role claim (and in the accounts table) maps onto it exactly once, at
// the authentication boundary; nothing downstream re-parses the claim.
type Role int

const (
	RoleAdministrator Role = 1
	RoleModerator     Role = 2
	RoleDeveloper     Role = 3
	RoleMember        Role = 4
)

// ParseRole maps a role id from a token claim or the accounts table.
// The second return is false for ids outside the closed set.
func ParseRole(id int) (Role, bool) {
	switch Role(id) {
	case RoleAdministrator, RoleModerator, RoleDeveloper, RoleMember:
		return Role(id), true
	}
	return 0, false
}

func (r Role) String() string {
	switch r {
	case RoleAdministrator:
		return "administrator"
	case RoleModerator:
		return "moderator"
	case RoleDeveloper:
		return "developer"
	case RoleMember:
		return "member"
	}
	return "unknown"
}

// In reports whether r is one of the allowed roles.
func (r Role) In(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}
