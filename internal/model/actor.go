package model

// Role is a capability granted by the identity provider.
type Role uint8

const (
	RoleMember Role = 1 << iota
	RoleModerator
	RoleAdmin
)

var roleNames = map[string]Role{
	"member":    RoleMember,
	"moderator": RoleModerator,
	"admin":     RoleAdmin,
}

// RoleSet is an immutable set of roles attached to an Actor.
type RoleSet uint8

func NewRoleSet(roles ...Role) RoleSet {
	var s RoleSet
	for _, r := range roles {
		s |= RoleSet(r)
	}
	return s
}

// ParseRoles builds a RoleSet from role names. Unknown names are ignored.
func ParseRoles(names []string) RoleSet {
	var s RoleSet
	for _, n := range names {
		if r, ok := roleNames[n]; ok {
			s |= RoleSet(r)
		}
	}
	return s
}

func (s RoleSet) Has(r Role) bool {
	return s&RoleSet(r) != 0
}

// HasAny reports whether the set intersects the given roles.
func (s RoleSet) HasAny(roles ...Role) bool {
	for _, r := range roles {
		if s.Has(r) {
			return true
		}
	}
	return false
}

func (s RoleSet) Names() []string {
	names := make([]string, 0, len(roleNames))
	for _, n := range []string{"member", "moderator", "admin"} {
		if s.Has(roleNames[n]) {
			names = append(names, n)
		}
	}
	return names
}

// Actor is the authenticated principal performing an action.
type Actor struct {
	ID    int64
	Roles RoleSet
}
