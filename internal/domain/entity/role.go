package entity

import "strings"

// Role is the closed set of account roles.
type Role string

const (
	RoleUser   Role = "user"
	RoleVendor Role = "vendor"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleVendor, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// ParseRole accepts a role name in any case. ok is false for unknown names.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	return r, r.Valid()
}

// RoleSet is the set of roles allowed through a gate.
type RoleSet map[Role]struct{}

func Roles(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

func (s RoleSet) Has(r Role) bool {
	_, ok := s[r]
	return ok
}

func (s RoleSet) Slice() []Role {
	out := make([]Role, 0, len(s))
	for _, r := range []Role{RoleUser, RoleVendor, RoleAdmin} {
		if s.Has(r) {
			out = append(out, r)
		}
	}
	return out
}
