package domain

import "strings"

// Role is the closed set of staff roles. The numeric values are the
// identifiers stored in the credential store and carried in tokens.
type Role int

const (
	RoleAdministrator Role = 1
	RoleVeterinarian  Role = 2
	RoleEmployee      Role = 3
)

var roleNames = map[Role]string{
	RoleAdministrator: "administrator",
	RoleVeterinarian:  "veterinarian",
	RoleEmployee:      "employee",
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// ParseRole converts a raw identifier into a Role, rejecting unknown values.
func ParseRole(id int) (Role, error) {
	r := Role(id)
	if !r.Valid() {
		return 0, ErrInvalidRole
	}
	return r, nil
}

// RoleSet is an explicit allow-list of roles. There is no hierarchy between
// roles: a set only contains what it was built with.
type RoleSet uint8

// NewRoleSet builds a RoleSet. Unknown roles are ignored.
func NewRoleSet(roles ...Role) RoleSet {
	var s RoleSet
	for _, r := range roles {
		if r.Valid() {
			s |= 1 << uint(r)
		}
	}
	return s
}

// Contains reports whether r is a member of the set.
func (s RoleSet) Contains(r Role) bool {
	return r.Valid() && s&(1<<uint(r)) != 0
}

// Roles lists the members in ascending identifier order.
func (s RoleSet) Roles() []Role {
	out := make([]Role, 0, len(roleNames))
	for _, r := range []Role{RoleAdministrator, RoleVeterinarian, RoleEmployee} {
		if s.Contains(r) {
			out = append(out, r)
		}
	}
	return out
}

func (s RoleSet) String() string {
	names := make([]string, 0, len(roleNames))
	for _, r := range s.Roles() {
		names = append(names, r.String())
	}
	return strings.Join(names, ",")
}

// RegistrableRoles are the roles an administrator may assign through
// registration. Administrator accounts are never created that way.
var RegistrableRoles = NewRoleSet(RoleVeterinarian, RoleEmployee)
