package member

import "errors"

var ErrInvalidRole = errors.New("invalid member role")

type Role string

const (
	RoleMember     Role = "member"
	RoleTechnician Role = "technician"
	RoleAdmin      Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleTechnician, RoleAdmin:
		return true
	default:
		return false
	}
}

// level orders roles for "at least" checks.
func (r Role) level() int {
	switch r {
	case RoleMember:
		return 1
	case RoleTechnician:
		return 2
	case RoleAdmin:
		return 3
	default:
		return 0
	}
}

func (r Role) AtLeast(min Role) bool {
	return r.IsValid() && min.IsValid() && r.level() >= min.level()
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
