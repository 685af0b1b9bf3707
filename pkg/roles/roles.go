package roles

import "strings"

// Role is the profile carried by an account. Profiles are free text on the
// registration form, so unknown values rank as the lowest level.
type Role string

const (
	Driver   Role = "motorista"
	Operator Role = "operador"
	Admin    Role = "admin"
)

type HierarchyLevel int

const (
	DriverLevel   HierarchyLevel = 1
	OperatorLevel HierarchyLevel = 2
	AdminLevel    HierarchyLevel = 3
)

// Parse normalises a profile string as typed by a user.
func Parse(profile string) Role {
	return Role(strings.ToLower(strings.TrimSpace(profile)))
}

func (r Role) GetHierarchyLevel() HierarchyLevel {
	switch r {
	case Operator:
		return OperatorLevel
	case Admin:
		return AdminLevel
	default:
		return DriverLevel
	}
}

// HasPermission reports whether r ranks at least as high as requiredRole.
func (r Role) HasPermission(requiredRole Role) bool {
	return r.GetHierarchyLevel() >= requiredRole.GetHierarchyLevel()
}

func (r Role) IsValid() bool {
	switch r {
	case Driver, Operator, Admin:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}
