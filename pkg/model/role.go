package model

import "fmt"

// Role is the staff role attached to a credential.
type Role string

const (
	RoleManagement Role = "management"
	RoleAdmin      Role = "admin"
	RoleNurse      Role = "nurse"
	RoleClinician  Role = "clinician"
)

// ParseRole validates a role string from the credential source.
// Unrecognized roles are rejected; they hold no permissions anywhere.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleManagement, RoleAdmin, RoleNurse, RoleClinician:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Valid reports whether the role is one of the four known roles.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

func (r Role) String() string {
	return string(r)
}
