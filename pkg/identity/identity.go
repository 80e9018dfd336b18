package identity

import (
	"github.com/carevault/hdms-in-go/pkg/model"
)

// Sentinel values recorded in the audit log for failed logins.
const (
	InvalidUser = "Invalid User"
	NoRole      = "No Role"
)

// Identity is the authenticated staff member for a session.
type Identity struct {
	Username string
	Role     model.Role
}

// FromCredential creates an Identity from a matched credential.
func FromCredential(cred *model.Credential) *Identity {
	return &Identity{
		Username: cred.Username,
		Role:     cred.Role,
	}
}

// Invalid returns the sentinel identity used to audit failed logins.
func Invalid() *Identity {
	return &Identity{
		Username: InvalidUser,
		Role:     model.Role(NoRole),
	}
}
