// Package authz holds the role → permitted-operation table. The CLI checks
// it before running any store operation; hiding a menu entry is not an
// access control boundary, this table is.
package authz

import "github.com/carevault/hdms-in-go/pkg/model"

// Operation names an action a staff member can perform against the record
// store. The same names appear as action labels in the audit log.
type Operation string

const (
	OpRetrieve Operation = "retrieve"
	OpAdd      Operation = "add"
	OpRemove   Operation = "remove"
	OpCount    Operation = "count"
	OpStats    Operation = "stats"
)

// permissions maps each role to the operations it may perform. Roles absent
// from the table (including unrecognized ones) hold no permissions.
var permissions = map[model.Role][]Operation{
	model.RoleManagement: {OpStats},
	model.RoleAdmin:      {OpCount},
	model.RoleNurse:      {OpRetrieve, OpAdd, OpRemove, OpCount},
	model.RoleClinician:  {OpRetrieve, OpAdd, OpRemove, OpCount},
}

// Can reports whether the role is permitted to perform the operation.
func Can(role model.Role, op Operation) bool {
	for _, allowed := range permissions[role] {
		if allowed == op {
			return true
		}
	}
	return false
}

// Permitted returns the operations the role may perform, in a stable order.
func Permitted(role model.Role) []Operation {
	ops := permissions[role]
	out := make([]Operation, len(ops))
	copy(out, ops)
	return out
}
