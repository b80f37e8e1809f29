// Package entity contains the core business objects of the project.
package entity

// Role represents the capability a caller holds in the system.
type Role string

const (
	// RoleCustomer indicates a regular customer scoped to the quotations they own.
	RoleCustomer Role = "customer"
	// RoleStaff indicates the single operator identity allowed to price and progress quotations.
	RoleStaff Role = "staff"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleStaff:
		return true
	default:
		return false
	}
}
