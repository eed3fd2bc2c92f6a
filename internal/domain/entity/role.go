// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleCliente indicates a regular customer browsing the market.
	RoleCliente Role = "cliente"
	// RoleVendedor indicates a feriante who controls a stall.
	RoleVendedor Role = "vendedor"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCliente, RoleVendedor:
		return true
	default:
		return false
	}
}
