// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleCustomer is the default role of every registered account.
	RoleCustomer Role = "customer"
	// RoleSeller owns a shop and manages its products and orders.
	RoleSeller Role = "seller"
	// RoleShipper delivers orders.
	RoleShipper Role = "shipper"
	// RoleAdmin moderates the marketplace.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleSeller, RoleShipper, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsApplicable reports whether a customer may apply to be promoted to r.
func (r Role) IsApplicable() bool {
	return r == RoleSeller || r == RoleShipper
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
