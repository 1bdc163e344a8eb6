// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular user role.
	RoleUser Role = "USER"
	// RoleVendor indicates a user that may own shops.
	RoleVendor Role = "VENDOR"
	// RoleAdmin indicates a moderator with full access.
	RoleAdmin Role = "ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleVendor, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanOwnShops reports whether the role may create shops.
func (r Role) CanOwnShops() bool {
	return r == RoleAdmin || r == RoleVendor
}
