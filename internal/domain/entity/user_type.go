// Package entity contains the core business objects of the project.
package entity

// UserType represents the kind of account a user holds in the marketplace.
type UserType string

const (
	// UserTypeHomeowner indicates a homeowner account.
	UserTypeHomeowner UserType = "homeowner"
	// UserTypeDesigner indicates a designer account.
	UserTypeDesigner UserType = "designer"
	// UserTypeContractor indicates a contractor account.
	UserTypeContractor UserType = "contractor"
)

// String returns the string representation of the UserType.
func (t UserType) String() string {
	return string(t)
}

// IsValid checks if the UserType is a valid value.
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeHomeowner, UserTypeDesigner, UserTypeContractor:
		return true
	default:
		return false
	}
}

// Role is a lookup entity for the authorization tier, seeded with "admin" and "user".
type Role struct {
	ID          int
	Name        string
	Description string
}

const (
	// RoleAdmin is the seeded id of the admin role.
	RoleAdmin = 1
	// RoleUser is the seeded id of the regular user role.
	RoleUser = 2
)
