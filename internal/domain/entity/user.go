// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account.
// It carries identity and credential data shared across all user types;
// type-specific data lives in the profile entities.
type User struct {
	ID              uuid.UUID          // The Global Unique Identifier (GUID) for the user.
	Email           string             // The user's primary contact email, used as the login identifier.
	Name            string             // The user's display name or real name.
	PasswordHash    string             // Bcrypt-hashed login password.
	UserType        UserType           // Discriminator controlling route authorization (homeowner/designer/contractor).
	RoleID          int                // Authorization tier, references the roles lookup table.
	ProfileCreated  bool               // True once the type-specific profile has been completed.
	EmailVerifiedAt *time.Time         // Set when the user confirms their email address. Nil until then.
	Permissions     *UserPermissions   // One-to-one permission toggles. Nil until loaded.
	Homeowner       *HomeownerProfile  // Present only for homeowner-typed users.
	Designer        *DesignerProfile   // Present only for designer-typed users.
	Contractor      *ContractorProfile // Present only for contractor-typed users.
	CreatedAt       time.Time          // Timestamp of when this user account was created.
	UpdatedAt       time.Time          // Timestamp of the last modification to this user's data.
}

// EmailVerified reports whether the user has confirmed their email address.
func (u *User) EmailVerified() bool {
	return u.EmailVerifiedAt != nil
}

// HomeownerProfile holds data specific to the homeowner user type.
type HomeownerProfile struct {
	UserID    uuid.UUID // Foreign key linking this profile to a core User entity.
	Phone     string
	City      string
	Bio       string
	AvatarKey string // Blob storage key of the profile picture.
	UpdatedAt time.Time
}

// DesignerProfile holds data specific to the designer user type.
type DesignerProfile struct {
	UserID    uuid.UUID
	Phone     string
	City      string
	Bio       string
	AvatarKey string
	Styles    []string // Design styles offered, used as search tags.
	BudgetMin int
	BudgetMax int
	Verified  bool // Admin-set; never client-writable.
	UpdatedAt time.Time
}

// ContractorProfile holds data specific to the contractor user type.
type ContractorProfile struct {
	UserID    uuid.UUID
	Phone     string
	City      string
	Bio       string
	AvatarKey string
	Trades    []string // Trades offered, used as search tags.
	BudgetMin int
	BudgetMax int
	Verified  bool
	UpdatedAt time.Time
}

// UserPermissions is the one-to-one set of permission toggles for a user.
// Device-permission toggles default to opt-out; marketing-style toggles
// default to opt-in.
type UserPermissions struct {
	UserID             uuid.UUID
	CalendarAccess     bool
	NotificationAccess bool
	ContactsAccess     bool
	LocationAccess     bool
	MarketingOptIn     bool
	RitualOptIn        bool
	CommunityOptIn     bool
	UpdatedAt          time.Time
}

// DefaultPermissions returns the permission row created alongside a new user.
func DefaultPermissions(userID uuid.UUID) *UserPermissions {
	return &UserPermissions{
		UserID:         userID,
		MarketingOptIn: true,
		RitualOptIn:    true,
		CommunityOptIn: true,
	}
}
