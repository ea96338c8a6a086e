// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice represents one authenticated session on one device.
// A user may hold any number of concurrent devices; there is no uniqueness
// constraint on UserID here. Expiry timestamps and IsActive are always
// checked at auth time; the background reaper only bounds table growth.
type UserDevice struct {
	ID               uuid.UUID  // The unique ID for this device/session record.
	UserID           uuid.UUID  // Links this session to the User it belongs to.
	TokenHash        string     // SHA-256 hash of the raw access token.
	RefreshTokenHash string     // SHA-256 hash of the raw refresh token.
	TokenExpiresAt   time.Time  // Expiry of the access token.
	RefreshExpiresAt time.Time  // Expiry of the refresh token; the session dies with it.
	DeviceType       string     // e.g. "ios", "android", "web".
	DeviceName       string     // Client-supplied device label.
	UserAgent        string     // User-Agent header captured at login.
	IPAddress        string     // Client IP captured at login.
	FCMToken         string     // Firebase Cloud Messaging token, empty when push is not enabled.
	IsActive         bool       // False once the session is logged out or revoked.
	LastUsedAt       time.Time  // Bumped whenever the session refreshes its access token.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Usable reports whether this device can still mint access tokens at the given time.
func (d *UserDevice) Usable(now time.Time) bool {
	return d.IsActive && d.RefreshExpiresAt.After(now)
}

// VerificationKind discriminates the three verification code flows.
type VerificationKind string

const (
	// VerificationEmail confirms ownership of an email address.
	VerificationEmail VerificationKind = "email"
	// VerificationPhone confirms ownership of a phone number.
	VerificationPhone VerificationKind = "phone"
	// VerificationPasswordReset authorizes a password reset.
	VerificationPasswordReset VerificationKind = "password_reset"
)

// IsValid checks if the VerificationKind is a valid value.
func (k VerificationKind) IsValid() bool {
	switch k {
	case VerificationEmail, VerificationPhone, VerificationPasswordReset:
		return true
	default:
		return false
	}
}

// VerificationCode is a short-lived one-time code mailed to the user.
type VerificationCode struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Kind      VerificationKind
	Code      string // Six decimal digits.
	ExpiresAt time.Time
	UsedAt    *time.Time // Set once consumed; a used code never validates again.
	CreatedAt time.Time
}

// Valid reports whether the code can still be consumed at the given time.
func (v *VerificationCode) Valid(now time.Time) bool {
	return v.UsedAt == nil && v.ExpiresAt.After(now)
}
