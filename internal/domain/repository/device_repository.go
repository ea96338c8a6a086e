// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"rituality/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device/session persistence.
var (
	// ErrDeviceNotFound is returned when a user device is not found.
	ErrDeviceNotFound = errors.New("user device not found")
	// ErrDeviceExpired is returned when a device's refresh token has expired.
	ErrDeviceExpired = errors.New("user device session has expired")
)

// DeviceRepository defines the interface for user device and session management.
// Each row represents one authenticated session; multi-device login is supported.
type DeviceRepository interface {
	// Create persists a new device session row.
	Create(ctx context.Context, device *entity.UserDevice) error

	// FindByID retrieves a device by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// FindByRefreshTokenHash retrieves an active device by its stored refresh token hash.
	FindByRefreshTokenHash(ctx context.Context, tokenHash string) (*entity.UserDevice, error)

	// FindActiveByUserID retrieves all active, unexpired devices for a user.
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// Update modifies an existing device row (token hashes, last_used_at, metadata).
	Update(ctx context.Context, device *entity.UserDevice) error

	// Deactivate marks one device inactive, ending its session.
	Deactivate(ctx context.Context, id uuid.UUID) error

	// DeactivateAllByUserID marks every device of a user inactive ("logout everywhere").
	DeactivateAllByUserID(ctx context.Context, userID uuid.UUID) error

	// CountActiveByUserID returns the number of active, unexpired devices for a user.
	CountActiveByUserID(ctx context.Context, userID uuid.UUID) (int, error)

	// DeleteExpired removes rows whose refresh tokens expired. Called by the
	// background reaper; revoked-but-unexpired rows are kept.
	DeleteExpired(ctx context.Context) error
}

// VerificationRepository stores one-time verification codes.
type VerificationRepository interface {
	// Create persists a new verification code, invalidating earlier codes of
	// the same kind for the same user.
	Create(ctx context.Context, code *entity.VerificationCode) error

	// FindActive retrieves the newest unused, unexpired code of a kind for a user.
	FindActive(ctx context.Context, userID uuid.UUID, kind entity.VerificationKind) (*entity.VerificationCode, error)

	// MarkUsed stamps a code as consumed.
	MarkUsed(ctx context.Context, id uuid.UUID) error
}

// ErrVerificationNotFound is returned when no active verification code exists.
var ErrVerificationNotFound = errors.New("verification code not found")
