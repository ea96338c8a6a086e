package usecase

import (
	"context"

	"rituality/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdatePermissionsInput carries the permission toggles to apply. Nil fields
// keep the stored value, so a PATCH only touches what it names.
type UpdatePermissionsInput struct {
	UserID             uuid.UUID
	CalendarAccess     *bool
	NotificationAccess *bool
	ContactsAccess     *bool
	LocationAccess     *bool
	MarketingOptIn     *bool
	RitualOptIn        *bool
	CommunityOptIn     *bool
}

// UserUsecase defines account-level operations shared by all user types.
type UserUsecase interface {
	// GetMe loads the calling user with permissions and profile.
	GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdatePermissions applies a partial permission update and returns the result.
	UpdatePermissions(ctx context.Context, input *UpdatePermissionsInput) (*entity.UserPermissions, error)

	// ListDevices returns the user's active sessions.
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// RevokeDevice ends one session; it must belong to the calling user.
	RevokeDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
