package impl

import (
	"context"
	"log/slog"

	deliverycontext "rituality/internal/delivery/context"
	"rituality/internal/domain/entity"
	domainerrors "rituality/internal/domain/errors"
	"rituality/internal/domain/repository"
	"rituality/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo   repository.UserRepository
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:   params.UserRepo,
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetMe loads the calling user with permissions and profile.
func (srv *userService) GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "failed to load account")
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	return user, nil
}

// UpdatePermissions applies a partial permission update. Only fields the
// caller named are changed.
func (srv *userService) UpdatePermissions(ctx context.Context, input *usecase.UpdatePermissionsInput) (*entity.UserPermissions, error) {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account for permission update")
	}
	if user.Permissions == nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "account has no permissions row")
	}

	perms := user.Permissions
	applyToggle(&perms.CalendarAccess, input.CalendarAccess)
	applyToggle(&perms.NotificationAccess, input.NotificationAccess)
	applyToggle(&perms.ContactsAccess, input.ContactsAccess)
	applyToggle(&perms.LocationAccess, input.LocationAccess)
	applyToggle(&perms.MarketingOptIn, input.MarketingOptIn)
	applyToggle(&perms.RitualOptIn, input.RitualOptIn)
	applyToggle(&perms.CommunityOptIn, input.CommunityOptIn)

	if err := srv.userRepo.UpdatePermissions(ctx, perms); err != nil {
		return nil, errors.Wrap(err, "failed to store permission update")
	}

	srv.log(ctx).Debug("Permissions updated", slog.Any("userID", input.UserID))

	return perms, nil
}

// ListDevices returns the user's active sessions.
func (srv *userService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := srv.deviceRepo.FindActiveByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active devices")
	}

	return devices, nil
}

// RevokeDevice ends one session after checking ownership.
func (srv *userService) RevokeDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	device, err := srv.deviceRepo.FindByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "device not found")
		}

		return errors.Wrap(err, "failed to load device")
	}
	if device.UserID != userID {
		return errors.Wrap(domainerrors.ErrForbidden, "device does not belong to user")
	}

	if err := srv.deviceRepo.Deactivate(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to revoke device")
	}

	srv.log(ctx).Info("Device revoked", slog.Any("userID", userID), slog.Any("deviceID", deviceID))

	return nil
}

func applyToggle(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
