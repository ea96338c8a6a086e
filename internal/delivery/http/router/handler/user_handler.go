package handler

import (
	"log/slog"
	"net/http"

	"rituality/internal/delivery/http/response"
	"rituality/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account-level handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type updatePermissionsRequest struct {
	CalendarAccess     *bool `json:"calendarAccess"`
	NotificationAccess *bool `json:"notificationAccess"`
	ContactsAccess     *bool `json:"contactsAccess"`
	LocationAccess     *bool `json:"locationAccess"`
	MarketingOptIn     *bool `json:"marketingOptIn"`
	RitualOptIn        *bool `json:"ritualOptIn"`
	CommunityOptIn     *bool `json:"communityOptIn"`
}

// GetMe returns the calling user with permissions and profile state.
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetMe(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "")
}

// UpdatePermissions applies a partial permission toggle update.
func (h *UserHandler) UpdatePermissions(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req updatePermissionsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	perms, err := h.uc.UpdatePermissions(c.Request().Context(), &usecase.UpdatePermissionsInput{
		UserID:             userID,
		CalendarAccess:     req.CalendarAccess,
		NotificationAccess: req.NotificationAccess,
		ContactsAccess:     req.ContactsAccess,
		LocationAccess:     req.LocationAccess,
		MarketingOptIn:     req.MarketingOptIn,
		RitualOptIn:        req.RitualOptIn,
		CommunityOptIn:     req.CommunityOptIn,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPermissionsView(perms), "Permissions updated")
}

// ListDevices returns the caller's active sessions.
func (h *UserHandler) ListDevices(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	devices, err := h.uc.ListDevices(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDeviceViews(devices), "")
}

// RevokeDevice ends one of the caller's sessions.
func (h *UserHandler) RevokeDevice(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	deviceID, err := pathUUID(c, "deviceId")
	if err != nil {
		return err
	}

	if err := h.uc.RevokeDevice(c.Request().Context(), userID, deviceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Device revoked")
}
