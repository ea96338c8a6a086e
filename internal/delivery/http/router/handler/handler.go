// Package handler contains the HTTP handlers for the application.
package handler

import (
	"rituality/internal/delivery/http/middleware"
	domainerrors "rituality/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// currentUserID reads the authenticated user's id planted by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(middleware.KeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.Wrap(domainerrors.ErrUnauthorized, "user id missing from context")
	}

	return userID, nil
}

// pathUUID parses a uuid path parameter, mapping garbage to a 400.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrValidationFailed, name+" is not a valid uuid")
	}

	return id, nil
}

// parseUUIDField parses a uuid carried in a request body field.
func parseUUIDField(value, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrValidationFailed, name+" is not a valid uuid")
	}

	return id, nil
}

// bindAndValidate binds the request body and runs validator tags.
func bindAndValidate(c echo.Context, input any) error {
	if err := c.Bind(input); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "malformed request body")
	}

	return c.Validate(input)
}
