package handler

import (
	"strings"
	"testing"

	"rituality/internal/delivery/http/validator"
	domainerrors "rituality/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The request-level cap must match the user_devices.fcm_token column width;
// a token that passes validation has to fit the session insert.
func TestLoginRequest_FCMTokenCapMatchesColumnWidth(t *testing.T) {
	v := validator.New()

	req := loginRequest{
		Email:    "user@example.com",
		Password: "password123",
		FCMToken: strings.Repeat("a", 512),
	}
	require.NoError(t, v.Validate(req))

	req.FCMToken = strings.Repeat("a", 513)
	err := v.Validate(req)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}
