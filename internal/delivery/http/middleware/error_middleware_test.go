package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"rituality/internal/delivery/http/response"
	domainerrors "rituality/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHandleHTTPError_AppError(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(domainerrors.ErrUserNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Nil(t, envelope.Data)
	assert.Equal(t, "User not found", envelope.Message)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "USER_NOT_FOUND", *envelope.Error)
}

func TestHandleHTTPError_WrappedAppError(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(errors.Wrap(domainerrors.ErrDeviceLimitExceeded, "login"), c)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "DEVICE_LIMIT_EXCEEDED", *envelope.Error)
}

func TestHandleHTTPError_AppErrorWithDetails(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(domainerrors.ErrValidationFailed.WithDetails("email must be a valid address"), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Request validation failed: email must be a valid address", envelope.Message)
}

func TestHandleHTTPError_ServerErrorHidesDetails(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(domainerrors.NewDatabaseExecuteError(errors.New("pq: connection refused"), "FindByID"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Database execution failed", envelope.Message)
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.NotContains(t, rec.Body.String(), "FindByID")
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), c)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "HTTP_ERROR", *envelope.Error)
}

func TestHandleHTTPError_UnknownError(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(errors.New("something broke"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Internal server error", envelope.Message)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "INTERNAL_ERROR", *envelope.Error)
	assert.NotContains(t, rec.Body.String(), "something broke")
}

func TestHandleHTTPError_CommittedResponseUntouched(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorTestContext(t)

	require.NoError(t, response.Success(c, http.StatusOK, map[string]string{"ok": "true"}, ""))
	body := rec.Body.String()

	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, body, rec.Body.String())
}
