package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rituality/internal/delivery/http/response"
	"rituality/internal/domain/entity"
	"rituality/internal/domain/service"
	mockservice "rituality/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newEchoContext(t, "")
	next := func(c echo.Context) error {
		t.Fatal("next handler should not be reached")

		return nil
	}

	err := m.Authenticate(next)(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "UNAUTHORIZED", *envelope.Error)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newEchoContext(t, "Basic dXNlcjpwYXNz")
	err := m.Authenticate(func(c echo.Context) error { return nil })(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.On("ValidateAccessToken", "garbage").Return(nil, errors.New("token is malformed"))
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newEchoContext(t, "Bearer garbage")
	err := m.Authenticate(func(c echo.Context) error { return nil })(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ValidTokenSetsIdentity(t *testing.T) {
	userID := uuid.New()
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.On("ValidateAccessToken", "valid-token").Return(&service.Claims{
		UserID:   userID,
		UserType: entity.UserTypeDesigner,
		Type:     "access",
	}, nil)
	m := NewAuthMiddleware(tokenSvc)

	c, _ := newEchoContext(t, "Bearer valid-token")
	nextCalled := false
	err := m.Authenticate(func(c echo.Context) error {
		nextCalled = true
		assert.Equal(t, userID, c.Get(KeyUserID))
		assert.Equal(t, entity.UserTypeDesigner, c.Get(KeyUserType))

		return nil
	})(c)

	assert.NoError(t, err)
	assert.True(t, nextCalled)
}

func TestRequireUserType_WrongType(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newEchoContext(t, "")
	c.Set(KeyUserType, entity.UserTypeContractor)

	err := m.RequireUserType(entity.UserTypeHomeowner)(func(c echo.Context) error {
		t.Fatal("next handler should not be reached")

		return nil
	})(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "FORBIDDEN", *envelope.Error)
}

func TestRequireUserType_MissingIdentity(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newEchoContext(t, "")
	err := m.RequireUserType(entity.UserTypeHomeowner)(func(c echo.Context) error { return nil })(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireUserType_AllowedType(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, _ := newEchoContext(t, "")
	c.Set(KeyUserType, entity.UserTypeHomeowner)

	nextCalled := false
	err := m.RequireUserType(entity.UserTypeHomeowner, entity.UserTypeDesigner)(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	assert.NoError(t, err)
	assert.True(t, nextCalled)
}
