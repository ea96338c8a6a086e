// Package middleware contains the HTTP middlewares of the API surface.
package middleware

import (
	"slices"
	"strings"

	"rituality/internal/delivery/http/response"
	"rituality/internal/domain/entity"
	"rituality/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	// KeyUserID carries the authenticated user's uuid.UUID.
	KeyUserID = "userID"
	// KeyUserType carries the authenticated user's entity.UserType.
	KeyUserType = "userType"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and attaches the caller's
// identity to the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		c.Set(KeyUserID, claims.UserID)
		c.Set(KeyUserType, claims.UserType)

		return next(c)
	}
}

// RequireUserType restricts a route group to the given account types.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireUserType(allowed ...entity.UserType) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userType, ok := c.Get(KeyUserType).(entity.UserType)
			if !ok {
				return response.Forbidden(c, "Account type information missing")
			}

			if !slices.Contains(allowed, userType) {
				return response.Forbidden(c, "This endpoint is not available to your account type")
			}

			return next(c)
		}
	}
}
