// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"rituality/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	UserType entity.UserType
}

// LoginInput defines the data required to log in. Device metadata is
// captured from the request so each login opens one device session.
type LoginInput struct {
	Email      string
	Password   string
	DeviceType string
	DeviceName string
	UserAgent  string
	IPAddress  string
	FCMToken   string
}

// VerifyEmailInput carries the 6-digit code the user received.
type VerifyEmailInput struct {
	UserID uuid.UUID
	Code   string
}

// RefreshTokenInput carries the raw refresh token.
type RefreshTokenInput struct {
	RefreshToken string
}

// ForgotPasswordInput starts the password reset flow.
type ForgotPasswordInput struct {
	Email string
}

// ResetPasswordInput completes the password reset flow.
type ResetPasswordInput struct {
	Email       string
	Code        string
	NewPassword string
}

// LogoutInput identifies the session to end.
type LogoutInput struct {
	UserID       uuid.UUID
	RefreshToken string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
	Device       *entity.UserDevice
}

// RefreshTokenOutput returns the re-minted access token. The refresh token
// is deliberately left unchanged.
type RefreshTokenOutput struct {
	AccessToken string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	VerifyEmail(ctx context.Context, input *VerifyEmailInput) error
	ResendVerification(ctx context.Context, userID uuid.UUID) error
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
	Logout(ctx context.Context, input *LogoutInput) error
	LogoutAllDevices(ctx context.Context, userID uuid.UUID) error
}
