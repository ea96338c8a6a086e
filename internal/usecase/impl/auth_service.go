// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"rituality/config"
	deliverycontext "rituality/internal/delivery/context"
	"rituality/internal/domain/entity"
	domainerrors "rituality/internal/domain/errors"
	"rituality/internal/domain/repository"
	"rituality/internal/domain/service"
	"rituality/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultVerificationTTL  = 15 * time.Minute
	defaultPasswordResetTTL = 30 * time.Minute
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	deviceRepo       repository.DeviceRepository
	verificationRepo repository.VerificationRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	mailer           service.Mailer
	maxActiveDevices int
	verificationTTL  time.Duration
	passwordResetTTL time.Duration
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	DeviceRepo       repository.DeviceRepository
	VerificationRepo repository.VerificationRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Mailer           service.Mailer
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	maxActiveDevices := 0
	verificationTTL := defaultVerificationTTL
	passwordResetTTL := defaultPasswordResetTTL
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveDevices = params.Config.Auth.MaxActiveDevices
		if params.Config.Auth.VerificationCodeTTL > 0 {
			verificationTTL = params.Config.Auth.VerificationCodeTTL
		}
		if params.Config.Auth.PasswordResetCodeTTL > 0 {
			passwordResetTTL = params.Config.Auth.PasswordResetCodeTTL
		}
	}

	return &authService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		deviceRepo:       params.DeviceRepo,
		verificationRepo: params.VerificationRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		mailer:           params.Mailer,
		maxActiveDevices: maxActiveDevices,
		verificationTTL:  verificationTTL,
		passwordResetTTL: passwordResetTTL,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration process: user row, default
// permissions and the first email verification code are created atomically.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email), slog.Any("userType", input.UserType))

	if !input.UserType.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown user type")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	var (
		registeredUser *entity.User
		code           string
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		verificationRepo := repoFactory.VerificationRepo()

		_, findErr := userRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "registration failed")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check existing account")
		}

		newUser := &entity.User{
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: hashedPassword,
			UserType:     input.UserType,
			RoleID:       entity.RoleUser,
		}
		newUser.Permissions = entity.DefaultPermissions(newUser.ID)

		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create user during registration")
		}

		var codeErr error
		code, codeErr = srv.issueCode(ctx, verificationRepo, newUser.ID, entity.VerificationEmail, srv.verificationTTL)
		if codeErr != nil {
			return codeErr
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.sendVerification(ctx, registeredUser.Email, entity.VerificationEmail, code, srv.verificationTTL)

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login verifies credentials and opens one device session.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	// bcrypt is CPU-bound; keep it outside any transaction.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.UserType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	now := time.Now()
	device := &entity.UserDevice{
		UserID:           user.ID,
		TokenHash:        srv.tokenService.HashToken(accessToken),
		RefreshTokenHash: srv.tokenService.HashToken(refreshToken),
		TokenExpiresAt:   now.Add(srv.tokenService.GetAccessTokenDuration()),
		RefreshExpiresAt: now.Add(srv.tokenService.GetRefreshTokenDuration()),
		DeviceType:       input.DeviceType,
		DeviceName:       input.DeviceName,
		UserAgent:        input.UserAgent,
		IPAddress:        input.IPAddress,
		FCMToken:         input.FCMToken,
		IsActive:         true,
		LastUsedAt:       now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.DeviceRepo()

		if srv.maxActiveDevices > 0 {
			active, countErr := deviceRepo.CountActiveByUserID(ctx, user.ID)
			if countErr != nil {
				return errors.Wrap(countErr, "failed to count active devices")
			}
			if active >= srv.maxActiveDevices {
				return errors.Wrap(domainerrors.ErrDeviceLimitExceeded, "login failed")
			}
		}

		return deviceRepo.Create(ctx, device)
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("userID", user.ID), slog.Any("deviceID", device.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
		Device:       device,
	}, nil
}

// VerifyEmail consumes a code and stamps the account verified.
func (srv *authService) VerifyEmail(ctx context.Context, input *usecase.VerifyEmailInput) error {
	srv.log(ctx).Info("Verifying email", slog.Any("userID", input.UserID))

	var verifiedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		verificationRepo := repoFactory.VerificationRepo()

		user, findErr := userRepo.FindByID(ctx, input.UserID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load user for verification")
		}
		if user.EmailVerified() {
			return errors.Wrap(domainerrors.ErrEmailAlreadyVerified, "email verification failed")
		}

		if consumeErr := srv.consumeCode(ctx, verificationRepo, user.ID, entity.VerificationEmail, input.Code); consumeErr != nil {
			return consumeErr
		}

		now := time.Now()
		user.EmailVerifiedAt = &now
		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to mark email verified")
		}

		verifiedUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Email verification failed", slog.Any("userID", input.UserID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute email verification transaction")
	}

	if mailErr := srv.mailer.SendWelcomeEmail(ctx, verifiedUser.Email, verifiedUser.Name); mailErr != nil {
		// The account is verified either way; a failed welcome mail is not fatal.
		srv.log(ctx).Warn("Failed to send welcome email", slog.Any("userID", verifiedUser.ID), slog.Any("error", mailErr))
	}

	return nil
}

// ResendVerification re-issues the email verification code, invalidating prior codes.
func (srv *authService) ResendVerification(ctx context.Context, userID uuid.UUID) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to load user for resend")
	}
	if user.EmailVerified() {
		return errors.Wrap(domainerrors.ErrEmailAlreadyVerified, "resend verification failed")
	}

	code, err := srv.issueCode(ctx, srv.verificationRepo, user.ID, entity.VerificationEmail, srv.verificationTTL)
	if err != nil {
		return err
	}

	srv.sendVerification(ctx, user.Email, entity.VerificationEmail, code, srv.verificationTTL)

	return nil
}

// RefreshToken mints a new access token for a live device session. The
// refresh token itself stays unchanged to avoid rotation races.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh failed")
	}

	device, err := srv.deviceRepo.FindByRefreshTokenHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) || errors.Is(err, repository.ErrDeviceExpired) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh failed")
		}

		return nil, errors.Wrap(err, "failed to load device session")
	}
	if device.UserID != claims.UserID {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh failed")
	}

	accessToken, _, err := srv.tokenService.GenerateTokens(claims.UserID, claims.UserType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	now := time.Now()
	device.TokenHash = srv.tokenService.HashToken(accessToken)
	device.TokenExpiresAt = now.Add(srv.tokenService.GetAccessTokenDuration())
	device.LastUsedAt = now

	if err := srv.deviceRepo.Update(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to update device session")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// ForgotPassword starts the reset flow. Unknown addresses succeed silently
// so the endpoint cannot be used to probe for accounts.
func (srv *authService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Password reset requested for unknown email")

			return nil
		}

		return errors.Wrap(err, "failed to load account for password reset")
	}

	code, err := srv.issueCode(ctx, srv.verificationRepo, user.ID, entity.VerificationPasswordReset, srv.passwordResetTTL)
	if err != nil {
		return err
	}

	srv.sendVerification(ctx, user.Email, entity.VerificationPasswordReset, code, srv.passwordResetTTL)

	return nil
}

// ResetPassword consumes a reset code, replaces the password and ends every
// open session.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrVerificationCodeInvalid, "password reset failed")
		}

		return errors.Wrap(err, "failed to load account for password reset")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		deviceRepo := repoFactory.DeviceRepo()
		verificationRepo := repoFactory.VerificationRepo()

		if consumeErr := srv.consumeCode(ctx, verificationRepo, user.ID, entity.VerificationPasswordReset, input.Code); consumeErr != nil {
			return consumeErr
		}

		user.PasswordHash = hashedPassword
		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to store new password")
		}

		// Every open session dies with the old password.
		return deviceRepo.DeactivateAllByUserID(ctx, user.ID)
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.Any("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", user.ID))

	return nil
}

// Logout deactivates the calling session.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	device, err := srv.deviceRepo.FindByRefreshTokenHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
	if err != nil {
		// An unknown or expired session is already logged out.
		if errors.Is(err, repository.ErrDeviceNotFound) || errors.Is(err, repository.ErrDeviceExpired) {
			return nil
		}

		return errors.Wrap(err, "failed to load device session for logout")
	}
	if device.UserID != input.UserID {
		return errors.Wrap(domainerrors.ErrForbidden, "session does not belong to user")
	}

	if err := srv.deviceRepo.Deactivate(ctx, device.ID); err != nil {
		return errors.Wrap(err, "failed to deactivate device session")
	}
	srv.log(ctx).Info("Logged out", slog.Any("userID", input.UserID), slog.Any("deviceID", device.ID))

	return nil
}

// LogoutAllDevices deactivates every session of the user.
func (srv *authService) LogoutAllDevices(ctx context.Context, userID uuid.UUID) error {
	if err := srv.deviceRepo.DeactivateAllByUserID(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to deactivate all device sessions")
	}
	srv.log(ctx).Info("Logged out everywhere", slog.Any("userID", userID))

	return nil
}

// issueCode creates a fresh 6-digit code for the user, invalidating earlier
// codes of the same kind, and returns the plaintext code for mailing.
func (srv *authService) issueCode(ctx context.Context, verificationRepo repository.VerificationRepository, userID uuid.UUID, kind entity.VerificationKind, ttl time.Duration) (string, error) {
	code, err := generateNumericCode(6)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate verification code")
	}

	record := &entity.VerificationCode{
		UserID:    userID,
		Kind:      kind,
		Code:      code,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := verificationRepo.Create(ctx, record); err != nil {
		return "", errors.Wrap(err, "failed to store verification code")
	}

	return code, nil
}

// consumeCode validates and marks used the active code of a kind.
func (srv *authService) consumeCode(ctx context.Context, verificationRepo repository.VerificationRepository, userID uuid.UUID, kind entity.VerificationKind, code string) error {
	record, err := verificationRepo.FindActive(ctx, userID, kind)
	if err != nil {
		if errors.Is(err, repository.ErrVerificationNotFound) {
			return errors.Wrap(domainerrors.ErrVerificationCodeInvalid, "no active code")
		}

		return errors.Wrap(err, "failed to load verification code")
	}

	if subtle.ConstantTimeCompare([]byte(record.Code), []byte(code)) != 1 {
		return errors.Wrap(domainerrors.ErrVerificationCodeInvalid, "code mismatch")
	}

	if err := verificationRepo.MarkUsed(ctx, record.ID); err != nil {
		return errors.Wrap(err, "failed to consume verification code")
	}

	return nil
}

// sendVerification mails a code. Delivery is best-effort: the triggering
// operation already committed, so a mail failure only logs.
func (srv *authService) sendVerification(ctx context.Context, to string, kind entity.VerificationKind, code string, ttl time.Duration) {
	err := srv.mailer.SendVerificationEmail(ctx, service.VerificationEmail{
		To:            to,
		Kind:          kind,
		Code:          code,
		ExpiryMinutes: int(ttl.Minutes()),
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to send verification email", slog.Any("error", err))
	}
}

// generateNumericCode returns a cryptographically random decimal code.
func generateNumericCode(digits int) (string, error) {
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)

	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", digits, n), nil
}
