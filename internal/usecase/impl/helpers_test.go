package impl

import (
	"io"
	"log/slog"
	"time"

	"rituality/config"
)

// newDiscardLogger creates a logger that discards all output for tests.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestConfig builds a minimal config for service construction in tests.
func newTestConfig(maxActiveDevices int) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{
		AccessTokenTTL:       15 * time.Minute,
		RefreshTokenTTL:      720 * time.Hour,
		VerificationCodeTTL:  15 * time.Minute,
		PasswordResetCodeTTL: 30 * time.Minute,
		MaxActiveDevices:     maxActiveDevices,
	}

	return cfg
}
