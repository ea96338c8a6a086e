package service

import (
	"context"

	"rituality/internal/domain/entity"
)

// VerificationEmail carries everything needed to mail a one-time code.
type VerificationEmail struct {
	To            string
	Kind          entity.VerificationKind // Defaults to email verification when empty.
	Code          string
	ExpiryMinutes int
}

// Mailer defines the outbound email operations used by the use cases.
// Implementations render an HTML template and forward it to the
// transactional email provider; in test mode they log the intent only.
type Mailer interface {
	// SendVerificationEmail selects template and subject from the verification
	// kind, renders it and sends HTML-only.
	SendVerificationEmail(ctx context.Context, email VerificationEmail) error

	// SendWelcomeEmail greets a freshly verified user.
	SendWelcomeEmail(ctx context.Context, to, name string) error
}
