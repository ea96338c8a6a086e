package email

import (
	"context"
	"log/slog"
	"time"

	"rituality/config"
	"rituality/internal/domain/entity"
	"rituality/internal/domain/service"
)

// Template file names, resolved against the configured templates directory.
const (
	templateVerificationEmail = "verification_email.html"
	templateVerificationPhone = "verification_phone.html"
	templatePasswordReset     = "password_reset.html"
	templateWelcome           = "welcome.html"
)

// mailer implements the domain Mailer on top of the Renderer and Client.
// In test mode no mail leaves the process; the intent is logged and the
// send reports success.
type mailer struct {
	renderer    *Renderer
	client      *Client
	logger      *slog.Logger
	frontendURL string
	testMode    bool
}

// NewMailer is the constructor for mailer, wired as an Fx provider.
func NewMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	var (
		emailCfg config.EmailConfig
		frontend string
	)
	if cfg.Email != nil {
		emailCfg = *cfg.Email
	}
	if cfg.Frontend != nil {
		frontend = cfg.Frontend.BaseURL
	}

	return &mailer{
		renderer:    NewRenderer(emailCfg.TemplatesDir),
		client:      NewClient(emailCfg.ServerToken, emailCfg.FromEmail, emailCfg.APIBaseURL),
		logger:      logger,
		frontendURL: frontend,
		testMode:    emailCfg.TestMode,
	}
}

// SendVerificationEmail renders the template matching the verification kind
// and sends it. Unknown or empty kinds fall back to email verification.
func (m *mailer) SendVerificationEmail(ctx context.Context, email service.VerificationEmail) error {
	fileName := templateVerificationEmail
	subject := "Verify your email address"

	switch email.Kind {
	case entity.VerificationPhone:
		fileName = templateVerificationPhone
		subject = "Verify your phone number"
	case entity.VerificationPasswordReset:
		fileName = templatePasswordReset
		subject = "Reset your password"
	}

	body, err := m.renderer.Render(fileName, map[string]any{
		"Code":          email.Code,
		"ExpiryMinutes": email.ExpiryMinutes,
		"Email":         email.To,
		"Year":          time.Now().Year(),
	})
	if err != nil {
		return err
	}

	return m.send(ctx, email.To, subject, body)
}

// SendWelcomeEmail greets a freshly verified user.
func (m *mailer) SendWelcomeEmail(ctx context.Context, to, name string) error {
	body, err := m.renderer.Render(templateWelcome, map[string]any{
		"Name":        name,
		"Email":       to,
		"FrontendURL": m.frontendURL,
		"Year":        time.Now().Year(),
	})
	if err != nil {
		return err
	}

	return m.send(ctx, to, "Welcome aboard", body)
}

func (m *mailer) send(ctx context.Context, to, subject, body string) error {
	if m.testMode {
		m.logger.LogAttrs(ctx, slog.LevelInfo, "email suppressed in test mode",
			slog.String("to", to),
			slog.String("subject", subject),
			slog.Int("bodyBytes", len(body)),
		)

		return nil
	}

	return m.client.Send(ctx, to, subject, body)
}
