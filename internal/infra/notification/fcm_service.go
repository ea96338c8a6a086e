// Package notification delivers best-effort push notifications through
// Firebase Cloud Messaging.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"rituality/config"
	"rituality/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Firebase limits multicast requests to 500 tokens.
const maxTokensPerBatch = 500

type fcmSender struct {
	client *messaging.Client
	logger *slog.Logger
}

// disabledSender is used when no Firebase credentials are configured.
// Push delivery is best-effort, so a missing configuration only logs.
type disabledSender struct {
	logger *slog.Logger
}

// NewPushSender creates a PushSender backed by FCM. Without Firebase
// configuration it degrades to a sender that drops messages with a log line.
func NewPushSender(cfg *config.Config, logger *slog.Logger) (service.PushSender, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		return &disabledSender{logger: logger}, nil
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID},
		option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &fcmSender{client: client, logger: logger}, nil
}

// SendToTokens pushes one message to the given FCM tokens.
func (s *fcmSender) SendToTokens(ctx context.Context, tokens []string, title, body string, data map[string]string) error {
	if len(tokens) == 0 {
		return nil
	}
	if len(tokens) > maxTokensPerBatch {
		tokens = tokens[:maxTokensPerBatch]
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send multicast notification: %w", err)
	}

	if response.FailureCount > 0 {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "some push notifications failed",
			slog.Int("success", response.SuccessCount),
			slog.Int("failure", response.FailureCount),
		)
	}

	return nil
}

// SendToTokens drops the message; push is not configured.
func (s *disabledSender) SendToTokens(ctx context.Context, tokens []string, title, _ string, _ map[string]string) error {
	s.logger.LogAttrs(ctx, slog.LevelDebug, "push disabled, dropping notification",
		slog.Int("tokens", len(tokens)),
		slog.String("title", title),
	)

	return nil
}
