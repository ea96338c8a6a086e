package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	domainErrors "rituality/internal/domain/errors"
)

const defaultAPIBaseURL = "https://api.postmarkapp.com"

// Client is a minimal Postmark-compatible HTTP client for outbound mail.
type Client struct {
	serverToken string
	fromEmail   string
	baseURL     string
	httpClient  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client, mainly for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// NewClient creates a mail API client.
func NewClient(serverToken, fromEmail, baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}

	c := &Client{
		serverToken: serverToken,
		fromEmail:   fromEmail,
		baseURL:     baseURL,
		httpClient:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Configured returns true if the server token is set.
func (c *Client) Configured() bool {
	return c.serverToken != ""
}

type outboundEmail struct {
	From     string `json:"From"`
	To       string `json:"To"`
	Subject  string `json:"Subject"`
	HtmlBody string `json:"HtmlBody"`
}

// Send posts one HTML email to the provider.
func (c *Client) Send(ctx context.Context, to, subject, htmlBody string) error {
	if !c.Configured() {
		return fmt.Errorf("email client not configured: missing server token")
	}

	payload := outboundEmail{
		From:     c.fromEmail,
		To:       to,
		Subject:  subject,
		HtmlBody: htmlBody,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/email", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Postmark-Server-Token", c.serverToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domainErrors.ErrExternalService.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return domainErrors.ErrExternalService.WithDetails(fmt.Sprintf("mail API status %d", resp.StatusCode))
	}

	return nil
}
