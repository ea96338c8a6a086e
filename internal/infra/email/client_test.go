package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainErrors "rituality/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Send(t *testing.T) {
	var (
		received  outboundEmail
		gotToken  string
		gotPath   string
		callCount int
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callCount++
		gotToken = r.Header.Get("X-Postmark-Server-Token")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"MessageID": "test-id"}`))
	}))
	defer server.Close()

	client := NewClient("test-token", "noreply@rituality.test", server.URL)

	err := client.Send(context.Background(), "alice@example.com", "Hello", "<p>Hi</p>")
	require.NoError(t, err)

	assert.Equal(t, 1, callCount)
	assert.Equal(t, "test-token", gotToken)
	assert.Equal(t, "/email", gotPath)
	assert.Equal(t, "alice@example.com", received.To)
	assert.Equal(t, "noreply@rituality.test", received.From)
	assert.Equal(t, "Hello", received.Subject)
	assert.Equal(t, "<p>Hi</p>", received.HtmlBody)
}

func TestClient_SendNotConfigured(t *testing.T) {
	client := NewClient("", "noreply@rituality.test", "")

	err := client.Send(context.Background(), "alice@example.com", "Hello", "<p>Hi</p>")
	assert.Error(t, err)
}

func TestClient_SendAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := NewClient("test-token", "noreply@rituality.test", server.URL)

	err := client.Send(context.Background(), "alice@example.com", "Hello", "<p>Hi</p>")
	require.Error(t, err)

	var appErr domainErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "EXTERNAL_SERVICE_ERROR", appErr.ErrorCode())
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode())
}
