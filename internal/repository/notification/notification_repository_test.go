package notification

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyAdminPayload(t *testing.T) {
	var got payloadSendEmail
	var gotAPIKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/smtp/email", r.URL.Path)
		gotAPIKey = r.Header.Get("api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	repo := NewBrevoRepository(BrevoConfig{
		BrevoBaseUrl:     server.URL,
		BrevoAPIKey:      "key-123",
		BrevoSenderEmail: "noreply@example.com",
		BrevoSenderName:  "Nepolian Hair and Beauty Academy",
		AdminEmails:      []string{"admin1@example.com", "admin2@example.com"},
	})

	require.NoError(t, repo.NotifyAdmin("New order", "<p>hello</p>"))

	assert.Equal(t, "key-123", gotAPIKey)
	assert.Equal(t, "noreply@example.com", got.Sender.Email)
	assert.Equal(t, "New order", got.Subject)
	assert.Equal(t, "<p>hello</p>", got.HTMLContent)
	require.Len(t, got.To, 2)
	assert.Equal(t, "admin1@example.com", got.To[0].Email)
}

func TestSendEmailNegativeResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	repo := NewBrevoRepository(BrevoConfig{BrevoBaseUrl: server.URL})

	err := repo.SendEmail([]string{"admin@example.com"}, "s", "b")
	assert.Error(t, err)
}

func TestNotifyAdminNoAdmins(t *testing.T) {
	repo := NewBrevoRepository(BrevoConfig{})

	err := repo.NotifyAdmin("s", "b")
	assert.Error(t, err)
}
