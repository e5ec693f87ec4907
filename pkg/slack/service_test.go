package slack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argus-soc/argus/pkg/models"
)

func TestService_NilReceiver(t *testing.T) {
	var s *Service

	t.Run("SendAlert is no-op", func(t *testing.T) {
		err := s.SendAlert(context.Background(), &models.Alert{EventID: "evt-1"})
		assert.NoError(t, err)
	})
}

func TestNewService(t *testing.T) {
	t.Run("returns nil when token empty", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "", Channel: "C123"})
		assert.Nil(t, svc)
	})

	t.Run("returns nil when channel empty", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "xoxb-test", Channel: ""})
		assert.Nil(t, svc)
	})

	t.Run("returns service when configured", func(t *testing.T) {
		svc := NewService(ServiceConfig{
			Token:        "xoxb-test",
			Channel:      "C123",
			DashboardURL: "https://example.com",
		})
		assert.NotNil(t, svc)
	})
}

func TestService_SendAlert(t *testing.T) {
	alert := &models.Alert{
		EventID:     "evt-slack-1",
		Source:      models.SourceGuardDuty,
		Kind:        "UnauthorizedAccess:IAMUser/TorIPCaller",
		Band:        models.SeverityCritical,
		Priority:    94.2,
		ThreatScore: 91.0,
		Summary:     "Tor-sourced console access to an admin principal.",
		RecordKey:   "evt-slack-1",
	}

	t.Run("posts to chat.postMessage", func(t *testing.T) {
		var gotChannel string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			gotChannel = r.FormValue("channel")
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "ts": "1700000000.000100"})
		}))
		defer server.Close()

		client := NewClientWithAPIURL("xoxb-test", "C123", server.URL+"/")
		svc := NewServiceWithClient(client, "https://argus.example.com")

		require.NoError(t, svc.SendAlert(context.Background(), alert))
		assert.Equal(t, "C123", gotChannel)
	})

	t.Run("API errors are returned for the breaker", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "channel_not_found"})
		}))
		defer server.Close()

		client := NewClientWithAPIURL("xoxb-test", "C404", server.URL+"/")
		svc := NewServiceWithClient(client, "https://argus.example.com")

		err := svc.SendAlert(context.Background(), alert)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "channel_not_found")
	})
}
