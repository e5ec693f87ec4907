package remediation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argus-soc/argus/pkg/config"
	"github.com/argus-soc/argus/pkg/models"
)

func TestWebhookEffector_Apply(t *testing.T) {
	threat := &models.Threat{
		NormalizedEvent: models.NormalizedEvent{
			EventID:      "evt-hook-1",
			Source:       models.SourceGuardDuty,
			Kind:         "UnauthorizedAccess:IAMUser/TorIPCaller",
			AccountID:    "123456789012",
			Region:       "us-east-1",
			ResourceType: "AccessKey",
			ResourceID:   "AKIA_TEST",
			ObservedAt:   time.Now(),
		},
	}

	t.Run("posts the action with an idempotency key", func(t *testing.T) {
		var gotReq actionRequest
		var gotKey string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotKey = r.Header.Get("Idempotency-Key")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
			w.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		effector := NewWebhookEffector(&config.RemediationConfig{Endpoint: server.URL})
		require.NotNil(t, effector)

		err := effector.Apply(context.Background(), threat, config.ActionDisableCredential)
		require.NoError(t, err)

		assert.Equal(t, "evt-hook-1/DISABLE_CREDENTIAL", gotKey)
		assert.Equal(t, "evt-hook-1", gotReq.EventID)
		assert.Equal(t, "DISABLE_CREDENTIAL", gotReq.Action)
		assert.Equal(t, "AccessKey", gotReq.ResourceType)
		assert.Equal(t, "AKIA_TEST", gotReq.ResourceID)
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "runner rejected the action", http.StatusConflict)
		}))
		defer server.Close()

		effector := NewWebhookEffector(&config.RemediationConfig{Endpoint: server.URL})
		err := effector.Apply(context.Background(), threat, config.ActionBlockAddress)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "409")
		assert.Contains(t, err.Error(), "runner rejected the action")
	})

	t.Run("no endpoint means no effector", func(t *testing.T) {
		assert.Nil(t, NewWebhookEffector(&config.RemediationConfig{}))
		assert.Nil(t, NewWebhookEffector(nil))
	})
}
