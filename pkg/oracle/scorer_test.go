package oracle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argus-soc/argus/pkg/config"
	"github.com/argus-soc/argus/pkg/models"
)

func testScorerConfig(endpoint string) *config.ScorerConfig {
	cfg := config.DefaultScorerConfig()
	cfg.Endpoint = endpoint
	cfg.RetryInitial = time.Millisecond // keep retry tests fast
	return cfg
}

func testEvent() *models.NormalizedEvent {
	return &models.NormalizedEvent{
		EventID:    "evt-score-1",
		Source:     models.SourceGuardDuty,
		ObservedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Details: map[string]any{
			"apiCallCount": float64(12),
			"errorCode":    "AccessDenied",
		},
	}
}

func TestHTTPScorer_Score(t *testing.T) {
	t.Run("successful call returns the verdict", func(t *testing.T) {
		var gotReq scoreRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"threat_score": 87.5, "confidence": 0.92, "model_version": "rf-2026.02"}`))
		}))
		defer server.Close()

		scorer := NewHTTPScorer(testScorerConfig(server.URL), 4, nil)
		verdict, err := scorer.Score(context.Background(), testEvent())
		require.NoError(t, err)

		assert.Equal(t, 87.5, verdict.ThreatScore)
		assert.Equal(t, 0.92, verdict.Confidence)
		assert.Equal(t, "rf-2026.02", verdict.ModelVersion)
		assert.Equal(t, "cloudtrail-rf-v1", verdict.FeatureVersion)
		assert.Empty(t, verdict.Error)

		// Request carried the versioned feature vector.
		assert.Equal(t, "evt-score-1", gotReq.EventID)
		assert.Equal(t, "cloudtrail-rf-v1", gotReq.FeatureVersion)
		assert.Equal(t, 12.0, gotReq.Features.APICallCount)
		assert.Equal(t, 1.0, gotReq.Features.ErrorRate)
		assert.Equal(t, 9.0, gotReq.Features.TimeOfDay)
	})

	t.Run("transient failures are retried until success", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) <= 2 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(`{"threat_score": 40, "confidence": 0.5, "model_version": "rf-test"}`))
		}))
		defer server.Close()

		scorer := NewHTTPScorer(testScorerConfig(server.URL), 4, nil)
		verdict, err := scorer.Score(context.Background(), testEvent())
		require.NoError(t, err)

		assert.Equal(t, int32(3), calls.Load())
		assert.Equal(t, 40.0, verdict.ThreatScore)
		assert.Empty(t, verdict.Error)
	})

	t.Run("exhausted retries degrade to a zero verdict", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		scorer := NewHTTPScorer(testScorerConfig(server.URL), 4, nil)
		verdict, err := scorer.Score(context.Background(), testEvent())
		require.NoError(t, err)

		assert.Equal(t, int32(4), calls.Load(), "default schedule allows 4 attempts")
		assert.Zero(t, verdict.ThreatScore)
		assert.Zero(t, verdict.Confidence)
		assert.NotEmpty(t, verdict.Error)
		assert.Equal(t, "cloudtrail-rf-v1", verdict.FeatureVersion)
	})

	t.Run("4xx is permanent and fails the event", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		scorer := NewHTTPScorer(testScorerConfig(server.URL), 4, nil)
		verdict, err := scorer.Score(context.Background(), testEvent())
		require.Error(t, err)

		assert.Nil(t, verdict)
		assert.Equal(t, models.FailureMalformedSource, models.ClassOf(err))
		assert.Equal(t, int32(1), calls.Load(), "schema mismatch must not be retried")
	})

	t.Run("unreachable endpoint degrades instead of failing", func(t *testing.T) {
		cfg := testScorerConfig("http://127.0.0.1:1") // nothing listens here
		cfg.Timeout = 500 * time.Millisecond

		scorer := NewHTTPScorer(cfg, 4, nil)
		verdict, err := scorer.Score(context.Background(), testEvent())
		require.NoError(t, err)

		assert.Zero(t, verdict.ThreatScore)
		assert.NotEmpty(t, verdict.Error)
	})

	t.Run("nil config panics", func(t *testing.T) {
		assert.Panics(t, func() { NewHTTPScorer(nil, 4, nil) })
	})
}
