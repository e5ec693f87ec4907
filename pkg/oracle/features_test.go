package oracle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/argus-soc/argus/pkg/models"
)

func TestExtractFeatures(t *testing.T) {
	observed := time.Date(2026, 3, 14, 15, 4, 5, 0, time.UTC)

	t.Run("full detail payload maps directly", func(t *testing.T) {
		event := &models.NormalizedEvent{
			EventID:    "evt-1",
			ObservedAt: observed,
			Details: map[string]any{
				"apiCallCount":     float64(42),
				"errorCode":        "AccessDenied",
				"ipReputation":     0.9,
				"userHistoryScore": 0.1,
			},
		}

		fv := ExtractFeatures(event)
		assert.Equal(t, 42.0, fv.APICallCount)
		assert.Equal(t, 1.0, fv.ErrorRate)
		assert.Equal(t, 0.9, fv.SourceIPReputation)
		assert.Equal(t, 15.0, fv.TimeOfDay)
		assert.Equal(t, 0.1, fv.UserHistoryScore)
	})

	t.Run("missing details fall back to neutral defaults", func(t *testing.T) {
		event := &models.NormalizedEvent{EventID: "evt-2", ObservedAt: observed}

		fv := ExtractFeatures(event)
		assert.Equal(t, 1.0, fv.APICallCount)
		assert.Equal(t, 0.0, fv.ErrorRate)
		assert.Equal(t, 0.5, fv.SourceIPReputation)
		assert.Equal(t, 0.7, fv.UserHistoryScore)
	})

	t.Run("nil errorCode does not count as an error", func(t *testing.T) {
		event := &models.NormalizedEvent{
			EventID:    "evt-3",
			ObservedAt: observed,
			Details:    map[string]any{"errorCode": nil},
		}

		assert.Equal(t, 0.0, ExtractFeatures(event).ErrorRate)
	})

	t.Run("time of day uses the UTC hour of observation", func(t *testing.T) {
		est := time.FixedZone("EST", -5*3600)
		event := &models.NormalizedEvent{
			EventID:    "evt-4",
			ObservedAt: time.Date(2026, 3, 14, 22, 0, 0, 0, est), // 03:00 UTC next day
		}

		assert.Equal(t, 3.0, ExtractFeatures(event).TimeOfDay)
	})

	t.Run("non-numeric detail values fall back", func(t *testing.T) {
		event := &models.NormalizedEvent{
			EventID:    "evt-5",
			ObservedAt: observed,
			Details:    map[string]any{"apiCallCount": "many"},
		}

		assert.Equal(t, 1.0, ExtractFeatures(event).APICallCount)
	})

	t.Run("integer detail values are accepted", func(t *testing.T) {
		event := &models.NormalizedEvent{
			EventID:    "evt-6",
			ObservedAt: observed,
			Details:    map[string]any{"apiCallCount": 7},
		}

		assert.Equal(t, 7.0, ExtractFeatures(event).APICallCount)
	})
}
