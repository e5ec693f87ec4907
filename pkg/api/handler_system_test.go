package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argus-soc/argus/pkg/models"
	"github.com/argus-soc/argus/pkg/services"
	testdb "github.com/argus-soc/argus/test/database"
)

// fakePipeline returns a canned readiness snapshot.
type fakePipeline struct {
	health models.HealthResponse
}

func (f *fakePipeline) Health() models.HealthResponse {
	return f.health
}

func TestLivenessHandler(t *testing.T) {
	s := &Server{}
	rec := doRequest(t, s.Router(), http.MethodGet, "/healthz", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp LivenessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestReadinessHandler(t *testing.T) {
	t.Run("ready pipeline with reachable database returns 200", func(t *testing.T) {
		s := &Server{
			dbClient: testdb.NewTestClient(t),
			pipeline: &fakePipeline{health: models.HealthResponse{
				Ready:    true,
				InFlight: 3,
				BusDepth: 12,
				DLQDepth: 1,
			}},
		}

		rec := doRequest(t, s.Router(), http.MethodGet, "/readyz", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Ready)
		assert.Equal(t, int64(3), resp.InFlight)
		assert.Equal(t, int64(12), resp.BusDepth)
		assert.Equal(t, int64(1), resp.DLQDepth)
	})

	t.Run("draining pipeline returns 503", func(t *testing.T) {
		s := &Server{
			dbClient: testdb.NewTestClient(t),
			pipeline: &fakePipeline{health: models.HealthResponse{Ready: false}},
		}

		rec := doRequest(t, s.Router(), http.MethodGet, "/readyz", nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestWarningsHandler(t *testing.T) {
	t.Run("returns empty when service is nil", func(t *testing.T) {
		s := &Server{}

		rec := doRequest(t, s.Router(), http.MethodGet, "/api/v1/admin/warnings", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp SystemWarningsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotNil(t, resp.Warnings)
		assert.Len(t, resp.Warnings, 0)
	})

	t.Run("returns warnings from service", func(t *testing.T) {
		warnSvc := services.NewSystemWarningsService()
		warnSvc.AddWarning(services.WarningCategoryStoreDLQ,
			"3 threat record(s) journaled to the store DLQ awaiting replay",
			"records could not reach the database; check connectivity, then trigger a replay",
			"/var/lib/argus/dlq.jsonl")

		s := &Server{}
		s.SetWarningsService(warnSvc)

		rec := doRequest(t, s.Router(), http.MethodGet, "/api/v1/admin/warnings", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp SystemWarningsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Warnings, 1)
		assert.Equal(t, services.WarningCategoryStoreDLQ, resp.Warnings[0].Category)
		assert.Equal(t, "3 threat record(s) journaled to the store DLQ awaiting replay", resp.Warnings[0].Message)
		assert.Equal(t, "/var/lib/argus/dlq.jsonl", resp.Warnings[0].Scope)
		assert.NotEmpty(t, resp.Warnings[0].ID)
		assert.NotEmpty(t, resp.Warnings[0].CreatedAt)
	})
}
