package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argus-soc/argus/pkg/config"
	"github.com/argus-soc/argus/pkg/models"
	"github.com/argus-soc/argus/pkg/services"
)

type fakeRing struct {
	entries []models.DeadLetter
}

func (f *fakeRing) DeadLetters() []models.DeadLetter {
	return f.entries
}

type fakeJournal struct {
	replayed  int
	remaining int
	err       error
}

func (f *fakeJournal) Replay(_ context.Context) (int, int, error) {
	return f.replayed, f.remaining, f.err
}

func (f *fakeJournal) JournalDepth() int {
	return f.remaining
}

func policyServer(t *testing.T, initial config.ActionPolicy) *Server {
	t.Helper()
	store, err := config.NewPolicyStore(initial)
	require.NoError(t, err)
	return &Server{policy: store}
}

func TestPolicyHandlers(t *testing.T) {
	t.Run("reads the live policy", func(t *testing.T) {
		s := policyServer(t, config.PolicyNotifyOnly)

		rec := doRequest(t, s.Router(), http.MethodGet, "/api/v1/admin/policy", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.PolicyResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, config.PolicyNotifyOnly, resp.ActionPolicy)
	})

	t.Run("switches the policy at runtime", func(t *testing.T) {
		s := policyServer(t, config.PolicyNotifyOnly)

		rec := doRequest(t, s.Router(), http.MethodPut, "/api/v1/admin/policy",
			models.UpdatePolicyRequest{ActionPolicy: config.PolicyFull})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.PolicyResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, config.PolicyFull, resp.ActionPolicy)
		assert.Equal(t, config.PolicyFull, s.policy.Get())
	})

	t.Run("rejects unknown policies", func(t *testing.T) {
		s := policyServer(t, config.PolicyFull)

		rec := doRequest(t, s.Router(), http.MethodPut, "/api/v1/admin/policy",
			map[string]string{"action_policy": "YOLO"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, config.PolicyFull, s.policy.Get())
	})

	t.Run("rejects a body without a policy", func(t *testing.T) {
		s := policyServer(t, config.PolicyFull)

		rec := doRequest(t, s.Router(), http.MethodPut, "/api/v1/admin/policy", map[string]string{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDLQHandlers(t *testing.T) {
	t.Run("lists dead letters", func(t *testing.T) {
		ring := &fakeRing{entries: []models.DeadLetter{
			{ID: "dl-1", EventID: "evt-9", Class: models.FailureMalformedSource, Reason: "missing id", DeadAt: time.Now()},
		}}
		s := &Server{dlqService: services.NewDLQService(ring, &fakeJournal{})}

		rec := doRequest(t, s.Router(), http.MethodGet, "/api/v1/admin/dlq", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.DLQListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Total)
		require.Len(t, resp.Entries, 1)
		assert.Equal(t, "dl-1", resp.Entries[0].ID)
		assert.Equal(t, models.FailureMalformedSource, resp.Entries[0].Class)
	})

	t.Run("replays the store journal", func(t *testing.T) {
		s := &Server{dlqService: services.NewDLQService(&fakeRing{}, &fakeJournal{replayed: 4, remaining: 1})}

		rec := doRequest(t, s.Router(), http.MethodPost, "/api/v1/admin/dlq/replay", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.ReplayResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 4, resp.Replayed)
		assert.Equal(t, 1, resp.Remaining)
	})

	t.Run("replay failures surface as 500", func(t *testing.T) {
		s := &Server{dlqService: services.NewDLQService(&fakeRing{}, &fakeJournal{err: errors.New("disk gone")})}

		rec := doRequest(t, s.Router(), http.MethodPost, "/api/v1/admin/dlq/replay", nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
