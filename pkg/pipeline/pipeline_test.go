package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argus-soc/argus/pkg/config"
	"github.com/argus-soc/argus/pkg/events"
	"github.com/argus-soc/argus/pkg/masking"
	"github.com/argus-soc/argus/pkg/models"
	"github.com/argus-soc/argus/pkg/triage"
)

// scriptedScorer is a Scorer whose behavior each test controls through fn.
// Calls are recorded in order.
type scriptedScorer struct {
	fn    func(ctx context.Context, event *models.NormalizedEvent) (*models.MLVerdict, error)
	mu    sync.Mutex
	calls []*models.NormalizedEvent
}

func (s *scriptedScorer) Score(ctx context.Context, event *models.NormalizedEvent) (*models.MLVerdict, error) {
	s.mu.Lock()
	s.calls = append(s.calls, event)
	s.mu.Unlock()

	if s.fn != nil {
		return s.fn(ctx, event)
	}
	return &models.MLVerdict{ThreatScore: 50, Confidence: 0.9, ScoredAt: time.Now().UTC()}, nil
}

func (s *scriptedScorer) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// fixedScore returns a scorer fn that always yields the given threat score.
func fixedScore(score float64) func(context.Context, *models.NormalizedEvent) (*models.MLVerdict, error) {
	return func(context.Context, *models.NormalizedEvent) (*models.MLVerdict, error) {
		return &models.MLVerdict{
			ThreatScore:  score,
			Confidence:   0.92,
			ModelVersion: "cloudtrail-rf-v1",
			ScoredAt:     time.Now().UTC(),
		}, nil
	}
}

type scriptedAnalyst struct {
	calls atomic.Int32
}

func (a *scriptedAnalyst) Analyze(ctx context.Context, threat *models.Threat, excerpt string) *models.AnalysisReport {
	a.calls.Add(1)
	return &models.AnalysisReport{
		RiskScore:          8,
		AttackVector:       "credential_compromise",
		RecommendedActions: []string{"disable_credential"},
		Confidence:         0.8,
		Summary:            "credential used from a known tor exit node",
		AnalyzedAt:         time.Now().UTC(),
	}
}

type scriptedRemediator struct {
	calls   atomic.Int32
	outcome models.RemediationOutcome
}

func (r *scriptedRemediator) Execute(ctx context.Context, threat *models.Threat) *models.RemediationOutcome {
	r.calls.Add(1)
	out := r.outcome
	out.CompletedAt = time.Now().UTC()
	return &out
}

type recordingSink struct {
	mu       sync.Mutex
	notified []string
}

func (s *recordingSink) Notify(ctx context.Context, threat *models.Threat) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notified = append(s.notified, threat.EventID)
	return true
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notified)
}

// memoryStore records every Put and signals terminal writes so tests can
// wait without polling.
type memoryStore struct {
	mu     sync.Mutex
	writes []*models.Threat
	done   chan *models.Threat
}

func newMemoryStore() *memoryStore {
	return &memoryStore{done: make(chan *models.Threat, 64)}
}

func (m *memoryStore) Put(ctx context.Context, threat *models.Threat) error {
	cp := *threat
	m.mu.Lock()
	m.writes = append(m.writes, &cp)
	m.mu.Unlock()
	m.done <- &cp
	return nil
}

func (m *memoryStore) JournalDepth() int { return 0 }

func (m *memoryStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.writes)
}

func awaitTerminal(t *testing.T, st *memoryStore) *models.Threat {
	t.Helper()
	select {
	case threat := <-st.done:
		return threat
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a terminal store write")
		return nil
	}
}

func testPipelineConfig() *config.PipelineConfig {
	return &config.PipelineConfig{
		BusCapacity:             32,
		MaxConcurrentEvents:     4,
		OracleConcurrency:       4,
		EventDeadline:           5 * time.Second,
		BusRetention:            time.Minute,
		GracefulShutdownTimeout: 3 * time.Second,
		DLQCapacity:             8,
	}
}

type harness struct {
	pipeline   *Pipeline
	scorer     *scriptedScorer
	analyst    *scriptedAnalyst
	remediator *scriptedRemediator
	sink       *recordingSink
	store      *memoryStore
	policy     *config.PolicyStore
}

func newHarness(t *testing.T, pipelineCfg *config.PipelineConfig, gates *config.TriageConfig, policy config.ActionPolicy, opts Deps) *harness {
	t.Helper()

	h := &harness{
		scorer:     &scriptedScorer{},
		analyst:    &scriptedAnalyst{},
		remediator: &scriptedRemediator{outcome: models.RemediationOutcome{Action: config.ActionDisableCredential, Status: models.RemediationSucceeded, Attempts: 1}},
		sink:       &recordingSink{},
		store:      newMemoryStore(),
	}

	ps, err := config.NewPolicyStore(policy)
	require.NoError(t, err)
	h.policy = ps

	deps := Deps{
		Scorer:     h.scorer,
		Analyst:    h.analyst,
		Remediator: h.remediator,
		Notifier:   h.sink,
		Store:      h.store,
		Policy:     ps,
		Masker:     opts.Masker,
		Playbooks:  opts.Playbooks,
		Publisher:  opts.Publisher,
	}

	h.pipeline = New(pipelineCfg, gates, deps)
	h.pipeline.Start(context.Background())
	t.Cleanup(h.pipeline.Stop)
	return h
}

// guardDutyFinding builds a GuardDuty-shaped EventBridge envelope. The
// detail-type doubles as the finding kind downstream.
func guardDutyFinding(id, detailType string, severity float64, extraDetail map[string]any) json.RawMessage {
	detail := map[string]any{
		"severity": severity,
		"resource": map[string]any{
			"resourceType":     "AccessKey",
			"accessKeyDetails": map[string]any{"accessKeyId": "AKIA000EXAMPLE"},
		},
	}
	for k, v := range extraDetail {
		detail[k] = v
	}
	payload, _ := json.Marshal(map[string]any{
		"id":          id,
		"time":        "2026-03-01T12:00:00Z",
		"account":     "123456789012",
		"region":      "us-east-1",
		"detail-type": detailType,
		"detail":      detail,
	})
	return payload
}

// neutralFinding builds a payload under an unrecognized source tag: severity
// bands to MEDIUM, source weight 1.0, and the detail-type avoids every boost
// token, so priority is threat_score*0.6 + 20.
func neutralFinding(id string, extraDetail map[string]any) json.RawMessage {
	detail := map[string]any{}
	for k, v := range extraDetail {
		detail[k] = v
	}
	payload, _ := json.Marshal(map[string]any{
		"id":          id,
		"time":        "2026-03-01T12:00:00Z",
		"account":     "123456789012",
		"region":      "eu-west-1",
		"detail-type": "Inspector Status",
		"detail":      detail,
	})
	return payload
}

const neutralSource = "aws.inspector"

func TestSubmit_AcceptsAndProcessesToTerminal(t *testing.T) {
	h := newHarness(t, testPipelineConfig(), config.DefaultTriageConfig(), config.PolicyNotifyOnly, Deps{})
	h.scorer.fn = fixedScore(50)

	res := h.pipeline.Submit(context.Background(), neutralSource, neutralFinding("evt-accept-1", nil))
	require.True(t, res.Accepted)
	assert.Equal(t, "evt-accept-1", res.EventID)
	assert.Empty(t, res.Reason)

	threat := awaitTerminal(t, h.store)
	assert.Equal(t, "evt-accept-1", threat.EventID)
	assert.Equal(t, models.StatusStoredOnly, threat.Status)
	require.NotNil(t, threat.ML)
	assert.InDelta(t, 50, threat.ML.ThreatScore, 0.001)
	require.NotNil(t, threat.Triage)
	assert.InDelta(t, 50, threat.Triage.Priority, 0.001)

	// Priority 50 crosses no gate.
	assert.Zero(t, h.analyst.calls.Load())
	assert.Zero(t, h.remediator.calls.Load())
	assert.Zero(t, h.sink.count())
}

func TestSubmit_MalformedFindingIsRejectedAndDeadLettered(t *testing.T) {
	h := newHarness(t, testPipelineConfig(), config.DefaultTriageConfig(), config.PolicyNotifyOnly, Deps{})

	payload := json.RawMessage(`{"time": "2026-03-01T12:00:00Z", "account": "123456789012"}`)
	res := h.pipeline.Submit(context.Background(), models.SourceGuardDuty, payload)

	require.False(t, res.Accepted)
	assert.Equal(t, string(models.FailureMalformedSource), res.Reason)
	assert.Contains(t, res.Detail, "id")
	assert.Empty(t, res.EventID)

	entries := h.pipeline.DeadLetters()
	require.Len(t, entries, 1)
	assert.Equal(t, models.FailureMalformedSource, entries[0].Class)
	assert.Equal(t, models.SourceGuardDuty, entries[0].SourceTag)
	assert.JSONEq(t, string(payload), string(entries[0].Payload))
	assert.Nil(t, entries[0].Threat)
	assert.NotEmpty(t, entries[0].ID)

	assert.Equal(t, int64(1), h.pipeline.Health().DLQDepth)
	assert.Zero(t, h.store.count())
}

func TestPipeline_FullFlowRemediatesNotifiesAndPublishes(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	publisher := events.NewPublisherWithClient(client, "argus:threats", 0)
	t.Cleanup(func() { _ = publisher.Close() })

	masker := masking.NewService(&config.MaskingDefaults{Enabled: true, PatternGroup: "security"})

	h := newHarness(t, testPipelineConfig(), config.DefaultTriageConfig(), config.PolicyFull, Deps{
		Publisher: publisher,
		Masker:    masker,
	})
	h.scorer.fn = fixedScore(90)

	payload := guardDutyFinding("evt-full-1", "Recon:IAMUser/TorIPCaller", 8, map[string]any{
		"password": "hunter2000",
	})
	res := h.pipeline.Submit(context.Background(), models.SourceGuardDuty, payload)
	require.True(t, res.Accepted)

	threat := awaitTerminal(t, h.store)

	// CRITICAL severity, boosted kind and trusted source saturate the score.
	require.NotNil(t, threat.Triage)
	assert.InDelta(t, 100, threat.Triage.Priority, 0.001)
	assert.Equal(t, models.SeverityCritical, threat.Triage.Band)
	assert.True(t, threat.Triage.RequiresHumanReview)

	assert.Equal(t, int32(1), h.analyst.calls.Load())
	assert.Equal(t, int32(1), h.remediator.calls.Load())
	assert.Equal(t, 1, h.sink.count())

	require.NotNil(t, threat.Analysis)
	require.NotNil(t, threat.Remediation)
	assert.Equal(t, models.RemediationSucceeded, threat.Remediation.Status)
	require.NotNil(t, threat.NotifiedAt)

	// Remediation outranks the notification on the status ladder.
	assert.Equal(t, models.StatusRemediated, threat.Status)

	// Secrets were masked at admission, before any stage saw the payload.
	assert.Equal(t, "__MASKED__", threat.Details["password"])

	// The terminal transition lands on the lifecycle stream.
	require.Eventually(t, func() bool {
		return client.XLen(context.Background(), "argus:threats").Val() == 1
	}, 2*time.Second, 10*time.Millisecond)

	msgs, err := client.XRange(context.Background(), "argus:threats", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "threat.remediated", msgs[0].Values["kind"])
	assert.Equal(t, "evt-full-1", msgs[0].Values["event_id"])
}

func TestPipeline_WarnBandNotifiesWithoutRemediation(t *testing.T) {
	h := newHarness(t, testPipelineConfig(), config.DefaultTriageConfig(), config.PolicyFull, Deps{})
	h.scorer.fn = fixedScore(90) // priority 90*0.6+20 = 74

	res := h.pipeline.Submit(context.Background(), neutralSource, neutralFinding("evt-warn-1", nil))
	require.True(t, res.Accepted)

	threat := awaitTerminal(t, h.store)

	require.NotNil(t, threat.Triage)
	assert.InDelta(t, 74, threat.Triage.Priority, 0.001)

	assert.Equal(t, int32(1), h.analyst.calls.Load())
	assert.Equal(t, 1, h.sink.count())
	assert.Zero(t, h.remediator.calls.Load())

	assert.Equal(t, models.StatusNotified, threat.Status)
	require.NotNil(t, threat.NotifiedAt)
	assert.Nil(t, threat.Remediation)
}

func TestPipeline_GateComparisonsAreStrict(t *testing.T) {
	// Probe the real triage engine for the exact priority the pipeline will
	// compute, then park a threshold right on it.
	verdict := &models.MLVerdict{ThreatScore: 80}
	probe := &models.NormalizedEvent{
		Source:   neutralSource,
		Severity: models.SeverityMedium,
		Kind:     "Inspector Status",
	}
	exact := triage.NewEngine(config.DefaultTriageConfig()).Evaluate(probe, verdict).Priority

	t.Run("priority equal to warn threshold does not analyze or notify", func(t *testing.T) {
		gates := &config.TriageConfig{
			WarnThreshold:        exact,
			RemediateThreshold:   exact + 10,
			HumanReviewThreshold: 80,
			ActionPolicy:         config.PolicyFull,
		}
		h := newHarness(t, testPipelineConfig(), gates, config.PolicyFull, Deps{})
		h.scorer.fn = fixedScore(80)

		res := h.pipeline.Submit(context.Background(), neutralSource, neutralFinding("evt-strict-warn", nil))
		require.True(t, res.Accepted)

		threat := awaitTerminal(t, h.store)
		assert.Equal(t, models.StatusStoredOnly, threat.Status)
		assert.Zero(t, h.analyst.calls.Load())
		assert.Zero(t, h.sink.count())
		assert.Zero(t, h.remediator.calls.Load())
	})

	t.Run("priority equal to remediate threshold does not remediate", func(t *testing.T) {
		gates := &config.TriageConfig{
			WarnThreshold:        exact - 10,
			RemediateThreshold:   exact,
			HumanReviewThreshold: 80,
			ActionPolicy:         config.PolicyFull,
		}
		h := newHarness(t, testPipelineConfig(), gates, config.PolicyFull, Deps{})
		h.scorer.fn = fixedScore(80)

		res := h.pipeline.Submit(context.Background(), neutralSource, neutralFinding("evt-strict-remediate", nil))
		require.True(t, res.Accepted)

		threat := awaitTerminal(t, h.store)
		assert.Equal(t, models.StatusNotified, threat.Status)
		assert.Equal(t, int32(1), h.analyst.calls.Load())
		assert.Equal(t, 1, h.sink.count())
		assert.Zero(t, h.remediator.calls.Load())
	})
}

func TestPipeline_PolicyOffSuppressesAnalysis(t *testing.T) {
	h := newHarness(t, testPipelineConfig(), config.DefaultTriageConfig(), config.PolicyOff, Deps{})
	h.scorer.fn = fixedScore(90) // priority 74, past the warn gate

	res := h.pipeline.Submit(context.Background(), neutralSource, neutralFinding("evt-off-1", nil))
	require.True(t, res.Accepted)

	threat := awaitTerminal(t, h.store)

	// OFF silences the analyst but warn-gate notifications still page.
	assert.Zero(t, h.analyst.calls.Load())
	assert.Equal(t, 1, h.sink.count())
	assert.Equal(t, models.StatusNotified, threat.Status)
	assert.Nil(t, threat.Analysis)
}

func TestPipeline_PolicyFlipAppliesAtDecisionTime(t *testing.T) {
	h := newHarness(t, testPipelineConfig(), config.DefaultTriageConfig(), config.PolicyNotifyOnly, Deps{})
	h.scorer.fn = fixedScore(90)

	// Priority saturates at 100 for this payload, crossing the remediate
	// gate. Under NOTIFY_ONLY the action must be suppressed.
	res := h.pipeline.Submit(context.Background(), models.SourceGuardDuty,
		guardDutyFinding("evt-policy-a", "UnauthorizedAccess:IAMUser/InstanceCredentialExfiltration", 8, nil))
	require.True(t, res.Accepted)

	first := awaitTerminal(t, h.store)
	assert.Equal(t, models.StatusNotified, first.Status)
	assert.Zero(t, h.remediator.calls.Load())
	assert.Nil(t, first.Remediation)

	// Flip the live policy; the next event reads it at decision time.
	require.NoError(t, h.policy.Set(config.PolicyFull))

	res = h.pipeline.Submit(context.Background(), models.SourceGuardDuty,
		guardDutyFinding("evt-policy-b", "UnauthorizedAccess:IAMUser/InstanceCredentialExfiltration", 8, nil))
	require.True(t, res.Accepted)

	second := awaitTerminal(t, h.store)
	assert.Equal(t, models.StatusRemediated, second.Status)
	assert.Equal(t, int32(1), h.remediator.calls.Load())
	require.NotNil(t, second.Remediation)
	assert.Equal(t, models.RemediationSucceeded, second.Remediation.Status)
}

func TestPipeline_FailedRemediationStillNotifiesAndStores(t *testing.T) {
	h := newHarness(t, testPipelineConfig(), config.DefaultTriageConfig(), config.PolicyFull, Deps{})
	h.scorer.fn = fixedScore(90)
	h.remediator.outcome = models.RemediationOutcome{
		Action:   config.ActionDisableCredential,
		Status:   models.RemediationFailed,
		Attempts: 2,
		Error:    "effector: access denied",
	}

	res := h.pipeline.Submit(context.Background(), models.SourceGuardDuty,
		guardDutyFinding("evt-remfail-1", "UnauthorizedAccess:IAMUser/TorIPCaller", 8, nil))
	require.True(t, res.Accepted)

	threat := awaitTerminal(t, h.store)

	assert.Equal(t, int32(1), h.remediator.calls.Load())
	assert.Equal(t, 1, h.sink.count())

	require.NotNil(t, threat.Remediation)
	assert.Equal(t, models.RemediationFailed, threat.Remediation.Status)

	// A failed action never produces REMEDIATED; the notification caps the
	// ladder at NOTIFIED.
	assert.Equal(t, models.StatusNotified, threat.Status)
}

func TestPipeline_PermanentScorerFailureDeadLetters(t *testing.T) {
	h := newHarness(t, testPipelineConfig(), config.DefaultTriageConfig(), config.PolicyFull, Deps{})
	h.scorer.fn = func(context.Context, *models.NormalizedEvent) (*models.MLVerdict, error) {
		return nil, models.Classify(models.FailureMalformedSource,
			errors.New("feature vector rejected: unknown schema"))
	}

	res := h.pipeline.Submit(context.Background(), neutralSource, neutralFinding("evt-dead-1", nil))
	require.True(t, res.Accepted)

	threat := awaitTerminal(t, h.store)

	// The record is still written durably, with the dead-letter disposition.
	assert.Equal(t, models.StatusDeadLettered, threat.Status)
	assert.Zero(t, h.analyst.calls.Load())
	assert.Zero(t, h.remediator.calls.Load())
	assert.Zero(t, h.sink.count())

	entries := h.pipeline.DeadLetters()
	require.Len(t, entries, 1)
	assert.Equal(t, models.FailureMalformedSource, entries[0].Class)
	assert.Equal(t, "evt-dead-1", entries[0].EventID)
	require.NotNil(t, entries[0].Threat)
	assert.Contains(t, entries[0].Reason, "unknown schema")

	assert.Equal(t, int64(1), h.pipeline.Health().DLQDepth)
}

func TestPipeline_DegradedScorerStillReachesTerminal(t *testing.T) {
	h := newHarness(t, testPipelineConfig(), config.DefaultTriageConfig(), config.PolicyFull, Deps{})
	h.scorer.fn = func(context.Context, *models.NormalizedEvent) (*models.MLVerdict, error) {
		return &models.MLVerdict{
			ScoredAt: time.Now().UTC(),
			Error:    "scorer unreachable: retries exhausted",
		}, nil
	}

	res := h.pipeline.Submit(context.Background(), neutralSource, neutralFinding("evt-degraded-1", nil))
	require.True(t, res.Accepted)

	threat := awaitTerminal(t, h.store)

	assert.Equal(t, models.StatusStoredOnly, threat.Status)
	require.NotNil(t, threat.ML)
	assert.Zero(t, threat.ML.ThreatScore)
	assert.NotEmpty(t, threat.ML.Error)
	require.NotNil(t, threat.Triage)
	assert.InDelta(t, 20, threat.Triage.Priority, 0.001)
	assert.Empty(t, h.pipeline.DeadLetters())
}

func TestPipeline_DeadlineForcesStoredOnly(t *testing.T) {
	cfg := testPipelineConfig()
	cfg.EventDeadline = 30 * time.Millisecond

	h := newHarness(t, cfg, config.DefaultTriageConfig(), config.PolicyFull, Deps{})
	h.scorer.fn = func(ctx context.Context, event *models.NormalizedEvent) (*models.MLVerdict, error) {
		time.Sleep(120 * time.Millisecond) // outlives the event budget
		return &models.MLVerdict{ThreatScore: 95, Confidence: 0.9, ScoredAt: time.Now().UTC()}, nil
	}

	res := h.pipeline.Submit(context.Background(), models.SourceGuardDuty,
		guardDutyFinding("evt-deadline-1", "UnauthorizedAccess:IAMUser/TorIPCaller", 8, nil))
	require.True(t, res.Accepted)

	threat := awaitTerminal(t, h.store)

	// The verdict arrived late; enrichment is kept but every optional stage
	// is skipped and the disposition is forced down.
	assert.Equal(t, models.StatusStoredOnly, threat.Status)
	require.NotNil(t, threat.ML)
	assert.Nil(t, threat.Analysis)
	assert.Nil(t, threat.Remediation)
	assert.Nil(t, threat.NotifiedAt)
	assert.Zero(t, h.analyst.calls.Load())
	assert.Zero(t, h.remediator.calls.Load())
	assert.Zero(t, h.sink.count())
}

func TestPipeline_StagePanicDeadLettersWithoutKillingWorker(t *testing.T) {
	h := newHarness(t, testPipelineConfig(), config.DefaultTriageConfig(), config.PolicyFull, Deps{})

	var first atomic.Bool
	first.Store(true)
	h.scorer.fn = func(ctx context.Context, event *models.NormalizedEvent) (*models.MLVerdict, error) {
		if first.CompareAndSwap(true, false) {
			panic("poisoned feature extraction")
		}
		return &models.MLVerdict{ThreatScore: 10, ScoredAt: time.Now().UTC()}, nil
	}

	res := h.pipeline.Submit(context.Background(), neutralSource, neutralFinding("evt-panic-1", nil))
	require.True(t, res.Accepted)

	poisoned := awaitTerminal(t, h.store)
	assert.Equal(t, models.StatusDeadLettered, poisoned.Status)

	entries := h.pipeline.DeadLetters()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Reason, "poisoned feature extraction")

	// The same partition keeps working afterwards.
	res = h.pipeline.Submit(context.Background(), neutralSource, neutralFinding("evt-panic-1", nil))
	require.True(t, res.Accepted)

	healthy := awaitTerminal(t, h.store)
	assert.Equal(t, models.StatusStoredOnly, healthy.Status)
}

func TestPipeline_BackpressureWhenBusFull(t *testing.T) {
	cfg := testPipelineConfig()
	cfg.BusCapacity = 2
	cfg.MaxConcurrentEvents = 1

	entered := make(chan struct{}, 8)
	gate := make(chan struct{})
	t.Cleanup(func() { close(gate) })

	h := newHarness(t, cfg, config.DefaultTriageConfig(), config.PolicyNotifyOnly, Deps{})
	h.scorer.fn = func(ctx context.Context, event *models.NormalizedEvent) (*models.MLVerdict, error) {
		entered <- struct{}{}
		<-gate
		return &models.MLVerdict{ThreatScore: 10, ScoredAt: time.Now().UTC()}, nil
	}

	// First event occupies the single worker.
	res := h.pipeline.Submit(context.Background(), neutralSource, neutralFinding("evt-bp-0", nil))
	require.True(t, res.Accepted)
	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("worker never picked up the first event")
	}

	// Two more fill the bus to capacity.
	require.True(t, h.pipeline.Submit(context.Background(), neutralSource, neutralFinding("evt-bp-1", nil)).Accepted)
	require.True(t, h.pipeline.Submit(context.Background(), neutralSource, neutralFinding("evt-bp-2", nil)).Accepted)

	res = h.pipeline.Submit(context.Background(), neutralSource, neutralFinding("evt-bp-3", nil))
	require.False(t, res.Accepted)
	assert.Equal(t, string(models.FailureBackpressure), res.Reason)

	health := h.pipeline.Health()
	assert.Equal(t, int64(2), health.BusDepth)
	assert.Equal(t, int64(3), health.InFlight)
}

func TestPipeline_StopDrainsQueuedEventsThenRejects(t *testing.T) {
	cfg := testPipelineConfig()
	cfg.MaxConcurrentEvents = 2

	h := newHarness(t, cfg, config.DefaultTriageConfig(), config.PolicyNotifyOnly, Deps{})
	h.scorer.fn = func(ctx context.Context, event *models.NormalizedEvent) (*models.MLVerdict, error) {
		time.Sleep(10 * time.Millisecond)
		return &models.MLVerdict{ThreatScore: 10, ScoredAt: time.Now().UTC()}, nil
	}

	const submitted = 6
	for i := 0; i < submitted; i++ {
		res := h.pipeline.Submit(context.Background(), neutralSource,
			neutralFinding(fmt.Sprintf("evt-drain-%d", i), nil))
		require.True(t, res.Accepted)
	}

	assert.True(t, h.pipeline.Health().Ready)

	h.pipeline.Stop()

	// Everything admitted before the drain reached a terminal write.
	assert.Equal(t, submitted, h.store.count())
	assert.False(t, h.pipeline.Health().Ready)

	res := h.pipeline.Submit(context.Background(), neutralSource, neutralFinding("evt-late", nil))
	require.False(t, res.Accepted)
	assert.Equal(t, string(models.FailureDraining), res.Reason)
}

func TestPipeline_SameEventIDProcessedInSubmitOrder(t *testing.T) {
	h := newHarness(t, testPipelineConfig(), config.DefaultTriageConfig(), config.PolicyNotifyOnly, Deps{})
	h.scorer.fn = fixedScore(10)

	const redeliveries = 4
	for i := 0; i < redeliveries; i++ {
		res := h.pipeline.Submit(context.Background(), neutralSource,
			neutralFinding("evt-ordered", map[string]any{"seq": fmt.Sprintf("%d", i)}))
		require.True(t, res.Accepted)
	}

	var seqs []string
	for i := 0; i < redeliveries; i++ {
		threat := awaitTerminal(t, h.store)
		require.Equal(t, "evt-ordered", threat.EventID)
		seq, _ := threat.Details["seq"].(string)
		seqs = append(seqs, seq)
	}

	// One partition per event id means redeliveries stay FIFO.
	assert.Equal(t, []string{"0", "1", "2", "3"}, seqs)
}

func TestDeadLetterRing_EvictsOldestWhenFull(t *testing.T) {
	ring := newDeadLetterRing(3)
	for i := 0; i < 5; i++ {
		ring.add(&models.DeadLetter{
			EventID: fmt.Sprintf("evt-%d", i),
			Class:   models.FailureMalformedSource,
			DeadAt:  time.Now().UTC(),
		})
	}

	assert.Equal(t, 3, ring.depth())

	entries := ring.snapshot()
	require.Len(t, entries, 3)
	assert.Equal(t, "evt-4", entries[0].EventID)
	assert.Equal(t, "evt-3", entries[1].EventID)
	assert.Equal(t, "evt-2", entries[2].EventID)
}

func TestNew_PanicsOnMissingDependencies(t *testing.T) {
	ps, err := config.NewPolicyStore(config.PolicyNotifyOnly)
	require.NoError(t, err)

	deps := Deps{
		Scorer:     &scriptedScorer{},
		Analyst:    &scriptedAnalyst{},
		Remediator: &scriptedRemediator{},
		Notifier:   &recordingSink{},
		Store:      newMemoryStore(),
		Policy:     ps,
	}

	assert.Panics(t, func() { New(nil, config.DefaultTriageConfig(), deps) })
	assert.Panics(t, func() { New(testPipelineConfig(), nil, deps) })

	broken := deps
	broken.Scorer = nil
	assert.Panics(t, func() { New(testPipelineConfig(), config.DefaultTriageConfig(), broken) })

	broken = deps
	broken.Store = nil
	assert.Panics(t, func() { New(testPipelineConfig(), config.DefaultTriageConfig(), broken) })
}
