package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetSingleton() {
	pipelineMetricsOnce = sync.Once{}
	pipelineMetricsInstance = nil
}

func TestNewPipelineMetrics(t *testing.T) {
	resetSingleton()

	m := NewPipelineMetrics()
	require.NotNil(t, m)

	assert.NotNil(t, m.FindingsIngested)
	assert.NotNil(t, m.DeadLetters)
	assert.NotNil(t, m.StageLatency)
	assert.NotNil(t, m.Notifications)
}

func TestNewPipelineMetricsSingleton(t *testing.T) {
	resetSingleton()

	m1 := NewPipelineMetrics()
	m2 := NewPipelineMetrics()

	assert.Same(t, m1, m2, "repeated construction should return the same instance")
}

func TestSafeRegisterToleratesDuplicates(t *testing.T) {
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "argus_test_safe_register_counter",
		Help: "registration test counter",
	})
	defer prometheus.Unregister(counter)

	safeRegister(counter)

	assert.NotPanics(t, func() {
		safeRegister(counter)
	})
}

func TestRecordHelpers(t *testing.T) {
	resetSingleton()
	m := NewPipelineMetrics()

	assert.NotPanics(t, func() {
		m.RecordIngested("aws.guardduty")
		m.RecordRejected("aws.securityhub", "backpressure")
		m.RecordSeverityMissing("aws.guardduty")
		m.SetBusDepth(42)
		m.RecordBusAgedOut()
		m.SetInFlight(7)
		m.RecordCompleted("DONE")
		m.RecordDeadLetter("OracleUnavailable")
		m.SetDLQDepth(3)
		m.RecordDeadlineExpired(StageEndToEnd)
		m.RecordOracleRetry(OracleScorer)
		m.RecordOracleDegraded(OracleAnalyst, "timeout")
		m.RecordRemediation("DISABLE_CREDENTIAL", "SUCCEEDED")
		m.RecordPolicySuppressed("NOTIFY_ONLY")
		m.RecordNotification(NotifyOutcomeSent)
		m.RecordStoreRetry()
		m.RecordPlaybookFetch("hit")
	})
}

func TestNilReceiverIsNoOp(t *testing.T) {
	var m *PipelineMetrics

	assert.NotPanics(t, func() {
		m.RecordIngested("aws.guardduty")
		m.RecordCompleted("DONE")
		m.ObserveStageLatency(StageTriage, time.Millisecond)
		m.SetBusDepth(1)
	})

	assert.Empty(t, m.StageLatencies())
}

func TestStageLatencies(t *testing.T) {
	resetSingleton()
	m := NewPipelineMetrics()

	for i := 0; i < 100; i++ {
		m.ObserveStageLatency(StageTriage, 10*time.Millisecond)
		m.ObserveStageLatency(StageScore, 250*time.Millisecond)
	}

	got := m.StageLatencies()

	require.Contains(t, got, StageTriage)
	require.Contains(t, got, StageScore)

	// All observations are identical, so every quantile sits on the value.
	assert.InDelta(t, 10.0, got[StageTriage].P50, 0.5)
	assert.InDelta(t, 10.0, got[StageTriage].P99, 0.5)
	assert.InDelta(t, 250.0, got[StageScore].P95, 1.0)
}

func TestStageLatenciesUnobservedStage(t *testing.T) {
	resetSingleton()
	m := NewPipelineMetrics()

	got := m.StageLatencies()

	_, ok := got["never_observed"]
	assert.False(t, ok, "stages never observed should not appear")
}
