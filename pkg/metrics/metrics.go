// Package metrics exposes Prometheus instrumentation for the event pipeline.
// All metrics share the "argus_" prefix and are registered on the default
// registry so promhttp.Handler() serves them without extra wiring.
package metrics

import (
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"

	"github.com/argus-soc/argus/pkg/models"
)

// Pipeline stage labels used by the latency summary and deadline counters.
const (
	StageNormalize   = "normalize"
	StageScore       = "ml_score"
	StageTriage      = "triage"
	StageAnalysis    = "analysis"
	StageRemediation = "remediation"
	StageNotify      = "notify"
	StageStore       = "store"
	StageEndToEnd    = "end_to_end"
)

// Oracle labels for retry and degradation counters.
const (
	OracleScorer  = "scorer"
	OracleAnalyst = "analyst"
)

// Notification outcome labels.
const (
	NotifyOutcomeSent        = "sent"
	NotifyOutcomeDeduped     = "deduped"
	NotifyOutcomeBreakerOpen = "breaker_open"
	NotifyOutcomeFailed      = "failed"
)

// PipelineMetrics holds every Prometheus collector the pipeline records to.
// A nil *PipelineMetrics is safe to call; all recording methods become no-ops,
// which keeps unit tests free of registry setup.
type PipelineMetrics struct {
	// Ingress and normalization
	FindingsIngested *prometheus.CounterVec
	FindingsRejected *prometheus.CounterVec
	SeverityMissing  *prometheus.CounterVec

	// Bus occupancy
	BusDepth   prometheus.Gauge
	BusAgedOut prometheus.Counter
	InFlight   prometheus.Gauge

	// Terminal dispositions
	EventsCompleted *prometheus.CounterVec
	DeadLetters     *prometheus.CounterVec
	DLQDepth        prometheus.Gauge
	DeadlineExpired *prometheus.CounterVec

	// Oracle calls
	OracleRetries  *prometheus.CounterVec
	OracleDegraded *prometheus.CounterVec

	// Response actions
	Remediations     *prometheus.CounterVec
	PolicySuppressed *prometheus.CounterVec

	// Delivery
	Notifications   *prometheus.CounterVec
	StoreRetries    prometheus.Counter
	StoreDLQ        prometheus.Counter
	PlaybookFetches *prometheus.CounterVec

	// Per-stage processing latency, quantiles served on the health endpoint
	StageLatency *prometheus.SummaryVec
}

var (
	pipelineMetricsInstance *PipelineMetrics
	pipelineMetricsOnce     sync.Once
)

// NewPipelineMetrics creates and registers all collectors. It is a process
// singleton: repeated calls return the same instance so tests and the main
// wiring never trip duplicate registration.
func NewPipelineMetrics() *PipelineMetrics {
	pipelineMetricsOnce.Do(func() {
		pipelineMetricsInstance = createPipelineMetrics()
	})
	return pipelineMetricsInstance
}

func createPipelineMetrics() *PipelineMetrics {
	m := &PipelineMetrics{
		FindingsIngested: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "argus_findings_ingested_total",
				Help: "Raw findings accepted at the ingress, by source tag",
			},
			[]string{"source"},
		),

		FindingsRejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "argus_findings_rejected_total",
				Help: "Findings rejected before entering the bus",
			},
			[]string{"source", "reason"},
		),

		SeverityMissing: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "argus_severity_missing_total",
				Help: "Findings normalized without a native severity field",
			},
			[]string{"source"},
		),

		BusDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "argus_bus_depth",
			Help: "Events currently buffered on the internal bus",
		}),

		BusAgedOut: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "argus_bus_aged_out_total",
			Help: "Events dropped to the DLQ after exceeding bus retention",
		}),

		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "argus_events_in_flight",
			Help: "Events admitted but not yet in a terminal state",
		}),

		EventsCompleted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "argus_events_completed_total",
				Help: "Events that reached a terminal state, by final status",
			},
			[]string{"status"},
		),

		DeadLetters: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "argus_dead_letters_total",
				Help: "Events routed to the dead letter queue, by failure class",
			},
			[]string{"class"},
		),

		DLQDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "argus_dlq_depth",
			Help: "Entries currently held in the dead letter queue",
		}),

		DeadlineExpired: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "argus_deadline_expired_total",
				Help: "Stage deadlines that expired before completion",
			},
			[]string{"stage"},
		),

		OracleRetries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "argus_oracle_retries_total",
				Help: "Retry attempts against external oracles",
			},
			[]string{"oracle"},
		),

		OracleDegraded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "argus_oracle_degraded_total",
				Help: "Oracle calls that fell back to a degraded verdict",
			},
			[]string{"oracle", "reason"},
		),

		Remediations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "argus_remediations_total",
				Help: "Remediation executions, by action kind and outcome",
			},
			[]string{"action", "status"},
		),

		PolicySuppressed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "argus_policy_suppressed_total",
				Help: "Mutating actions suppressed by the active action policy",
			},
			[]string{"policy"},
		),

		Notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "argus_notifications_total",
				Help: "Alert notification attempts, by outcome",
			},
			[]string{"outcome"},
		),

		StoreRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "argus_store_retries_total",
			Help: "Retried threat record writes",
		}),

		StoreDLQ: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "argus_store_dlq_total",
			Help: "Threat records journaled after store writes exhausted backoff",
		}),

		PlaybookFetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "argus_playbook_fetches_total",
				Help: "Playbook lookups, by cache result",
			},
			[]string{"result"},
		),

		StageLatency: prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Name:       "argus_stage_latency_seconds",
				Help:       "Processing latency per pipeline stage",
				Objectives: map[float64]float64{0.5: 0.05, 0.95: 0.01, 0.99: 0.001},
			},
			[]string{"stage"},
		),
	}

	safeRegister(
		m.FindingsIngested,
		m.FindingsRejected,
		m.SeverityMissing,
		m.BusDepth,
		m.BusAgedOut,
		m.InFlight,
		m.EventsCompleted,
		m.DeadLetters,
		m.DLQDepth,
		m.DeadlineExpired,
		m.OracleRetries,
		m.OracleDegraded,
		m.Remediations,
		m.PolicySuppressed,
		m.Notifications,
		m.StoreRetries,
		m.StoreDLQ,
		m.PlaybookFetches,
		m.StageLatency,
	)

	return m
}

// safeRegister registers collectors, tolerating AlreadyRegisteredError so a
// second NewPipelineMetrics call in the same process cannot crash startup.
func safeRegister(collectors ...prometheus.Collector) {
	for _, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				continue
			}
		}
	}
}

// Handler returns the HTTP handler serving the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

func (m *PipelineMetrics) RecordIngested(source string) {
	if m == nil {
		return
	}
	m.FindingsIngested.WithLabelValues(source).Inc()
}

func (m *PipelineMetrics) RecordRejected(source, reason string) {
	if m == nil {
		return
	}
	m.FindingsRejected.WithLabelValues(source, reason).Inc()
}

func (m *PipelineMetrics) RecordSeverityMissing(source string) {
	if m == nil {
		return
	}
	m.SeverityMissing.WithLabelValues(source).Inc()
}

func (m *PipelineMetrics) SetBusDepth(depth int) {
	if m == nil {
		return
	}
	m.BusDepth.Set(float64(depth))
}

func (m *PipelineMetrics) RecordBusAgedOut() {
	if m == nil {
		return
	}
	m.BusAgedOut.Inc()
}

func (m *PipelineMetrics) SetInFlight(n int) {
	if m == nil {
		return
	}
	m.InFlight.Set(float64(n))
}

func (m *PipelineMetrics) RecordCompleted(status string) {
	if m == nil {
		return
	}
	m.EventsCompleted.WithLabelValues(status).Inc()
}

func (m *PipelineMetrics) RecordDeadLetter(class string) {
	if m == nil {
		return
	}
	m.DeadLetters.WithLabelValues(class).Inc()
}

func (m *PipelineMetrics) SetDLQDepth(depth int) {
	if m == nil {
		return
	}
	m.DLQDepth.Set(float64(depth))
}

func (m *PipelineMetrics) RecordDeadlineExpired(stage string) {
	if m == nil {
		return
	}
	m.DeadlineExpired.WithLabelValues(stage).Inc()
}

func (m *PipelineMetrics) RecordOracleRetry(oracle string) {
	if m == nil {
		return
	}
	m.OracleRetries.WithLabelValues(oracle).Inc()
}

func (m *PipelineMetrics) RecordOracleDegraded(oracle, reason string) {
	if m == nil {
		return
	}
	m.OracleDegraded.WithLabelValues(oracle, reason).Inc()
}

func (m *PipelineMetrics) RecordRemediation(action, status string) {
	if m == nil {
		return
	}
	m.Remediations.WithLabelValues(action, status).Inc()
}

func (m *PipelineMetrics) RecordPolicySuppressed(policy string) {
	if m == nil {
		return
	}
	m.PolicySuppressed.WithLabelValues(policy).Inc()
}

func (m *PipelineMetrics) RecordNotification(outcome string) {
	if m == nil {
		return
	}
	m.Notifications.WithLabelValues(outcome).Inc()
}

func (m *PipelineMetrics) RecordStoreDLQ() {
	if m == nil {
		return
	}
	m.StoreDLQ.Inc()
}

func (m *PipelineMetrics) RecordStoreRetry() {
	if m == nil {
		return
	}
	m.StoreRetries.Inc()
}

func (m *PipelineMetrics) RecordPlaybookFetch(result string) {
	if m == nil {
		return
	}
	m.PlaybookFetches.WithLabelValues(result).Inc()
}

// ObserveStageLatency records one stage execution. Durations are observed in
// seconds; readers convert to the unit they need.
func (m *PipelineMetrics) ObserveStageLatency(stage string, d time.Duration) {
	if m == nil {
		return
	}
	m.StageLatency.WithLabelValues(stage).Observe(d.Seconds())
}

// StageLatencies reads the current summary quantiles back out of the
// collector, keyed by stage, in milliseconds. Stages with no observations in
// the summary window report zeros.
func (m *PipelineMetrics) StageLatencies() map[string]models.LatencyQuantiles {
	out := make(map[string]models.LatencyQuantiles)
	if m == nil {
		return out
	}

	ch := make(chan prometheus.Metric, 32)
	go func() {
		m.StageLatency.Collect(ch)
		close(ch)
	}()

	for metric := range ch {
		var pb dto.Metric
		if err := metric.Write(&pb); err != nil || pb.Summary == nil {
			continue
		}

		var stage string
		for _, lp := range pb.Label {
			if lp.GetName() == "stage" {
				stage = lp.GetValue()
			}
		}
		if stage == "" {
			continue
		}

		var q models.LatencyQuantiles
		for _, quant := range pb.Summary.Quantile {
			ms := quant.GetValue() * 1000
			if math.IsNaN(ms) {
				ms = 0
			}
			switch quant.GetQuantile() {
			case 0.5:
				q.P50 = ms
			case 0.95:
				q.P95 = ms
			case 0.99:
				q.P99 = ms
			}
		}
		out[stage] = q
	}

	return out
}
