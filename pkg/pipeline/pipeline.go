// Package pipeline wires the processing stages into the event flow:
// normalize at ingress, buffer on the partitioned bus, then per-partition
// workers drive score, triage, gated analysis, gated remediation,
// notification and the terminal store write. Every admitted event reaches
// exactly one terminal status; failures degrade or dead-letter, they never
// wedge a worker.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/argus-soc/argus/pkg/bus"
	"github.com/argus-soc/argus/pkg/config"
	"github.com/argus-soc/argus/pkg/events"
	"github.com/argus-soc/argus/pkg/masking"
	"github.com/argus-soc/argus/pkg/metrics"
	"github.com/argus-soc/argus/pkg/models"
	"github.com/argus-soc/argus/pkg/normalizer"
	"github.com/argus-soc/argus/pkg/playbook"
	"github.com/argus-soc/argus/pkg/store"
	"github.com/argus-soc/argus/pkg/triage"
)

// terminalWriteTimeout bounds the store write plus lifecycle publish for one
// event. It must cover the store's full retry schedule: the terminal write
// runs on a fresh context precisely so a spent event budget or a shutdown
// cannot abandon it.
const terminalWriteTimeout = 30 * time.Second

// Scorer is the ML oracle. A returned error is permanent (schema-level
// rejection) and dead-letters the event; outages surface as degraded
// verdicts instead.
type Scorer interface {
	Score(ctx context.Context, event *models.NormalizedEvent) (*models.MLVerdict, error)
}

// Analyst produces deep-analysis reports for threats past the warn gate.
// It degrades instead of failing.
type Analyst interface {
	Analyze(ctx context.Context, threat *models.Threat, playbookExcerpt string) *models.AnalysisReport
}

// Remediator resolves and executes the response action for a threat.
type Remediator interface {
	Execute(ctx context.Context, threat *models.Threat) *models.RemediationOutcome
}

// AlertSink delivers operator notifications and reports whether one
// actually went out.
type AlertSink interface {
	Notify(ctx context.Context, threat *models.Threat) bool
}

// RecordStore persists threat records.
type RecordStore interface {
	Put(ctx context.Context, threat *models.Threat) error
	JournalDepth() int
}

// Deps bundles the stage components the pipeline orchestrates. Scorer,
// Analyst, Remediator, Notifier, Store and Policy are required; Masker,
// Playbooks and Publisher may be nil and degrade to no-ops.
type Deps struct {
	Scorer     Scorer
	Analyst    Analyst
	Remediator Remediator
	Notifier   AlertSink
	Store      RecordStore
	Policy     *config.PolicyStore
	Masker     *masking.Service
	Playbooks  *playbook.Service
	Publisher  *events.Publisher
	Metrics    *metrics.PipelineMetrics
}

// Pipeline is the orchestrator: it owns the bus, the worker pool and the
// event DLQ ring, and drives every admitted event to a terminal status.
type Pipeline struct {
	cfg        *config.PipelineConfig
	gates      *config.TriageConfig
	bus        *bus.Bus
	normalizer *normalizer.Normalizer
	triage     *triage.Engine

	scorer     Scorer
	analyst    Analyst
	remediator Remediator
	notifier   AlertSink
	store      RecordStore
	policy     *config.PolicyStore
	masker     *masking.Service
	playbooks  *playbook.Service
	publisher  *events.Publisher

	dlq     *deadLetterRing
	metrics *metrics.PipelineMetrics
	logger  *slog.Logger

	// processing counts events a worker has dequeued but not finished;
	// in-flight = bus depth + processing.
	processing atomic.Int64

	// submitMu lets Stop wait out in-flight Submits before closing the bus
	// partitions, so Enqueue can never race a closed channel.
	submitMu sync.RWMutex

	wg       sync.WaitGroup
	started  bool
	stopOnce sync.Once
}

// New builds the pipeline around the given stage components.
func New(pipelineCfg *config.PipelineConfig, triageCfg *config.TriageConfig, deps Deps) *Pipeline {
	if pipelineCfg == nil {
		panic("pipeline config is required")
	}
	if triageCfg == nil {
		panic("triage config is required")
	}
	if deps.Scorer == nil {
		panic("pipeline requires a scorer")
	}
	if deps.Analyst == nil {
		panic("pipeline requires an analyst")
	}
	if deps.Remediator == nil {
		panic("pipeline requires a remediator")
	}
	if deps.Notifier == nil {
		panic("pipeline requires a notifier")
	}
	if deps.Store == nil {
		panic("pipeline requires a record store")
	}
	if deps.Policy == nil {
		panic("pipeline requires a policy store")
	}

	return &Pipeline{
		cfg:        pipelineCfg,
		gates:      triageCfg,
		bus:        bus.NewBus(pipelineCfg, deps.Metrics),
		normalizer: normalizer.NewNormalizer(deps.Metrics),
		triage:     triage.NewEngine(triageCfg),
		scorer:     deps.Scorer,
		analyst:    deps.Analyst,
		remediator: deps.Remediator,
		notifier:   deps.Notifier,
		store:      deps.Store,
		policy:     deps.Policy,
		masker:     deps.Masker,
		playbooks:  deps.Playbooks,
		publisher:  deps.Publisher,
		dlq:        newDeadLetterRing(pipelineCfg.DLQCapacity),
		metrics:    deps.Metrics,
		logger:     slog.With("component", "pipeline"),
	}
}

// Start launches one worker goroutine per bus partition. It is safe to call
// multiple times; subsequent calls are no-ops.
func (p *Pipeline) Start(ctx context.Context) {
	if p.started {
		p.logger.Warn("Pipeline already started, ignoring duplicate Start call")
		return
	}
	p.started = true

	p.logger.Info("Starting pipeline workers",
		"workers", p.bus.Partitions(),
		"bus_capacity", p.cfg.BusCapacity,
		"event_deadline", p.cfg.EventDeadline.String())

	for i := 0; i < p.bus.Partitions(); i++ {
		p.wg.Add(1)
		go p.runWorker(ctx, i)
	}
}

// Stop drains the pipeline: ingress rejects with Draining, queued events run
// to a terminal state, then workers exit. Returns once drained or when the
// graceful window elapses with work still in flight.
func (p *Pipeline) Stop() {
	p.stopOnce.Do(func() {
		p.logger.Info("Draining pipeline",
			"queued", p.bus.Depth(),
			"processing", p.processing.Load())

		p.bus.BeginDrain()

		// Wait out in-flight Submits so nothing can enqueue onto a closed
		// partition.
		p.submitMu.Lock()
		p.bus.Close()
		p.submitMu.Unlock()

		done := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			p.logger.Info("Pipeline drained")
		case <-time.After(p.cfg.GracefulShutdownTimeout):
			p.logger.Warn("Graceful drain window elapsed with events still in flight",
				"queued", p.bus.Depth(),
				"processing", p.processing.Load())
		}
	})
}

// Submit normalizes one raw finding and admits it to the bus. Normalization
// is synchronous so the caller learns about malformed payloads immediately;
// everything past the bus is asynchronous.
func (p *Pipeline) Submit(ctx context.Context, sourceTag string, payload json.RawMessage) models.SubmitFindingResponse {
	finding := models.RawFinding{
		SourceTag:  sourceTag,
		Payload:    payload,
		ReceivedAt: time.Now().UTC(),
	}

	stageStart := time.Now()
	event, err := p.normalizer.Normalize(finding)
	p.metrics.ObserveStageLatency(metrics.StageNormalize, time.Since(stageStart))
	if err != nil {
		class := models.ClassOf(err)
		if class == "" {
			class = models.FailureMalformedSource
		}
		p.logger.Warn("Rejected malformed finding", "source", sourceTag, "error", err)
		p.metrics.RecordRejected(sourceTag, string(class))

		p.dlq.add(&models.DeadLetter{
			SourceTag: sourceTag,
			Payload:   payload,
			Class:     class,
			Reason:    err.Error(),
			Attempts:  1,
			DeadAt:    time.Now().UTC(),
		})
		p.metrics.RecordDeadLetter(string(class))
		p.refreshDLQDepth()

		return models.SubmitFindingResponse{
			Accepted: false,
			Reason:   string(class),
			Detail:   err.Error(),
		}
	}

	// Secrets are masked at admission so no later stage, log line or stored
	// record ever sees the raw values.
	event.Details = p.masker.MaskDetails(event.Details)

	p.submitMu.RLock()
	err = p.bus.Enqueue(event)
	p.submitMu.RUnlock()
	if err != nil {
		class := models.ClassOf(err)
		p.metrics.RecordRejected(sourceTag, string(class))
		return models.SubmitFindingResponse{
			Accepted: false,
			EventID:  event.EventID,
			Reason:   string(class),
			Detail:   err.Error(),
		}
	}

	p.metrics.RecordIngested(sourceTag)
	p.publishInFlight()
	return models.SubmitFindingResponse{Accepted: true, EventID: event.EventID}
}

// Health reports the readiness snapshot served on /readyz.
func (p *Pipeline) Health() models.HealthResponse {
	return models.HealthResponse{
		Ready:          p.started && !p.bus.Draining(),
		InFlight:       p.bus.Depth() + p.processing.Load(),
		BusDepth:       p.bus.Depth(),
		DLQDepth:       int64(p.dlq.depth() + p.store.JournalDepth()),
		StageLatencies: p.metrics.StageLatencies(),
	}
}

// DeadLetters returns a newest-first snapshot of the event DLQ ring.
func (p *Pipeline) DeadLetters() []models.DeadLetter {
	return p.dlq.snapshot()
}

// runWorker drains one bus partition until it is closed or the context is
// cancelled. One worker per partition is what provides per-event-id FIFO.
func (p *Pipeline) runWorker(ctx context.Context, partition int) {
	defer p.wg.Done()

	log := p.logger.With("partition", partition)
	log.Debug("Worker started")

	for {
		msg, ok := p.bus.Next(ctx, partition)
		if !ok {
			log.Debug("Worker shutting down")
			return
		}

		p.processing.Add(1)
		p.publishInFlight()

		p.process(ctx, msg)

		p.processing.Add(-1)
		p.publishInFlight()
	}
}

// process drives one event through the stage chain to its terminal status.
func (p *Pipeline) process(parent context.Context, msg bus.Message) {
	event := msg.Event
	log := p.logger.With("event_id", event.EventID, "source", event.Source)

	// The end-to-end budget runs from dequeue; time spent queued is governed
	// by bus retention instead.
	started := time.Now()
	ctx, cancel := context.WithTimeout(parent, p.cfg.EventDeadline)
	defer cancel()

	threat := &models.Threat{NormalizedEvent: *event}

	if err := p.runStages(ctx, log, threat); err != nil {
		p.deadLetter(log, threat, err)
	}

	if threat.Status == "" {
		threat.Status = models.StatusStoredOnly
	}

	// A spent budget forces the stored-only disposition. Enrichment gathered
	// before expiry is kept; only the status is downgraded.
	if threat.Status != models.StatusDeadLettered && ctx.Err() != nil {
		threat.Status = models.StatusStoredOnly
		p.metrics.RecordDeadlineExpired(metrics.StageEndToEnd)
		log.Warn("Event exceeded end-to-end budget, stored without remaining stages",
			"elapsed", time.Since(started).String())
	}

	p.finish(log, threat, event.ReceivedAt, started)
}

// runStages executes score, triage and the gated optional stages, mutating
// threat as envelopes attach. A returned error dead-letters the event.
// Panics in stage code are converted to errors here so one poisoned event
// cannot take its partition worker down.
func (p *Pipeline) runStages(ctx context.Context, log *slog.Logger, threat *models.Threat) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = models.Classify(models.FailureMalformedSource, fmt.Errorf("stage panic: %v", r))
			log.Error("Stage panicked", "panic", r)
		}
	}()

	event := &threat.NormalizedEvent

	// ML scoring. Outages come back as degraded verdicts; an error means the
	// oracle rejected the event itself and retrying is pointless.
	stageStart := time.Now()
	verdict, err := p.scorer.Score(ctx, event)
	p.metrics.ObserveStageLatency(metrics.StageScore, time.Since(stageStart))
	if err != nil {
		return err
	}
	threat.ML = verdict

	stageStart = time.Now()
	threat.Triage = p.triage.Evaluate(event, verdict)
	p.metrics.ObserveStageLatency(metrics.StageTriage, time.Since(stageStart))

	priority := threat.Triage.Priority

	// Deep analysis: strict warn gate, suppressed entirely under policy OFF.
	if priority > p.gates.WarnThreshold && p.policy.Get() != config.PolicyOff && ctx.Err() == nil {
		excerpt := p.playbooks.Excerpt(ctx, event.Kind)

		stageStart = time.Now()
		threat.Analysis = p.analyst.Analyze(ctx, threat, excerpt)
		p.metrics.ObserveStageLatency(metrics.StageAnalysis, time.Since(stageStart))
	}

	// Remediation: strict gate, and the policy is re-read at decision time
	// so a runtime flip applies to events already in flight.
	remediationFailed := false
	if priority > p.gates.RemediateThreshold && ctx.Err() == nil {
		if policy := p.policy.Get(); policy == config.PolicyFull {
			stageStart = time.Now()
			outcome := p.remediator.Execute(ctx, threat)
			p.metrics.ObserveStageLatency(metrics.StageRemediation, time.Since(stageStart))

			threat.Remediation = outcome
			remediationFailed = outcome.Status == models.RemediationFailed
			if outcome.Status == models.RemediationSucceeded {
				threat.Status = models.StatusRemediated
			}
		} else {
			p.metrics.RecordPolicySuppressed(string(policy))
			log.Info("Mutating action suppressed by policy",
				"policy", policy,
				"priority", priority)
		}
	}

	// Notification: warn-gate crossings page, and so does a failed
	// remediation regardless of priority.
	if (priority > p.gates.WarnThreshold || remediationFailed) && ctx.Err() == nil {
		stageStart = time.Now()
		if p.notifier.Notify(ctx, threat) {
			now := time.Now().UTC()
			threat.NotifiedAt = &now
			threat.Status = models.MergeStatus(threat.Status, models.StatusNotified)
		}
		p.metrics.ObserveStageLatency(metrics.StageNotify, time.Since(stageStart))
	}

	return nil
}

// deadLetter records the failure in the DLQ ring and stamps the threat so
// finish writes it with the DEAD_LETTERED disposition.
func (p *Pipeline) deadLetter(log *slog.Logger, threat *models.Threat, cause error) {
	class := models.ClassOf(cause)
	if class == "" {
		class = models.FailureOracleUnavailable
	}

	threat.Status = models.StatusDeadLettered

	p.dlq.add(&models.DeadLetter{
		EventID:   threat.EventID,
		SourceTag: threat.Source,
		Threat:    threat,
		Class:     class,
		Reason:    cause.Error(),
		Attempts:  1,
		DeadAt:    time.Now().UTC(),
	})
	p.metrics.RecordDeadLetter(string(class))

	log.Error("Event dead-lettered", "class", class, "error", cause)
}

// finish writes the terminal record and emits the lifecycle event. It runs
// on a fresh context: the event budget being spent, or a shutdown in
// progress, must not stop the record from landing.
func (p *Pipeline) finish(log *slog.Logger, threat *models.Threat, receivedAt, started time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), terminalWriteTimeout)
	defer cancel()

	stageStart := time.Now()
	err := p.store.Put(ctx, threat)
	p.metrics.ObserveStageLatency(metrics.StageStore, time.Since(stageStart))
	if err != nil && !errors.Is(err, store.ErrJournaled) {
		log.Error("Threat record write failed past the journal", "error", err)
	}

	p.metrics.RecordCompleted(string(threat.Status))
	p.refreshDLQDepth()

	if receivedAt.IsZero() {
		receivedAt = started
	}
	p.metrics.ObserveStageLatency(metrics.StageEndToEnd, time.Since(receivedAt))

	p.publisher.Publish(ctx, threat)

	log.Info("Event reached terminal state",
		"status", threat.Status,
		"priority", priorityOf(threat),
		"elapsed", time.Since(started).String())
}

func (p *Pipeline) publishInFlight() {
	p.metrics.SetInFlight(int(p.bus.Depth() + p.processing.Load()))
}

func (p *Pipeline) refreshDLQDepth() {
	p.metrics.SetDLQDepth(p.dlq.depth() + p.store.JournalDepth())
}

func priorityOf(threat *models.Threat) float64 {
	if threat.Triage == nil {
		return 0
	}
	return threat.Triage.Priority
}
