package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/argus-soc/argus/pkg/config"
	"github.com/argus-soc/argus/pkg/models"
)

// pingTimeout bounds the startup reachability probe. The probe is
// informational only; an unreachable broker does not fail construction.
const pingTimeout = 2 * time.Second

// Publisher appends lifecycle events to a Redis Stream.
// Nil-safe: a nil publisher drops every event, which is how deployments
// without a broker run.
type Publisher struct {
	client *redis.Client
	stream string
	maxLen int64
	logger *slog.Logger
}

// NewPublisher creates a publisher from resolved configuration.
// Returns nil when Redis is not enabled.
func NewPublisher(cfg *config.RedisConfig) *Publisher {
	if cfg == nil || !cfg.Enabled {
		return nil
	}

	var password string
	if cfg.PasswordEnv != "" {
		password = os.Getenv(cfg.PasswordEnv)
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: password,
	})
	logger := slog.Default().With("component", "events")

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unreachable at startup, lifecycle events will drop until it recovers",
			"addr", cfg.Addr,
			"error", err)
	}

	return &Publisher{
		client: client,
		stream: cfg.Stream,
		maxLen: cfg.MaxLen,
		logger: logger,
	}
}

// NewPublisherWithClient creates a publisher backed by a pre-built client.
// Useful for testing against miniredis.
func NewPublisherWithClient(client *redis.Client, stream string, maxLen int64) *Publisher {
	return &Publisher{
		client: client,
		stream: stream,
		maxLen: maxLen,
		logger: slog.Default().With("component", "events"),
	}
}

// Publish appends the threat's terminal transition to the stream. Routing
// fields are flattened into stream values so consumers can filter without
// decoding the payload; the full threat rides along as JSON.
//
// Errors are logged and swallowed. The record is already durable in
// Postgres by the time this runs, so a lost stream entry is recoverable
// from the read API.
func (p *Publisher) Publish(ctx context.Context, threat *models.Threat) {
	if p == nil || threat == nil {
		return
	}
	kind, ok := KindForStatus(threat.Status)
	if !ok {
		return
	}

	payload, err := json.Marshal(threat)
	if err != nil {
		p.logger.Warn("Failed to encode lifecycle event",
			"event_id", threat.EventID,
			"error", err)
		return
	}

	values := map[string]interface{}{
		"kind":         string(kind),
		"event_id":     threat.EventID,
		"source":       threat.Source,
		"account_id":   threat.AccountID,
		"severity":     string(threat.Severity),
		"status":       string(threat.Status),
		"published_at": time.Now().UTC().Format(time.RFC3339Nano),
		"payload":      string(payload),
	}
	if threat.Triage != nil {
		values["priority"] = strconv.FormatFloat(threat.Triage.Priority, 'f', -1, 64)
	}

	args := &redis.XAddArgs{
		Stream: p.stream,
		Values: values,
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}

	if err := p.client.XAdd(ctx, args).Err(); err != nil {
		p.logger.Warn("Failed to publish lifecycle event",
			"kind", kind,
			"event_id", threat.EventID,
			"error", err)
		return
	}

	p.logger.Debug("Lifecycle event published",
		"kind", kind,
		"event_id", threat.EventID)
}

// Close releases the underlying Redis connection. Nil-safe.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.client.Close()
}
