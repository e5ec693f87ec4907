package events

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argus-soc/argus/pkg/config"
	"github.com/argus-soc/argus/pkg/models"
)

func newTestPublisher(t *testing.T, maxLen int64) (*Publisher, *redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewPublisherWithClient(client, "argus:threats", maxLen), client, mr
}

func terminalThreat(eventID string, status models.ThreatStatus) *models.Threat {
	threat := &models.Threat{
		NormalizedEvent: models.NormalizedEvent{
			EventID:    eventID,
			Source:     models.SourceGuardDuty,
			AccountID:  "123456789012",
			Region:     "us-east-1",
			Kind:       "Recon:EC2/PortProbe",
			Severity:   models.SeverityMedium,
			ObservedAt: time.Now().UTC(),
			ReceivedAt: time.Now().UTC(),
		},
	}
	threat.Status = status
	return threat
}

func TestKindForStatus(t *testing.T) {
	tests := []struct {
		status models.ThreatStatus
		want   Kind
		ok     bool
	}{
		{models.StatusStoredOnly, KindStored, true},
		{models.StatusNotified, KindNotified, true},
		{models.StatusRemediated, KindRemediated, true},
		{models.StatusDeadLettered, KindDeadLettered, true},
		{models.ThreatStatus(""), Kind(""), false},
		{models.ThreatStatus("PENDING"), Kind(""), false},
	}

	for _, tt := range tests {
		kind, ok := KindForStatus(tt.status)
		assert.Equal(t, tt.want, kind, "status %q", tt.status)
		assert.Equal(t, tt.ok, ok, "status %q", tt.status)
	}
}

func TestPublisher_PublishesTerminalTransition(t *testing.T) {
	p, client, _ := newTestPublisher(t, 0)
	ctx := context.Background()

	threat := terminalThreat("evt-1", models.StatusNotified)
	threat.Triage = &models.TriageResult{Priority: 76.5, Band: models.SeverityHigh, TriagedAt: time.Now()}
	p.Publish(ctx, threat)

	msgs, err := client.XRange(ctx, "argus:threats", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	values := msgs[0].Values
	assert.Equal(t, "threat.notified", values["kind"])
	assert.Equal(t, "evt-1", values["event_id"])
	assert.Equal(t, "aws.guardduty", values["source"])
	assert.Equal(t, "MEDIUM", values["severity"])
	assert.Equal(t, "NOTIFIED", values["status"])
	assert.Equal(t, "76.5", values["priority"])

	var decoded models.Threat
	require.NoError(t, json.Unmarshal([]byte(values["payload"].(string)), &decoded))
	assert.Equal(t, "evt-1", decoded.EventID)
	require.NotNil(t, decoded.Triage)
	assert.InDelta(t, 76.5, decoded.Triage.Priority, 0.001)
}

func TestPublisher_SkipsThreatsWithoutTerminalStatus(t *testing.T) {
	p, client, _ := newTestPublisher(t, 0)
	ctx := context.Background()

	p.Publish(ctx, terminalThreat("evt-pending", models.ThreatStatus("")))

	length, err := client.XLen(ctx, "argus:threats").Result()
	require.NoError(t, err)
	assert.Zero(t, length)
}

func TestPublisher_CapsStreamLength(t *testing.T) {
	p, client, _ := newTestPublisher(t, 2)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		p.Publish(ctx, terminalThreat(fmt.Sprintf("evt-%d", i), models.StatusStoredOnly))
	}

	length, err := client.XLen(ctx, "argus:threats").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(2), length)
}

func TestPublisher_SurvivesBrokerOutage(t *testing.T) {
	p, _, mr := newTestPublisher(t, 0)
	mr.Close()

	// Must not panic or block; the event is simply dropped.
	p.Publish(context.Background(), terminalThreat("evt-down", models.StatusStoredOnly))
}

func TestPublisher_NilIsNoOp(t *testing.T) {
	var p *Publisher
	p.Publish(context.Background(), terminalThreat("evt-nil", models.StatusStoredOnly))
	assert.NoError(t, p.Close())
}

func TestNewPublisher_DisabledConfig(t *testing.T) {
	assert.Nil(t, NewPublisher(nil))
	assert.Nil(t, NewPublisher(&config.RedisConfig{Enabled: false, Addr: "localhost:6379"}))
}
