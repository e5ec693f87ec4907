package slack

import (
	"strings"
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argus-soc/argus/pkg/models"
)

func criticalAlert() *models.Alert {
	risk := 9.0
	return &models.Alert{
		EventID:     "evt-msg-1",
		Source:      models.SourceGuardDuty,
		Kind:        "UnauthorizedAccess:IAMUser/TorIPCaller",
		Band:        models.SeverityCritical,
		Priority:    95.5,
		ThreatScore: 92.0,
		RiskScore:   &risk,
		Summary:     "Console login from a TOR exit node against an admin user.",
		RecordKey:   "evt-msg-1",
	}
}

func TestBuildAlertMessage(t *testing.T) {
	t.Run("critical alert carries all scores and a record link", func(t *testing.T) {
		blocks := BuildAlertMessage(criticalAlert(), "https://argus.example.com")
		require.GreaterOrEqual(t, len(blocks), 4)

		header, ok := blocks[0].(*goslack.SectionBlock)
		require.True(t, ok)
		assert.Contains(t, header.Text.Text, ":rotating_light:")
		assert.Contains(t, header.Text.Text, "Critical Threat")
		assert.Contains(t, header.Text.Text, "UnauthorizedAccess:IAMUser/TorIPCaller")

		scores := blocks[1].(*goslack.SectionBlock)
		assert.Contains(t, scores.Text.Text, "95.5")
		assert.Contains(t, scores.Text.Text, "92.0")
		assert.Contains(t, scores.Text.Text, "9/10")

		summary := blocks[2].(*goslack.SectionBlock)
		assert.Contains(t, summary.Text.Text, "TOR exit node")

		action := blocks[3].(*goslack.ActionBlock)
		require.Len(t, action.Elements.ElementSet, 1)
		btn, ok := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
		require.True(t, ok)
		assert.Equal(t, "View Threat Record", btn.Text.Text)
		assert.Equal(t, "https://argus.example.com/threats/evt-msg-1", btn.URL)
	})

	t.Run("risk score is omitted when analysis never ran", func(t *testing.T) {
		alert := criticalAlert()
		alert.RiskScore = nil

		blocks := BuildAlertMessage(alert, "https://argus.example.com")
		scores := blocks[1].(*goslack.SectionBlock)
		assert.NotContains(t, scores.Text.Text, "risk score")
	})

	t.Run("remediation failure banner", func(t *testing.T) {
		alert := criticalAlert()
		alert.RemediationFailed = true

		blocks := BuildAlertMessage(alert, "https://argus.example.com")
		header := blocks[0].(*goslack.SectionBlock)
		assert.Contains(t, header.Text.Text, "remediation FAILED")
	})

	t.Run("unknown band falls back without panicking", func(t *testing.T) {
		alert := criticalAlert()
		alert.Band = "UNRATED"

		blocks := BuildAlertMessage(alert, "https://argus.example.com")
		header := blocks[0].(*goslack.SectionBlock)
		assert.Contains(t, header.Text.Text, ":question:")
	})

	t.Run("long summaries are truncated", func(t *testing.T) {
		alert := criticalAlert()
		alert.Summary = strings.Repeat("a", maxBlockTextLength+500)

		blocks := BuildAlertMessage(alert, "https://argus.example.com")
		summary := blocks[2].(*goslack.SectionBlock)
		assert.Contains(t, summary.Text.Text, "truncated")
		assert.LessOrEqual(t, len(summary.Text.Text), maxBlockTextLength+100)
	})
}
