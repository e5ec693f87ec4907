package slack

import (
	"fmt"

	goslack "github.com/slack-go/slack"

	"github.com/argus-soc/argus/pkg/models"
)

const maxBlockTextLength = 2900

var bandEmoji = map[models.SeverityBand]string{
	models.SeverityCritical: ":rotating_light:",
	models.SeverityHigh:     ":warning:",
	models.SeverityMedium:   ":large_orange_diamond:",
	models.SeverityLow:      ":large_blue_diamond:",
}

var bandLabel = map[models.SeverityBand]string{
	models.SeverityCritical: "Critical Threat",
	models.SeverityHigh:     "High Priority Threat",
	models.SeverityMedium:   "Medium Priority Threat",
	models.SeverityLow:      "Low Priority Threat",
}

func recordURL(recordKey, dashboardURL string) string {
	return fmt.Sprintf("%s/threats/%s", dashboardURL, recordKey)
}

// BuildAlertMessage creates Block Kit blocks for one threat alert.
func BuildAlertMessage(alert *models.Alert, dashboardURL string) []goslack.Block {
	emoji := bandEmoji[alert.Band]
	if emoji == "" {
		emoji = ":question:"
	}
	label := bandLabel[alert.Band]
	if label == "" {
		label = "Threat " + string(alert.Band)
	}

	var blocks []goslack.Block

	header := fmt.Sprintf("%s *%s* — `%s`", emoji, label, alert.Kind)
	if alert.RemediationFailed {
		header += "\n:x: *Automatic remediation FAILED — manual action required*"
	}
	blocks = append(blocks, goslack.NewSectionBlock(
		goslack.NewTextBlockObject(goslack.MarkdownType, header, false, false),
		nil, nil,
	))

	scores := fmt.Sprintf("*Priority:* %.1f (%s)\n*ML threat score:* %.1f", alert.Priority, alert.Band, alert.ThreatScore)
	if alert.RiskScore != nil {
		scores += fmt.Sprintf("\n*Analyst risk score:* %.0f/10", *alert.RiskScore)
	}
	fields := []*goslack.TextBlockObject{
		goslack.NewTextBlockObject(goslack.MarkdownType, fmt.Sprintf("*Source:*\n%s", alert.Source), false, false),
		goslack.NewTextBlockObject(goslack.MarkdownType, fmt.Sprintf("*Event:*\n`%s`", alert.EventID), false, false),
	}
	blocks = append(blocks, goslack.NewSectionBlock(
		goslack.NewTextBlockObject(goslack.MarkdownType, scores, false, false),
		fields, nil,
	))

	if alert.Summary != "" {
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(alert.Summary), false, false),
			nil, nil,
		))
	}

	btn := goslack.NewButtonBlockElement("", "", goslack.NewTextBlockObject(goslack.PlainTextType, "View Threat Record", false, false))
	btn.URL = recordURL(alert.RecordKey, dashboardURL)
	blocks = append(blocks, goslack.NewActionBlock("", btn))

	return blocks
}

func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n\n_... (truncated — view the full record in the dashboard)_"
}
