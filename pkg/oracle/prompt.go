package oracle

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/argus-soc/argus/pkg/models"
)

// analysisSystemPrompt pins the analyst's role and output contract.
// Everything variable lives in the user prompt.
const analysisSystemPrompt = `You are a senior cloud security analyst reviewing machine-triaged findings. You respond with exactly one JSON object and nothing else: no prose, no markdown fences.`

// analysisOutputContract is the JSON shape the analyst must produce. Kept
// verbatim in the prompt; parseAnalysisReport is the other half of this
// contract.
const analysisOutputContract = `{
  "risk_score": <integer 0-10>,
  "attack_vector": "<primary attack vector, short phrase>",
  "recommended_actions": ["<concrete action>", ...],
  "business_impact": "<one sentence>",
  "confidence": <number 0.0-1.0>,
  "summary": "<one or two sentences for the on-call analyst>"
}`

// buildAnalysisPrompt assembles the user prompt for one threat: the event,
// what the scorer and triage already concluded, and optionally a playbook
// excerpt for the finding kind.
func buildAnalysisPrompt(threat *models.Threat, playbookExcerpt string) string {
	var sb strings.Builder
	sb.WriteString("Analyze this cloud security event and assess the actual risk.\n\n")
	sb.WriteString(formatEventSection(threat))
	sb.WriteString(formatTriageSection(threat))
	sb.WriteString(formatPlaybookSection(playbookExcerpt))
	sb.WriteString("## Required Output\n")
	sb.WriteString("Respond with a single JSON object in this shape:\n")
	sb.WriteString(analysisOutputContract)
	sb.WriteString("\n")
	return sb.String()
}

// formatEventSection renders the normalized event. Details are embedded as
// JSON so the model sees the source payload structure.
func formatEventSection(threat *models.Threat) string {
	var sb strings.Builder
	sb.WriteString("## Event\n")
	fmt.Fprintf(&sb, "**Event ID:** %s\n", threat.EventID)
	fmt.Fprintf(&sb, "**Source:** %s\n", threat.Source)
	fmt.Fprintf(&sb, "**Kind:** %s\n", threat.Kind)
	fmt.Fprintf(&sb, "**Severity:** %s\n", threat.Severity)
	fmt.Fprintf(&sb, "**Account:** %s  **Region:** %s\n", threat.AccountID, threat.Region)
	fmt.Fprintf(&sb, "**Observed:** %s\n", threat.ObservedAt.UTC().Format("2006-01-02T15:04:05Z"))
	if threat.ResourceType != "" || threat.ResourceID != "" {
		fmt.Fprintf(&sb, "**Resource:** %s %s\n", threat.ResourceType, threat.ResourceID)
	}
	if len(threat.Details) > 0 {
		detailJSON, err := json.MarshalIndent(threat.Details, "", "  ")
		if err == nil {
			sb.WriteString("\n### Source Details\n```json\n")
			sb.Write(detailJSON)
			sb.WriteString("\n```\n")
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

// formatTriageSection renders the machine verdicts the analyst is
// second-guessing.
func formatTriageSection(threat *models.Threat) string {
	var sb strings.Builder
	sb.WriteString("## Machine Triage\n")
	if ml := threat.ML; ml != nil {
		fmt.Fprintf(&sb, "**ML threat score:** %.2f (confidence %.2f", ml.ThreatScore, ml.Confidence)
		if ml.ModelVersion != "" {
			fmt.Fprintf(&sb, ", model %s", ml.ModelVersion)
		}
		sb.WriteString(")\n")
		if ml.Error != "" {
			fmt.Fprintf(&sb, "**ML degraded:** %s\n", ml.Error)
		}
	}
	if tr := threat.Triage; tr != nil {
		fmt.Fprintf(&sb, "**Priority:** %.2f (%s band)\n", tr.Priority, tr.Band)
		if tr.KindBoosted {
			sb.WriteString("**Kind boost applied:** the finding type matches a high-signal token\n")
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

// formatPlaybookSection embeds the operator playbook excerpt, when one was
// resolved for this finding kind.
func formatPlaybookSection(excerpt string) string {
	if excerpt == "" {
		return "## Playbook\nNo playbook is registered for this finding kind.\n\n"
	}
	var sb strings.Builder
	sb.WriteString("## Playbook\n```markdown\n")
	sb.WriteString(excerpt)
	sb.WriteString("\n```\n\n")
	return sb.String()
}
