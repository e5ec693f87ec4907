package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "bare JSON object",
			input: `{"risk_score": 7}`,
			want:  `{"risk_score": 7}`,
		},
		{
			name:  "fenced with language tag",
			input: "```json\n{\"risk_score\": 7}\n```",
			want:  `{"risk_score": 7}`,
		},
		{
			name:  "fenced without language tag",
			input: "```\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "prose before and after",
			input: "Here is my assessment:\n{\"a\": 1}\nLet me know if you need more.",
			want:  `{"a": 1}`,
		},
		{
			name:  "braces inside string values",
			input: `{"summary": "user ran {\"cmd\": \"rm\"} remotely", "a": {"b": 2}}`,
			want:  `{"summary": "user ran {\"cmd\": \"rm\"} remotely", "a": {"b": 2}}`,
		},
		{
			name:  "nested objects stop at the outer close",
			input: `{"a": {"b": {"c": 3}}} trailing {"ignored": true}`,
			want:  `{"a": {"b": {"c": 3}}}`,
		},
		{
			name:    "no object at all",
			input:   "I cannot assess this event.",
			wantErr: true,
		},
		{
			name:    "unbalanced object",
			input:   `{"a": {"b": 1}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSONObject(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAnalysisReport(t *testing.T) {
	t.Run("complete report parses with float precision preserved", func(t *testing.T) {
		raw := "```json\n" + `{
			"risk_score": 8,
			"attack_vector": "credential compromise",
			"recommended_actions": ["rotate keys", "review CloudTrail"],
			"business_impact": "Production account admin access at risk.",
			"confidence": 0.873214,
			"summary": "Console login from a TOR exit node."
		}` + "\n```"

		report, err := parseAnalysisReport(raw)
		require.NoError(t, err)
		assert.Equal(t, 8.0, report.RiskScore)
		assert.Equal(t, "credential compromise", report.AttackVector)
		assert.Equal(t, []string{"rotate keys", "review CloudTrail"}, report.RecommendedActions)
		assert.Equal(t, "Production account admin access at risk.", report.BusinessImpact)
		assert.InDelta(t, 0.873214, report.Confidence, 1e-9)
		assert.False(t, report.AnalyzedAt.IsZero())
		assert.Empty(t, report.Error)
	})

	t.Run("out of range scores are clamped", func(t *testing.T) {
		report, err := parseAnalysisReport(`{"risk_score": 42, "confidence": 1.7}`)
		require.NoError(t, err)
		assert.Equal(t, 10.0, report.RiskScore)
		assert.Equal(t, 1.0, report.Confidence)
	})

	t.Run("missing attack vector defaults to unknown", func(t *testing.T) {
		report, err := parseAnalysisReport(`{"risk_score": 3}`)
		require.NoError(t, err)
		assert.Equal(t, "unknown", report.AttackVector)
		assert.NotNil(t, report.RecommendedActions)
	})

	t.Run("unparseable response reports the parse sentinel", func(t *testing.T) {
		_, err := parseAnalysisReport("no json here")
		require.ErrorIs(t, err, errParseFailed)
	})

	t.Run("malformed JSON reports the parse sentinel", func(t *testing.T) {
		_, err := parseAnalysisReport(`{"risk_score": }`)
		require.ErrorIs(t, err, errParseFailed)
	})
}
