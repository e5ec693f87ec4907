// Package masking scrubs secrets from finding payloads before they reach
// the database or an analyst prompt. Masking is fail-open by contract: a
// pattern that cannot compile is skipped at startup, and nothing in this
// package can fail an event.
package masking

import (
	"log/slog"
	"regexp"

	"github.com/argus-soc/argus/pkg/config"
)

// sensitiveKey matches detail keys whose values are masked wholesale,
// regardless of what the value looks like. Finding payloads routinely carry
// the abused credential under one of these names, and a regex sweep over
// the value alone cannot see the key it sits under.
var sensitiveKey = regexp.MustCompile(`(?i)^(api[_-]?key|apikey|password|passwd|pwd|secret|secret[_-]?key|private[_-]?key|access[_-]?token|refresh[_-]?token|token|bearer|authorization|credentials?|client[_-]?secret|aws[_-]?secret[_-]?access[_-]?key|aws[_-]?session[_-]?token|session[_-]?token)$`)

// maskedValue replaces values under sensitive keys.
const maskedValue = "__MASKED__"

// Service applies secret masking to finding payloads. Created once at
// startup with all patterns compiled eagerly. Thread-safe and stateless.
// Nil-safe: a nil service passes data through unchanged, which is how
// deployments with masking disabled run.
type Service struct {
	patterns []*CompiledPattern
	logger   *slog.Logger
}

// NewService compiles the configured pattern group plus any custom
// patterns. Returns nil when masking is disabled.
func NewService(cfg *config.MaskingDefaults) *Service {
	if cfg == nil || !cfg.Enabled {
		return nil
	}

	logger := slog.Default().With("component", "masking")
	patterns := compileGroup(cfg.PatternGroup, logger)
	patterns = append(patterns, compileCustom(cfg.CustomPatterns, logger)...)

	logger.Info("Masking service initialized",
		"pattern_group", cfg.PatternGroup,
		"compiled_patterns", len(patterns))

	return &Service{
		patterns: patterns,
		logger:   logger,
	}
}

// MaskString applies all compiled patterns to text, in pattern order.
func (s *Service) MaskString(text string) string {
	if s == nil || text == "" {
		return text
	}
	masked := text
	for _, p := range s.patterns {
		masked = p.Regex.ReplaceAllString(masked, p.Replacement)
	}
	return masked
}

// MaskDetails returns a masked copy of a finding's detail payload. The
// input is never mutated. Two sweeps apply: values under sensitive keys
// are replaced wholesale, and every remaining string value gets the
// pattern sweep (which catches secrets embedded in log lines, user agents
// and command lines).
func (s *Service) MaskDetails(details map[string]interface{}) map[string]interface{} {
	if s == nil || details == nil {
		return details
	}
	return s.maskMap(details)
}

func (s *Service) maskMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = s.maskValue(k, v)
	}
	return out
}

func (s *Service) maskValue(key string, v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		if val != "" && sensitiveKey.MatchString(key) {
			return maskedValue
		}
		return s.MaskString(val)
	case map[string]interface{}:
		return s.maskMap(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = s.maskValue("", item)
		}
		return out
	case []string:
		out := make([]string, len(val))
		for i, item := range val {
			out[i] = s.MaskString(item)
		}
		return out
	default:
		return v
	}
}
