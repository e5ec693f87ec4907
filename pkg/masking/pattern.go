package masking

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/argus-soc/argus/pkg/config"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// compileGroup resolves a built-in pattern group into compiled patterns,
// preserving the group's declared order so masking is deterministic.
// Unknown names and invalid regexes are logged and skipped.
func compileGroup(groupName string, logger *slog.Logger) []*CompiledPattern {
	builtin := config.GetBuiltinConfig()

	names, ok := builtin.PatternGroups[groupName]
	if !ok {
		logger.Error("Unknown masking pattern group, no built-in patterns loaded",
			"group", groupName)
		return nil
	}

	patterns := make([]*CompiledPattern, 0, len(names))
	for _, name := range names {
		spec, ok := builtin.MaskingPatterns[name]
		if !ok {
			logger.Error("Pattern group references unknown pattern, skipping",
				"group", groupName, "pattern", name)
			continue
		}
		compiled, err := regexp.Compile(spec.Pattern)
		if err != nil {
			logger.Error("Failed to compile built-in masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		patterns = append(patterns, &CompiledPattern{
			Name:        name,
			Regex:       compiled,
			Replacement: spec.Replacement,
		})
	}
	return patterns
}

// compileCustom compiles operator-supplied patterns from config. Custom
// patterns run after the built-in group, keyed "custom:<index>".
func compileCustom(specs []config.MaskingPattern, logger *slog.Logger) []*CompiledPattern {
	patterns := make([]*CompiledPattern, 0, len(specs))
	for i, spec := range specs {
		name := fmt.Sprintf("custom:%d", i)
		compiled, err := regexp.Compile(spec.Pattern)
		if err != nil {
			logger.Error("Failed to compile custom masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		patterns = append(patterns, &CompiledPattern{
			Name:        name,
			Regex:       compiled,
			Replacement: spec.Replacement,
		})
	}
	return patterns
}
