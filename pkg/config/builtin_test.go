package config

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBuiltinConfig(t *testing.T) {
	// Test singleton pattern - should return same instance
	cfg1 := GetBuiltinConfig()
	cfg2 := GetBuiltinConfig()

	assert.Same(t, cfg1, cfg2, "GetBuiltinConfig should return same instance")
	assert.NotNil(t, cfg1, "Built-in config should not be nil")
}

func TestBuiltinConfigThreadSafety(t *testing.T) {
	const goroutines = 100

	var wg sync.WaitGroup
	configs := make([]*BuiltinConfig, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			configs[index] = GetBuiltinConfig()
		}(i)
	}

	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, configs[0], configs[i], "All goroutines should get same instance")
	}
}

func TestBuiltinMaskingPatterns(t *testing.T) {
	cfg := GetBuiltinConfig()

	requiredPatterns := []string{
		"api_key",
		"password",
		"token",
		"certificate",
		"email",
		"ssh_key",
		"aws_secret_key",
		"aws_session_token",
		"github_token",
		"slack_token",
	}

	for _, patternName := range requiredPatterns {
		t.Run(patternName, func(t *testing.T) {
			pattern, exists := cfg.MaskingPatterns[patternName]
			require.True(t, exists, "Pattern %s should exist", patternName)
			assert.NotEmpty(t, pattern.Pattern, "Pattern regex should not be empty")
			assert.NotEmpty(t, pattern.Replacement, "Pattern replacement should not be empty")
			assert.NotEmpty(t, pattern.Description, "Pattern description should not be empty")
		})
	}
}

func TestBuiltinMaskingPatternsCompile(t *testing.T) {
	// Every shipped pattern must compile; the masking service skips broken
	// ones at runtime, but shipping one is a bug.
	for name, pattern := range GetBuiltinConfig().MaskingPatterns {
		_, err := regexp.Compile(pattern.Pattern)
		assert.NoError(t, err, "Pattern %s should compile", name)
	}
}

func TestBuiltinPatternGroups(t *testing.T) {
	cfg := GetBuiltinConfig()

	tests := []struct {
		name      string
		groupName string
		minSize   int
	}{
		{
			name:      "basic group",
			groupName: "basic",
			minSize:   2,
		},
		{
			name:      "secrets group",
			groupName: "secrets",
			minSize:   3,
		},
		{
			name:      "security group",
			groupName: "security",
			minSize:   5,
		},
		{
			name:      "cloud group",
			groupName: "cloud",
			minSize:   4,
		},
		{
			name:      "all group",
			groupName: "all",
			minSize:   10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group, exists := cfg.PatternGroups[tt.groupName]
			require.True(t, exists, "Pattern group %s should exist", tt.groupName)
			assert.GreaterOrEqual(t, len(group), tt.minSize, "Group should have at least %d patterns", tt.minSize)

			// Every group member must resolve to a shipped pattern.
			for _, patternName := range group {
				_, ok := cfg.MaskingPatterns[patternName]
				assert.True(t, ok, "Pattern %s in group %s should exist in MaskingPatterns",
					patternName, tt.groupName)
			}
		})
	}
}

func TestBuiltinConfigCompleteness(t *testing.T) {
	cfg := GetBuiltinConfig()

	assert.NotEmpty(t, cfg.MaskingPatterns, "Masking patterns should be populated")
	assert.NotEmpty(t, cfg.PatternGroups, "Pattern groups should be populated")
}
