package config

// Defaults contains system-wide default configurations
// These values are used when specific components don't specify their own values
type Defaults struct {
	// Finding payload masking configuration
	Masking *MaskingDefaults `yaml:"masking,omitempty"`
}

// MaskingDefaults holds finding payload masking settings.
// Applied system-wide to raw finding data before storage and prompts.
type MaskingDefaults struct {
	Enabled        bool             `yaml:"enabled"`
	PatternGroup   string           `yaml:"pattern_group"`
	CustomPatterns []MaskingPattern `yaml:"custom_patterns,omitempty"`
}

// MaskingPattern defines a regex-based masking pattern.
type MaskingPattern struct {
	Pattern     string `yaml:"pattern" validate:"required"`
	Replacement string `yaml:"replacement" validate:"required"`
	Description string `yaml:"description,omitempty"`
}
