package config

import "time"

// OracleConfig groups the two model backends the pipeline consults.
type OracleConfig struct {
	Scorer  *ScorerConfig
	Analyst *AnalystConfig
}

// ScorerConfig holds resolved ML scorer client configuration.
type ScorerConfig struct {
	Endpoint         string        // scorer HTTP endpoint (required)
	Timeout          time.Duration // total scoring budget per event (default: 5s)
	RetryInitial     time.Duration // first backoff delay (default: 200ms)
	RetryFactor      float64       // backoff multiplier (default: 2.0)
	RetryMaxAttempts int           // attempts before degrading (default: 4)
	FeatureVersion   string        // feature vector version tag (default: "cloudtrail-rf-v1")
}

// AnalystConfig holds resolved deep-analysis client configuration.
type AnalystConfig struct {
	Model     string        // Anthropic model name
	APIKeyEnv string        // env var holding the API key (default: "ANTHROPIC_API_KEY")
	BaseURL   string        // endpoint override for tests and gateways (empty = SDK default)
	Timeout   time.Duration // total analysis budget per event (default: 15s)
	MaxTokens int           // response token cap (default: 1024)
	Retries   int           // extra attempts after a timeout or parse failure (default: 1)
}

// DefaultScorerConfig returns the built-in scorer defaults. Endpoint is
// deliberately empty; validation requires one.
func DefaultScorerConfig() *ScorerConfig {
	return &ScorerConfig{
		Timeout:          5 * time.Second,
		RetryInitial:     200 * time.Millisecond,
		RetryFactor:      2.0,
		RetryMaxAttempts: 4,
		FeatureVersion:   "cloudtrail-rf-v1",
	}
}

// DefaultAnalystConfig returns the built-in analyst defaults.
func DefaultAnalystConfig() *AnalystConfig {
	return &AnalystConfig{
		Model:     "claude-sonnet-4-5",
		APIKeyEnv: "ANTHROPIC_API_KEY",
		Timeout:   15 * time.Second,
		MaxTokens: 1024,
		Retries:   1,
	}
}
