package config

import (
	"sync"
)

// BuiltinConfig holds all built-in configuration data.
// This provides the default masking patterns and the named groups that
// finding payloads are scrubbed with before storage and prompts.
type BuiltinConfig struct {
	MaskingPatterns map[string]MaskingPattern
	PatternGroups   map[string][]string
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration (thread-safe, lazy-initialized)
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(initBuiltinConfig)
	return builtinConfig
}

func initBuiltinConfig() {
	builtinConfig = &BuiltinConfig{
		MaskingPatterns: initBuiltinMaskingPatterns(),
		PatternGroups:   initBuiltinPatternGroups(),
	}
}

func initBuiltinMaskingPatterns() map[string]MaskingPattern {
	return map[string]MaskingPattern{
		"api_key": {
			Pattern:     `(?i)(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{20,})["']?`,
			Replacement: `"api_key": "__MASKED_API_KEY__"`,
			Description: "API keys",
		},
		"password": {
			Pattern:     `(?i)(?:password|pwd|passwd)["']?\s*[:=]\s*["']?([^"'\s\n]{6,})["']?`,
			Replacement: `"password": "__MASKED_PASSWORD__"`,
			Description: "Passwords",
		},
		"token": {
			Pattern:     `(?i)(?:token|bearer|jwt)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
			Replacement: `"token": "__MASKED_TOKEN__"`,
			Description: "Access tokens",
		},
		"private_key": {
			Pattern:     `(?i)(?:private[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
			Replacement: `"private_key": "__MASKED_PRIVATE_KEY__"`,
			Description: "Private keys",
		},
		"secret_key": {
			Pattern:     `(?i)(?:secret[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
			Replacement: `"secret_key": "__MASKED_SECRET_KEY__"`,
			Description: "Secret keys",
		},
		"certificate": {
			Pattern:     `(?s)-----BEGIN [A-Z ]+-----.*?-----END [A-Z ]+-----`,
			Replacement: `__MASKED_CERTIFICATE__`,
			Description: "PEM certificates and keys",
		},
		"ssh_key": {
			Pattern:     `ssh-(?:rsa|dss|ed25519|ecdsa)\s+[A-Za-z0-9+/=]+`,
			Replacement: `__MASKED_SSH_KEY__`,
			Description: "SSH public keys",
		},
		"email": {
			Pattern:     `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9]+(?:[.-][A-Za-z0-9]+)*\.[A-Za-z]{2,63}\b`,
			Replacement: `__MASKED_EMAIL__`,
			Description: "Email addresses",
		},
		"aws_secret_key": {
			Pattern:     `(?i)(?:aws[_-]?secret[_-]?access[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9/+=]{40})["']?`,
			Replacement: `"aws_secret_access_key": "__MASKED_AWS_SECRET__"`,
			Description: "AWS secret access keys",
		},
		"aws_session_token": {
			Pattern:     `(?i)(?:aws[_-]?session[_-]?token)["']?\s*[:=]\s*["']?([A-Za-z0-9/+=]{40,})["']?`,
			Replacement: `"aws_session_token": "__MASKED_AWS_SESSION_TOKEN__"`,
			Description: "AWS STS session tokens",
		},
		"github_token": {
			Pattern:     `\bgh[pousr]_[A-Za-z0-9_]{36,255}\b`,
			Replacement: `__MASKED_GITHUB_TOKEN__`,
			Description: "GitHub tokens",
		},
		"slack_token": {
			Pattern:     `(?i)xox[baprs]-[A-Za-z0-9-]{10,72}`,
			Replacement: `__MASKED_SLACK_TOKEN__`,
			Description: "Slack tokens",
		},
		"basic_auth_url": {
			Pattern:     `(?i)(https?://)[^/\s:@]+:[^/\s:@]+@`,
			Replacement: `${1}__MASKED_CREDENTIALS__@`,
			Description: "URLs with embedded credentials",
		},
	}
}

// initBuiltinPatternGroups returns predefined groups of masking patterns.
// Group members reference keys of MaskingPatterns; the masking service
// skips names it cannot resolve.
//
// Finding payloads routinely embed the credential that was abused, so the
// default "security" group leans toward over-masking: a masked resource
// name costs an analyst a lookup, a leaked secret costs a second incident.
func initBuiltinPatternGroups() map[string][]string {
	return map[string][]string{
		"basic":   {"api_key", "password"},
		"secrets": {"api_key", "password", "token", "private_key", "secret_key"},
		// basic_auth_url precedes email: the URL form is more specific, and
		// the email sweep would otherwise eat the credential half of the URL.
		"security": {
			"api_key", "password", "token", "private_key", "secret_key",
			"certificate", "ssh_key", "basic_auth_url", "email",
		},
		"cloud": {
			"aws_secret_key", "aws_session_token", "api_key", "token",
			"github_token", "slack_token",
		},
		"all": {
			"api_key", "password", "token", "private_key", "secret_key",
			"certificate", "ssh_key", "basic_auth_url", "email",
			"aws_secret_key", "aws_session_token", "github_token", "slack_token",
		},
	}
}
