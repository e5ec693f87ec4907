package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv substitutes {{.VAR_NAME}} references in YAML content with
// environment variable values before the YAML is parsed.
//
// Template syntax is used instead of $VAR expansion because this config
// carries masking regexes and other literals where $ is load-bearing:
//
//	pattern: "AKIA[0-9A-Z]{16}$"   anchors stay anchors
//	pattern: ${ACCOUNT_ID}         never expanded
//	token: {{.SLACK_TOKEN}}        expanded from the environment
//
// Unset variables become empty strings; the config validator is the place
// that decides whether an empty value is acceptable. Content that fails to
// parse or execute as a template is returned untouched so the YAML parser
// can produce its own, clearer error.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, environMap()); err != nil {
		return data
	}
	return buf.Bytes()
}

// environMap snapshots the process environment as template data. Values may
// themselves contain =, so only the first separator splits.
func environMap() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok && key != "" {
			env[key] = value
		}
	}
	return env
}
