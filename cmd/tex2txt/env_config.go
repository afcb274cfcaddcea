package main

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/alnah/go-tex2txt/internal/config"
)

const envPrefix = "TEX2TXT_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath  string // TEX2TXT_CONFIG: config file name or path
	Expressions string // TEX2TXT_EXPRESSIONS: custom expression list
	Defaults    string // TEX2TXT_DEFAULTS: defaults side file
	Placeholder string // TEX2TXT_PLACEHOLDER: \ref{} replacement
	Policy      string // TEX2TXT_POLICY: replace or supplement
	KeepInput   *bool  // TEX2TXT_KEEP_INPUT: keep \input{} (nil = unset)
	LogFormat   string // TEX2TXT_LOG_FORMAT: text or json
}

// knownEnvVars lists valid TEX2TXT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"TEX2TXT_CONFIG":      true,
	"TEX2TXT_EXPRESSIONS": true,
	"TEX2TXT_DEFAULTS":    true,
	"TEX2TXT_PLACEHOLDER": true,
	"TEX2TXT_POLICY":      true,
	"TEX2TXT_KEEP_INPUT":  true,
	"TEX2TXT_LOG_FORMAT":  true,
}

// loadEnvConfig reads the recognized TEX2TXT_* values through getenv.
// An unparsable TEX2TXT_KEEP_INPUT is ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath:  getenv("TEX2TXT_CONFIG"),
		Expressions: getenv("TEX2TXT_EXPRESSIONS"),
		Defaults:    getenv("TEX2TXT_DEFAULTS"),
		Placeholder: getenv("TEX2TXT_PLACEHOLDER"),
		Policy:      strings.ToLower(getenv("TEX2TXT_POLICY")),
		LogFormat:   strings.ToLower(getenv("TEX2TXT_LOG_FORMAT")),
	}

	if keep := getenv("TEX2TXT_KEEP_INPUT"); keep != "" {
		if b, err := strconv.ParseBool(keep); err == nil {
			cfg.KeepInput = &b
		}
	}

	return cfg
}

// warnUnknownEnvVars logs a warning for each unrecognized TEX2TXT_* variable
// in environ ("KEY=value" pairs).
func warnUnknownEnvVars(environ []string, log *slog.Logger) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			log.Warn("unknown environment variable (typo?)", "name", name)
		}
	}
}

// applyEnvConfig overrides config file values with set environment variables.
// CLI flags are applied afterwards by mergeFlags, giving:
// CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Expressions != "" {
		cfg.Expressions.File = env.Expressions
	}
	if env.Defaults != "" {
		cfg.Expressions.Defaults = env.Defaults
	}
	if env.Placeholder != "" {
		cfg.References.Placeholder = env.Placeholder
	}
	if env.Policy != "" {
		cfg.Expressions.Policy = env.Policy
	}
	if env.KeepInput != nil {
		cfg.Macros.KeepInput = *env.KeepInput
	}
	if env.LogFormat != "" {
		cfg.Log.Format = env.LogFormat
	}
}
