// Package config provides configuration management for the runex CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Defaults mirror the project layout of a standard Cargo workspace
const (
	DefaultExamplesDir  = "examples"
	DefaultPattern      = "*.rs"
	DefaultTool         = "cargo"
	DefaultBacktrace    = "1"
	DefaultOTLPEndpoint = "localhost:4318"
)

// Config holds the configuration for a run
type Config struct {
	ExamplesDir    string // directory scanned for example sources
	Pattern        string // glob pattern matched within ExamplesDir
	Tool           string // build tool binary used to run examples
	CommandPrefix  string // shell-style token string prepended to every invocation
	BacktraceValue string // value for the child's backtrace env var

	TelemetryEnabled bool
	OTLPEndpoint     string

	Summary bool // print a results table after the run
}

// Load loads configuration from environment variables, falling back to defaults
// for anything unset. Flag handling happens at the CLI layer; values loaded here
// are the pre-flag baseline
func Load() Config {
	config := Config{
		ExamplesDir:    envOr("RUNEX_DIR", DefaultExamplesDir),
		Pattern:        envOr("RUNEX_PATTERN", DefaultPattern),
		Tool:           envOr("RUNEX_TOOL", DefaultTool),
		BacktraceValue: envOr("RUNEX_BACKTRACE", DefaultBacktrace),
		OTLPEndpoint:   envOr("RUNEX_OTLP_ENDPOINT", DefaultOTLPEndpoint),
	}

	// Parse telemetry toggle if provided
	if enabled := os.Getenv("RUNEX_TELEMETRY"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			config.TelemetryEnabled = b
		}
	}

	return config
}

// Validate checks that the configuration can drive a run
func (c Config) Validate() error {
	if c.ExamplesDir == "" {
		return ValidationError{Setting: "dir", Reason: "must not be empty"}
	}
	if c.Pattern == "" {
		return ValidationError{Setting: "pattern", Reason: "must not be empty"}
	}
	if _, err := filepath.Match(c.Pattern, "example.rs"); err != nil {
		return ValidationError{Setting: "pattern", Reason: fmt.Sprintf("'%s' is not a valid glob pattern", c.Pattern)}
	}
	if c.Tool == "" {
		return ValidationError{Setting: "tool", Reason: "must not be empty"}
	}
	return nil
}

// ValidationError indicates a configuration setting that cannot drive a run
type ValidationError struct {
	Setting string
	Reason  string
}

func (ve ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration for %s: %s", ve.Setting, ve.Reason)
}

func envOr(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
