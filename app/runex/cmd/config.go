package cmd

import (
	"github.com/spf13/cobra"

	"github.com/runex-io/runex/internal/config"
)

var cfg = config.Config{}

// applyEnvDefaults overlays environment-derived settings onto cfg for every
// setting the invocation did not pin with a flag. Flags win over environment
// variables, which win over built-in defaults
func applyEnvDefaults(cmd *cobra.Command) {
	loaded := config.Load()

	applyUnlessSet(cmd, "dir", &cfg.ExamplesDir, loaded.ExamplesDir)
	applyUnlessSet(cmd, "pattern", &cfg.Pattern, loaded.Pattern)
	applyUnlessSet(cmd, "tool", &cfg.Tool, loaded.Tool)
	applyUnlessSet(cmd, "telemetry", &cfg.TelemetryEnabled, loaded.TelemetryEnabled)
	applyUnlessSet(cmd, "otlp-endpoint", &cfg.OTLPEndpoint, loaded.OTLPEndpoint)

	// The backtrace value has no flag; the environment is its only override
	cfg.BacktraceValue = loaded.BacktraceValue
}

func applyUnlessSet[T any](cmd *cobra.Command, flag string, dest *T, value T) {
	if cmd.Flags().Changed(flag) {
		return
	}
	*dest = value
}
