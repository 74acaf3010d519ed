package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runex-io/runex/internal/config"
)

// newFlagHarness binds the package-level cfg to a throwaway command the same
// way the real commands do, so precedence can be exercised without running
// cobra end to end
func newFlagHarness(t *testing.T) *cobra.Command {
	t.Helper()
	harness := &cobra.Command{}
	harness.Flags().StringVar(&cfg.ExamplesDir, "dir", config.DefaultExamplesDir, "")
	harness.Flags().StringVar(&cfg.Pattern, "pattern", config.DefaultPattern, "")
	harness.Flags().StringVar(&cfg.Tool, "tool", config.DefaultTool, "")
	harness.Flags().BoolVar(&cfg.TelemetryEnabled, "telemetry", false, "")
	harness.Flags().StringVar(&cfg.OTLPEndpoint, "otlp-endpoint", config.DefaultOTLPEndpoint, "")
	t.Cleanup(func() { cfg = config.Config{} })
	return harness
}

func TestApplyEnvDefaults_DefaultsWhenNothingIsSet(t *testing.T) {
	harness := newFlagHarness(t)

	applyEnvDefaults(harness)

	assert.Equal(t, config.DefaultExamplesDir, cfg.ExamplesDir)
	assert.Equal(t, config.DefaultPattern, cfg.Pattern)
	assert.Equal(t, config.DefaultTool, cfg.Tool)
	assert.Equal(t, config.DefaultBacktrace, cfg.BacktraceValue)
}

func TestApplyEnvDefaults_EnvironmentBeatsDefaults(t *testing.T) {
	t.Setenv("RUNEX_DIR", "demos")
	t.Setenv("RUNEX_TOOL", "buck")
	harness := newFlagHarness(t)

	applyEnvDefaults(harness)

	assert.Equal(t, "demos", cfg.ExamplesDir)
	assert.Equal(t, "buck", cfg.Tool)
	assert.Equal(t, config.DefaultPattern, cfg.Pattern, "untouched settings keep their defaults")
}

func TestApplyEnvDefaults_FlagsBeatEnvironment(t *testing.T) {
	t.Setenv("RUNEX_DIR", "env-dir")
	harness := newFlagHarness(t)
	require.NoError(t, harness.Flags().Set("dir", "flag-dir"))

	applyEnvDefaults(harness)

	assert.Equal(t, "flag-dir", cfg.ExamplesDir)
}

func TestApplyEnvDefaults_BacktraceComesFromEnvironmentOnly(t *testing.T) {
	t.Setenv("RUNEX_BACKTRACE", "full")
	harness := newFlagHarness(t)

	applyEnvDefaults(harness)

	assert.Equal(t, "full", cfg.BacktraceValue)
}
