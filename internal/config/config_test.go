package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, "examples", cfg.ExamplesDir)
	require.Equal(t, "*.rs", cfg.Pattern)
	require.Equal(t, "cargo", cfg.Tool)
	require.Equal(t, "1", cfg.BacktraceValue)
	require.Equal(t, "localhost:4318", cfg.OTLPEndpoint)
	require.False(t, cfg.TelemetryEnabled)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("RUNEX_DIR", "demos")
	t.Setenv("RUNEX_PATTERN", "*.snippet")
	t.Setenv("RUNEX_TOOL", "/opt/cargo/bin/cargo")
	t.Setenv("RUNEX_BACKTRACE", "full")
	t.Setenv("RUNEX_TELEMETRY", "true")
	t.Setenv("RUNEX_OTLP_ENDPOINT", "collector:4318")

	cfg := Load()

	require.Equal(t, "demos", cfg.ExamplesDir)
	require.Equal(t, "*.snippet", cfg.Pattern)
	require.Equal(t, "/opt/cargo/bin/cargo", cfg.Tool)
	require.Equal(t, "full", cfg.BacktraceValue)
	require.True(t, cfg.TelemetryEnabled)
	require.Equal(t, "collector:4318", cfg.OTLPEndpoint)
}

func TestLoad_UnparseableTelemetryToggleIgnored(t *testing.T) {
	t.Setenv("RUNEX_TELEMETRY", "maybe")

	cfg := Load()
	require.False(t, cfg.TelemetryEnabled)
}

func TestValidate_AcceptsDefaults(t *testing.T) {
	require.NoError(t, Load().Validate())
}

func TestValidate_RejectsEmptySettings(t *testing.T) {
	for _, tc := range []struct {
		name    string
		mutate  func(*Config)
		setting string
	}{
		{name: "dir", mutate: func(c *Config) { c.ExamplesDir = "" }, setting: "dir"},
		{name: "pattern", mutate: func(c *Config) { c.Pattern = "" }, setting: "pattern"},
		{name: "tool", mutate: func(c *Config) { c.Tool = "" }, setting: "tool"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Load()
			tc.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var validationErr ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.setting, validationErr.Setting)
		})
	}
}

func TestValidate_RejectsMalformedPattern(t *testing.T) {
	cfg := Load()
	cfg.Pattern = "["

	err := cfg.Validate()
	require.Error(t, err)

	var validationErr ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "pattern", validationErr.Setting)
}
