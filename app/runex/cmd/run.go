package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/runex-io/runex/internal/config"
	"github.com/runex-io/runex/internal/invoke"
	"github.com/runex-io/runex/internal/runner"
	"github.com/runex-io/runex/internal/telemetry"
)

var runCmd = &cobra.Command{
	Use:   "run [-- build tool args]",
	Short: "Run every example, stopping at the first failure",
	Long: `Runs each example matched by --pattern under --dir, one at a time, in
lexical order. Output streams through as each example executes and is captured
so a failing example can be reported in full. Arguments after "--" are
appended to every build tool invocation.`,
	RunE: runExamples,
}

func init() {
	runCmd.Flags().StringVar(&cfg.Tool, "tool", config.DefaultTool, "build tool used to compile and run examples")
	runCmd.Flags().StringVar(&cfg.CommandPrefix, "command-prefix", "", "command prepended to every invocation, e.g. 'time'")
	runCmd.Flags().BoolVar(&cfg.Summary, "summary", false, "print a table of completed examples after the run")
	runCmd.Flags().BoolVar(&cfg.TelemetryEnabled, "telemetry", false, "export a trace of the run over OTLP")
	runCmd.Flags().StringVar(&cfg.OTLPEndpoint, "otlp-endpoint", config.DefaultOTLPEndpoint, "OTLP collector endpoint for --telemetry")

	rootCmd.AddCommand(runCmd)
}

func runExamples(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	prefix, err := shellquote.Split(cfg.CommandPrefix)
	if err != nil {
		return config.ValidationError{Setting: "command-prefix", Reason: err.Error()}
	}

	ctx := setupContext()

	runID := telemetry.NewRunID()
	log.Printf("Starting run %s: '%s' matches under '%s'", runID, cfg.Pattern, cfg.ExamplesDir)

	provider, err := createTelemetryProvider(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			log.Printf("failed to shut down telemetry: %v", err)
		}
	}()

	out := cmd.OutOrStdout()
	r := runner.New(runner.Config{
		Dir:     cfg.ExamplesDir,
		Pattern: cfg.Pattern,
		Spec: invoke.Spec{
			Prefix:         prefix,
			Tool:           cfg.Tool,
			PassThrough:    args,
			BacktraceValue: cfg.BacktraceValue,
		},
		RunID: runID,
	}, out, invoke.ExecInvoker{Stdout: out, Stderr: cmd.ErrOrStderr()}, provider)

	runErr := r.Run(ctx)

	if cfg.Summary {
		runner.WriteSummary(out, r.Completed())
	}

	var invocationErr invoke.InvocationError
	if errors.As(runErr, &invocationErr) {
		runner.WriteFailureReport(out, invocationErr)
	}
	return runErr
}
