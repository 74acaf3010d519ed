// Package runner drives sequential example invocations and reports failures.
package runner

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/runex-io/runex/internal/example"
	"github.com/runex-io/runex/internal/invoke"
	"github.com/runex-io/runex/internal/telemetry"
)

const bannerWidth = 45

// Invoker executes one constructed command, blocking until the child exits
type Invoker interface {
	Invoke(ctx context.Context, command invoke.Command) (invoke.Result, error)
}

// Config holds the settings for one run
type Config struct {
	Dir     string // directory scanned for example sources
	Pattern string // glob pattern matched within Dir
	Spec    invoke.Spec
	RunID   string
}

// Completed records one finished invocation, successful or not
type Completed struct {
	Example example.Example
	Result  invoke.Result
}

// Runner runs every discovered example in discovery order, stopping at the
// first failure. Progress banners and echoed commands go to out; runner
// internals are logged separately so they never interleave with them
type Runner struct {
	config    Config
	out       io.Writer
	invoker   Invoker
	telemetry *telemetry.Provider

	completed []Completed
}

// New creates a new Runner
func New(config Config, out io.Writer, invoker Invoker, telemetryProvider *telemetry.Provider) *Runner {
	return &Runner{
		config:    config,
		out:       out,
		invoker:   invoker,
		telemetry: telemetryProvider,
	}
}

// Run discovers the configured examples and invokes them one after another. It
// returns nil once every example has succeeded. The first non-zero child exit
// aborts the run and is returned as an invoke.InvocationError; the caller is
// expected to format it with WriteFailureReport
func (r *Runner) Run(ctx context.Context) error {
	examples, err := example.Discover(r.config.Dir, r.config.Pattern)
	if err != nil {
		return fmt.Errorf("failed to discover examples: %w", err)
	}

	ctx, endRun := r.telemetry.StartRun(ctx, r.config.RunID, len(examples))
	defer endRun()

	if len(examples) == 0 {
		log.Printf("[runner] run %s: no examples matching '%s' under '%s'", r.config.RunID, r.config.Pattern, r.config.Dir)
		return nil
	}

	for _, ex := range examples {
		if err := r.runExample(ctx, ex); err != nil {
			return err
		}
	}

	log.Printf("[runner] run %s: all %d examples passed", r.config.RunID, len(examples))
	return nil
}

// Completed returns the invocations that finished during the run, in run order.
// After a failed run the last entry is the failing invocation
func (r *Runner) Completed() []Completed {
	return r.completed
}

func (r *Runner) runExample(ctx context.Context, ex example.Example) error {
	fmt.Fprintln(r.out, strings.Repeat("=", bannerWidth))
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Running example: %s\n", ex.Name)

	command := r.config.Spec.Command(ex.Name)
	fmt.Fprintf(r.out, "  %s\n", command)

	ctx, endInvocation := r.telemetry.StartInvocation(ctx, ex.Name)
	result, err := r.invoker.Invoke(ctx, command)
	endInvocation(result.ExitCode, err)

	if err != nil {
		return fmt.Errorf("failed to invoke example '%s': %w", ex.Name, err)
	}

	r.completed = append(r.completed, Completed{Example: ex, Result: result})
	log.Printf("[runner] run %s: example '%s' finished in %s", r.config.RunID, ex.Name, result.Duration.Round(time.Millisecond))

	if result.ExitCode != 0 {
		return invoke.InvocationError{
			Example:  ex.Name,
			ExitCode: result.ExitCode,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
		}
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, strings.Repeat("=", bannerWidth))
	return nil
}
