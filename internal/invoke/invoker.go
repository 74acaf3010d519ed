package invoke

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"
)

// Result holds the outcome of one child invocation
type Result struct {
	ExitCode int           // 0 on success
	Stdout   []byte        // captured standard output
	Stderr   []byte        // captured standard error
	Duration time.Duration // wall-clock time from start to exit
}

// InvocationError reports a child invocation that ran to completion but exited
// with a non-zero status. It carries the captured output so the failure can be
// reported after the run stops
type InvocationError struct {
	Example  string
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

func (ie InvocationError) Error() string {
	return fmt.Sprintf("example '%s' exited with status %d", ie.Example, ie.ExitCode)
}

// StartError reports a child process that could not be started at all: the
// tool is missing from PATH, the path does not exist, or the file is not
// executable. It is distinct from InvocationError, which requires an exit
// status
type StartError struct {
	Tool string
	Err  error
}

func (se StartError) Error() string {
	return fmt.Sprintf("failed to start '%s': %v", se.Tool, se.Err)
}

func (se StartError) Unwrap() error {
	return se.Err
}

// ExecInvoker executes commands as child OS processes with an explicit argument
// list (no shell). Child output is streamed to the configured writers as it is
// produced and captured at the same time for failure reporting
type ExecInvoker struct {
	Stdout io.Writer // stream target for child stdout; nil captures without streaming
	Stderr io.Writer // stream target for child stderr; nil captures without streaming
}

// Invoke runs the command and blocks until the child exits. A non-zero exit
// status is part of the Result, not an error; a child that cannot be started
// yields a StartError, and a context that ends mid-run yields the context's
// error
func (iv ExecInvoker) Invoke(ctx context.Context, command Command) (Result, error) {
	if len(command.Argv) == 0 {
		return Result{}, errors.New("empty command")
	}

	cmd := exec.CommandContext(ctx, command.Argv[0], command.Argv[1:]...)
	cmd.Env = command.environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = teeTo(&stdout, iv.Stdout)
	cmd.Stderr = teeTo(&stderr, iv.Stderr)

	start := time.Now()
	if err := cmd.Start(); err != nil {
		if ctx.Err() != nil {
			return Result{}, fmt.Errorf("invocation cancelled: %w", ctx.Err())
		}
		// Covers both PATH lookup failures (bare names) and fork/exec
		// failures (path-form tools, non-executable files)
		return Result{}, StartError{Tool: command.Argv[0], Err: err}
	}
	err := cmd.Wait()

	result := Result{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		Duration: time.Since(start),
	}

	if err != nil {
		if ctx.Err() != nil {
			return result, fmt.Errorf("invocation cancelled: %w", ctx.Err())
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}

		return result, fmt.Errorf("failed to run '%s': %w", command.Argv[0], err)
	}

	return result, nil
}

// teeTo duplicates child output into the capture buffer and, when streaming is
// configured, the stream writer
func teeTo(capture *bytes.Buffer, stream io.Writer) io.Writer {
	if stream == nil {
		return capture
	}
	return io.MultiWriter(stream, capture)
}
