package runner

import (
	"fmt"
	"io"

	"github.com/runex-io/runex/internal/invoke"
)

const (
	stdoutHeading = "===== STDOUT ====="
	stderrHeading = "===== STDERR ====="
)

// WriteFailureReport prints the captured output of a failed invocation
// followed by its exit status. Streams that captured nothing are omitted
func WriteFailureReport(w io.Writer, invocationErr invoke.InvocationError) {
	writeStream(w, stdoutHeading, invocationErr.Stdout)
	writeStream(w, stderrHeading, invocationErr.Stderr)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Process returned non-zero exit status %d\n", invocationErr.ExitCode)
}

func writeStream(w io.Writer, heading string, content []byte) {
	if len(content) == 0 {
		return
	}
	fmt.Fprintln(w, heading)
	w.Write(content)
	if content[len(content)-1] != '\n' {
		fmt.Fprintln(w)
	}
}
