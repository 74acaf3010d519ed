package runner

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	passGreen = color.New(color.FgGreen)
	failRed   = color.New(color.FgRed)
)

// WriteSummary renders a table of every completed invocation: status, exit
// code, wall-clock duration, and how much output the child produced
func WriteSummary(w io.Writer, completed []Completed) {
	table := tablewriter.NewWriter(w)
	table.Header("Example", "Status", "Exit", "Duration", "Output")

	passed := 0
	for _, c := range completed {
		status := failRed.Sprint("FAIL")
		if c.Result.ExitCode == 0 {
			status = passGreen.Sprint("PASS")
			passed++
		}
		captured := uint64(len(c.Result.Stdout) + len(c.Result.Stderr))
		table.Append(
			c.Example.Name,
			status,
			strconv.Itoa(c.Result.ExitCode),
			c.Result.Duration.Round(time.Millisecond).String(),
			humanize.Bytes(captured),
		)
	}
	table.Render()

	fmt.Fprintf(w, "%d of %d examples passed\n", passed, len(completed))
}
