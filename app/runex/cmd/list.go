package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/runex-io/runex/internal/example"
)

var listLong bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the examples a run would execute, in run order",
	RunE:  listExamples,
}

func init() {
	listCmd.Flags().BoolVar(&listLong, "long", false, "include source paths and sizes")

	rootCmd.AddCommand(listCmd)
}

func listExamples(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	examples, err := example.Discover(cfg.ExamplesDir, cfg.Pattern)
	if err != nil {
		return fmt.Errorf("failed to discover examples: %w", err)
	}

	out := cmd.OutOrStdout()
	if !listLong {
		for _, ex := range examples {
			fmt.Fprintln(out, ex.Name)
		}
		return nil
	}

	table := tablewriter.NewWriter(out)
	table.Header("Example", "Source", "Size")
	for _, ex := range examples {
		size := "?"
		if info, err := os.Stat(ex.Path); err == nil {
			size = humanize.Bytes(uint64(info.Size()))
		}
		table.Append(ex.Name, ex.Path, size)
	}
	table.Render()
	return nil
}
