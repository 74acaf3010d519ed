package cmd

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/runex-io/runex/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "runex",
	Short: "Sequential example runner for build tool projects",
	Long: `Runex runs a project's example programs one at a time, in lexical order,
streaming their output as they execute. The first example that fails stops the
run and has its captured output reported in full.`,
	PersistentPreRun: loadRootConfig,
	SilenceUsage:     true,
	SilenceErrors:    true,
}

func Execute() error {
	return rootCmd.Execute()
}

func loadRootConfig(cmd *cobra.Command, _ []string) {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	applyEnvDefaults(cmd)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfg.ExamplesDir, "dir", config.DefaultExamplesDir, "directory containing example sources")
	rootCmd.PersistentFlags().StringVar(&cfg.Pattern, "pattern", config.DefaultPattern, "glob pattern that identifies example sources")
}
