package main

import (
	"github.com/aretw0/splitcalc/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive calculator session",
	Long:  `Reads commands (or NDJSON events with --json) and prints the split after every change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		jsonMode, _ := cmd.Flags().GetBool("json")
		debug, _ := cmd.Flags().GetBool("debug")
		metrics, _ := cmd.Flags().GetBool("metrics")

		return cli.RunSession(cmd.Context(), cli.RunOptions{
			ConfigPath:     configPath,
			JSON:           jsonMode,
			Debug:          debug,
			Metrics:        metrics,
			Interactive:    isTerminal(),
			SignalHandling: true,
			Stdin:          cmd.InOrStdin(),
			Stdout:         cmd.OutOrStdout(),
			Stderr:         cmd.ErrOrStderr(),
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
	runCmd.Flags().Bool("debug", false, "Enable debug logging to stderr")
	runCmd.Flags().Bool("metrics", false, "Print Prometheus metrics to stderr on exit")

	// 'run' is the default when no command is provided.
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
