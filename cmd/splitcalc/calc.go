package main

import (
	"github.com/aretw0/splitcalc/internal/cli"
	"github.com/spf13/cobra"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute a single split and exit",
	Example: `  splitcalc calc --bill 200 --tip 0.1 --split 5
  splitcalc calc --bill 84.50 --fixed 12 --split 3 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		bill, _ := cmd.Flags().GetString("bill")
		tip, _ := cmd.Flags().GetFloat64("tip")
		fixed, _ := cmd.Flags().GetFloat64("fixed")
		split, _ := cmd.Flags().GetInt("split")
		jsonMode, _ := cmd.Flags().GetBool("json")

		return cli.Calc(cli.CalcOptions{
			ConfigPath:  configPath,
			Bill:        bill,
			Tip:         tip,
			HasTip:      cmd.Flags().Changed("tip"),
			Fixed:       fixed,
			HasFixed:    cmd.Flags().Changed("fixed"),
			Split:       split,
			JSON:        jsonMode,
			Interactive: !jsonMode && isTerminal(),
			Stdout:      cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().String("bill", "", "Bill amount")
	calcCmd.Flags().Float64("tip", 0, "Tip rate, e.g. 0.15 for 15%")
	calcCmd.Flags().Float64("fixed", 0, "Fixed tip amount")
	calcCmd.Flags().Int("split", 1, "Number of people")
	calcCmd.Flags().Bool("json", false, "Print the result as JSON")
}
