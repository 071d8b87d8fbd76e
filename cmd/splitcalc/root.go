package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "splitcalc",
	Short: "splitcalc splits a bill and its tip across a party",
	Long: `splitcalc is a reactive bill-split calculator. Enter the bill, pick a tip and
set the party size; the per-person share updates after every change.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to the config file (default: user config dir)")
}

// isTerminal reports whether stdout is attached to a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
