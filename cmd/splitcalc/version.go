package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/splitcalc"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of splitcalc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "splitcalc version %s\n", strings.TrimSpace(splitcalc.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
