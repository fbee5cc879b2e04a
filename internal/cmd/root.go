package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "screenstats",
	Short: "Read match and player stats out of game screenshots",
	Long: `screenstats runs a template-matching pipeline over screenshot regions
declared in a coordinate map, turning on-screen digits into typed stat
values. Extracted values can be recorded per career save for later
analysis.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
