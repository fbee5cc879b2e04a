package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gaffkit/screenstats/internal/ocr"
)

// Set at build time via -ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and engine information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("screenstats version %s\n", Version)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		fmt.Printf("  Build date: %s\n", BuildDate)

		info := ocr.EngineInfo()
		if info.Available {
			fmt.Printf("  Text OCR:   %s %s\n", info.Backend, info.Version)
		} else {
			fmt.Printf("  Text OCR:   unavailable (%s)\n", info.Error)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
