// Package cmd wires the crossgen command line.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "crossgen",
	Short: "Offline batch crossword generator",
	Long: `crossgen generates crossword puzzles: symmetric block patterns,
dictionary fills, numbered clue lists, and per-puzzle asset bundles
(grid image, solution image, metadata JSON).`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
