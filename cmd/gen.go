package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bodul/crossgen/internal/batch"
	"github.com/bodul/crossgen/internal/clue"
	"github.com/bodul/crossgen/internal/config"
	"github.com/bodul/crossgen/internal/dictionary"
	"github.com/bodul/crossgen/internal/puzzle"
)

var (
	numPuzzles int
	gridSize   int
	difficulty string
	theme      string
	outDir     string
	workers    int
	wordlist   string
	seed       int64
	configPath string
	printGrids bool
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate crossword puzzles",
		Long: `Generate one or more crossword puzzles and write their asset
bundles (grid image, solution image, metadata) to the output directory.

Examples:
  crossgen gen -n 5 -s 15 -d hard -o puzzles/
  crossgen gen --wordlist words.txt --theme ocean --seed 42
  crossgen gen -n 10 --config tunables.yaml`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&numPuzzles, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().IntVarP(&gridSize, "size", "s", 15, "Grid size N (grids are N×N)")
	genCmd.Flags().StringVarP(&difficulty, "difficulty", "d", "medium", "Difficulty: easy, medium or hard")
	genCmd.Flags().StringVarP(&theme, "theme", "t", "", "Theme hint (biases word choice and clue style)")
	genCmd.Flags().StringVarP(&outDir, "out", "o", "out", "Output directory")
	genCmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent puzzle workers (0 = auto)")
	genCmd.Flags().StringVar(&wordlist, "wordlist", "", "Newline-delimited word list (built-in if absent)")
	genCmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed for reproducible batches (0 = time-based)")
	genCmd.Flags().StringVar(&configPath, "config", "", "YAML tunables file")
	genCmd.Flags().BoolVar(&printGrids, "print", false, "Also print generated grids to stdout")

	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	if numPuzzles < 0 {
		return fmt.Errorf("number of puzzles must be >= 0, got %d", numPuzzles)
	}
	if gridSize < 2 {
		return fmt.Errorf("grid size must be >= 2, got %d", gridSize)
	}
	diff, err := puzzle.ParseDifficulty(difficulty)
	if err != nil {
		return err
	}
	tunables, err := config.Load(configPath)
	if err != nil {
		return err
	}

	dict := dictionary.Load(wordlist)
	ctx := cmd.Context()

	// Clue authoring is pluggable; Gemini is opt-in via the
	// environment, everything else stays fully offline.
	var source clue.Source
	if projectID := os.Getenv("GCP_PROJECT_ID"); projectID != "" {
		gemini, err := clue.NewGeminiSource(ctx, projectID, os.Getenv("GCP_REGION"))
		if err != nil {
			return fmt.Errorf("init gemini clue source: %w", err)
		}
		defer gemini.Close()
		slog.Info("gemini clue source enabled", "project", projectID)
		source = gemini
	}

	runner := batch.NewRunner(batch.Options{
		Count:      numPuzzles,
		Size:       gridSize,
		Difficulty: diff,
		Theme:      theme,
		OutDir:     outDir,
		Workers:    workers,
		Seed:       seed,
	}, dict, source, tunables, slog.Default())

	coll, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	if printGrids {
		for _, p := range coll.Puzzles() {
			fmt.Printf("Puzzle %s (valid: %t):\n%s\n", p.ID, p.Validation.Valid, p.Grid)
		}
	}

	summary := coll.Summary()
	fmt.Printf("Generated %d puzzle(s) in %s: %d valid, %d invalid, %d fallback(s)\n",
		summary.PuzzleCount, outDir,
		summary.ValidationSummary.Valid,
		summary.ValidationSummary.Invalid,
		summary.ValidationSummary.Fallbacks)
	return nil
}
