// Package batch drives puzzle generation end to end: for each
// requested puzzle it runs pattern generation, fill, extraction, clue
// assignment and validation, then renders images and writes metadata.
// Puzzles are independent, so a bounded worker pool runs them
// concurrently.
package batch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/bodul/crossgen/internal/clue"
	"github.com/bodul/crossgen/internal/config"
	"github.com/bodul/crossgen/internal/dictionary"
	"github.com/bodul/crossgen/internal/generator"
	"github.com/bodul/crossgen/internal/grid"
	"github.com/bodul/crossgen/internal/puzzle"
	"github.com/bodul/crossgen/internal/render"
)

// ErrSizeTooSmall means no dictionary word can ever fit the requested
// grid. Fatal: no fallback compensates for an impossible size.
var ErrSizeTooSmall = errors.New("grid size smaller than shortest dictionary word")

// Options configures one batch run.
type Options struct {
	Count      int
	Size       int
	Difficulty puzzle.Difficulty
	Theme      string
	OutDir     string
	Workers    int
	Seed       int64
}

// Runner generates a batch of puzzles against a fixed dictionary,
// clue source and tunables.
type Runner struct {
	opts     Options
	dict     *dictionary.Dictionary
	source   clue.Source
	tunables config.Tunables
	renderer render.Renderer
	logger   *slog.Logger
}

// NewRunner wires a batch runner. A nil clue source selects the
// offline template source; a nil logger selects slog.Default().
func NewRunner(opts Options, dict *dictionary.Dictionary, source clue.Source, tunables config.Tunables, logger *slog.Logger) *Runner {
	if source == nil {
		source = clue.TemplateSource{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Workers <= 0 {
		opts.Workers = min(runtime.NumCPU(), 4)
	}
	return &Runner{
		opts:     opts,
		dict:     dict,
		source:   source,
		tunables: tunables,
		logger:   logger,
	}
}

// Run generates every requested puzzle and persists its asset bundle.
// Per-puzzle recoverable failures (pattern retries, fill fallback,
// validation issues) are absorbed and logged; only batch-level
// dependency failures (an unusable output directory or an impossible
// grid size) return an error. On success exactly opts.Count puzzles
// are on disk, each tagged valid or invalid, plus collection metadata.
func (r *Runner) Run(ctx context.Context) (*Collection, error) {
	if r.opts.Size < r.dict.MinLength() {
		return nil, fmt.Errorf("%w: size %d, shortest word %d", ErrSizeTooSmall, r.opts.Size, r.dict.MinLength())
	}
	if err := os.MkdirAll(r.opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	seed := r.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	coll := NewCollection()
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.opts.Workers)

	for i := 0; i < r.opts.Count; i++ {
		eg.Go(func() error {
			p := r.generateOne(ctx, rand.New(rand.NewSource(seed+int64(i))))
			if err := r.persist(p); err != nil {
				return err
			}
			coll.Add(p)
			r.logger.Info("puzzle generated",
				"id", p.ID,
				"valid", p.Validation.Valid,
				"fallback", p.Fallback,
				"across", len(p.Across),
				"down", len(p.Down))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if err := writeJSON(filepath.Join(r.opts.OutDir, "collection.json"), coll.Summary()); err != nil {
		return nil, err
	}
	return coll, nil
}

// generateOne runs the per-puzzle state machine. It always produces a
// puzzle record; there is no unrecoverable per-puzzle abort.
func (r *Runner) generateOne(ctx context.Context, rng *rand.Rand) *puzzle.Puzzle {
	res := generator.Generate(generator.Options{
		Size:            r.opts.Size,
		Theme:           r.opts.Theme,
		BlockFraction:   r.tunables.BlockFractionFor(string(r.opts.Difficulty)),
		SearchBudget:    r.tunables.SearchBudget,
		PatternAttempts: r.tunables.PatternAttempts,
		Logger:          r.logger,
	}, r.dict, rng)

	// Final sanity check; a disconnected grid here is a generation
	// failure and routes to the fallback like an exhausted budget.
	if !grid.Connected(res.Grid) || res.Grid.HasBlanks() {
		r.logger.Warn("filled grid failed sanity check, using fallback")
		res = generator.Result{Grid: generator.FallbackGrid(rng), Fallback: true}
	}

	across, down := grid.Extract(res.Grid)
	p := &puzzle.Puzzle{
		ID:         uuid.NewString(),
		Theme:      r.opts.Theme,
		Difficulty: r.opts.Difficulty,
		Grid:       res.Grid,
		Across:     across,
		Down:       down,
		Fallback:   res.Fallback,
	}
	p.Clues = clue.Assign(ctx, r.source, across, down, r.opts.Theme, r.opts.Difficulty)
	p.Validation = puzzle.Validator{BalanceRatio: r.tunables.BalanceRatio}.Validate(p)
	return p
}

// persist writes the puzzle's asset bundle: grid image, solution
// image and metadata JSON.
func (r *Runner) persist(p *puzzle.Puzzle) error {
	gridPath := filepath.Join(r.opts.OutDir, p.ID+"_grid.png")
	solPath := filepath.Join(r.opts.OutDir, p.ID+"_solution.png")
	metaPath := filepath.Join(r.opts.OutDir, p.ID+".json")

	if err := r.renderer.WriteGrid(gridPath, p.Grid); err != nil {
		return err
	}
	if err := r.renderer.WriteSolution(solPath, p.Grid); err != nil {
		return err
	}
	return writeJSON(metaPath, p.Metadata())
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
