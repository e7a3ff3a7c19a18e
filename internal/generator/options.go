package generator

import "log/slog"

// Options configures one grid generation run.
type Options struct {
	Size            int          // grid dimension N
	Theme           string       // biases word ordering only
	BlockFraction   float64      // ceiling on the blocked share of cells
	SearchBudget    int          // max candidate placements before fallback
	PatternAttempts int          // max pattern regenerations before fallback
	Logger          *slog.Logger // nil means slog.Default
}

// Defaults for the heuristic knobs. They shape puzzle quality, not
// correctness, and can be overridden through the batch tunables.
const (
	DefaultBlockFraction   = 0.16
	DefaultSearchBudget    = 200000
	DefaultPatternAttempts = 25
)

func (o Options) withDefaults() Options {
	if o.BlockFraction <= 0 || o.BlockFraction > 0.2 {
		o.BlockFraction = DefaultBlockFraction
	}
	if o.SearchBudget <= 0 {
		o.SearchBudget = DefaultSearchBudget
	}
	if o.PatternAttempts <= 0 {
		o.PatternAttempts = DefaultPatternAttempts
	}
	return o
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}
