// Package config holds the heuristic tunables of the generator. The
// defaults are quality heuristics, not structural truths, so they can
// be overridden from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tunables are the generation knobs that shape puzzle quality.
type Tunables struct {
	// BalanceRatio is the smallest allowed size of one clue-direction
	// list relative to the other.
	BalanceRatio float64 `yaml:"balance_ratio"`
	// BlockFraction caps the blocked share of cells per difficulty.
	BlockFraction map[string]float64 `yaml:"block_fraction"`
	// SearchBudget bounds the filler's candidate placements per grid.
	SearchBudget int `yaml:"search_budget"`
	// PatternAttempts bounds pattern regenerations per grid.
	PatternAttempts int `yaml:"pattern_attempts"`
}

// Default returns the built-in tunables.
func Default() Tunables {
	return Tunables{
		BalanceRatio: 0.4,
		BlockFraction: map[string]float64{
			"easy":   0.10,
			"medium": 0.15,
			"hard":   0.20,
		},
		SearchBudget:    200000,
		PatternAttempts: 25,
	}
}

// Load reads tunables from a YAML file, filling unset fields from the
// defaults. An empty path returns the defaults.
func Load(path string) (Tunables, error) {
	t := Default()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tunables: %w", err)
	}
	var file Tunables
	if err := yaml.Unmarshal(data, &file); err != nil {
		return t, fmt.Errorf("parse tunables: %w", err)
	}
	if file.BalanceRatio > 0 {
		t.BalanceRatio = file.BalanceRatio
	}
	for tier, frac := range file.BlockFraction {
		if frac > 0 {
			t.BlockFraction[tier] = frac
		}
	}
	if file.SearchBudget > 0 {
		t.SearchBudget = file.SearchBudget
	}
	if file.PatternAttempts > 0 {
		t.PatternAttempts = file.PatternAttempts
	}
	return t, nil
}

// BlockFractionFor returns the density ceiling for a difficulty tier,
// clamped so grids stay solvable.
func (t Tunables) BlockFractionFor(difficulty string) float64 {
	frac, ok := t.BlockFraction[difficulty]
	if !ok || frac <= 0 {
		frac = 0.15
	}
	if frac > 0.2 {
		frac = 0.2
	}
	return frac
}
