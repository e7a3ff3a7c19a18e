package batch

import (
	"sync"

	"github.com/bodul/crossgen/internal/puzzle"
)

// Collection accumulates the puzzles of one batch. Workers add
// concurrently; reads happen after the batch completes.
type Collection struct {
	mu      sync.Mutex
	puzzles []*puzzle.Puzzle
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Add records a finished puzzle.
func (c *Collection) Add(p *puzzle.Puzzle) {
	c.mu.Lock()
	c.puzzles = append(c.puzzles, p)
	c.mu.Unlock()
}

// Puzzles returns all recorded puzzles.
func (c *Collection) Puzzles() []*puzzle.Puzzle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*puzzle.Puzzle(nil), c.puzzles...)
}

// ValidationSummary aggregates pass/fail counts across a batch.
type ValidationSummary struct {
	Valid     int `json:"valid"`
	Invalid   int `json:"invalid"`
	Fallbacks int `json:"fallbacks"`
}

// Metadata is the collection-level JSON document.
type Metadata struct {
	PuzzleCount       int               `json:"puzzle_count"`
	ValidationSummary ValidationSummary `json:"validation_summary"`
}

// Summary builds the collection metadata from the recorded puzzles.
func (c *Collection) Summary() Metadata {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := Metadata{PuzzleCount: len(c.puzzles)}
	for _, p := range c.puzzles {
		if p.Validation.Valid {
			m.ValidationSummary.Valid++
		} else {
			m.ValidationSummary.Invalid++
		}
		if p.Fallback {
			m.ValidationSummary.Fallbacks++
		}
	}
	return m
}
