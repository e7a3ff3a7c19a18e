// Package puzzle defines the crossword puzzle record and its
// structural validation.
package puzzle

import (
	"fmt"
	"strings"

	"github.com/bodul/crossgen/internal/grid"
)

// Difficulty tier of a puzzle. It bounds the block density of the
// pattern and shifts the clue register.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ParseDifficulty normalizes a user-supplied difficulty string.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case Easy:
		return Easy, nil
	case Medium, "":
		return Medium, nil
	case Hard:
		return Hard, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
}

// Clue pairs a clue number with its text and answer.
type Clue struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
	Answer string `json:"answer"`
}

// ClueSet holds the across and down clue lists.
type ClueSet struct {
	Across []Clue `json:"across"`
	Down   []Clue `json:"down"`
}

// Validation is the outcome of the structural checks.
type Validation struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues"`
}

// Puzzle is one generated crossword, immutable after validation.
type Puzzle struct {
	ID         string
	Theme      string
	Difficulty Difficulty
	Grid       *grid.Grid
	Across     []grid.Entry
	Down       []grid.Entry
	Clues      ClueSet
	Validation Validation
	Fallback   bool // filled from a static fallback grid
}

// Metadata is the per-puzzle JSON document written next to the images.
type Metadata struct {
	ID         string     `json:"id"`
	Theme      string     `json:"theme"`
	Difficulty Difficulty `json:"difficulty"`
	Clues      ClueSet    `json:"clues"`
	Validation Validation `json:"validation"`
}

// Metadata projects the puzzle into its serialized form.
func (p *Puzzle) Metadata() Metadata {
	return Metadata{
		ID:         p.ID,
		Theme:      p.Theme,
		Difficulty: p.Difficulty,
		Clues:      p.Clues,
		Validation: p.Validation,
	}
}
