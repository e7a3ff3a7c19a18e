package puzzle

import (
	"fmt"
	"strings"

	"github.com/bodul/crossgen/internal/grid"
)

// DefaultBalanceRatio is the smallest allowed size of one direction's
// entry list relative to the other's. It is a quality heuristic, not a
// structural requirement, and can be tuned per batch.
const DefaultBalanceRatio = 0.4

// Validator runs the structural checks on a finished puzzle.
type Validator struct {
	// BalanceRatio overrides DefaultBalanceRatio when > 0.
	BalanceRatio float64
}

// Validate checks the puzzle for duplicate answers, across/down
// balance, and one-to-one word/clue coverage. Every failed check adds
// a named issue; the puzzle is valid only when no issues were found.
func (v Validator) Validate(p *Puzzle) Validation {
	issues := []string{}
	issues = append(issues, v.checkDuplicates(p)...)
	issues = append(issues, v.checkBalance(p)...)
	issues = append(issues, v.checkCoverage(p)...)
	return Validation{Valid: len(issues) == 0, Issues: issues}
}

// checkDuplicates flags any answer string that appears more than once
// anywhere in the puzzle, case-insensitively.
func (v Validator) checkDuplicates(p *Puzzle) []string {
	seen := make(map[string]bool)
	var issues []string
	for _, e := range append(append([]Clue{}, p.Clues.Across...), p.Clues.Down...) {
		word := strings.ToUpper(e.Answer)
		if seen[word] {
			issues = append(issues, fmt.Sprintf("duplicate answer: %s", word))
		}
		seen[word] = true
	}
	return issues
}

// checkBalance flags a puzzle whose across and down entry counts are
// too lopsided.
func (v Validator) checkBalance(p *Puzzle) []string {
	ratio := v.BalanceRatio
	if ratio <= 0 {
		ratio = DefaultBalanceRatio
	}
	na, nd := len(p.Across), len(p.Down)
	if na == 0 || nd == 0 {
		return []string{fmt.Sprintf("unbalanced entries: %d across, %d down", na, nd)}
	}
	lo, hi := na, nd
	if lo > hi {
		lo, hi = hi, lo
	}
	if float64(lo) < float64(hi)*ratio {
		return []string{fmt.Sprintf("unbalanced entries: %d across, %d down", na, nd)}
	}
	return nil
}

// checkCoverage verifies every extracted word has exactly one clue and
// every clue answers an extracted word, with no orphans on either side.
func (v Validator) checkCoverage(p *Puzzle) []string {
	var issues []string
	issues = append(issues, coverDirection("across", p.Across, p.Clues.Across)...)
	issues = append(issues, coverDirection("down", p.Down, p.Clues.Down)...)
	return issues
}

func coverDirection(dir string, entries []grid.Entry, clues []Clue) []string {
	type key struct {
		number int
		word   string
	}
	var issues []string
	clued := make(map[key]int)
	for _, c := range clues {
		clued[key{c.Number, strings.ToUpper(c.Answer)}]++
	}
	for _, e := range entries {
		k := key{e.Number, strings.ToUpper(e.Word)}
		switch clued[k] {
		case 0:
			issues = append(issues, fmt.Sprintf("no clue for %d %s (%s)", e.Number, dir, e.Word))
		case 1:
			delete(clued, k)
		default:
			issues = append(issues, fmt.Sprintf("multiple clues for %d %s (%s)", e.Number, dir, e.Word))
			delete(clued, k)
		}
	}
	for k := range clued {
		issues = append(issues, fmt.Sprintf("orphan clue %d %s (%s)", k.number, dir, k.word))
	}
	return issues
}
