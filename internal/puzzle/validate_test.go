package puzzle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodul/crossgen/internal/grid"
)

// cluedPuzzle builds a puzzle whose clue set mirrors its entries
// exactly, so coverage passes unless a test breaks it on purpose.
func cluedPuzzle(across, down []grid.Entry) *Puzzle {
	p := &Puzzle{Across: across, Down: down}
	for _, e := range across {
		p.Clues.Across = append(p.Clues.Across, Clue{Number: e.Number, Text: "clue", Answer: e.Word})
	}
	for _, e := range down {
		p.Clues.Down = append(p.Clues.Down, Clue{Number: e.Number, Text: "clue", Answer: e.Word})
	}
	return p
}

func entries(dir grid.Direction, words ...string) []grid.Entry {
	out := make([]grid.Entry, len(words))
	for i, w := range words {
		out[i] = grid.Entry{Number: i + 1, Direction: dir, Word: w}
	}
	return out
}

func TestValidateCleanPuzzle(t *testing.T) {
	p := cluedPuzzle(
		entries(grid.Across, "SCARF", "MOTEL", "SANDY"),
		entries(grid.Down, "SUMPS", "ACTIN", "FILMY"),
	)
	v := Validator{}.Validate(p)
	assert.True(t, v.Valid)
	assert.Empty(t, v.Issues)
}

func TestValidateDuplicateAnswers(t *testing.T) {
	p := cluedPuzzle(
		entries(grid.Across, "SCARF", "MOTEL"),
		entries(grid.Down, "scarf", "FILMY"),
	)
	v := Validator{}.Validate(p)
	require.False(t, v.Valid)
	assert.Contains(t, strings.Join(v.Issues, "; "), "duplicate answer: SCARF")
}

func TestValidateBalance(t *testing.T) {
	// One down entry against four across falls under the 40% floor.
	p := cluedPuzzle(
		entries(grid.Across, "SCARF", "MOTEL", "SANDY", "CHORD"),
		entries(grid.Down, "FILMY"),
	)
	v := Validator{}.Validate(p)
	require.False(t, v.Valid)
	assert.Contains(t, strings.Join(v.Issues, "; "), "unbalanced entries")
}

func TestValidateBalanceNoDownEntries(t *testing.T) {
	p := cluedPuzzle(entries(grid.Across, "SCARF"), nil)
	v := Validator{}.Validate(p)
	assert.False(t, v.Valid)
}

func TestValidateBalanceRatioTunable(t *testing.T) {
	p := cluedPuzzle(
		entries(grid.Across, "SCARF", "MOTEL", "SANDY", "CHORD"),
		entries(grid.Down, "FILMY", "SUMPS"),
	)
	// 2 vs 4 passes at 40% but fails at a stricter 60%.
	assert.True(t, Validator{BalanceRatio: 0.4}.Validate(p).Valid)
	assert.False(t, Validator{BalanceRatio: 0.6}.Validate(p).Valid)
}

func TestValidateCoverage(t *testing.T) {
	p := cluedPuzzle(
		entries(grid.Across, "SCARF", "MOTEL"),
		entries(grid.Down, "SUMPS", "FILMY"),
	)
	p.Clues.Across = p.Clues.Across[:1] // drop one clue
	p.Clues.Down = append(p.Clues.Down, Clue{Number: 9, Text: "stray", Answer: "ACTIN"})

	v := Validator{}.Validate(p)
	require.False(t, v.Valid)
	joined := strings.Join(v.Issues, "; ")
	assert.Contains(t, joined, "no clue for 2 across (MOTEL)")
	assert.Contains(t, joined, "orphan clue 9 down (ACTIN)")
}

func TestParseDifficulty(t *testing.T) {
	for in, want := range map[string]Difficulty{
		"easy": Easy, "Medium": Medium, " HARD ": Hard, "": Medium,
	} {
		got, err := ParseDifficulty(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseDifficulty("extreme")
	assert.Error(t, err)
}

func TestMetadataProjection(t *testing.T) {
	p := cluedPuzzle(entries(grid.Across, "SCARF", "MOTEL"), entries(grid.Down, "SUMPS"))
	p.ID = "abc"
	p.Theme = "sea"
	p.Difficulty = Hard
	p.Validation = Validation{Valid: true}

	m := p.Metadata()
	assert.Equal(t, "abc", m.ID)
	assert.Equal(t, "sea", m.Theme)
	assert.Equal(t, Hard, m.Difficulty)
	assert.Len(t, m.Clues.Across, 2)
	assert.True(t, m.Validation.Valid)
}
