package batch

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodul/crossgen/internal/config"
	"github.com/bodul/crossgen/internal/dictionary"
	"github.com/bodul/crossgen/internal/puzzle"
)

func runBatch(t *testing.T, opts Options) (*Collection, string) {
	t.Helper()
	if opts.OutDir == "" {
		opts.OutDir = filepath.Join(t.TempDir(), "out")
	}
	r := NewRunner(opts, dictionary.Builtin(), nil, config.Default(), nil)
	coll, err := r.Run(context.Background())
	require.NoError(t, err)
	return coll, opts.OutDir
}

// Requesting k puzzles must yield exactly k metadata files and k image
// pairs, regardless of how often the fallback fired.
func TestBatchCompleteness(t *testing.T) {
	const k = 3
	coll, dir := runBatch(t, Options{Count: k, Size: 7, Difficulty: puzzle.Medium, Seed: 11})

	puzzles := coll.Puzzles()
	require.Len(t, puzzles, k)

	for _, p := range puzzles {
		require.FileExists(t, filepath.Join(dir, p.ID+".json"))
		require.FileExists(t, filepath.Join(dir, p.ID+"_grid.png"))
		require.FileExists(t, filepath.Join(dir, p.ID+"_solution.png"))

		data, err := os.ReadFile(filepath.Join(dir, p.ID+".json"))
		require.NoError(t, err)
		var meta puzzle.Metadata
		require.NoError(t, json.Unmarshal(data, &meta))
		assert.Equal(t, p.ID, meta.ID)
		assert.Equal(t, len(p.Across), len(meta.Clues.Across))
		assert.Equal(t, len(p.Down), len(meta.Clues.Down))
	}

	summary := coll.Summary()
	assert.Equal(t, k, summary.PuzzleCount)
	assert.Equal(t, k, summary.ValidationSummary.Valid+summary.ValidationSummary.Invalid)
}

func TestBatchOfZeroStillWritesCollection(t *testing.T) {
	coll, dir := runBatch(t, Options{Count: 0, Size: 7, Difficulty: puzzle.Medium})
	assert.Empty(t, coll.Puzzles())

	data, err := os.ReadFile(filepath.Join(dir, "collection.json"))
	require.NoError(t, err)
	var meta Metadata
	require.NoError(t, json.Unmarshal(data, &meta))
	assert.Equal(t, 0, meta.PuzzleCount)
}

func TestBatchCollectionSummary(t *testing.T) {
	coll, dir := runBatch(t, Options{Count: 2, Size: 9, Difficulty: puzzle.Easy, Seed: 5, Theme: "garden"})

	data, err := os.ReadFile(filepath.Join(dir, "collection.json"))
	require.NoError(t, err)
	var meta Metadata
	require.NoError(t, json.Unmarshal(data, &meta))
	assert.Equal(t, 2, meta.PuzzleCount)
	assert.Equal(t, coll.Summary(), meta)

	for _, p := range coll.Puzzles() {
		assert.Equal(t, "garden", p.Theme)
		assert.Equal(t, puzzle.Easy, p.Difficulty)
	}
}

func TestBatchSeededRunsAreReproducible(t *testing.T) {
	a, _ := runBatch(t, Options{Count: 2, Size: 7, Difficulty: puzzle.Medium, Seed: 99, Workers: 1})
	b, _ := runBatch(t, Options{Count: 2, Size: 7, Difficulty: puzzle.Medium, Seed: 99, Workers: 1})

	rowsOf := func(c *Collection) [][]string {
		var out [][]string
		for _, p := range c.Puzzles() {
			out = append(out, p.Grid.Rows())
		}
		return out
	}
	assert.ElementsMatch(t, rowsOf(a), rowsOf(b))
}

func TestBatchSizeTooSmallIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "long.txt")
	require.NoError(t, os.WriteFile(path, []byte("LONGER\nSTRING\nWORDLE\n"), 0o644))
	dict := dictionary.Load(path)

	r := NewRunner(Options{Count: 1, Size: 4, OutDir: t.TempDir()}, dict, nil, config.Default(), nil)
	_, err := r.Run(context.Background())
	assert.ErrorIs(t, err, ErrSizeTooSmall)
}

func TestBatchUnwritableOutputDirIsFatal(t *testing.T) {
	dir := t.TempDir()
	blocked := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))

	// A regular file where the output directory should be.
	r := NewRunner(Options{Count: 1, Size: 7, OutDir: blocked}, dictionary.Builtin(), nil, config.Default(), nil)
	_, err := r.Run(context.Background())
	assert.Error(t, err)
}

func TestCollectionSummaryCounts(t *testing.T) {
	c := NewCollection()
	c.Add(&puzzle.Puzzle{Validation: puzzle.Validation{Valid: true}})
	c.Add(&puzzle.Puzzle{Fallback: true, Validation: puzzle.Validation{Valid: true}})
	c.Add(&puzzle.Puzzle{Validation: puzzle.Validation{Valid: false}})

	m := c.Summary()
	assert.Equal(t, 3, m.PuzzleCount)
	assert.Equal(t, 2, m.ValidationSummary.Valid)
	assert.Equal(t, 1, m.ValidationSummary.Invalid)
	assert.Equal(t, 1, m.ValidationSummary.Fallbacks)
}
