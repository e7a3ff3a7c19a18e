package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinDictionary(t *testing.T) {
	d := Builtin()
	require.GreaterOrEqual(t, d.Len(), 500, "built-in dictionary must carry at least 500 words")
	assert.Equal(t, 3, d.MinLength())
	assert.Equal(t, 8, d.MaxLength())
	assert.True(t, d.Contains("CAT"))
	assert.True(t, d.Contains("cat"), "membership is case-insensitive")
	assert.NotEmpty(t, d.WordsOfLength(5))

	for _, w := range d.WordsOfLength(4) {
		assert.Len(t, w, 4)
	}
}

func TestBuiltinIsDeterministic(t *testing.T) {
	assert.Same(t, Builtin(), Builtin())
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	d := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Same(t, Builtin(), d)
}

func TestLoadEmptyFileFallsBack(t *testing.T) {
	// A zero-byte word list must yield the built-in dictionary, never
	// an error.
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	assert.Same(t, Builtin(), Load(path))
}

func TestLoadEmptyPathFallsBack(t *testing.T) {
	assert.Same(t, Builtin(), Load(""))
}

func TestLoadNormalizesAndIndexes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat\nCAR\n art \nTAR\ncat\nx\n"), 0o644))

	d := Load(path)
	assert.Equal(t, 4, d.Len(), "duplicates and single letters dropped")
	assert.ElementsMatch(t, []string{"CAT", "CAR", "ART", "TAR"}, d.WordsOfLength(3))
	assert.True(t, d.Contains("art"))
	assert.Equal(t, 3, d.MinLength())
	assert.Equal(t, 3, d.MaxLength())
}
