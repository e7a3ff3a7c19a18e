package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenCommandWritesBundle(t *testing.T) {
	t.Setenv("GCP_PROJECT_ID", "")
	dir := filepath.Join(t.TempDir(), "out")

	rootCmd.SetArgs([]string{"gen", "-n", "2", "-s", "7", "-o", dir, "--seed", "3"})
	require.NoError(t, rootCmd.Execute())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var jsons, pngs int
	for _, e := range entries {
		switch filepath.Ext(e.Name()) {
		case ".json":
			jsons++
		case ".png":
			pngs++
		}
	}
	// 2 puzzle metadata files + collection.json, and 2 image pairs.
	assert.Equal(t, 3, jsons)
	assert.Equal(t, 4, pngs)
}

func TestGenCommandRejectsBadDifficulty(t *testing.T) {
	rootCmd.SetArgs([]string{"gen", "-d", "impossible", "-o", t.TempDir()})
	assert.Error(t, rootCmd.Execute())
}
