package generator

import (
	"math/rand"

	"github.com/bodul/crossgen/internal/grid"
)

// fallbackRows are hand-verified 5×5 grids with pre-validated word
// sets. Each is connected, 180°-symmetric, duplicate-free and balanced
// (three across, three down), so a batch always yields some valid,
// non-empty puzzle even when the probabilistic fill gives up.
var fallbackRows = [][]string{
	{
		"SCARF",
		"U#C#I",
		"MOTEL",
		"P#I#M",
		"SANDY",
	},
	{
		"CHORD",
		"I#U#O",
		"TIGER",
		"E#H#M",
		"SITES",
	},
}

// FallbackGrid returns a copy of one of the static fallback grids.
func FallbackGrid(rng *rand.Rand) *grid.Grid {
	rows := fallbackRows[rng.Intn(len(fallbackRows))]
	return grid.FromRows(rows)
}
