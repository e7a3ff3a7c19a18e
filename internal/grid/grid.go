// Package grid models a square crossword grid: blocked cells, letters,
// rotational block patterns, connectivity and entry extraction.
package grid

import "strings"

// Cell values. An open cell holds either Blank (during construction)
// or an uppercase letter A-Z. A persisted grid never contains Blank.
const (
	Blank   byte = 0
	Blocked byte = '#'
)

// Coord identifies a cell by row and column.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Grid is an N×N crossword grid.
type Grid struct {
	Size  int
	cells [][]byte
}

// New creates a grid of the given size with every cell open and blank.
func New(size int) *Grid {
	cells := make([][]byte, size)
	for i := range cells {
		cells[i] = make([]byte, size)
	}
	return &Grid{Size: size, cells: cells}
}

// FromRows builds a grid from row strings, one character per cell.
// '#' marks a blocked cell, '.' a blank open cell, anything else is
// taken as a letter. Inverse of Rows.
func FromRows(rows []string) *Grid {
	g := New(len(rows))
	for r, row := range rows {
		for c := 0; c < len(row) && c < g.Size; c++ {
			if row[c] == '.' {
				continue
			}
			g.cells[r][c] = row[c]
		}
	}
	return g
}

// Apply marks every coordinate in the pattern as blocked.
func (g *Grid) Apply(p Pattern) {
	for coord := range p.Blocked {
		g.cells[coord.Row][coord.Col] = Blocked
	}
}

// At returns the raw cell value at (r, c).
func (g *Grid) At(r, c int) byte {
	return g.cells[r][c]
}

// Set stores a letter at (r, c). Blocked cells are never overwritten.
func (g *Grid) Set(r, c int, letter byte) {
	if g.cells[r][c] != Blocked {
		g.cells[r][c] = letter
	}
}

// IsBlocked reports whether (r, c) is a black square.
func (g *Grid) IsBlocked(r, c int) bool {
	return g.cells[r][c] == Blocked
}

// IsOpen reports whether (r, c) can hold a letter.
func (g *Grid) IsOpen(r, c int) bool {
	return r >= 0 && r < g.Size && c >= 0 && c < g.Size && g.cells[r][c] != Blocked
}

// OpenCount returns the number of open cells.
func (g *Grid) OpenCount() int {
	n := 0
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			if g.cells[r][c] != Blocked {
				n++
			}
		}
	}
	return n
}

// HasBlanks reports whether any open cell is still unlettered.
func (g *Grid) HasBlanks() bool {
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			if g.cells[r][c] == Blank {
				return true
			}
		}
	}
	return false
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cp := New(g.Size)
	for r := range g.cells {
		copy(cp.cells[r], g.cells[r])
	}
	return cp
}

// Rows renders the grid as one string per row, '#' for blocked cells
// and '.' for blank open cells.
func (g *Grid) Rows() []string {
	rows := make([]string, g.Size)
	for r := 0; r < g.Size; r++ {
		var b strings.Builder
		for c := 0; c < g.Size; c++ {
			switch g.cells[r][c] {
			case Blank:
				b.WriteByte('.')
			default:
				b.WriteByte(g.cells[r][c])
			}
		}
		rows[r] = b.String()
	}
	return rows
}

// String renders the grid for console output, one space-separated row
// per line.
func (g *Grid) String() string {
	var b strings.Builder
	for _, row := range g.Rows() {
		for i := 0; i < len(row); i++ {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(row[i])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
