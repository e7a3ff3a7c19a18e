package grid

// Direction of a crossword entry.
type Direction string

const (
	Across Direction = "across"
	Down   Direction = "down"
)

// Entry is one word placement found in a filled grid: its clue number,
// anchor cell, direction and answer text. Entries are read-only once
// extracted.
type Entry struct {
	Number    int       `json:"number"`
	Start     Coord     `json:"start"`
	Direction Direction `json:"direction"`
	Word      string    `json:"word"`
}

// startsAcross reports whether (r, c) begins an across entry: open,
// no open neighbor to the left, and an open neighbor to the right.
func startsAcross(g *Grid, r, c int) bool {
	return g.IsOpen(r, c) && !g.IsOpen(r, c-1) && g.IsOpen(r, c+1)
}

// startsDown is the vertical counterpart of startsAcross.
func startsDown(g *Grid, r, c int) bool {
	return g.IsOpen(r, c) && !g.IsOpen(r-1, c) && g.IsOpen(r+1, c)
}

// Extract scans the grid row-major and collects across and down
// entries with standard crossword numbering: a single shared counter
// increments once per cell that starts either kind of entry.
func Extract(g *Grid) (across, down []Entry) {
	num := 0
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			isAcross := startsAcross(g, r, c)
			isDown := startsDown(g, r, c)
			if !isAcross && !isDown {
				continue
			}
			num++
			if isAcross {
				across = append(across, Entry{
					Number:    num,
					Start:     Coord{Row: r, Col: c},
					Direction: Across,
					Word:      readWord(g, r, c, 0, 1),
				})
			}
			if isDown {
				down = append(down, Entry{
					Number:    num,
					Start:     Coord{Row: r, Col: c},
					Direction: Down,
					Word:      readWord(g, r, c, 1, 0),
				})
			}
		}
	}
	return across, down
}

// Numbers returns the clue number for every numbered cell, keyed by
// coordinate. Used by the renderer to place numbers in the grid image.
func Numbers(g *Grid) map[Coord]int {
	nums := make(map[Coord]int)
	num := 0
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			if startsAcross(g, r, c) || startsDown(g, r, c) {
				num++
				nums[Coord{Row: r, Col: c}] = num
			}
		}
	}
	return nums
}

func readWord(g *Grid, r, c, dr, dc int) string {
	var word []byte
	for g.IsOpen(r, c) {
		word = append(word, g.At(r, c))
		r += dr
		c += dc
	}
	return string(word)
}
