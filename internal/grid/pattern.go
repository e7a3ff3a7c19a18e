package grid

import "math/rand"

// Pattern is a set of blocked coordinates for a grid of a given size,
// symmetric under 180° rotation. Open runs are kept fillable: no run
// is longer than maxRun (the longest dictionary word) and no run is
// shorter than minRun unless it is a single cell lettered by a
// crossing run.
type Pattern struct {
	Size    int
	Blocked map[Coord]bool
}

// NewPattern returns an empty pattern for an N×N grid.
func NewPattern(size int) Pattern {
	return Pattern{Size: size, Blocked: make(map[Coord]bool)}
}

// GeneratePattern chooses block coordinates in the top half (including
// the center row for odd N) and mirrors each to its 180°-rotational
// counterpart. maxFraction bounds the share of randomly placed blocks;
// minRun and maxRun bound the open run lengths, with extra blocks
// inserted past the fraction cap when a run must be split to stay
// under maxRun. The exact center cell of odd N is decided
// independently since it is its own mirror image.
func GeneratePattern(rng *rand.Rand, size int, maxFraction float64, minRun, maxRun int) Pattern {
	p := NewPattern(size)
	if minRun < 2 {
		minRun = 2
	}
	if maxRun < minRun || maxRun > size {
		maxRun = size
	}

	budget := int(float64(size*size) * maxFraction)
	if budget >= 2 {
		// Upper bound on placement attempts; mirrored pairs consume
		// the budget two cells at a time.
		attempts := budget * 4
		for i := 0; i < attempts && len(p.Blocked) < budget-1; i++ {
			r := rng.Intn((size + 1) / 2)
			c := rng.Intn(size)
			coord := Coord{Row: r, Col: c}
			mirror := Coord{Row: size - 1 - r, Col: size - 1 - c}
			if coord == mirror || p.Blocked[coord] {
				continue
			}
			p.Blocked[coord] = true
			p.Blocked[mirror] = true
			if !p.legalAround(coord, minRun) || !p.legalAround(mirror, minRun) {
				delete(p.Blocked, coord)
				delete(p.Blocked, mirror)
			}
		}

		// Center cell of an odd grid maps to itself; block it on a
		// coin flip when budget remains.
		if size%2 == 1 && len(p.Blocked) < budget && rng.Intn(2) == 0 {
			center := Coord{Row: size / 2, Col: size / 2}
			p.Blocked[center] = true
			if !p.legalAround(center, minRun) {
				delete(p.Blocked, center)
			}
		}
	}

	p.enforceRunBounds(rng, minRun, maxRun)
	return p
}

// Symmetric reports whether every blocked cell has its 180°-rotational
// counterpart blocked as well.
func (p Pattern) Symmetric() bool {
	for coord := range p.Blocked {
		mirror := Coord{Row: p.Size - 1 - coord.Row, Col: p.Size - 1 - coord.Col}
		if !p.Blocked[mirror] {
			return false
		}
	}
	return true
}

// Density returns the blocked share of all cells.
func (p Pattern) Density() float64 {
	return float64(len(p.Blocked)) / float64(p.Size*p.Size)
}

func (p Pattern) open(r, c int) bool {
	return r >= 0 && r < p.Size && c >= 0 && c < p.Size && !p.Blocked[Coord{Row: r, Col: c}]
}

// runLen counts open cells starting at (r, c) and walking (dr, dc).
func (p Pattern) runLen(r, c, dr, dc int) int {
	n := 0
	for p.open(r, c) {
		n++
		r += dr
		c += dc
	}
	return n
}

// crossLen is the full length of the open run through (r, c)
// perpendicular to (dr, dc).
func (p Pattern) crossLen(r, c, dr, dc int) int {
	pr, pc := dc, dr
	return p.runLen(r, c, pr, pc) + p.runLen(r, c, -pr, -pc) - 1
}

// legalAround reports whether every open run adjacent to the blocked
// cell at respects minRun: empty, at least minRun long, or a single
// cell lettered by a crossing run of at least minRun.
func (p Pattern) legalAround(at Coord, minRun int) bool {
	dirs := [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	for _, d := range dirs {
		r, c := at.Row+d[0], at.Col+d[1]
		n := p.runLen(r, c, d[0], d[1])
		switch {
		case n == 0 || n >= minRun:
		case n == 1 && p.crossLen(r, c, d[0], d[1]) >= minRun:
		default:
			return false
		}
	}
	return true
}

// runRef locates one maximal open run.
type runRef struct {
	start  Coord
	dr, dc int
	length int
}

func (p Pattern) overlongRun(maxRun int) (runRef, bool) {
	for r := 0; r < p.Size; r++ {
		for c := 0; c < p.Size; c++ {
			if p.open(r, c) && !p.open(r, c-1) {
				if n := p.runLen(r, c, 0, 1); n > maxRun {
					return runRef{start: Coord{Row: r, Col: c}, dc: 1, length: n}, true
				}
			}
			if p.open(r, c) && !p.open(r-1, c) {
				if n := p.runLen(r, c, 1, 0); n > maxRun {
					return runRef{start: Coord{Row: r, Col: c}, dr: 1, length: n}, true
				}
			}
		}
	}
	return runRef{}, false
}

// splitRun blocks one cell of an over-long run plus its mirror. It
// prefers an offset that keeps every neighboring run legal; when none
// exists it splits at the middle and leaves the fallout to
// blockIllegalRuns.
func (p *Pattern) splitRun(rng *rand.Rand, run runRef, minRun int) {
	place := func(i int) (Coord, Coord) {
		coord := Coord{Row: run.start.Row + i*run.dr, Col: run.start.Col + i*run.dc}
		mirror := Coord{Row: p.Size - 1 - coord.Row, Col: p.Size - 1 - coord.Col}
		p.Blocked[coord] = true
		p.Blocked[mirror] = true
		return coord, mirror
	}
	for _, i := range rng.Perm(run.length) {
		coord, mirror := place(i)
		if p.legalAround(coord, minRun) && p.legalAround(mirror, minRun) {
			return
		}
		delete(p.Blocked, coord)
		delete(p.Blocked, mirror)
	}
	place(run.length / 2)
}

// blockIllegalRuns blocks every run shorter than minRun that no
// crossing run letters, plus mirrors. Reports whether anything
// changed.
func (p *Pattern) blockIllegalRuns(minRun int) bool {
	var bad []Coord
	collect := func(r, c, dr, dc int) {
		n := p.runLen(r, c, dr, dc)
		if n >= minRun || (n == 1 && p.crossLen(r, c, dr, dc) >= minRun) {
			return
		}
		for i := 0; i < n; i++ {
			bad = append(bad, Coord{Row: r + i*dr, Col: c + i*dc})
		}
	}
	for r := 0; r < p.Size; r++ {
		for c := 0; c < p.Size; c++ {
			if p.open(r, c) && !p.open(r, c-1) {
				collect(r, c, 0, 1)
			}
			if p.open(r, c) && !p.open(r-1, c) {
				collect(r, c, 1, 0)
			}
		}
	}
	for _, coord := range bad {
		p.Blocked[coord] = true
		p.Blocked[Coord{Row: p.Size - 1 - coord.Row, Col: p.Size - 1 - coord.Col}] = true
	}
	return len(bad) > 0
}

// enforceRunBounds splits runs longer than maxRun and blocks runs
// shorter than minRun until the pattern holds both bounds. Every step
// adds blocked cells, so the loop terminates; the bound is a safety
// net only.
func (p *Pattern) enforceRunBounds(rng *rand.Rand, minRun, maxRun int) {
	for pass := 0; pass < p.Size*p.Size; pass++ {
		if run, ok := p.overlongRun(maxRun); ok {
			p.splitRun(rng, run, minRun)
			continue
		}
		if !p.blockIllegalRuns(minRun) {
			return
		}
	}
}
