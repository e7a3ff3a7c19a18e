// Package generator produces filled crossword grids: a symmetric block
// pattern, a constrained word placement search over its slots, and a
// static fallback when the search budget runs out.
package generator

import (
	"errors"
	"math/rand"
	"sort"
	"strings"

	"github.com/bodul/crossgen/internal/dictionary"
	"github.com/bodul/crossgen/internal/grid"
)

var (
	// ErrBudgetExhausted means the backtracking search hit its
	// placement budget. Recoverable: the caller substitutes a
	// fallback grid.
	ErrBudgetExhausted = errors.New("fill search budget exhausted")

	// ErrNoFill means the slot constraints admit no solution at all.
	ErrNoFill = errors.New("no dictionary fill exists for this pattern")
)

// slot is a maximal run of at least two open cells in one direction.
type slot struct {
	cells []grid.Coord
}

// findSlots collects the across and down slots of the grid.
func findSlots(g *grid.Grid) []slot {
	var slots []slot
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			if g.IsOpen(r, c) && !g.IsOpen(r, c-1) && g.IsOpen(r, c+1) {
				slots = append(slots, walkSlot(g, r, c, 0, 1))
			}
			if g.IsOpen(r, c) && !g.IsOpen(r-1, c) && g.IsOpen(r+1, c) {
				slots = append(slots, walkSlot(g, r, c, 1, 0))
			}
		}
	}
	return slots
}

func walkSlot(g *grid.Grid, r, c, dr, dc int) slot {
	var s slot
	for g.IsOpen(r, c) {
		s.cells = append(s.cells, grid.Coord{Row: r, Col: c})
		r += dr
		c += dc
	}
	return s
}

// frame is one level of the explicit backtracking stack: the slot
// being filled, its remaining candidates, and the cells this frame
// lettered (so they can be blanked again on backtrack).
type frame struct {
	slotIdx    int
	candidates []string
	next       int
	written    []grid.Coord
	placed     string
}

// fill letters every slot of g with dictionary words honoring crossing
// constraints, using an iterative backtracking search. A placement
// that leaves any crossing slot without a remaining candidate is
// undone immediately instead of waiting for that slot's own frame.
// budget is the remaining candidate placements and is decremented in
// place, so repeated fill attempts share one budget.
func fill(g *grid.Grid, dict *dictionary.Dictionary, rng *rand.Rand, theme string, budget *int) error {
	slots := findSlots(g)
	if len(slots) == 0 {
		return ErrNoFill
	}
	// Longest slots first: they have the fewest candidates and
	// constrain the most crossings, so failures surface early.
	sort.SliceStable(slots, func(i, j int) bool {
		return len(slots[i].cells) > len(slots[j].cells)
	})
	slots = orderSlots(slots)
	cross := indexSlots(slots)

	used := make(map[string]bool)
	stack := []*frame{newFrame(g, slots, 0, dict, rng, used, theme)}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		// Undo the previous attempt of this frame, if any.
		if top.placed != "" {
			delete(used, top.placed)
			for _, c := range top.written {
				g.Set(c.Row, c.Col, grid.Blank)
			}
			top.written = nil
			top.placed = ""
		}

		if top.next >= len(top.candidates) {
			stack = stack[:len(stack)-1] // backtrack
			continue
		}

		if *budget <= 0 {
			return ErrBudgetExhausted
		}
		(*budget)--
		word := top.candidates[top.next]
		top.next++

		top.placed = word
		used[word] = true
		for i, c := range top.cells(slots) {
			if g.At(c.Row, c.Col) == grid.Blank {
				g.Set(c.Row, c.Col, word[i])
				top.written = append(top.written, c)
			}
		}

		if !viableCrossings(g, slots, cross, top, dict, used) {
			continue // undone at the top of the loop
		}
		if top.slotIdx+1 == len(slots) {
			return nil
		}
		stack = append(stack, newFrame(g, slots, top.slotIdx+1, dict, rng, used, theme))
	}
	return ErrNoFill
}

// crossIndex maps a cell to the slot crossing it in each direction,
// stored as slot index plus one so zero means none.
type crossIndex struct {
	hor map[grid.Coord]int
	ver map[grid.Coord]int
}

func indexSlots(slots []slot) crossIndex {
	ci := crossIndex{hor: make(map[grid.Coord]int), ver: make(map[grid.Coord]int)}
	for i, s := range slots {
		m := ci.hor
		if s.cells[1].Row != s.cells[0].Row {
			m = ci.ver
		}
		for _, c := range s.cells {
			m[c] = i + 1
		}
	}
	return ci
}

// viableCrossings reports whether every pending slot crossing a cell
// the current frame just lettered still admits an unused word. Slots
// at or before the current frame are already complete.
func viableCrossings(g *grid.Grid, slots []slot, cross crossIndex, top *frame, dict *dictionary.Dictionary, used map[string]bool) bool {
	for _, c := range top.written {
		for _, idx := range [2]int{cross.hor[c] - 1, cross.ver[c] - 1} {
			if idx <= top.slotIdx {
				continue
			}
			if !slotViable(g, slots[idx], dict, used) {
				return false
			}
		}
	}
	return true
}

func slotViable(g *grid.Grid, s slot, dict *dictionary.Dictionary, used map[string]bool) bool {
	pattern := make([]byte, len(s.cells))
	for i, c := range s.cells {
		pattern[i] = g.At(c.Row, c.Col)
	}
	for _, w := range dict.WordsOfLength(len(s.cells)) {
		if !used[w] && matches(w, pattern) {
			return true
		}
	}
	return false
}

// orderSlots arranges slots so consecutive frames share crossing
// cells: a breadth-first walk over the crossing graph seeded from the
// front of the incoming order. A contradiction then surfaces within a
// few frames of the placement that caused it instead of after an
// unrelated subtree.
func orderSlots(slots []slot) []slot {
	owners := make(map[grid.Coord][]int)
	for i, s := range slots {
		for _, c := range s.cells {
			owners[c] = append(owners[c], i)
		}
	}
	visited := make([]bool, len(slots))
	ordered := make([]slot, 0, len(slots))
	for seed := range slots {
		if visited[seed] {
			continue
		}
		visited[seed] = true
		queue := []int{seed}
		for len(queue) > 0 {
			i := queue[0]
			queue = queue[1:]
			ordered = append(ordered, slots[i])
			for _, c := range slots[i].cells {
				for _, j := range owners[c] {
					if !visited[j] {
						visited[j] = true
						queue = append(queue, j)
					}
				}
			}
		}
	}
	return ordered
}

func (f *frame) cells(slots []slot) []grid.Coord {
	return slots[f.slotIdx].cells
}

// newFrame computes the candidate list for a slot against the current
// grid state: length-matching, crossing-compatible, unused words, in
// random order with theme-flavored words surfaced first.
func newFrame(g *grid.Grid, slots []slot, idx int, dict *dictionary.Dictionary, rng *rand.Rand, used map[string]bool, theme string) *frame {
	s := slots[idx]
	pattern := make([]byte, len(s.cells))
	for i, c := range s.cells {
		pattern[i] = g.At(c.Row, c.Col)
	}

	var candidates []string
	for _, w := range dict.WordsOfLength(len(s.cells)) {
		if used[w] || !matches(w, pattern) {
			continue
		}
		candidates = append(candidates, w)
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if theme != "" {
		biasTheme(candidates, theme)
	}
	return &frame{slotIdx: idx, candidates: candidates}
}

func matches(word string, pattern []byte) bool {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != grid.Blank && pattern[i] != word[i] {
			return false
		}
	}
	return true
}

// biasTheme stably moves words sharing letters with the theme toward
// the front of the candidate list. A soft preference only: it changes
// which fills are found first, never whether a fill exists.
func biasTheme(candidates []string, theme string) {
	letters := make(map[byte]bool)
	for _, r := range strings.ToUpper(theme) {
		if r >= 'A' && r <= 'Z' {
			letters[byte(r)] = true
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return themeScore(candidates[i], letters) > themeScore(candidates[j], letters)
	})
}

func themeScore(word string, letters map[byte]bool) int {
	seen := make(map[byte]bool)
	score := 0
	for i := 0; i < len(word); i++ {
		if letters[word[i]] && !seen[word[i]] {
			seen[word[i]] = true
			score++
		}
	}
	return score
}

// Result of one generation run.
type Result struct {
	Grid     *grid.Grid
	Fallback bool
}

// Generate produces a fully lettered, connected grid. Patterns keep
// every open run within the dictionary's word length range, so each
// attempt starts from fillable slots. Connectivity failures thin the
// pattern and retry, unfillable patterns are redrawn, and an exhausted
// fill budget falls back to a static grid. The returned grid always
// satisfies the no-blank and connectivity invariants.
func Generate(opts Options, dict *dictionary.Dictionary, rng *rand.Rand) Result {
	opts = opts.withDefaults()
	fraction := opts.BlockFraction
	budget := opts.SearchBudget

	for attempt := 0; attempt < opts.PatternAttempts; attempt++ {
		p := grid.GeneratePattern(rng, opts.Size, fraction, dict.MinLength(), dict.MaxLength())
		g := grid.New(opts.Size)
		g.Apply(p)
		if !grid.Connected(g) {
			// Density is the usual culprit; thin the pattern and retry.
			fraction *= 0.85
			continue
		}
		err := fill(g, dict, rng, opts.Theme, &budget)
		if err == nil && !g.HasBlanks() {
			return Result{Grid: g}
		}
		if errors.Is(err, ErrBudgetExhausted) {
			opts.logger().Debug("fill budget exhausted", "size", opts.Size, "attempt", attempt)
			break
		}
		// ErrNoFill: this pattern admits no solution, the next attempt
		// draws a fresh one.
	}
	opts.logger().Warn("probabilistic fill failed, substituting fallback grid", "size", opts.Size)
	return Result{Grid: FallbackGrid(rng), Fallback: true}
}
