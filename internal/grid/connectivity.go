package grid

// Connected reports whether every open cell is reachable from every
// other open cell through 4-directionally adjacent open cells. A grid
// with no open cells is considered disconnected.
func Connected(g *Grid) bool {
	var start *Coord
	for r := 0; r < g.Size && start == nil; r++ {
		for c := 0; c < g.Size; c++ {
			if !g.IsBlocked(r, c) {
				start = &Coord{Row: r, Col: c}
				break
			}
		}
	}
	if start == nil {
		return false
	}

	visited := make(map[Coord]bool, g.Size*g.Size)
	queue := []Coord{*start}
	visited[*start] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range [4]Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			next := Coord{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
			if visited[next] || !g.IsOpen(next.Row, next.Col) {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return len(visited) == g.OpenCount()
}
