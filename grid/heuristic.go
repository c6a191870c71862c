package grid

// HeuristicTo returns an admissible remaining-cost estimate from any
// vertex toward dest, ready to plug into a best-first search:
//
//   - Conn4 uses Manhattan distance: every orthogonal step changes it by
//     exactly one.
//   - Conn8 uses Chebyshev distance: no step, diagonal included, changes
//     it by more than one.
//
// Either metric is scaled by the cheapest passable cell cost, so the
// estimate never exceeds the true remaining cost and the search stays
// exact. For a dest outside the grid the estimate is constant zero,
// which degrades the search to plain Dijkstra.
// Complexity: O(1) per call.
func (g *Grid) HeuristicTo(dest int) func(v int) float64 {
	destX, destY, ok := g.CellOf(dest)
	if !ok {
		return func(int) float64 { return 0 }
	}
	scale := g.cheapest

	if g.Conn == Conn8 {
		return func(v int) float64 {
			x, y, ok := g.CellOf(v)
			if !ok {
				return 0
			}

			return float64(max(abs(x-destX), abs(y-destY))) * scale
		}
	}

	return func(v int) float64 {
		x, y, ok := g.CellOf(v)
		if !ok {
			return 0
		}

		return float64(abs(x-destX)+abs(y-destY)) * scale
	}
}
