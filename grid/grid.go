// Package grid adapts a 2-D grid of integer cell costs to the pieces a
// best-first search consumes: integer vertex identifiers, a successor
// sequence, an entering-cost weight function, a dense state store, and
// admissible distance heuristics.
//
// Cells with value < MinCost are walls; every other cell costs its value
// to step onto. Movement is 4- or 8-directional (Conn4 or Conn8).
package grid

import (
	"iter"
	"math"

	"github.com/katalvlaran/pathfind/core"
)

// Grid treats a 2-D integer cost grid as a directed graph over vertices
// 1..Width×Height. It is immutable once built; construct it with NewGrid
// so the neighbor offsets and cheapest-cell scan are in place.
//
// Vertex numbering is row-major and one-based: cell (x,y) is vertex
// 1 + y×Width + x, keeping 0 free as the "no vertex" sentinel.
type Grid struct {
	Width, Height int
	Cells         [][]int
	Conn          Connectivity
	MinCost       int
	offsets       [][2]int // neighbor offsets, ordered by ascending vertex id
	cheapest      float64  // smallest passable cell cost; heuristic scale
}

// NewGrid constructs a Grid from a non-empty, rectangular 2-D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(values [][]int, opts GridOptions) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity, ordered so the
	// resulting successor ids ascend (north-west before south-east).
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
	} else {
		offsets = [][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
	}
	g := &Grid{
		Width:   w,
		Height:  h,
		Cells:   cells,
		Conn:    opts.Conn,
		MinCost: opts.MinCost,
		offsets: offsets,
	}
	// Record the cheapest passable cell; it scales the heuristics.
	g.cheapest = math.Inf(1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c := float64(cells[y][x]); c >= float64(opts.MinCost) && c < g.cheapest {
				g.cheapest = c
			}
		}
	}
	if math.IsInf(g.cheapest, 1) {
		g.cheapest = 0 // all walls: heuristics degrade to zero
	}

	return g, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Passable reports whether (x,y) is in bounds and not a wall.
// Complexity: O(1).
func (g *Grid) Passable(x, y int) bool {
	return g.InBounds(x, y) && g.Cells[y][x] >= g.MinCost
}

// VertexAt maps cell (x,y) to its vertex id 1 + y×Width + x, or 0 when
// (x,y) is out of bounds. The zero return is the "no vertex" sentinel.
// Complexity: O(1).
func (g *Grid) VertexAt(x, y int) int {
	if !g.InBounds(x, y) {
		return 0
	}

	return 1 + y*g.Width + x
}

// CellOf converts a vertex id back to its cell (x,y). The ok result is
// false for ids outside 1..Width×Height.
// Complexity: O(1).
func (g *Grid) CellOf(v int) (x, y int, ok bool) {
	if v < 1 || v > g.Width*g.Height {
		return 0, 0, false
	}
	idx := v - 1

	return idx % g.Width, idx / g.Width, true
}

// Successors enumerates the passable neighbors of v in ascending vertex
// order. A vertex that is out of range or a wall yields an empty
// sequence, so walls have no outgoing edges at all.
// Complexity: O(1) per neighbor; at most 4 or 8 per vertex.
func (g *Grid) Successors(v int) iter.Seq[int] {
	return func(yield func(int) bool) {
		x, y, ok := g.CellOf(v)
		if !ok || !g.Passable(x, y) {
			return
		}
		for _, d := range g.offsets {
			nx, ny := x+d[0], y+d[1]
			if !g.Passable(nx, ny) {
				continue
			}
			if !yield(g.VertexAt(nx, ny)) {
				return
			}
		}
	}
}

// Weight reports the cost of stepping from u onto v: the value of v's
// cell when u and v are distinct passable neighbors under the grid's
// connectivity, math.Inf(1) otherwise. It is the Grid's WeightFunc.
// Complexity: O(1).
func (g *Grid) Weight(u, v int) float64 {
	ux, uy, ok := g.CellOf(u)
	if !ok || !g.Passable(ux, uy) {
		return math.Inf(1)
	}
	vx, vy, ok := g.CellOf(v)
	if !ok || !g.Passable(vx, vy) {
		return math.Inf(1)
	}
	dx, dy := abs(vx-ux), abs(vy-uy)
	switch {
	case dx == 0 && dy == 0:
		return math.Inf(1) // no self edges
	case g.Conn == Conn8 && dx <= 1 && dy <= 1:
	case g.Conn != Conn8 && dx+dy == 1:
	default:
		return math.Inf(1)
	}

	return float64(g.Cells[vy][vx])
}

// NewStore returns a fresh dense state store sized for this grid, with
// the Grid's own Weight as its edge-weight lookup. Each search run needs
// its own store (or a Reset between runs).
// Complexity: O(W×H).
func (g *Grid) NewStore() *core.DenseStore {
	s, err := core.NewDenseStore(g.Width*g.Height, g.Weight)
	if err != nil {
		// Width and Height are validated at construction, so the count
		// cannot be negative here.
		panic(err)
	}

	return s
}

// abs returns the absolute value of a.
func abs(a int) int {
	if a < 0 {
		return -a
	}

	return a
}
