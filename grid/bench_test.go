package grid_test

import (
	"testing"

	"github.com/katalvlaran/pathfind/grid"
	"github.com/katalvlaran/pathfind/search"
)

// benchGrid builds an open side×side board with unit costs.
func benchGrid(b *testing.B, side int) *grid.Grid {
	b.Helper()
	values := make([][]int, side)
	for y := range values {
		row := make([]int, side)
		for x := range row {
			row[x] = 1
		}
		values[y] = row
	}
	g, err := grid.NewGrid(values, grid.DefaultGridOptions())
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkGridSearch crosses a 100×100 open board corner to corner,
// with and without the distance estimate. Runs are one-shot, so each
// iteration pays for a fresh store and engine as real callers would.
func BenchmarkGridSearch(b *testing.B) {
	const side = 100
	g := benchGrid(b, side)
	start := g.VertexAt(0, 0)
	dest := g.VertexAt(side-1, side-1)

	cells := side * side
	edges := 4 * side * (side - 1) // directed Conn4 edges

	run := func(b *testing.B, opts ...search.Option[int]) {
		b.ReportAllocs()
		b.SetBytes(int64(cells + edges))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			s, err := search.New[int](g, g.NewStore(), start, opts...)
			if err != nil {
				b.Fatal(err)
			}
			if err = s.Run(); err != nil {
				b.Fatal(err)
			}
		}
	}

	b.Run("Dijkstra", func(b *testing.B) {
		run(b, search.WithDestination(dest))
	})
	b.Run("AStar", func(b *testing.B) {
		run(b, search.WithDestination(dest), search.WithHeuristic[int](g.HeuristicTo(dest)))
	})
}
