package grid_test

import (
	"fmt"

	"github.com/katalvlaran/pathfind/grid"
	"github.com/katalvlaran/pathfind/search"
)

// ExampleGrid routes around a blocked center cell on a 3×3 board.
//
// Steps:
//  1. Build the grid; 0 marks the wall, 1 is the uniform step cost.
//  2. Run a guided search from the top-left to the bottom-right corner.
//  3. Print the total cost and every cell along the route.
func ExampleGrid() {
	g, err := grid.NewGrid([][]int{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	}, grid.DefaultGridOptions())
	if err != nil {
		fmt.Println("NewGrid failed:", err)
		return
	}

	dest := g.VertexAt(2, 2)
	s, err := search.New[int](g, g.NewStore(), g.VertexAt(0, 0),
		search.WithDestination(dest),
		search.WithHeuristic[int](g.HeuristicTo(dest)),
	)
	if err != nil {
		fmt.Println("New failed:", err)
		return
	}
	if err = s.Run(); err != nil {
		fmt.Println("Run failed:", err)
		return
	}

	path, err := s.Path()
	if err != nil {
		fmt.Println("Path failed:", err)
		return
	}
	fmt.Printf("total cost: %g\n", s.Weight(dest))
	for i, v := range path {
		x, y, _ := g.CellOf(v)
		fmt.Printf("step %d: (%d,%d)\n", i, x, y)
	}

	// Output:
	// total cost: 4
	// step 0: (0,0)
	// step 1: (1,0)
	// step 2: (2,0)
	// step 3: (2,1)
	// step 4: (2,2)
}

// ExampleGrid_diagonal shows Conn8 cutting straight across an open board.
func ExampleGrid_diagonal() {
	opts := grid.DefaultGridOptions()
	opts.Conn = grid.Conn8

	g, err := grid.NewGrid([][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}, opts)
	if err != nil {
		fmt.Println("NewGrid failed:", err)
		return
	}

	dest := g.VertexAt(2, 2)
	s, _ := search.New[int](g, g.NewStore(), g.VertexAt(0, 0),
		search.WithDestination(dest),
		search.WithHeuristic[int](g.HeuristicTo(dest)),
	)
	if err = s.Run(); err != nil {
		fmt.Println("Run failed:", err)
		return
	}

	path, _ := s.Path()
	fmt.Printf("cost=%g hops=%d\n", s.Weight(dest), len(path)-1)

	// Output:
	// cost=2 hops=2
}
