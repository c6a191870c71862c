// Package core_test provides runnable examples for the graph and store
// building blocks.
package core_test

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// ExampleDigraph builds a tiny digraph and iterates one vertex's
// successors; the order is always ascending, whatever the insert order.
func ExampleDigraph() {
	g := core.NewDigraph[string]()
	g.AddEdge("A", "C", 2.5)
	g.AddEdge("A", "B", 1)

	for v := range g.Successors("A") {
		fmt.Println(v, g.Weight("A", v))
	}
	// Output:
	// B 1
	// C 2.5
}

// ExampleMapStore shows the defaults a fresh store reports: infinite
// weight and the zero ("no vertex") predecessor.
func ExampleMapStore() {
	st := core.NewMapStore[int](nil)
	fmt.Println(st.Weight(7), st.Predecessor(7))

	st.SetWeight(7, 3)
	st.SetPredecessor(7, 4)
	fmt.Println(st.Weight(7), st.Predecessor(7))
	// Output:
	// +Inf 0
	// 3 4
}
