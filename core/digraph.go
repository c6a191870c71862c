package core

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"math"
	"slices"
)

// Digraph is a directed graph with non-negative float64 edge weights over
// vertices of any ordered type V. The zero value of V is reserved as the
// "no vertex" sentinel and may not be inserted.
//
// Digraph is not safe for concurrent mutation; build it fully, then share
// it read-only across any number of searches.
type Digraph[V cmp.Ordered] struct {
	adj  map[V]map[V]float64 // vertex → successor → weight
	size int                 // number of directed edges
}

// NewDigraph returns an empty directed graph.
func NewDigraph[V cmp.Ordered]() *Digraph[V] {
	return &Digraph[V]{adj: make(map[V]map[V]float64)}
}

// AddVertex inserts v as an isolated vertex. Re-adding an existing vertex
// is a no-op. Returns ErrZeroVertex when v is the zero value of V.
//
// Complexity: O(1).
func (g *Digraph[V]) AddVertex(v V) error {
	var zero V
	if v == zero {
		return ErrZeroVertex
	}
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = make(map[V]float64)
	}
	return nil
}

// AddEdge inserts the directed edge (u,v) with weight w, creating either
// endpoint as needed. Re-adding an existing edge overwrites its weight.
// Self-loops are permitted; a shortest-path search never follows one.
//
// Errors:
//   - ErrZeroVertex      - u or v is the zero value of V.
//   - ErrNegativeWeight  - w < 0.
//
// Complexity: O(1).
func (g *Digraph[V]) AddEdge(u, v V, w float64) error {
	// 1) Validate endpoints and weight before touching any state.
	var zero V
	if u == zero || v == zero {
		return ErrZeroVertex
	}
	if w < 0 {
		return fmt.Errorf("%w: (%v,%v) weight %v", ErrNegativeWeight, u, v, w)
	}

	// 2) Ensure both endpoints exist.
	if _, ok := g.adj[u]; !ok {
		g.adj[u] = make(map[V]float64)
	}
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = make(map[V]float64)
	}

	// 3) Record the edge; count it once.
	if _, ok := g.adj[u][v]; !ok {
		g.size++
	}
	g.adj[u][v] = w
	return nil
}

// HasVertex reports whether v is present.
func (g *Digraph[V]) HasVertex(v V) bool {
	_, ok := g.adj[v]
	return ok
}

// HasEdge reports whether the directed edge (u,v) is present.
func (g *Digraph[V]) HasEdge(u, v V) bool {
	_, ok := g.adj[u][v]
	return ok
}

// Weight returns the weight of edge (u,v), or math.Inf(1) when the edge
// is absent. It is the Digraph's WeightFunc.
//
// Complexity: O(1).
func (g *Digraph[V]) Weight(u, v V) float64 {
	if w, ok := g.adj[u][v]; ok {
		return w
	}
	return math.Inf(1)
}

// Successors returns the out-neighbors of v in ascending vertex order.
// The sequence is finite, restartable, and safe to range over multiple
// times; an unknown vertex yields an empty sequence.
//
// Complexity: O(deg·log deg) per full iteration.
func (g *Digraph[V]) Successors(v V) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, u := range slices.Sorted(maps.Keys(g.adj[v])) {
			if !yield(u) {
				return
			}
		}
	}
}

// Vertices returns all vertices in ascending order.
//
// Complexity: O(n·log n).
func (g *Digraph[V]) Vertices() []V {
	return slices.Sorted(maps.Keys(g.adj))
}

// Order returns the number of vertices.
func (g *Digraph[V]) Order() int { return len(g.adj) }

// Size returns the number of directed edges.
func (g *Digraph[V]) Size() int { return g.size }
