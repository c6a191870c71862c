// Package search provides a precise, deterministic best-first
// shortest-path engine over abstract directed graphs with non-negative
// edge weights.
//
// Overview:
//
//   - A Search explores outward from a single source, always finalizing
//     the fringe vertex with the smallest priority h(v) + weight(v).
//   - With the default zero heuristic the order is plain Dijkstra: exact
//     shortest paths to every reachable vertex.
//   - With an admissible heuristic the order is A*: the same exact
//     answer at the destination, usually after far fewer expansions.
//   - Topology and state are both pluggable: the engine sees the graph
//     only through Graph.Successors and touches weights, predecessors,
//     and edge weights only through the Store interface.
//
// When to use:
//
//   - Whenever you need exact shortest paths on a static graph whose
//     representation you want to keep your own: adjacency maps, dense
//     slices, implicit grids, game maps, tile worlds.
//   - As the A* core under a domain adapter that contributes its own
//     heuristic (see the grid package for a ready-made one).
//
// Key features:
//
//   - WithDestination: stop the moment the target's weight is final,
//     leaving the rest of the graph untouched.
//   - WithHeuristic: supply an admissible remaining-cost estimate and
//     the search becomes A*; estimates are cached once per vertex.
//   - WithOnFinalize / WithOnRelax: observe the run (expansion counts,
//     tracing, animation) without changing its behavior.
//   - Deterministic order: priority ties resolve toward the smaller
//     vertex, so identical inputs give identical trees.
//   - Exact decrease-key fringe: each vertex holds one heap slot that is
//     re-keyed in place, never duplicated.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is pushed and popped at most once (V pushes, V pops).
//   - Each relaxation re-keys one existing entry via heap.Fix (≤ E fixes).
//   - Space: O(V) for fringe and finalized set; per-vertex results live
//     in the caller's Store and survive the Search.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource:
//     Returned by New when source is the zero value of the vertex type.
//   - ErrNilGraph / ErrNilStore:
//     Returned by New when either dependency is missing.
//   - ErrNegativeWeight:
//     Returned by Run the first time a relaxation meets a negative edge
//     weight; wrapped with the offending edge.
//   - ErrAlreadyRun / ErrNotRun:
//     Run is one-shot; queries that need results refuse to run early.
//   - ErrNoVertex / ErrNotDestination / ErrUnreachable / ErrNoDestination:
//     Returned by PathTo and Path for the zero vertex, a non-destination
//     query after a bounded run, an unreached vertex, and a missing
//     destination respectively.
//
// API reference:
//
//	func New[V cmp.Ordered](
//	    g Graph[V],
//	    store Store[V],
//	    source V,
//	    opts ...Option[V],
//	) (*Search[V], error)
//
//	  - g:      topology; Successors must be finite and restartable.
//	  - store:  fresh per-vertex state (weights math.Inf(1), predecessors zero).
//	  - source: start vertex; must not be the zero value.
//	  - opts:   WithDestination, WithHeuristic, WithOnFinalize, WithOnRelax.
//
//	(*Search).Run() error            - execute once; fills the Store.
//	(*Search).Weight(v) float64      - shortest-path weight, or math.Inf(1).
//	(*Search).Predecessor(v) V       - previous vertex on the path, or zero.
//	(*Search).EdgeWeight(u, v)       - pure edge lookup via the Store.
//	(*Search).PathTo(v) ([]V, error) - full path source → v, fresh slice.
//	(*Search).Path() ([]V, error)    - PathTo(destination).
//
// Thread safety:
//
//   - A Search is single-use and confined to one goroutine. To search
//     concurrently, share the graph read-only and give every Search its
//     own Store.
//
// See also:
//
//   - core: ready-made Digraph, MapStore, and DenseStore implementations.
//   - grid: 2-D grid adapter with admissible Manhattan and Chebyshev
//     heuristics for Conn4/Conn8 movement.
package search
