// Package pathfind is your in-memory toolkit for exact shortest-path
// search over graphs you model yourself – from adjacency maps to tile
// grids – with Dijkstra and A* behind one deterministic engine.
//
// 🚀 What is pathfind?
//
//	A small, focused library that brings together:
//		• search/ – best-first engine: Dijkstra by default, A* with a heuristic,
//		  destination early-exit, relaxation/finalization hooks
//		• core/   – ready-made Digraph plus map- and slice-backed state stores
//		• grid/   – 2-D cost grids: walls, terrain, Conn4/Conn8 movement,
//		  admissible Manhattan/Chebyshev heuristics
//
// ✨ Why choose pathfind?
//
//   - Pluggable – the engine sees your graph only through two tiny
//     interfaces; bring your own topology and state layout
//   - Deterministic – priority ties break toward the smaller vertex, so
//     identical inputs always yield identical trees
//   - Exact – admissible heuristics never trade correctness for speed
//   - Observable – OnFinalize/OnRelax hooks expose the run as it happens
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    3───4
//
//	a four-cell world; the engine finds 1→2→4 or 1→3→4 depending on
//	weights, and always the same one when they tie.
//
//	go get github.com/katalvlaran/pathfind
package pathfind
