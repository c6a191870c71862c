// Package grid treats a 2D grid of integer cell costs as a searchable
// graph, enabling shortest routes across maps with walls and terrain.
//
// What:
//
//   - Grid wraps a rectangular [][]int grid with a tunable MinCost wall
//     threshold; cells below it are impassable, the rest cost their
//     value to enter.
//   - Numbers cells row-major as vertices 1..W×H, leaving 0 free as the
//     "no vertex" sentinel, with VertexAt/CellOf converting both ways.
//   - Yields Successors and an entering-cost Weight lookup, the two
//     pieces a best-first search needs.
//   - NewStore sizes a dense state store for exactly this grid.
//   - HeuristicTo builds admissible Manhattan (Conn4) or Chebyshev
//     (Conn8) estimates, scaled by the cheapest passable cell.
//
// Why:
//
//   - Game maps: unit movement across terrain with per-tile costs.
//   - Robotics and puzzles: maze solving on occupancy grids.
//   - Tile worlds: A* routing that provably returns exact answers.
//
// Complexity:
//
//   - NewGrid:      O(W×H) time and memory (deep copy + cheapest scan).
//   - Successors:   O(d) per vertex (d = 4 or 8).
//   - Weight:       O(1).
//   - HeuristicTo:  O(1) per estimate.
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.MinCost: minimum value considered passable.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package grid
