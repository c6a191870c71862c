// Package core provides the concrete building blocks a shortest-path
// search runs on: a weighted directed graph and two interchangeable
// state stores.
//
// What you get:
//
//   - Digraph[V]    – adjacency-map digraph over any ordered vertex type,
//     non-negative weights, deterministic ascending Successors iteration.
//   - MapStore[V]   – map-backed search state; fits any vertex type and
//     never needs pre-sizing.
//   - DenseStore    – slice-backed search state for integer vertices 1..n;
//     O(1) access with no hashing, ideal for grid- or matrix-shaped graphs.
//   - WeightFunc[V] – pure edge-weight lookup injected into stores, so a
//     store answers EdgeWeight without holding the graph itself.
//
// Sentinel convention:
//
//   - The zero value of the vertex type (0 for ints, "" for strings) never
//     names a real vertex; AddVertex and AddEdge reject it.
//   - A zero predecessor marks the root of a shortest-path tree, and a
//     weight of math.Inf(1) marks "not reached".
//
// Determinism:
//
//   - Successors and Vertices always iterate in ascending vertex order, so
//     two identical searches over the same Digraph expand vertices in the
//     same order and build the same tree.
//
// Thread safety:
//
//   - None of these types is safe for concurrent mutation. Build the graph
//     fully, then share it read-only; give each concurrent search its own
//     store.
package core
