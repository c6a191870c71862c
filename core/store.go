package core

import (
	"cmp"
	"math"
)

// MapStore keeps per-vertex search state in maps, so it fits any ordered
// vertex type and any graph size without pre-sizing. Absent entries read
// as the defaults a search expects: weight math.Inf(1), predecessor zero.
type MapStore[V cmp.Ordered] struct {
	weight map[V]float64
	pred   map[V]V
	edge   WeightFunc[V]
}

// NewMapStore returns an empty MapStore whose EdgeWeight delegates to
// edge. A nil edge function reports every edge as absent (math.Inf(1)).
func NewMapStore[V cmp.Ordered](edge WeightFunc[V]) *MapStore[V] {
	return &MapStore[V]{
		weight: make(map[V]float64),
		pred:   make(map[V]V),
		edge:   edge,
	}
}

// Weight returns the recorded weight of v, or math.Inf(1) when none has
// been set.
func (s *MapStore[V]) Weight(v V) float64 {
	if w, ok := s.weight[v]; ok {
		return w
	}
	return math.Inf(1)
}

// SetWeight records the weight of v.
func (s *MapStore[V]) SetWeight(v V, w float64) { s.weight[v] = w }

// Predecessor returns the recorded predecessor of v, or the zero value of
// V when none has been set.
func (s *MapStore[V]) Predecessor(v V) V { return s.pred[v] }

// SetPredecessor records u as the predecessor of v.
func (s *MapStore[V]) SetPredecessor(v, u V) { s.pred[v] = u }

// EdgeWeight reports the weight of edge (u,v) via the injected WeightFunc.
func (s *MapStore[V]) EdgeWeight(u, v V) float64 {
	if s.edge == nil {
		return math.Inf(1)
	}
	return s.edge(u, v)
}

// Reset forgets all recorded weights and predecessors, keeping the edge
// function, so the store can serve a fresh search.
func (s *MapStore[V]) Reset() {
	clear(s.weight)
	clear(s.pred)
}

// DenseStore keeps per-vertex search state in flat slices for integer
// vertices 1..n. It trades MapStore's flexibility for O(1) access with
// no hashing, which pays off on grid- and matrix-shaped graphs.
//
// Reads outside 1..n return the defaults (math.Inf(1), predecessor 0);
// writes outside 1..n panic, as they would on any slice.
type DenseStore struct {
	weight []float64
	pred   []int
	edge   WeightFunc[int]
}

// NewDenseStore returns a DenseStore for vertices 1..n whose EdgeWeight
// delegates to edge. A nil edge function reports every edge as absent.
// Returns ErrBadVertexCount when n < 0.
func NewDenseStore(n int, edge WeightFunc[int]) (*DenseStore, error) {
	if n < 0 {
		return nil, ErrBadVertexCount
	}
	s := &DenseStore{
		weight: make([]float64, n+1), // slot 0 is the sentinel, never read
		pred:   make([]int, n+1),
		edge:   edge,
	}
	for i := range s.weight {
		s.weight[i] = math.Inf(1)
	}
	return s, nil
}

// Weight returns the recorded weight of v, or math.Inf(1) when v is
// outside 1..n.
func (s *DenseStore) Weight(v int) float64 {
	if v < 1 || v >= len(s.weight) {
		return math.Inf(1)
	}
	return s.weight[v]
}

// SetWeight records the weight of v. Panics when v is outside 1..n.
func (s *DenseStore) SetWeight(v int, w float64) {
	if v < 1 || v >= len(s.weight) {
		panic("core: DenseStore vertex out of range")
	}
	s.weight[v] = w
}

// Predecessor returns the recorded predecessor of v, or 0 when v is
// outside 1..n.
func (s *DenseStore) Predecessor(v int) int {
	if v < 1 || v >= len(s.pred) {
		return 0
	}
	return s.pred[v]
}

// SetPredecessor records u as the predecessor of v. Panics when v is
// outside 1..n.
func (s *DenseStore) SetPredecessor(v, u int) {
	if v < 1 || v >= len(s.pred) {
		panic("core: DenseStore vertex out of range")
	}
	s.pred[v] = u
}

// EdgeWeight reports the weight of edge (u,v) via the injected WeightFunc.
func (s *DenseStore) EdgeWeight(u, v int) float64 {
	if s.edge == nil {
		return math.Inf(1)
	}
	return s.edge(u, v)
}

// Reset restores every weight to math.Inf(1) and every predecessor to 0,
// keeping the edge function, so the store can serve a fresh search.
func (s *DenseStore) Reset() {
	for i := range s.weight {
		s.weight[i] = math.Inf(1)
	}
	for i := range s.pred {
		s.pred[i] = 0
	}
}
