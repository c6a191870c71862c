package search

import (
	"cmp"
	"container/heap"
)

// fringeItem is one discovered-but-not-finalized vertex in the fringe.
type fringeItem[V cmp.Ordered] struct {
	v     V
	h     float64 // heuristic estimate, cached at discovery
	prio  float64 // h + tentative weight; the heap key
	index int     // current heap slot, maintained by Swap
}

// fringe is a min-heap of discovered vertices keyed by priority, with a
// membership map so relaxation can address an item in O(1) and re-sink
// it via heap.Fix instead of pushing duplicates.
//
// Ordering is total: equal priorities fall back to the smaller vertex,
// so identical runs pop vertices in identical order.
type fringe[V cmp.Ordered] struct {
	items []*fringeItem[V]
	at    map[V]*fringeItem[V]
}

// newFringe returns an empty fringe.
func newFringe[V cmp.Ordered]() *fringe[V] {
	f := &fringe[V]{at: make(map[V]*fringeItem[V])}
	heap.Init(f)
	return f
}

// Len implements heap.Interface.
func (f *fringe[V]) Len() int { return len(f.items) }

// Less implements heap.Interface: by priority, then by vertex.
func (f *fringe[V]) Less(i, j int) bool {
	a, b := f.items[i], f.items[j]
	if a.prio != b.prio {
		return a.prio < b.prio
	}
	return a.v < b.v
}

// Swap implements heap.Interface, keeping each item's index current.
func (f *fringe[V]) Swap(i, j int) {
	f.items[i], f.items[j] = f.items[j], f.items[i]
	f.items[i].index = i
	f.items[j].index = j
}

// Push implements heap.Interface. Use push instead.
func (f *fringe[V]) Push(x any) {
	it := x.(*fringeItem[V])
	it.index = len(f.items)
	f.items = append(f.items, it)
	f.at[it.v] = it
}

// Pop implements heap.Interface. Use pop instead.
func (f *fringe[V]) Pop() any {
	old := f.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil // release the slot for GC
	f.items = old[:n-1]
	delete(f.at, it.v)
	return it
}

// contains reports whether v is currently in the fringe.
func (f *fringe[V]) contains(v V) bool {
	_, ok := f.at[v]
	return ok
}

// push adds v with its cached heuristic estimate h and priority prio.
// The caller must ensure v is not already present.
func (f *fringe[V]) push(v V, h, prio float64) {
	heap.Push(f, &fringeItem[V]{v: v, h: h, prio: prio})
}

// pop removes and returns the item with the smallest priority, ties
// resolved toward the smaller vertex.
func (f *fringe[V]) pop() *fringeItem[V] {
	return heap.Pop(f).(*fringeItem[V])
}

// lower re-keys v to its cached estimate plus the new tentative weight
// and restores heap order in O(log n). A vertex not in the fringe is
// ignored.
func (f *fringe[V]) lower(v V, weight float64) {
	it, ok := f.at[v]
	if !ok {
		return
	}
	it.prio = it.h + weight
	heap.Fix(f, it.index)
}
