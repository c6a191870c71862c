// Package search defines the pluggable contracts, configuration options,
// and sentinel errors for the best-first shortest-path engine.
//
// A Search walks a Graph from a single source vertex, keeping all
// per-vertex state in a Store and ordering exploration by a Heuristic.
// With the default zero heuristic the walk is Dijkstra's algorithm; with
// an admissible estimate of the remaining cost it is A*.
//
// Contracts:
//
//	– Graph      supplies topology only: the directed successors of a vertex.
//	– Store      owns tentative weights, predecessors and edge weights.
//	– Heuristic  estimates the remaining cost from a vertex to the target.
//
// Errors (sentinel):
//
//	– ErrNoSource        if the source is the zero vertex.
//	– ErrNilGraph        if the graph is nil.
//	– ErrNilStore        if the store is nil.
//	– ErrNegativeWeight  if a negative edge weight is met during relaxation.
//	– ErrAlreadyRun      if Run is called a second time.
//	– ErrNotRun          if a path is queried before Run.
//	– ErrNoVertex        if a path to the zero vertex is queried.
//	– ErrNotDestination  if a path to a non-destination vertex is queried
//	                     after a destination-bounded run.
//	– ErrNoDestination   if Path is called without a destination set.
//	– ErrUnreachable     if the queried vertex was never reached.
package search

import (
	"cmp"
	"errors"
	"iter"
)

// Sentinel errors returned by the search engine.
var (
	// ErrNoSource indicates that the source is the zero value of the vertex
	// type, which is reserved as the "no vertex" sentinel.
	ErrNoSource = errors.New("search: source is the zero vertex")

	// ErrNilGraph indicates that a nil Graph was passed to New.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrNilStore indicates that a nil Store was passed to New.
	ErrNilStore = errors.New("search: store is nil")

	// ErrNegativeWeight indicates that a negative edge weight was met while
	// relaxing; the run aborts, since best-first order is only correct for
	// non-negative weights.
	ErrNegativeWeight = errors.New("search: negative edge weight encountered")

	// ErrAlreadyRun indicates a second call to Run on the same Search.
	ErrAlreadyRun = errors.New("search: Run may be called only once")

	// ErrNotRun indicates that a path was queried before Run.
	ErrNotRun = errors.New("search: Run has not been called")

	// ErrNoVertex indicates that a path to the zero vertex was queried;
	// no path exists to the "no vertex" sentinel.
	ErrNoVertex = errors.New("search: no path exists to the zero vertex")

	// ErrNotDestination indicates that, after a destination-bounded run,
	// a path to some other vertex was queried. The run stopped early, so
	// only the destination's path is guaranteed shortest.
	ErrNotDestination = errors.New("search: path queried for a vertex other than the destination")

	// ErrNoDestination indicates that Path was called on a Search that was
	// built without WithDestination.
	ErrNoDestination = errors.New("search: no destination was set")

	// ErrUnreachable indicates that the queried vertex was never reached
	// from the source.
	ErrUnreachable = errors.New("search: vertex is unreachable from the source")
)

// Graph supplies the topology a search explores. Implementations must
// yield each successor at most once, never yield the zero vertex, and
// return a finite, restartable sequence: the engine may range over the
// same vertex's successors in independent runs.
type Graph[V cmp.Ordered] interface {
	// Successors enumerates the direct successors of v. A vertex with no
	// successors (or one absent from the graph) yields an empty sequence.
	Successors(v V) iter.Seq[V]
}

// Store owns every piece of per-vertex search state: tentative weights,
// predecessor links, and edge weights. The engine reads and writes
// exclusively through this interface, so callers choose the layout
// (maps, dense slices, anything else) and keep the results afterwards.
//
// Before a run, Weight must report math.Inf(1) and Predecessor the zero
// vertex for every vertex. EdgeWeight must be a pure lookup returning
// math.Inf(1) for absent edges; it must not depend on search progress.
type Store[V cmp.Ordered] interface {
	// Weight returns the recorded weight of the path from the source to v,
	// or math.Inf(1) when v has not been reached.
	Weight(v V) float64

	// SetWeight records the weight of the path from the source to v.
	SetWeight(v V, w float64)

	// Predecessor returns the vertex preceding v on the recorded path, or
	// the zero vertex when v is the source or has not been reached.
	Predecessor(v V) V

	// SetPredecessor records u as the vertex preceding v.
	SetPredecessor(v, u V)

	// EdgeWeight returns the weight of the directed edge (u,v), or
	// math.Inf(1) when no such edge exists.
	EdgeWeight(u, v V) float64
}

// Heuristic estimates the cost remaining from v to the search target.
// It must never be negative. For A* to return true shortest paths the
// estimate must be admissible: h(v) ≤ the true remaining cost for every
// v. The zero heuristic is always admissible and degrades the search to
// Dijkstra's algorithm.
type Heuristic[V cmp.Ordered] func(v V) float64

// Options configures a Search.
//
// Dest       – optional destination; the run stops once it is finalized.
//
//	The zero vertex (default) means "none": explore everything.
//
// Heuristic  – remaining-cost estimate; defaults to the zero heuristic.
// OnFinalize – hook invoked when a vertex's weight becomes final.
// OnRelax    – hook invoked when a shorter path to a vertex is recorded.
type Options[V cmp.Ordered] struct {
	Dest       V
	Heuristic  Heuristic[V]
	OnFinalize func(v V, weight float64)
	OnRelax    func(u, v V, weight float64)
}

// Option represents a functional option for configuring a Search.
type Option[V cmp.Ordered] func(*Options[V])

// WithDestination sets a destination vertex. The run finalizes it and
// stops without exploring the rest of the graph, and path queries are
// then restricted to this vertex. Passing the zero vertex clears the
// destination (the default: explore the whole reachable graph).
func WithDestination[V cmp.Ordered](dest V) Option[V] {
	return func(o *Options[V]) {
		o.Dest = dest
	}
}

// WithHeuristic sets the remaining-cost estimate, turning the search
// into A*. A nil h restores the default zero heuristic.
func WithHeuristic[V cmp.Ordered](h Heuristic[V]) Option[V] {
	return func(o *Options[V]) {
		if h == nil {
			h = zeroHeuristic[V]
		}
		o.Heuristic = h
	}
}

// WithOnFinalize registers fn to be called each time a vertex is
// finalized, in finalization order, with the vertex and its final
// weight. A nil fn disables the hook.
func WithOnFinalize[V cmp.Ordered](fn func(v V, weight float64)) Option[V] {
	return func(o *Options[V]) {
		o.OnFinalize = fn
	}
}

// WithOnRelax registers fn to be called each time a shorter path to a
// vertex is recorded, with the predecessor, the vertex, and the new
// tentative weight. A nil fn disables the hook.
func WithOnRelax[V cmp.Ordered](fn func(u, v V, weight float64)) Option[V] {
	return func(o *Options[V]) {
		o.OnRelax = fn
	}
}

// DefaultOptions returns the Options a Search starts from before any
// functional overrides: no destination, zero heuristic, no hooks.
func DefaultOptions[V cmp.Ordered]() Options[V] {
	return Options[V]{Heuristic: zeroHeuristic[V]}
}

// zeroHeuristic estimates every remaining cost as 0, reducing the search
// to Dijkstra's algorithm.
func zeroHeuristic[V cmp.Ordered](V) float64 { return 0 }
