// Package search implements best-first shortest-path search over an
// abstract directed graph with non-negative edge weights.
//
// A Search finalizes vertices in order of heuristic priority
// (estimate + tentative weight), relaxing outgoing edges as it goes.
// With the default zero heuristic it behaves exactly like Dijkstra's
// algorithm; with an admissible estimate it behaves like A* and
// typically finalizes far fewer vertices before reaching a destination.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex enters the fringe at most once (exact decrease-key,
//     no duplicate entries).
//   - Each edge relaxation costs at most one heap Fix of O(log V).
//   - Space: O(V) for the fringe and the finalized set; all weights and
//     predecessors live in the caller's Store.
//
// Notes on implementation choices:
//
//   - Negative weights are detected lazily while relaxing: the run aborts
//     with ErrNegativeWeight the first time one is pulled from the Store.
//   - Ties in priority resolve toward the smaller vertex, so runs over
//     the same inputs are fully reproducible.
//   - A destination stops the run the moment it is finalized; its
//     outgoing edges are never expanded.
package search

import (
	"cmp"
	"fmt"
	"math"
)

// Search walks a Graph from a single source, keeping all per-vertex
// state in a Store. Build one with New, call Run exactly once, then
// query weights, predecessors, and paths.
//
// A Search is single-use and not safe for concurrent use; run one
// search per goroutine, each with its own Store.
type Search[V cmp.Ordered] struct {
	graph      Graph[V]                  // topology; read-only during the run
	store      Store[V]                  // weights, predecessors, edge weights
	source     V                         // start vertex; never the zero value
	dest       V                         // optional stop vertex; zero means none
	heuristic  Heuristic[V]              // remaining-cost estimate; never nil
	onFinalize func(v V, weight float64) // optional finalization hook
	onRelax    func(u, v V, w float64)   // optional relaxation hook
	marked     map[V]bool                // vertices whose weight is final
	fringe     *fringe[V]                // discovered, not yet finalized
	ran        bool                      // Run already called
}

// New assembles a Search over g and store, rooted at source.
//
// Preconditions and validation (in order):
//  1. source must not be the zero vertex (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. store must be non-nil (ErrNilStore).
//
// The store must be fresh: every weight math.Inf(1), every predecessor
// zero. Reusing a store from a previous run without resetting it yields
// garbage paths.
func New[V cmp.Ordered](g Graph[V], store Store[V], source V, opts ...Option[V]) (*Search[V], error) {
	// 1) Build configuration from defaults, then apply functional options.
	cfg := DefaultOptions[V]()
	var opt Option[V]
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the source names a real vertex, not the zero sentinel.
	var zero V
	if source == zero {
		return nil, ErrNoSource
	}

	// 3) Validate the graph.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 4) Validate the store.
	if store == nil {
		return nil, ErrNilStore
	}

	// 5) Normalize a nil estimate to the zero heuristic, so the run never
	//    has to branch on it.
	if cfg.Heuristic == nil {
		cfg.Heuristic = zeroHeuristic[V]
	}

	// 6) Assemble the engine; the fringe stays empty until Run seeds it.
	return &Search[V]{
		graph:      g,
		store:      store,
		source:     source,
		dest:       cfg.Dest,
		heuristic:  cfg.Heuristic,
		onFinalize: cfg.OnFinalize,
		onRelax:    cfg.OnRelax,
		marked:     make(map[V]bool),
		fringe:     newFringe[V](),
	}, nil
}

// Run executes the search to completion and records every result in the
// Store. It may be called exactly once per Search; later calls return
// ErrAlreadyRun without touching any state.
//
// The run ends when the fringe drains, or as soon as the destination
// (if any) is finalized. On ErrNegativeWeight the Store keeps whatever
// was relaxed before the offending edge was met.
//
// Complexity: O((V + E) log V) time, O(V) extra space.
func (s *Search[V]) Run() error {
	// 1) Enforce the single-run contract.
	if s.ran {
		return ErrAlreadyRun
	}
	s.ran = true

	// 2) Seed: the source reaches itself at weight 0 with no predecessor.
	var zero V
	s.store.SetWeight(s.source, 0)
	s.store.SetPredecessor(s.source, zero)
	h := s.heuristic(s.source)
	s.fringe.push(s.source, h, h) // priority = h + weight 0

	// 3) Main loop: finalize the best fringe vertex, then expand it.
	var best V
	for s.fringe.Len() > 0 {
		best = s.fringe.pop().v
		s.marked[best] = true
		if s.onFinalize != nil {
			s.onFinalize(best, s.store.Weight(best))
		}

		// Destination finalized: its weight is exact, skip the rest of
		// the graph. Its outgoing edges are never expanded.
		if best == s.dest && s.dest != zero {
			return nil
		}

		if err := s.expand(best); err != nil {
			return err
		}
	}

	return nil
}

// expand relaxes every edge leaving u. Newly discovered successors enter
// the fringe first, keyed by their current (possibly infinite) tentative
// weight, so a later relaxation only ever lowers their priority.
//
// Assumes u's weight is final before the call.
func (s *Search[V]) expand(u V) error {
	du := s.store.Weight(u)
	var w, cand float64
	for v := range s.graph.Successors(u) {
		// 1) Finalized vertices cannot improve; skip them.
		if s.marked[v] {
			continue
		}

		// 2) First sighting: admit v to the fringe with its estimate
		//    cached, so the heuristic runs once per vertex.
		if !s.fringe.contains(v) {
			h := s.heuristic(v)
			s.fringe.push(v, h, h+s.store.Weight(v))
		}

		// 3) Pull the edge weight; a negative one breaks best-first order,
		//    so the whole run aborts.
		w = s.store.EdgeWeight(u, v)
		if w < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, u, v, w)
		}

		// 4) Relax only on a strict improvement, so equal-cost rediscovery
		//    never rewrites an existing predecessor.
		cand = du + w
		if cand >= s.store.Weight(v) {
			continue
		}
		s.store.SetWeight(v, cand)
		s.store.SetPredecessor(v, u)
		s.fringe.lower(v, cand)
		if s.onRelax != nil {
			s.onRelax(u, v, cand)
		}
	}

	return nil
}

// Source returns the source vertex the Search was built with.
func (s *Search[V]) Source() V { return s.source }

// Dest returns the destination vertex, or the zero vertex when the
// Search was built without one.
func (s *Search[V]) Dest() V { return s.dest }

// Weight returns the weight of the shortest path from the source to v as
// recorded in the Store, or math.Inf(1) when v was not reached. Final
// once Run returns (for a destination-bounded run: final for the
// destination and every vertex finalized before it). Before Run it simply
// reflects the Store's defaults.
func (s *Search[V]) Weight(v V) float64 { return s.store.Weight(v) }

// Predecessor returns the vertex preceding v on the recorded shortest
// path, or the zero vertex when v is the source or was not reached.
// Before Run it simply reflects the Store's defaults.
func (s *Search[V]) Predecessor(v V) V { return s.store.Predecessor(v) }

// EdgeWeight returns the weight of the directed edge (u,v) as reported
// by the Store, or math.Inf(1) when no such edge exists. It is a pure
// lookup, meaningful before, during, and after the run.
func (s *Search[V]) EdgeWeight(u, v V) float64 { return s.store.EdgeWeight(u, v) }

// PathTo reconstructs the shortest path from the source to v by walking
// predecessor links backward. Each call returns a fresh slice; the
// trivial path from the source to itself is [source].
//
// Errors (in order of precedence):
//   - ErrNoVertex        - v is the zero vertex.
//   - ErrNotRun          - Run has not been called.
//   - ErrNotDestination  - a destination was set and v is not it.
//   - ErrUnreachable     - v was never reached from the source.
//
// Complexity: O(len(path)).
func (s *Search[V]) PathTo(v V) ([]V, error) {
	// 1) The zero vertex names nothing; no path can exist to it.
	var zero V
	if v == zero {
		return nil, ErrNoVertex
	}

	// 2) Paths exist only after the run.
	if !s.ran {
		return nil, ErrNotRun
	}

	// 3) A destination-bounded run guarantees shortness only for the
	//    destination; refuse every other vertex.
	if s.dest != zero && v != s.dest {
		return nil, fmt.Errorf("%w: got %v, destination is %v", ErrNotDestination, v, s.dest)
	}

	// 4) Never reached means no path.
	if math.IsInf(s.store.Weight(v), 1) {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, v)
	}

	// 5) Build the reversed path by following predecessors to the source,
	//    whose own predecessor is the zero sentinel.
	path := []V{}
	for cur := v; ; {
		path = append(path, cur)
		prev := s.store.Predecessor(cur)
		if prev == zero {
			break
		}
		cur = prev
	}
	// reverse to get source → v
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Path returns PathTo(destination). It is the natural query after a
// destination-bounded run; without a destination it returns
// ErrNoDestination.
func (s *Search[V]) Path() ([]V, error) {
	var zero V
	if s.dest == zero {
		return nil, ErrNoDestination
	}

	return s.PathTo(s.dest)
}
