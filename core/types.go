package core

import (
	"cmp"
	"errors"
)

// Sentinel errors shared by the graph and store constructors.
//
// Wrap-aware: callers should test with errors.Is, since methods may
// decorate these with vertex or weight context via fmt.Errorf("%w: ...").
var (
	// ErrZeroVertex is returned when a vertex equal to the zero value of
	// its type is inserted. The zero value ("" for strings, 0 for ints)
	// is reserved as the "no vertex" sentinel used by predecessor chains.
	ErrZeroVertex = errors.New("core: zero vertex is reserved")

	// ErrNegativeWeight is returned by AddEdge for weights < 0.
	// Shortest-path relaxation over this package assumes non-negative
	// weights, so the graph refuses them at insertion time.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadVertexCount is returned by NewDenseStore when the requested
	// vertex count is negative.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")
)

// WeightFunc reports the weight of the directed edge (u,v), or math.Inf(1)
// when no such edge exists. Implementations must be pure lookups: no
// mutation, no dependence on search progress.
type WeightFunc[V cmp.Ordered] func(u, v V) float64
