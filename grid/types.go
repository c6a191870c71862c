// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/pathfind.
package grid

import (
	"errors"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid traversal.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// MinCost specifies the minimum cell value considered passable.
	// Cells with a value below it are walls; every other cell costs its
	// value to enter.
	MinCost int
}

// DefaultGridOptions returns a GridOptions with default settings:
// Conn=Conn4, MinCost=1 (values ≥1 are passable, their value is the cost).
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn:    Conn4,
		MinCost: 1,
	}
}
