// Package filtration defines the FilteredGraph type, its edge-filtration
// mode state machine, and the sentinel and typed errors shared by every
// construction path.
package filtration

import (
	"errors"
	"fmt"
)

// Sentinel errors for filtered-graph construction and access.
var (
	// ErrVertexIndex indicates an edge endpoint outside the vertex index space.
	ErrVertexIndex = errors.New("filtration: edge endpoint is not a valid vertex index")

	// ErrEdgeIndex indicates an edge accessor received an out-of-range position.
	ErrEdgeIndex = errors.New("filtration: edge index out of range")

	// ErrEdgeArity indicates an edge tuple whose component count contradicts
	// the filtration mode decided from the first edge.
	ErrEdgeArity = errors.New("filtration: edge tuple arity contradicts decided filtration mode")

	// ErrNonSquare indicates FromDense received a matrix with unequal
	// row and column counts, or ragged rows.
	ErrNonSquare = errors.New("filtration: adjacency matrix must be square")

	// ErrTripletLength indicates FromCOO received row, column, and data
	// slices of differing lengths.
	ErrTripletLength = errors.New("filtration: COO row, column and data slices must have equal length")
)

// FiltrationError reports an explicit edge filtration value that violates
// the monotonicity invariant: the value is smaller than at least one of
// its endpoints' vertex filtration values.
//
// It mirrors the diagnostic of the reference tooling (edge endpoints, the
// offending value, and both endpoint values) but is returned as an error
// value instead of terminating the process.
type FiltrationError struct {
	Source, Target int     // edge endpoints, as vertex indices
	Value          float64 // explicit filtration value of the edge
	SourceValue    float64 // filtration value of the source vertex
	TargetValue    float64 // filtration value of the target vertex
}

// Error renders the violation with every value needed to locate the
// offending input row.
func (e *FiltrationError) Error() string {
	return fmt.Sprintf(
		"filtration: edge (%d, %d) has filtration value %g, which is lower than max(%g, %g), the filtration values of its endpoints",
		e.Source, e.Target, e.Value, e.SourceValue, e.TargetValue,
	)
}

// EdgeMode is the terminal state machine deciding whether edges of one
// request carry explicit filtration values.
//
// The mode starts Undecided, is fixed by the arity of the first edge
// observed, and is never re-evaluated for the remainder of the request.
type EdgeMode int

const (
	// EdgeFiltrationUndecided means no edge has been observed yet; an
	// edge-free graph legitimately stays in this state.
	EdgeFiltrationUndecided EdgeMode = iota

	// EdgeFiltrationAbsent means edges carry no explicit value; an edge's
	// implicit filtration is the maximum of its endpoints' vertex values.
	EdgeFiltrationAbsent

	// EdgeFiltrationPresent means every edge carries an explicit value,
	// validated against the monotonicity invariant on insertion.
	EdgeFiltrationPresent
)

// String returns a short human-readable name for the mode.
func (m EdgeMode) String() string {
	switch m {
	case EdgeFiltrationAbsent:
		return "absent"
	case EdgeFiltrationPresent:
		return "present"
	default:
		return "undecided"
	}
}

// Edge is one directed or undirected connection between two vertices,
// identified by their positions in the vertex sequence.
//
// Filtration is meaningful only when the owning graph's mode is
// EdgeFiltrationPresent; in Absent mode it is zero and the effective
// value comes from the endpoints (see FilteredGraph.EdgeFiltration).
type Edge struct {
	Source, Target int
	Filtration     float64
}

// FilteredGraph is an immutable-by-convention filtered graph: an ordered
// vertex filtration sequence (index = identity), an ordered edge
// collection preserving input order and duplicates, a directedness flag,
// and the decided edge-filtration mode.
//
// A FilteredGraph is built once per counting request and never mutated
// by this package after its construction path returns. It is not
// goroutine-safe during construction; afterwards, concurrent reads are
// safe because nothing writes.
type FilteredGraph struct {
	vertices []float64 // vertex filtration values, index-addressed
	edges    []Edge    // input order preserved, duplicates kept
	directed bool      // source→target orientation when true
	mode     EdgeMode  // decided by the first edge observed
}
