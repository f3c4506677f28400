// Package flagcount: result vector, capability interface, and sentinel
// errors of the cell-counting engine.
package flagcount

import (
	"errors"

	"github.com/katalvlaran/flagcomplex/filtration"
)

// Sentinel errors for cell counting.
var (
	// ErrNilGraph indicates a nil *filtration.FilteredGraph was passed.
	ErrNilGraph = errors.New("flagcount: graph is nil")

	// ErrDimensionRange indicates the configured minimum dimension exceeds
	// a bounded maximum dimension.
	ErrDimensionRange = errors.New("flagcount: min dimension exceeds max dimension")

	// ErrBadDimension indicates a negative dimension passed to
	// WithMinDimension or WithMaxDimension.
	ErrBadDimension = errors.New("flagcount: dimension must be non-negative")

	// ErrBadWorkers indicates a worker count below 1 passed to WithWorkers.
	ErrBadWorkers = errors.New("flagcount: worker count must be at least 1")
)

// CellCounts holds one cell count per simplex dimension in ascending
// order. Index 0 is the count at the configured minimum dimension
// (dimension 0 by default, where the count equals the number of
// vertices); the vector ends at the highest dimension with at least one
// cell, so it never carries trailing zeros.
type CellCounts []uint64

// Total returns the number of cells across all dimensions in the vector.
// Complexity: O(len(c)).
func (c CellCounts) Total() uint64 {
	var sum uint64
	for _, n := range c {
		sum += n
	}

	return sum
}

// EulerCharacteristic returns the alternating sum Σ (-1)^d · c[d], taking
// index 0 of the vector as an even dimension. With default options this
// is the Euler characteristic of the flag complex.
// Complexity: O(len(c)).
func (c CellCounts) EulerCharacteristic() int64 {
	var chi int64
	for d, n := range c {
		if d%2 == 0 {
			chi += int64(n)
		} else {
			chi -= int64(n)
		}
	}

	return chi
}

// Counter is the capability interface of a cell-counting engine: it
// receives a validated filtered graph plus named options and returns the
// per-dimension count vector. Any conforming implementation can be
// substituted for the built-in one.
type Counter interface {
	CountCells(g *filtration.FilteredGraph, opts ...Option) (CellCounts, error)
}

// CounterFunc adapts an ordinary function to the Counter interface.
type CounterFunc func(g *filtration.FilteredGraph, opts ...Option) (CellCounts, error)

// CountCells calls f.
func (f CounterFunc) CountCells(g *filtration.FilteredGraph, opts ...Option) (CellCounts, error) {
	return f(g, opts...)
}

// DefaultCounter is the built-in engine exposed through the capability
// interface.
var DefaultCounter Counter = CounterFunc(CountCells)
