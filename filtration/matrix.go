// SPDX-License-Identifier: MIT

// Package filtration: adjacency-matrix ingestion. Research pipelines often
// hold a filtered graph as a flag matrix - a square matrix whose diagonal
// stores vertex filtration values and whose off-diagonal entries store
// edge filtration values. FromDense and FromCOO translate that shape into
// a FilteredGraph, funneling through the same validated AddFilteredEdge
// primitive as coordinate-list input.
package filtration

import (
	"fmt"
	"math"
)

// FromDense builds a FilteredGraph from a dense square flag matrix.
//
// m[i][i] is vertex i's filtration value. Every finite off-diagonal entry
// m[i][j] becomes an edge (i, j) with that filtration value - explicit
// zeros included, matching the dense-matrix convention of the reference
// tooling where a stored zero means "edge appearing at filtration zero".
// NaN and +Inf entries mark the absence of an edge.
//
// In undirected mode only the upper triangle (i < j) is scanned, so each
// unordered pair produces one edge. WithMaxEdgeWeight(w) drops entries
// above w.
//
// Errors: ErrNonSquare for ragged or non-square input; the Add* errors of
// the shared construction path otherwise (notably *FiltrationError when
// an off-diagonal entry undercuts a diagonal one).
//
// Complexity: O(V²).
func FromDense(m [][]float64, opts ...Option) (*FilteredGraph, error) {
	cfg := gatherOptions(opts...)

	n := len(m)
	var row []float64
	for _, row = range m {
		if len(row) != n {
			return nil, fmt.Errorf("%w: %d rows, row of length %d", ErrNonSquare, n, len(row))
		}
	}

	// Diagonal → vertex filtration sequence.
	vertices := make([]float64, n)
	var i int
	for i = 0; i < n; i++ {
		vertices[i] = m[i][i]
	}
	g := NewFilteredGraph(vertices, opts...)

	// Off-diagonal scan in row-major order for deterministic edge order.
	var j, lo int
	var v float64
	var err error
	for i = 0; i < n; i++ {
		lo = 0
		if !cfg.directed {
			lo = i + 1 // upper triangle only: one edge per unordered pair
		}
		for j = lo; j < n; j++ {
			if j == i {
				continue
			}
			v = m[i][j]
			if math.IsNaN(v) || math.IsInf(v, +1) || v > cfg.maxEdgeWeight {
				continue // absent edge
			}
			if err = g.AddFilteredEdge(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// FromCOO builds a FilteredGraph from sparse COO triplets plus a separate
// diagonal.
//
// diag holds the vertex filtration values. rows, cols and data are
// parallel slices; triplet k stores an edge (rows[k], cols[k]) with
// filtration value data[k]. Diagonal triplets (rows[k] == cols[k]) are
// skipped - the diagonal travels in diag. Unlike the dense path, only
// stored entries become edges; an unstored pair is simply absent.
//
// Triplet order is preserved in the edge collection. WithMaxEdgeWeight(w)
// drops triplets above w; NaN and +Inf data values mark absence.
//
// Errors: ErrTripletLength when the triplet slices disagree in length;
// the Add* errors of the shared construction path otherwise.
//
// Complexity: O(V + nnz).
func FromCOO(diag []float64, rows, cols []int, data []float64, opts ...Option) (*FilteredGraph, error) {
	cfg := gatherOptions(opts...)

	if len(rows) != len(cols) || len(rows) != len(data) {
		return nil, fmt.Errorf("%w: rows=%d cols=%d data=%d",
			ErrTripletLength, len(rows), len(cols), len(data))
	}

	g := NewFilteredGraph(diag, opts...)

	var k int
	var v float64
	var err error
	for k = range rows {
		if rows[k] == cols[k] {
			continue // diagonal entries are vertex values, not edges
		}
		v = data[k]
		if math.IsNaN(v) || math.IsInf(v, +1) || v > cfg.maxEdgeWeight {
			continue
		}
		if err = g.AddFilteredEdge(rows[k], cols[k], v); err != nil {
			return nil, fmt.Errorf("triplet %d: %w", k, err)
		}
	}

	return g, nil
}
