// Package flagcomplex turns weighted, possibly directed graphs into
// validated flag-complex filtrations and counts their cells per dimension.
//
// 🚀 What is flagcomplex?
//
//	A focused library for the combinatorial side of topological data
//	analysis pipelines:
//		• filtration/ — build a FilteredGraph from vertex/edge filtration
//		  values, detect whether edges carry explicit values, and enforce
//		  the monotonicity invariant of flag-complex filtrations
//		• flagcount/  — count the cells (simplices) of the directed or
//		  undirected flag complex per dimension, behind a substitutable
//		  Counter interface
//		• flagio/     — read and write graphs in the flagser ".flag"
//		  text format
//
// ✨ Why choose flagcomplex?
//
//   - Validated by construction – a FilteredGraph that exists satisfies
//     the monotonicity invariant; violations surface as typed errors
//   - Deterministic – edges keep their input order, duplicates are
//     preserved, counting is reproducible regardless of worker count
//   - Pure Go – no cgo bindings to the C++ reference tooling
//
// Quick ASCII example:
//
//	    0───1
//	     ╲  │
//	      ╲ │
//	        2
//
//	an undirected triangle yields cell counts [3, 3, 1]:
//	three vertices, three edges, one filled 2-cell.
//
// Start with filtration.Build, feed the result to flagcount.CountCells,
// or load a graph straight from disk with flagio.Load.
//
//	go get github.com/katalvlaran/flagcomplex
package flagcomplex
