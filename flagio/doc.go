// Package flagio reads and writes filtered graphs in the flagser ".flag"
// text format.
//
// The format has two sections:
//
//	dim 0:
//	0.2 0.5 0.9
//	dim 1:
//	0 1 0.956
//	1 2 1.1
//
// The line after "dim 0:" (one or more lines, up to the next header)
// lists the vertex filtration values in index order. Each line after
// "dim 1:" is one edge: two whitespace-separated vertex indices,
// optionally followed by an explicit edge filtration value. Per the
// conventions of package filtration, the first edge line decides whether
// the file is weighted; mixed shapes are rejected.
//
// Load parses a file and hands the result to filtration.Build, so file
// input passes through exactly the same arity, index, and monotonicity
// validation as programmatic input. Save writes a graph back out,
// choosing the weighted or unweighted edge shape from the graph's mode.
//
// Options:
//
//   - WithDirected(b)      – orientation forwarded to filtration.Build.
//   - WithUnweighted()     – ignore the third edge column on read.
//   - WithMaxEdgeWeight(w) – skip edges above w on read (weighted files).
//
// Errors (sentinel, wrapped with 1-based line numbers):
//
//   - ErrBadHeader     – a "dim 0:"/"dim 1:" section marker is missing.
//   - ErrBadVertexLine – a vertex value failed to parse.
//   - ErrBadEdgeLine   – an edge line has the wrong shape or fails to parse.
package flagio
