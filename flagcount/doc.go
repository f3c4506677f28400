// Package flagcount counts the cells of the flag complex induced by a
// validated filtered graph, dimension by dimension.
//
// Overview:
//
//   - The flag complex of a graph has one d-cell for every (d+1)-clique;
//     in the directed variant a d-cell is an ordered vertex tuple
//     (v0,…,vd) with an edge vi→vj for every i < j.
//   - CountCells walks that complex without materializing it, extending
//     vertex tuples through sorted-adjacency intersections, and returns a
//     CellCounts vector: one non-negative count per dimension, starting
//     at dimension 0 (the vertex count) and ending at the highest
//     dimension with at least one cell.
//   - The Counter interface makes the engine a substitutable capability:
//     anything that can turn a *filtration.FilteredGraph plus named
//     options into a CellCounts conforms.
//
// When to use:
//
//   - To size a flag complex before committing to a far more expensive
//     persistent-homology run.
//   - To sanity-check an edge filtration: construction-time validation
//     lives in package filtration; this package consumes its output.
//
// Key behaviors:
//
//   - Self-loops never form cells and are ignored; duplicate edges
//     collapse in the adjacency structure (a cell is a vertex set), while
//     remaining visible in the FilteredGraph itself.
//   - WithMaxDimension caps the walk; WithMinDimension trims the low end
//     of the returned vector.
//   - WithWorkers splits root vertices across goroutines; each worker
//     counts into private storage merged after the walk, so results are
//     identical for every worker count.
//   - WithLogger attaches a zap logger to the engine's diagnostic path.
//     The default is a nop logger: the engine is silent unless a sink is
//     explicitly supplied.
//
// Complexity:
//
//   - Time is output-sensitive: proportional to the number of cells
//     visited, with each extension costing an O(degree) sorted-slice
//     intersection. Dense graphs are exponential in the worst case —
//     that is the flag complex's nature, not an implementation artifact.
//   - Space: O(V + E) for the adjacency structure plus O(maxDim) per
//     worker for recursion state.
//
// Errors (sentinel):
//
//   - ErrNilGraph       – CountCells received a nil graph.
//   - ErrDimensionRange – min dimension exceeds a bounded max dimension.
//   - ErrBadDimension   – a WithMinDimension/WithMaxDimension argument
//     was negative (panics in the option constructor).
//   - ErrBadWorkers     – a WithWorkers argument was < 1 (panics in the
//     option constructor).
package flagcount
