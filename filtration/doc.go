// Package filtration builds validated filtered graphs for flag-complex
// computations.
//
// A filtered graph is a directed or undirected graph whose vertices all
// carry a numeric filtration value and whose edges either inherit their
// value implicitly (the maximum of their endpoints') or carry an explicit
// one. Explicit edge values must respect the monotonicity rule of
// flag-complex filtrations: a simplex may not appear before any of its
// faces, so an edge value can never be smaller than either endpoint's
// vertex value.
//
// # Edge filtration mode
//
// Whether edges carry explicit values is decided from the first edge of
// the input, never re-evaluated afterwards:
//
//   - a 2-component tuple (source, target) fixes EdgeFiltrationAbsent;
//   - a 3-component tuple (source, target, value) fixes EdgeFiltrationPresent;
//   - an empty edge collection leaves the mode EdgeFiltrationUndecided,
//     which is not an error.
//
// The first-edge heuristic assumes a uniform input shape. Unlike the
// reference tooling, tuples whose arity contradicts the decided mode are
// rejected with ErrEdgeArity instead of being silently misread.
//
// # Construction paths
//
//   - Build ingests the coordinate-list shape: a vertex value sequence
//     plus a sequence of 2- or 3-component edge tuples.
//   - FromDense ingests a square matrix whose diagonal holds vertex
//     values and whose finite off-diagonal entries are edge values.
//   - FromCOO ingests sparse triplets alongside a separate diagonal.
//
// All three funnel through the same AddEdge/AddFilteredEdge primitives,
// so every construction path enforces the same invariants.
//
// Error handling (sentinel and typed):
//
//   - ErrVertexIndex     – an edge endpoint is outside 0..Order()-1.
//   - ErrEdgeIndex       – an edge accessor received an invalid position.
//   - ErrEdgeArity       – an edge tuple contradicts the decided mode.
//   - ErrNonSquare       – FromDense received a non-square matrix.
//   - ErrTripletLength   – FromCOO received mismatched triplet slices.
//   - *FiltrationError   – an explicit edge value violates monotonicity;
//     carries the edge endpoints, its value, and both endpoint values.
//
// Complexity: construction is a single O(E) pass; no pre-scan of the
// edge collection is performed.
package filtration
