// Package filtration: construction of FilteredGraph from coordinate-list
// input. Build is the single-pass entry point; AddEdge/AddFilteredEdge
// are the shared primitives every ingestion path funnels through.
package filtration

import "fmt"

// Tuple arities accepted in coordinate-list edge input.
const (
	plainEdgeArity    = 2 // (source, target)
	filteredEdgeArity = 3 // (source, target, filtration)
)

// NewFilteredGraph creates a FilteredGraph with the given vertex
// filtration sequence and no edges. The mode stays
// EdgeFiltrationUndecided until the first edge is added.
//
// The vertices slice is copied; later mutation of the caller's slice
// does not affect the graph.
//
// Complexity: O(V).
func NewFilteredGraph(vertices []float64, opts ...Option) *FilteredGraph {
	cfg := gatherOptions(opts...)

	// Copy to decouple graph identity from the caller's backing array.
	vs := make([]float64, len(vertices))
	copy(vs, vertices)

	return &FilteredGraph{
		vertices: vs,
		directed: cfg.directed,
		mode:     EdgeFiltrationUndecided,
	}
}

// Build constructs a FilteredGraph from raw vertex and edge data in a
// single linear pass over the edges.
//
// vertices defines the vertex index space 0..len(vertices)-1; each value
// is that vertex's filtration value. Each element of edges is either a
// 2-component tuple (source, target) or a 3-component tuple
// (source, target, filtration). The first edge fixes the mode for the
// whole request; later tuples of the other arity are rejected with
// ErrEdgeArity. Endpoint components are truncated to int and must be
// valid vertex indices.
//
// Input order and duplicate edges are preserved; nothing is merged.
//
// Errors:
//   - ErrEdgeArity       – a tuple has neither 2 nor 3 components, or
//     contradicts the decided mode.
//   - ErrVertexIndex     – an endpoint is outside the vertex index space.
//   - *FiltrationError   – an explicit edge value violates monotonicity.
//
// Complexity: O(V + E) time, O(V + E) space.
func Build(vertices []float64, edges [][]float64, opts ...Option) (*FilteredGraph, error) {
	// 1) Instantiate the graph with vertices and the directed flag; no edges yet.
	g := NewFilteredGraph(vertices, opts...)

	// 2) Single pass over the edge collection. The first tuple decides the
	//    mode (inside AddEdge/AddFilteredEdge); every later tuple must conform.
	var (
		tuple []float64
		pos   int
		err   error
	)
	for pos, tuple = range edges {
		switch len(tuple) {
		case plainEdgeArity:
			err = g.AddEdge(int(tuple[0]), int(tuple[1]))
		case filteredEdgeArity:
			err = g.AddFilteredEdge(int(tuple[0]), int(tuple[1]), tuple[2])
		default:
			err = fmt.Errorf("%w: tuple has %d components, want %d or %d",
				ErrEdgeArity, len(tuple), plainEdgeArity, filteredEdgeArity)
		}
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", pos, err)
		}
	}

	// 3) Fully populated; hand the graph to the caller.
	return g, nil
}

// AddEdge registers a plain (source, target) edge with no explicit
// filtration value.
//
// On the first edge of an undecided graph this fixes the mode to
// EdgeFiltrationAbsent; on a graph already decided as
// EdgeFiltrationPresent it returns ErrEdgeArity.
//
// Complexity: O(1) amortized.
func (g *FilteredGraph) AddEdge(source, target int) error {
	if err := g.checkEndpoints(source, target); err != nil {
		return err
	}

	// First edge decides; the decision is terminal.
	switch g.mode {
	case EdgeFiltrationUndecided:
		g.mode = EdgeFiltrationAbsent
	case EdgeFiltrationPresent:
		return fmt.Errorf("%w: plain edge in %s mode", ErrEdgeArity, g.mode)
	}

	g.edges = append(g.edges, Edge{Source: source, Target: target})

	return nil
}

// AddFilteredEdge registers an edge carrying an explicit filtration value
// after validating the monotonicity invariant:
//
//	filtration >= max(vertex value of source, vertex value of target)
//
// On the first edge of an undecided graph this fixes the mode to
// EdgeFiltrationPresent; on a graph already decided as
// EdgeFiltrationAbsent it returns ErrEdgeArity. A violating value yields
// a *FiltrationError identifying the edge and all three values involved.
//
// Complexity: O(1) amortized.
func (g *FilteredGraph) AddFilteredEdge(source, target int, filtration float64) error {
	if err := g.checkEndpoints(source, target); err != nil {
		return err
	}

	switch g.mode {
	case EdgeFiltrationUndecided:
		g.mode = EdgeFiltrationPresent
	case EdgeFiltrationAbsent:
		return fmt.Errorf("%w: filtered edge in %s mode", ErrEdgeArity, g.mode)
	}

	// Monotonicity: the edge may not appear before either endpoint.
	sv, tv := g.vertices[source], g.vertices[target]
	if filtration < sv || filtration < tv {
		return &FiltrationError{
			Source:      source,
			Target:      target,
			Value:       filtration,
			SourceValue: sv,
			TargetValue: tv,
		}
	}

	g.edges = append(g.edges, Edge{Source: source, Target: target, Filtration: filtration})

	return nil
}

// checkEndpoints validates that both endpoints address existing vertices.
func (g *FilteredGraph) checkEndpoints(source, target int) error {
	if source < 0 || source >= len(g.vertices) {
		return fmt.Errorf("%w: source %d, graph has %d vertices", ErrVertexIndex, source, len(g.vertices))
	}
	if target < 0 || target >= len(g.vertices) {
		return fmt.Errorf("%w: target %d, graph has %d vertices", ErrVertexIndex, target, len(g.vertices))
	}

	return nil
}

// Order returns the number of vertices.
// Complexity: O(1).
func (g *FilteredGraph) Order() int { return len(g.vertices) }

// Size returns the number of edges, duplicates included.
// Complexity: O(1).
func (g *FilteredGraph) Size() int { return len(g.edges) }

// Directed reports whether edges are oriented source→target.
// Complexity: O(1).
func (g *FilteredGraph) Directed() bool { return g.directed }

// Mode returns the decided edge-filtration mode. Edge-free graphs report
// EdgeFiltrationUndecided.
// Complexity: O(1).
func (g *FilteredGraph) Mode() EdgeMode { return g.mode }

// VertexFiltration returns the filtration value of vertex i, or
// ErrVertexIndex when i is out of range.
// Complexity: O(1).
func (g *FilteredGraph) VertexFiltration(i int) (float64, error) {
	if i < 0 || i >= len(g.vertices) {
		return 0, fmt.Errorf("%w: index %d, graph has %d vertices", ErrVertexIndex, i, len(g.vertices))
	}

	return g.vertices[i], nil
}

// VertexFiltrations returns a copy of the vertex filtration sequence.
// Complexity: O(V).
func (g *FilteredGraph) VertexFiltrations() []float64 {
	vs := make([]float64, len(g.vertices))
	copy(vs, g.vertices)

	return vs
}

// Edges returns a copy of the edge collection in input order.
// Complexity: O(E).
func (g *FilteredGraph) Edges() []Edge {
	es := make([]Edge, len(g.edges))
	copy(es, g.edges)

	return es
}

// EdgeFiltration returns the effective filtration value of edge i:
// the stored value in EdgeFiltrationPresent mode, the maximum of the
// endpoints' vertex values otherwise. Returns ErrEdgeIndex for an
// out-of-range position.
// Complexity: O(1).
func (g *FilteredGraph) EdgeFiltration(i int) (float64, error) {
	if i < 0 || i >= len(g.edges) {
		return 0, fmt.Errorf("%w: index %d, graph has %d edges", ErrEdgeIndex, i, len(g.edges))
	}

	e := g.edges[i]
	if g.mode == EdgeFiltrationPresent {
		return e.Filtration, nil
	}

	// Implicit value: the edge appears when its later endpoint does.
	sv, tv := g.vertices[e.Source], g.vertices[e.Target]
	if sv > tv {
		return sv, nil
	}

	return tv, nil
}
