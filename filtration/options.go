package filtration

import "math"

// DefaultDirected mirrors the reference tooling: flag complexes are
// directed unless the caller opts out.
const DefaultDirected = true

// DefaultMaxEdgeWeight keeps every edge: no threshold filtering.
var DefaultMaxEdgeWeight = math.Inf(+1)

// Options collects construction parameters. Fields are unexported; public
// construction paths consume ...Option.
type Options struct {
	directed      bool    // orientation of edges (source→target when true)
	maxEdgeWeight float64 // matrix ingestion drops edges above this value
}

// Option is a functional option for graph construction.
type Option func(*Options)

// WithDirected sets the orientation of the graph: true builds a directed
// graph (edges are source→target as given), false an undirected one.
func WithDirected(directed bool) Option {
	return func(o *Options) { o.directed = directed }
}

// WithMaxEdgeWeight makes the matrix ingestion paths (FromDense, FromCOO)
// drop every edge whose filtration value exceeds w. NaN is a programmer
// error and panics; +Inf restores the default keep-everything behavior.
//
// Build ignores this option: coordinate-list input is taken verbatim.
func WithMaxEdgeWeight(w float64) Option {
	return func(o *Options) {
		if math.IsNaN(w) {
			// Invalid configuration is a programmer error, fail loudly.
			panic("filtration: WithMaxEdgeWeight requires a non-NaN threshold")
		}
		o.maxEdgeWeight = w
	}
}

// DefaultOptions returns the construction defaults: directed graph, no
// edge-weight threshold. Use as the starting point before applying
// functional overrides.
func DefaultOptions() Options {
	return Options{
		directed:      DefaultDirected,
		maxEdgeWeight: DefaultMaxEdgeWeight,
	}
}

// gatherOptions applies opts left-to-right on top of the defaults.
func gatherOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return cfg
}
