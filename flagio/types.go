// Package flagio: options and sentinel errors for ".flag" file I/O.
package flagio

import (
	"errors"
	"math"
)

// Sentinel errors for .flag parsing and writing.
var (
	// ErrNilGraph indicates Save received a nil graph.
	ErrNilGraph = errors.New("flagio: graph is nil")

	// ErrBadHeader indicates a missing or malformed section marker.
	ErrBadHeader = errors.New("flagio: expected section header")

	// ErrBadVertexLine indicates an unparsable vertex filtration value.
	ErrBadVertexLine = errors.New("flagio: malformed vertex line")

	// ErrBadEdgeLine indicates an edge line with the wrong field count or
	// an unparsable field.
	ErrBadEdgeLine = errors.New("flagio: malformed edge line")
)

// Options collects read parameters. Fields are unexported; Load consumes
// ...Option.
type Options struct {
	directed      bool    // forwarded to filtration.Build
	unweighted    bool    // drop the third edge column on read
	maxEdgeWeight float64 // skip weighted edges above this value
}

// Option is a functional option for Load.
type Option func(*Options)

// WithDirected sets the orientation of the loaded graph; the file format
// itself carries no directedness.
func WithDirected(directed bool) Option {
	return func(o *Options) { o.directed = directed }
}

// WithUnweighted ignores the third column of edge lines, loading a
// weighted file as a plain graph in implicit-filtration mode.
func WithUnweighted() Option {
	return func(o *Options) { o.unweighted = true }
}

// WithMaxEdgeWeight skips edges with an explicit filtration value above w
// while reading. NaN is a programmer error and panics; the option has no
// effect on unweighted files.
func WithMaxEdgeWeight(w float64) Option {
	return func(o *Options) {
		if math.IsNaN(w) {
			panic("flagio: WithMaxEdgeWeight requires a non-NaN threshold")
		}
		o.maxEdgeWeight = w
	}
}

// DefaultOptions returns the read defaults: directed, weights honored,
// no threshold.
func DefaultOptions() Options {
	return Options{
		directed:      true,
		unweighted:    false,
		maxEdgeWeight: math.Inf(+1),
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
