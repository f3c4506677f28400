package flagcount

import "go.uber.org/zap"

// Dimension and worker defaults.
const (
	// UnboundedDimension disables the maximum-dimension cap, matching the
	// reference engine's "-1 = no limit" convention.
	UnboundedDimension = -1

	// AutoWorkers lets the engine pick one worker per available CPU.
	AutoWorkers = 0
)

// Options configures a single CountCells invocation. Fields are
// unexported; CountCells consumes ...Option.
type Options struct {
	minDimension int         // lowest dimension present in the result vector
	maxDimension int         // highest dimension walked; UnboundedDimension = no cap
	workers      int         // parallel root-vertex workers; AutoWorkers = NumCPU
	logger       *zap.Logger // diagnostic sink; nop by default (quiet mode)
}

// Option is a functional option for CountCells.
type Option func(*Options)

// WithMinDimension trims the result vector below dimension d: index 0 of
// the returned CellCounts then holds the count at dimension d.
// Negative d is a programmer error and panics with ErrBadDimension.
func WithMinDimension(d int) Option {
	return func(o *Options) {
		if d < 0 {
			panic(ErrBadDimension.Error())
		}
		o.minDimension = d
	}
}

// WithMaxDimension stops the walk at dimension d: no cell of a higher
// dimension is visited or counted. Negative d is a programmer error and
// panics with ErrBadDimension; the default is unbounded.
func WithMaxDimension(d int) Option {
	return func(o *Options) {
		if d < 0 {
			panic(ErrBadDimension.Error())
		}
		o.maxDimension = d
	}
}

// WithWorkers fixes the number of goroutines walking root vertices.
// n must be ≥ 1; the default AutoWorkers uses one worker per CPU.
// The result vector is identical for every worker count.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.workers = n
	}
}

// WithLogger attaches a diagnostic sink to the engine. The default is a
// nop logger, keeping the engine silent; passing nil restores that
// default explicitly.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// DefaultOptions returns the engine defaults: full dimension range, one
// worker per CPU, silent diagnostics.
func DefaultOptions() Options {
	return Options{
		minDimension: 0,
		maxDimension: UnboundedDimension,
		workers:      AutoWorkers,
		logger:       zap.NewNop(),
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
