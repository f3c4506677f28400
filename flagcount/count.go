// Package flagcount: the built-in counting engine. The walk extends
// vertex tuples through sorted-adjacency intersections; root vertices are
// distributed across workers, each counting into private storage that is
// merged once every worker has drained the shared queue.
package flagcount

import (
	"fmt"
	"runtime"
	"sort"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/flagcomplex/filtration"
)

// CountCells counts the cells of the flag complex induced by g, per
// dimension, and returns the adapted result vector (see CellCounts).
//
// Directed graphs yield the directed flag complex: a d-cell is an ordered
// tuple (v0,…,vd) with an edge vi→vj for every i < j. Undirected graphs
// yield the clique complex: a d-cell is a (d+1)-clique, counted once.
//
// The filtration values of g play no role in the totals — every cell is
// counted regardless of the threshold at which it appears — but only a
// validated FilteredGraph can exist, so counts always describe a
// consistent filtration.
//
// Errors: ErrNilGraph for a nil graph; ErrDimensionRange when
// WithMinDimension exceeds a bounded WithMaxDimension.
func CountCells(g *filtration.FilteredGraph, opts ...Option) (CellCounts, error) {
	// 1) Validate inputs and configuration.
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := gatherOptions(opts...)
	if cfg.maxDimension != UnboundedDimension && cfg.minDimension > cfg.maxDimension {
		return nil, fmt.Errorf("%w: min %d, max %d", ErrDimensionRange, cfg.minDimension, cfg.maxDimension)
	}

	// 2) Resolve worker count: AutoWorkers means one per CPU, and there is
	//    never a point in outnumbering the root vertices.
	n := g.Order()
	workers := cfg.workers
	if workers == AutoWorkers {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	cfg.logger.Debug("counting flag complex cells",
		zap.Int("vertices", n),
		zap.Int("edges", g.Size()),
		zap.Bool("directed", g.Directed()),
		zap.Int("workers", workers),
		zap.Int("max_dimension", cfg.maxDimension),
	)

	// 3) Degenerate graph: no vertices, no cells in any dimension.
	if n == 0 {
		return CellCounts{}, nil
	}

	// 4) Build the adjacency structure the walk intersects against.
	adj := buildAdjacency(g)

	// 5) Walk the complex: workers drain root vertices from a shared
	//    atomic cursor, counting dimensions ≥ 1 into private vectors.
	locals := make([][]uint64, workers)
	var cursor atomic.Int64
	grp := new(errgroup.Group)
	var w int
	for w = 0; w < workers; w++ {
		slot := w
		grp.Go(func() error {
			local := make([]uint64, 0, 8)
			for {
				root := int(cursor.Add(1)) - 1
				if root >= n {
					break
				}
				walk(adj, adj[root], 1, cfg.maxDimension, &local)
			}
			locals[slot] = local

			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	// 6) Merge worker vectors. Workers store dimension d at index d-1
	//    (dimension 0 is the vertex count, handled here).
	counts := []uint64{uint64(n)}
	var local []uint64
	var d int
	for _, local = range locals {
		for d = range local {
			for len(counts) <= d+1 {
				counts = append(counts, 0)
			}
			counts[d+1] += local[d]
		}
	}

	// 7) Adapt the raw vector: drop trailing empty dimensions, then trim
	//    below the configured minimum dimension.
	out := adaptCounts(counts, cfg.minDimension)

	cfg.logger.Debug("cell count complete",
		zap.Int("dimensions", len(out)),
		zap.Uint64("total", out.Total()),
	)

	return out, nil
}

// buildAdjacency converts the edge collection into sorted, deduplicated
// neighbor lists. Directed graphs keep out-neighbors; undirected graphs
// keep only higher-indexed neighbors so each clique is enumerated once in
// ascending vertex order. Self-loops are dropped: a vertex cannot extend
// a cell with itself.
// Complexity: O(V + E log E).
func buildAdjacency(g *filtration.FilteredGraph) [][]int {
	n := g.Order()
	adj := make([][]int, n)

	var e filtration.Edge
	for _, e = range g.Edges() {
		if e.Source == e.Target {
			continue // self-loops never form cells
		}
		if g.Directed() {
			adj[e.Source] = append(adj[e.Source], e.Target)
			continue
		}
		// Undirected: normalize to (low, high) and store on the low side.
		lo, hi := e.Source, e.Target
		if lo > hi {
			lo, hi = hi, lo
		}
		adj[lo] = append(adj[lo], hi)
	}

	// Sort and deduplicate each neighbor list; duplicate edges collapse
	// here while staying intact in the FilteredGraph.
	var u int
	for u = range adj {
		list := adj[u]
		if len(list) < 2 {
			continue
		}
		sort.Ints(list)
		kept := list[:1]
		var i int
		for i = 1; i < len(list); i++ {
			if list[i] != list[i-1] {
				kept = append(kept, list[i])
			}
		}
		adj[u] = kept
	}

	return adj
}

// walk counts every tuple extension reachable from the current candidate
// set. Each candidate w is a cell of dimension dim; its own extensions
// are the candidates that remain adjacent after w joins the tuple.
//
// cand and adj[w] are sorted, so the intersection is a linear merge.
func walk(adj [][]int, cand []int, dim, maxDim int, counts *[]uint64) {
	if len(cand) == 0 {
		return
	}
	if maxDim != UnboundedDimension && dim > maxDim {
		return
	}
	for len(*counts) <= dim-1 {
		*counts = append(*counts, 0)
	}
	(*counts)[dim-1] += uint64(len(cand))

	if maxDim != UnboundedDimension && dim >= maxDim {
		return
	}
	var w int
	for _, w = range cand {
		walk(adj, intersect(cand, adj[w]), dim+1, maxDim, counts)
	}
}

// intersect returns the elements common to two sorted int slices.
// Complexity: O(len(a) + len(b)).
func intersect(a, b []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}

// adaptCounts is the result adapter: it passes the per-dimension vector
// through unchanged except for removing trailing empty dimensions and
// cutting everything below minDim.
func adaptCounts(counts []uint64, minDim int) CellCounts {
	end := len(counts)
	for end > 0 && counts[end-1] == 0 {
		end--
	}
	if minDim >= end {
		return CellCounts{}
	}

	return CellCounts(counts[minDim:end])
}
