// Package flagio: Load and Save for the flagser ".flag" text format.
package flagio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/katalvlaran/flagcomplex/filtration"
)

// Section markers of the .flag format.
const (
	vertexHeader = "dim 0:"
	edgeHeader   = "dim 1:"
)

// Load reads a .flag file and builds a validated FilteredGraph from it.
//
// Parsing is line-oriented: the "dim 0:" section yields the vertex
// filtration sequence, the optional "dim 1:" section yields edge tuples
// that are forwarded verbatim to filtration.Build, so mode detection,
// arity checks, index checks, and monotonicity validation all apply to
// file input. A file with no "dim 1:" section is a legitimate edge-free
// graph.
//
// Complexity: O(file size + V + E).
func Load(path string, opts ...Option) (*filtration.FilteredGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("flagio: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("flagio: %s: %w", path, err)
	}

	return g, nil
}

// Read parses .flag content from r and builds a validated FilteredGraph.
// Load is the file-path convenience wrapper around it.
func Read(r io.Reader, opts ...Option) (*filtration.FilteredGraph, error) {
	cfg := gatherOptions(opts...)

	var (
		vertices []float64
		edges    [][]float64
		inEdges  bool   // past the "dim 1:" marker
		started  bool   // past the "dim 0:" marker
		line     string // current line, trimmed
		lineNo   int    // 1-based, for diagnostics
	)

	sc := bufio.NewScanner(r)
	// Vertex lines of large graphs exceed the default token size.
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for sc.Scan() {
		lineNo++
		line = strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		switch {
		case !started:
			if line != vertexHeader {
				return nil, fmt.Errorf("%w %q at line %d, got %q", ErrBadHeader, vertexHeader, lineNo, line)
			}
			started = true
		case !inEdges && line == edgeHeader:
			inEdges = true
		case !inEdges:
			vs, err := parseVertexLine(line, lineNo)
			if err != nil {
				return nil, err
			}
			vertices = append(vertices, vs...)
		default:
			tuple, err := parseEdgeLine(line, lineNo, cfg)
			if err != nil {
				return nil, err
			}
			if tuple != nil {
				edges = append(edges, tuple)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("flagio: read: %w", err)
	}
	if !started {
		return nil, fmt.Errorf("%w %q, got empty input", ErrBadHeader, vertexHeader)
	}

	return filtration.Build(vertices, edges, filtration.WithDirected(cfg.directed))
}

// parseVertexLine parses one line of whitespace-separated vertex
// filtration values.
func parseVertexLine(line string, lineNo int) ([]float64, error) {
	fields := strings.Fields(line)
	vs := make([]float64, 0, len(fields))
	var (
		field string
		v     float64
		err   error
	)
	for _, field = range fields {
		if v, err = strconv.ParseFloat(field, 64); err != nil {
			return nil, fmt.Errorf("%w %d: %q", ErrBadVertexLine, lineNo, field)
		}
		vs = append(vs, v)
	}

	return vs, nil
}

// parseEdgeLine parses one edge line into a 2- or 3-component tuple.
// Returns (nil, nil) for edges filtered out by the weight threshold.
func parseEdgeLine(line string, lineNo int, cfg Options) ([]float64, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 && len(fields) != 3 {
		return nil, fmt.Errorf("%w %d: %d fields, want 2 or 3", ErrBadEdgeLine, lineNo, len(fields))
	}

	tuple := make([]float64, 0, len(fields))
	var (
		field string
		v     float64
		err   error
	)
	for _, field = range fields {
		if v, err = strconv.ParseFloat(field, 64); err != nil {
			return nil, fmt.Errorf("%w %d: %q", ErrBadEdgeLine, lineNo, field)
		}
		tuple = append(tuple, v)
	}

	if len(tuple) == 3 {
		if tuple[2] > cfg.maxEdgeWeight {
			return nil, nil // above threshold, absent
		}
		if cfg.unweighted {
			tuple = tuple[:2]
		}
	}

	return tuple, nil
}

// Save writes g to path in the .flag format, choosing the weighted or
// unweighted edge shape from g.Mode(). Write and close failures are
// combined with multierr so neither masks the other.
//
// Complexity: O(V + E).
func Save(path string, g *filtration.FilteredGraph) (err error) {
	if g == nil {
		return ErrNilGraph
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("flagio: create %s: %w", path, err)
	}
	defer func() { err = multierr.Append(err, f.Close()) }()

	w := bufio.NewWriter(f)
	if err = Write(w, g); err != nil {
		return err
	}

	return w.Flush()
}

// Write renders g in the .flag format onto w. Save is the file-path
// convenience wrapper around it.
func Write(w io.Writer, g *filtration.FilteredGraph) error {
	if g == nil {
		return ErrNilGraph
	}

	// Vertex section: all values on one line, reference-style.
	if _, err := fmt.Fprintln(w, vertexHeader); err != nil {
		return fmt.Errorf("flagio: write: %w", err)
	}
	var sb strings.Builder
	for i, v := range g.VertexFiltrations() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	if _, err := fmt.Fprintln(w, sb.String()); err != nil {
		return fmt.Errorf("flagio: write: %w", err)
	}

	// Edge section.
	if _, err := fmt.Fprintln(w, edgeHeader); err != nil {
		return fmt.Errorf("flagio: write: %w", err)
	}
	weighted := g.Mode() == filtration.EdgeFiltrationPresent
	var e filtration.Edge
	var err error
	for _, e = range g.Edges() {
		if weighted {
			_, err = fmt.Fprintf(w, "%d %d %s\n", e.Source, e.Target,
				strconv.FormatFloat(e.Filtration, 'g', -1, 64))
		} else {
			_, err = fmt.Fprintf(w, "%d %d\n", e.Source, e.Target)
		}
		if err != nil {
			return fmt.Errorf("flagio: write: %w", err)
		}
	}

	return nil
}
