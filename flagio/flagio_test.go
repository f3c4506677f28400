// Package flagio_test contains unit tests for .flag parsing and writing:
// round-trips in both modes, read options, and the malformed-input
// surfaces.
package flagio_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/flagcomplex/filtration"
	"github.com/katalvlaran/flagcomplex/flagio"
)

// writeTemp drops content into a fresh temp file and returns its path.
func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.flag")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

//----------------------------------------------------------------------------//
// Load
//----------------------------------------------------------------------------//

// TestLoad_Weighted verifies parsing of the weighted shape.
func TestLoad_Weighted(t *testing.T) {
	path := writeTemp(t, "dim 0:\n0 0.5 1\ndim 1:\n0 1 0.9\n1 2 1.4\n")
	g, err := flagio.Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if g.Order() != 3 || g.Size() != 2 {
		t.Errorf("Order=%d Size=%d; want 3, 2", g.Order(), g.Size())
	}
	if g.Mode() != filtration.EdgeFiltrationPresent {
		t.Errorf("Mode() = %v; want present", g.Mode())
	}
	if f, _ := g.EdgeFiltration(1); f != 1.4 {
		t.Errorf("EdgeFiltration(1) = %v; want 1.4", f)
	}
}

// TestLoad_Unweighted verifies parsing of the plain-pair shape.
func TestLoad_Unweighted(t *testing.T) {
	path := writeTemp(t, "dim 0:\n0 0 0\ndim 1:\n0 1\n1 2\n")
	g, err := flagio.Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if g.Mode() != filtration.EdgeFiltrationAbsent {
		t.Errorf("Mode() = %v; want absent", g.Mode())
	}
	if g.Size() != 2 {
		t.Errorf("Size() = %d; want 2", g.Size())
	}
}

// TestLoad_NoEdgeSection verifies a file without "dim 1:" is an edge-free
// graph, not an error.
func TestLoad_NoEdgeSection(t *testing.T) {
	path := writeTemp(t, "dim 0:\n0.1 0.2\n")
	g, err := flagio.Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if g.Order() != 2 || g.Size() != 0 {
		t.Errorf("Order=%d Size=%d; want 2, 0", g.Order(), g.Size())
	}
	if g.Mode() != filtration.EdgeFiltrationUndecided {
		t.Errorf("Mode() = %v; want undecided", g.Mode())
	}
}

// TestLoad_MultiLineVertices verifies vertex values may span lines.
func TestLoad_MultiLineVertices(t *testing.T) {
	path := writeTemp(t, "dim 0:\n0 1\n2 3\ndim 1:\n0 3\n")
	g, err := flagio.Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if g.Order() != 4 {
		t.Errorf("Order() = %d; want 4", g.Order())
	}
}

// TestLoad_UnweightedOption verifies WithUnweighted drops the third column.
func TestLoad_UnweightedOption(t *testing.T) {
	path := writeTemp(t, "dim 0:\n0 0\ndim 1:\n0 1 0.9\n")
	g, err := flagio.Load(path, flagio.WithUnweighted())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if g.Mode() != filtration.EdgeFiltrationAbsent {
		t.Errorf("Mode() = %v; want absent", g.Mode())
	}
}

// TestLoad_MaxEdgeWeight verifies threshold filtering on read.
func TestLoad_MaxEdgeWeight(t *testing.T) {
	path := writeTemp(t, "dim 0:\n0 0 0\ndim 1:\n0 1 0.3\n1 2 0.9\n")
	g, err := flagio.Load(path, flagio.WithMaxEdgeWeight(0.5))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if g.Size() != 1 {
		t.Errorf("Size() = %d; want 1 (0.9 dropped)", g.Size())
	}
}

// TestLoad_DirectedOption verifies orientation forwarding.
func TestLoad_DirectedOption(t *testing.T) {
	path := writeTemp(t, "dim 0:\n0 0\ndim 1:\n0 1\n")
	g, err := flagio.Load(path, flagio.WithDirected(false))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if g.Directed() {
		t.Error("Directed() = true; want false")
	}
}

// TestLoad_ValidationAppliesToFiles verifies file input hits the same
// monotonicity validation as programmatic input.
func TestLoad_ValidationAppliesToFiles(t *testing.T) {
	path := writeTemp(t, "dim 0:\n1 2\ndim 1:\n0 1 0.5\n")
	_, err := flagio.Load(path)
	var fe *filtration.FiltrationError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FiltrationError, got %v", err)
	}
}

// TestLoad_Malformed covers the parsing error surfaces.
func TestLoad_Malformed(t *testing.T) {
	cases := []struct {
		name    string
		content string
		err     error
	}{
		{"MissingHeader", "0 1 2\n", flagio.ErrBadHeader},
		{"EmptyFile", "", flagio.ErrBadHeader},
		{"BadVertexValue", "dim 0:\n0 abc\n", flagio.ErrBadVertexLine},
		{"BadEdgeField", "dim 0:\n0 0\ndim 1:\n0 x\n", flagio.ErrBadEdgeLine},
		{"TooManyEdgeFields", "dim 0:\n0 0\ndim 1:\n0 1 2 3\n", flagio.ErrBadEdgeLine},
		{"MixedArity", "dim 0:\n0 0 0\ndim 1:\n0 1\n1 2 0.5\n", filtration.ErrEdgeArity},
		{"IndexOutOfRange", "dim 0:\n0 0\ndim 1:\n0 7\n", filtration.ErrVertexIndex},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := flagio.Load(writeTemp(t, tc.content))
			if !errors.Is(err, tc.err) {
				t.Errorf("Load error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestLoad_MissingFile verifies the open error path.
func TestLoad_MissingFile(t *testing.T) {
	_, err := flagio.Load(filepath.Join(t.TempDir(), "nope.flag"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

//----------------------------------------------------------------------------//
// Save and round-trips
//----------------------------------------------------------------------------//

// TestSave_NilGraph verifies the nil sentinel.
func TestSave_NilGraph(t *testing.T) {
	err := flagio.Save(filepath.Join(t.TempDir(), "out.flag"), nil)
	if !errors.Is(err, flagio.ErrNilGraph) {
		t.Errorf("Save(nil) error = %v; want ErrNilGraph", err)
	}
}

// TestRoundTrip_Weighted verifies save-then-load preserves the graph.
func TestRoundTrip_Weighted(t *testing.T) {
	g, err := filtration.Build(
		[]float64{0, 0.5, 1},
		[][]float64{{0, 1, 0.9}, {1, 2, 1.4}},
	)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out.flag")
	if err = flagio.Save(path, g); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	back, err := flagio.Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if back.Order() != g.Order() || back.Size() != g.Size() || back.Mode() != g.Mode() {
		t.Fatalf("round-trip mismatch: got Order=%d Size=%d Mode=%v", back.Order(), back.Size(), back.Mode())
	}
	ge, be := g.Edges(), back.Edges()
	for i := range ge {
		if ge[i] != be[i] {
			t.Errorf("edge %d: %+v != %+v", i, ge[i], be[i])
		}
	}
}

// TestRoundTrip_Unweighted verifies the plain shape round-trips too.
func TestRoundTrip_Unweighted(t *testing.T) {
	g, err := filtration.Build([]float64{0, 0, 0}, [][]float64{{0, 1}, {1, 2}})
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out.flag")
	if err = flagio.Save(path, g); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	back, err := flagio.Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if back.Mode() != filtration.EdgeFiltrationAbsent || back.Size() != 2 {
		t.Errorf("Mode=%v Size=%d; want absent, 2", back.Mode(), back.Size())
	}
}

// TestWrite_Format pins the exact rendered shape.
func TestWrite_Format(t *testing.T) {
	g, err := filtration.Build([]float64{0, 0.5}, [][]float64{{0, 1, 0.5}})
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	if err = flagio.Write(&sb, g); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	want := "dim 0:\n0 0.5\ndim 1:\n0 1 0.5\n"
	if sb.String() != want {
		t.Errorf("Write output = %q; want %q", sb.String(), want)
	}
}
