package filtration_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/flagcomplex/filtration"
)

// TestEdgeMode_String covers the three state names.
func TestEdgeMode_String(t *testing.T) {
	cases := []struct {
		mode filtration.EdgeMode
		want string
	}{
		{filtration.EdgeFiltrationUndecided, "undecided"},
		{filtration.EdgeFiltrationAbsent, "absent"},
		{filtration.EdgeFiltrationPresent, "present"},
	}
	for _, tc := range cases {
		if got := tc.mode.String(); got != tc.want {
			t.Errorf("EdgeMode(%d).String() = %q; want %q", tc.mode, got, tc.want)
		}
	}
}

// TestFiltrationError_Message verifies the diagnostic names the edge, its
// value, and both endpoint filtration values.
func TestFiltrationError_Message(t *testing.T) {
	fe := &filtration.FiltrationError{
		Source: 2, Target: 5,
		Value:       0.25,
		SourceValue: 0.5,
		TargetValue: 0.75,
	}
	msg := fe.Error()
	for _, frag := range []string{"(2, 5)", "0.25", "0.5", "0.75"} {
		if !strings.Contains(msg, frag) {
			t.Errorf("Error() = %q; missing %q", msg, frag)
		}
	}
}
