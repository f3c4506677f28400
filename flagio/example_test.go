// Package flagio_test provides runnable examples for .flag I/O.
package flagio_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/flagcomplex/flagcount"
	"github.com/katalvlaran/flagcomplex/flagio"
)

// ExampleRead demonstrates parsing .flag content and counting the cells of
// the loaded complex in one pipeline.
func ExampleRead() {
	content := `dim 0:
0 0 0
dim 1:
0 1
1 2
0 2
`
	g, err := flagio.Read(strings.NewReader(content), flagio.WithDirected(false))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	counts, err := flagcount.CountCells(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("mode=%s counts=%v\n", g.Mode(), counts)
	// Output: mode=absent counts=[3 3 1]
}
