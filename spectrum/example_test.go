// File: spectrum/example_test.go
package spectrum_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spectral/spectrum"
)

////////////////////////////////////////////////////////////////////////////////
// Example: SingularValues
////////////////////////////////////////////////////////////////////////////////

// ExampleSingularValues computes the spectrum of a small diagonal matrix:
// the singular values are the diagonal magnitudes, sorted descending.
func ExampleSingularValues() {
	a := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 3, 0,
		0, 0, 2,
	})

	vals, err := spectrum.SingularValues(a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%d values: %.1f %.1f %.1f\n", len(vals), vals[0], vals[1], vals[2])

	// Output:
	// 3 values: 3.0 2.0 1.0
}
