package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/descent/matrix"
)

// ExampleSolve demonstrates solving a 2x2 linear system.
func ExampleSolve() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{2, 1},
		{1, 3},
	})

	x, _ := matrix.Solve(a, []float64{4, 7})
	fmt.Printf("x = [%.1f %.1f]\n", x[0], x[1])
	// Output:
	// x = [1.0 2.0]
}
