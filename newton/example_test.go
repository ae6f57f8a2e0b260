package newton_test

import (
	"fmt"

	"github.com/katalvlaran/descent/matrix"
	"github.com/katalvlaran/descent/newton"
)

// ExampleMinimize minimizes the convex quadratic f(x) = x1^2 + 2*x2^2.
// Newton's method is exact on quadratics, so a single full step lands on
// the stationary point.
func ExampleMinimize() {
	f := func(x []float64) float64 { return x[0]*x[0] + 2*x[1]*x[1] }
	grad := func(x []float64) []float64 { return []float64{2 * x[0], 4 * x[1]} }
	hess := func(x []float64) *matrix.Dense {
		h, _ := matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 4}})

		return h
	}

	res, err := newton.Minimize(f, grad, hess, []float64{1, 1}, newton.DefaultOptions())
	if err != nil {
		fmt.Println("minimize:", err)

		return
	}

	fmt.Printf("%s after %d step(s): x = [%.0f %.0f]\n",
		res.Status, len(res.StepSizes), res.X[0], res.X[1])
	// Output:
	// Converged after 1 step(s): x = [0 0]
}
