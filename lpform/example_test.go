package lpform_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/descent/lpform"
)

// ExampleProgram_Solve minimizes 2x + 3y subject to x + y = 4 with
// x ∈ [0, 3] and y ≥ 0. The optimum saturates the cheap variable first.
func ExampleProgram_Solve() {
	p := lpform.New()
	x := p.AddVariable(2, 0, 3)
	y := p.AddVariable(3, 0, math.Inf(1))
	p.AddConstraint(map[lpform.VarID]float64{x: 1, y: 1}, lpform.Eq, 4)

	sol, err := p.Solve(0)
	if err != nil {
		fmt.Println("solve:", err)
		return
	}

	fmt.Printf("x = %.1f, y = %.1f, objective = %.1f\n", sol.X[x], sol.X[y], sol.Objective)
	// Output: x = 3.0, y = 1.0, objective = 9.0
}
