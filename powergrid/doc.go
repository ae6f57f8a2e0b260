// Package powergrid solves DC power-flow economic dispatch: choose
// generator outputs of minimum total cost so that every bus balances and
// every transmission line respects both its thermal limit and the DC
// approximation f = B·(θᵢ − θⱼ), where B is the line susceptance and θ
// the bus voltage angles.
//
// A Grid is assembled bus by bus:
//
//	g := powergrid.NewGrid()
//	g.AddGenerator(1, 0, 100, 1.0) // bus 1, output ∈ [0, 100], cost 1/MW
//	g.AddLoad(2, 50)               // bus 2 consumes 50
//	g.AddLine(1, 2, 10, 100)       // susceptance 10, |flow| ≤ 100
//	g.SetReference(1)              // θ₁ pinned to zero
//
//	plan, err := g.Dispatch(0)
//	// plan.Generation[1] == 50, plan.LineFlow[0] == 50, plan.Angle[2] == -5
//
// Dispatch compiles the grid into a linear program over generator
// outputs, line flows and bus angles and solves it through lpform. The
// angles carry no cost; they exist so the coupling rows encode
// Kirchhoff's voltage law, which is what distinguishes DC power flow
// from plain min-cost flow. Each Add* method validates its arguments
// eagerly and returns a sentinel error, leaving the grid unchanged on
// failure.
package powergrid
