// Package descent is a numerical-optimization toolkit: a damped Newton
// minimizer at the core, a general-form linear-programming front end,
// and three applied solvers built on top of them.
//
// 🚀 What is descent?
//
//	A small, deterministic library that brings together:
//		• Newton's method: damped (Armijo backtracking) and fixed-step,
//		  with full iterate and step-size traces
//		• Dense linear algebra: LU factorization, linear solve, MatVec
//		• Linear programs: free/bounded variables and ≤/≥/= rows,
//		  normalized to standard form and solved by simplex
//		• Min-cost flow: water-distribution networks over typed pipes
//		• DC power flow: economic dispatch with susceptance coupling
//		• Portfolios: mean-variance selection via a log-barrier scheme
//
// ✨ Why choose descent?
//
//   - Deterministic – identical inputs give bit-for-bit identical runs
//   - Inspectable – minimizers return their whole trajectory, not just
//     the answer
//   - Honest errors – every failure mode is a named sentinel, matched
//     with errors.Is
//   - Plain inputs – objectives are ordinary closures over []float64
//
// The packages, bottom to top:
//
//	matrix/    — dense row-major matrices, LU solve (Newton's workhorse)
//	newton/    — damped Newton with line search and gradient fallback
//	lpform/    — general-form LP → standard form → simplex
//	flownet/   — min-cost water-distribution flow, compiled to lpform
//	powergrid/ — DC power-flow economic dispatch, compiled to lpform
//	portfolio/ — mean-variance selection, driven through newton
//
// Quick taste, minimizing f(x) = x₁² + 2x₂²:
//
//	f := func(x []float64) float64 { return x[0]*x[0] + 2*x[1]*x[1] }
//	grad := func(x []float64) []float64 { return []float64{2 * x[0], 4 * x[1]} }
//	hess := func(x []float64) *matrix.Dense {
//		h, _ := matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 4}})
//		return h
//	}
//
//	res, err := newton.Minimize(f, grad, hess, []float64{3, -2}, newton.DefaultOptions())
//	// res.Status == newton.Converged, res.X ≈ [0 0]
//
// Each package carries its own focused documentation; start at newton
// for the minimizer contract and at lpform for the LP surface.
//
//	go get github.com/katalvlaran/descent
package descent
