// Package lpform expresses general-form linear programs — variables with
// arbitrary lower/upper bounds (including ±Inf) and constraint rows of
// any sense — and solves them through the standard-form simplex of
// gonum.org/v1/gonum/optimize/convex/lp.
//
// The conversion to standard form (min c·x subject to A·x = b, x ≥ 0) is
// mechanical and fully deterministic:
//   - a variable with a finite lower bound is shifted: x = lo + x′;
//   - a variable bounded only above is reflected: x = hi − x″;
//   - a free variable is split: x = x⁺ − x⁻;
//   - a variable with lo == hi is fixed and eliminated entirely;
//   - a two-sided bound adds the row x′ ≤ hi − lo;
//   - every inequality row gains a nonnegative slack (≤) or surplus (≥).
//
// The solution is mapped back to the original variable space and the
// objective is re-evaluated there, so bound shifts never leak into
// reported values.
//
// Usage:
//
//	p := lpform.New()
//	x := p.AddVariable(2, 0, math.Inf(1))          // cost 2, x ≥ 0
//	y := p.AddVariable(3, math.Inf(-1), math.Inf(1)) // cost 3, free
//	p.AddConstraint(map[lpform.VarID]float64{x: 1, y: 1}, lpform.GreaterEq, 4)
//	sol, err := p.Solve(0) // 0 = collaborator default tolerance
//
// Validation is deferred to Solve, in the fluent-builder manner: AddVariable
// and AddConstraint never fail, and the first structural problem is
// reported as a sentinel when the program is compiled.
package lpform
