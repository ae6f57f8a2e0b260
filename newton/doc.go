// Package newton implements a damped Newton method for unconstrained
// smooth minimization: at each iterate the Newton system H·d = −g is
// solved for a descent direction, an Armijo backtracking line search
// picks a step length guaranteeing sufficient decrease, and the run
// stops as soon as the gradient norm falls under tolerance or the
// iteration budget is spent.
//
// 🚀 What does it do?
//
//	Given an objective f, its gradient ∇f and its Hessian ∇²f as plain
//	callables over []float64, Minimize produces:
//	  • the terminal point X,
//	  • the full iterate sequence x_0, x_1, …, x_k,
//	  • the accepted step length per iteration,
//	  • the direction kind per iteration (Newton vs gradient fallback),
//	  • a Status saying why the run stopped.
//
// ✨ Key behaviors:
//   - Singular (or numerically unusable) Hessian at an iterate degrades
//     silently to the steepest-descent direction d = −g for that step.
//     The degrade is recorded in Result.Steps, never reported as an error.
//   - The Armijo loop is bounded by MaxBacktracks; exhausting the bound
//     surfaces ErrLineSearchFailed together with the partial traces.
//   - Disabling the line search (Options.LineSearch = false) yields the
//     classic fixed-step Newton iteration — the same code path with the
//     backtracking loop switched off, one step of length AlphaBar per
//     iteration.
//   - Runs are pure and deterministic: identical inputs produce
//     bit-for-bit identical traces, and independent runs share no state.
//
// ⚙️ Usage:
//
//	res, err := newton.Minimize(f, grad, hess, []float64{-3, -3}, newton.DefaultOptions())
//	if err != nil {
//	    // ErrLineSearchFailed still carries the partial trace in res
//	}
//	fmt.Println(res.Status, res.X, len(res.StepSizes))
//
// Complexity per iteration: one gradient, one Hessian, one O(d³) solve,
// and at most MaxBacktracks+1 objective evaluations.
package newton
