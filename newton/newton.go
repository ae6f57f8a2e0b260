package newton

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/descent/matrix"
)

// Minimize runs the damped Newton method from x0 and returns the full run
// record. The starting vector is copied; neither x0 nor any value handed
// to the callables is retained or mutated.
//
// Per iteration k (0-indexed, bounded by opts.MaxIter):
//  1. g = grad(x_k). If ‖g‖₂ ≤ Epsilon the run stops with Converged;
//     the current iteration leaves no trace entry.
//  2. H = hess(x_k); solve H·d = −g. If the solve reports
//     matrix.ErrSingular, or produces a non-finite direction, degrade to
//     d = −g and record GradientStep. This is a silent, reproducible
//     fallback — never an error.
//  3. With the line search enabled, backtrack α from AlphaBar by factor
//     Rho until the Armijo condition
//     f(x_k + α·d) ≤ f(x_k) + C·α·(g·d)
//     holds, allowing at most MaxBacktracks reductions. Exceeding the
//     bound, or shrinking α until x_k + α·d rounds to x_k itself (the
//     candidate step fell below numerical precision), returns
//     ErrLineSearchFailed alongside the partial Result.
//     With the line search disabled, α = AlphaBar unconditionally.
//  4. Accept x_{k+1} = x_k + α·d and append to Iterates, StepSizes and
//     Steps.
//
// Exhausting MaxIter is a valid exit, not an error: the Result carries
// Status == BudgetExhausted and the last accepted iterate. Callers must
// inspect Status to tell the two non-failure exits apart.
//
// Errors: the ErrNil*/ErrEmptyStart/ErrBad* validation sentinels (before
// any evaluation), ErrDimensionMismatch if a derivative evaluation
// returns an inconsistent shape, ErrLineSearchFailed per step 3.
func Minimize(f Objective, grad Gradient, hess Hessian, x0 []float64, opts Options) (*Result, error) {
	// 1) Validate callables and the starting vector before any evaluation.
	if f == nil {
		return nil, ErrNilObjective
	}
	if grad == nil {
		return nil, ErrNilGradient
	}
	if hess == nil {
		return nil, ErrNilHessian
	}
	if len(x0) == 0 {
		return nil, ErrEmptyStart
	}

	// 2) Validate the configuration record.
	if err := opts.validate(); err != nil {
		return nil, err
	}

	// 3) Prepare the run state: private copy of x0 and the trace storage.
	dim := len(x0)
	x := make([]float64, dim)
	copy(x, x0)

	res := &Result{
		Iterates:  [][]float64{append([]float64(nil), x...)},
		StepSizes: make([]float64, 0, opts.MaxIter),
		Steps:     make([]StepKind, 0, opts.MaxIter),
	}

	var (
		k, b  int       // iteration and backtrack counters
		alpha float64   // candidate step length
		gd    float64   // directional derivative g·d
		fx    float64   // objective at the current iterate
		g     []float64 // gradient at the current iterate
		d     []float64 // search direction
		neg   = make([]float64, dim) // right-hand side −g
		trial = make([]float64, dim) // line-search probe point
	)

	for k = 0; k < opts.MaxIter; k++ {
		// 4) Gradient and convergence test. A converged iteration is not
		//    counted toward the step trace.
		g = grad(x)
		if len(g) != dim {
			return nil, fmt.Errorf("gradient at iteration %d: %w", k, ErrDimensionMismatch)
		}
		if floats.Norm(g, 2) <= opts.Epsilon {
			res.X = res.Iterates[len(res.Iterates)-1]
			res.Status = Converged

			return res, nil
		}

		// 5) Newton direction from H·d = −g, with the steepest-descent
		//    fallback on a singular or numerically unusable system.
		h := hess(x)
		if h == nil || h.Rows() != dim || h.Cols() != dim {
			return nil, fmt.Errorf("hessian at iteration %d: %w", k, ErrDimensionMismatch)
		}
		for i := 0; i < dim; i++ {
			neg[i] = -g[i]
		}
		kind := NewtonStep
		solved, err := matrix.Solve(h, neg)
		switch {
		case err == nil && allFinite(solved):
			d = solved
		case err == nil || errors.Is(err, matrix.ErrSingular):
			// Silent degrade: pure steepest descent for this step.
			d = append(d[:0], neg...)
			kind = GradientStep
		default:
			// Anything else is a programming error surfaced by the kernel.
			return nil, fmt.Errorf("newton direction at iteration %d: %w", k, err)
		}

		// 6) Step length: Armijo backtracking, or the fixed full step.
		alpha = opts.AlphaBar
		if opts.LineSearch {
			fx = f(x)
			gd = floats.Dot(g, d)
			for b = 0; ; b++ {
				floats.AddScaledTo(trial, x, alpha, d)
				if floats.Equal(trial, x) {
					// α·d vanished in rounding: the probe point collapsed
					// onto the iterate, so the sufficient-decrease test
					// would from here on hold vacuously (both sides round
					// to fx) and the run would spin on zero-length steps.
					res.X = res.Iterates[len(res.Iterates)-1]
					res.Status = LineSearchFailed

					return res, ErrLineSearchFailed
				}
				if f(trial) <= fx+opts.C*alpha*gd {
					break
				}
				if b == opts.MaxBacktracks {
					res.X = res.Iterates[len(res.Iterates)-1]
					res.Status = LineSearchFailed

					return res, ErrLineSearchFailed
				}
				alpha *= opts.Rho // strictly decreasing candidate step
			}
		}

		// 7) Accept the transition and record the trace entry.
		floats.AddScaledTo(x, x, alpha, d)
		res.Iterates = append(res.Iterates, append([]float64(nil), x...))
		res.StepSizes = append(res.StepSizes, alpha)
		res.Steps = append(res.Steps, kind)
	}

	// 8) Budget exhausted: a valid exit with the last accepted iterate.
	res.X = res.Iterates[len(res.Iterates)-1]
	res.Status = BudgetExhausted

	return res, nil
}

// allFinite reports whether every component of v is a finite float64.
func allFinite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
