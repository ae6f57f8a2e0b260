package portfolio

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/descent/matrix"
	"github.com/katalvlaran/descent/newton"
)

// MinimumRisk finds the allocation of minimum variance whose expected
// return reaches opts.TargetReturn:
//
//	min  xᵀ C x   s.t.  Σ xᵢ = 1,  r·x ≥ target,  x ≥ 0.
//
// The budget equality is eliminated by substituting
// x_n = 1 − (y₁ + … + y_{n−1}); the remaining inequalities become a
// logarithmic barrier over y, and each barrier subproblem is minimized
// with newton.Minimize, warm-starting the next from the previous
// optimum while the barrier weight shrinks geometrically.
//
// Errors: ErrNilStats, option sentinels via validate, ErrTooFewPeriods
// style shape mismatches as ErrRaggedInput, ErrInfeasibleTarget when the
// target is not strictly below max(stats.Mean). newton sentinel errors
// are wrapped and returned if an inner solve fails outright.
func MinimumRisk(stats *Stats, opts Options) (*Allocation, error) {
	if stats == nil || stats.Cov == nil || len(stats.Mean) == 0 {
		return nil, ErrNilStats
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	n := len(stats.Mean)
	if stats.Cov.SymmetricDim() != n {
		return nil, ErrRaggedInput
	}

	r, cov, target := stats.Mean, stats.Cov, opts.TargetReturn

	// Single asset: the budget constraint pins the answer.
	if n == 1 {
		if r[0] < target {
			return nil, ErrInfeasibleTarget
		}

		return &Allocation{Weights: []float64{1}, ExpReturn: r[0], Risk: cov.At(0, 0)}, nil
	}

	rbest := floats.Max(r)
	if target >= rbest {
		return nil, ErrInfeasibleTarget
	}

	// 1) Strictly feasible start: blend the uniform portfolio toward the
	//    best asset just far enough that r·x clears the target.
	y := interiorStart(r, target)

	// 2) Barrier rounds: minimize xᵀCx − μ Σ ln(slack) over y, then
	//    shrink μ and warm-start.
	mu := opts.Barrier
	inner := newton.DefaultOptions()
	inner.Epsilon = opts.Tol
	for round := 0; round < opts.Outer; round++ {
		f, grad, hess := barrierProblem(r, cov, target, mu)
		res, err := newton.Minimize(f, grad, hess, y, inner)
		if err != nil {
			// A stalled line search near the boundary still carries the
			// last accepted interior point; keep it and stop shrinking.
			if errors.Is(err, newton.ErrLineSearchFailed) {
				y = res.X

				break
			}

			return nil, fmt.Errorf("portfolio: barrier round %d: %w", round, err)
		}
		y = res.X
		mu *= opts.Shrink
	}

	// 3) Recover the full weight vector and its statistics.
	x := expand(y)

	return &Allocation{
		Weights:   x,
		ExpReturn: floats.Dot(r, x),
		Risk:      quadForm(cov, x),
	}, nil
}

// interiorStart returns a y (the first n−1 weights) strictly inside the
// feasible region: all weights positive and r·x strictly above target.
func interiorStart(r []float64, target float64) []float64 {
	n := len(r)
	rbar := floats.Sum(r) / float64(n)
	rbest := floats.Max(r)
	best := floats.MaxIdx(r)

	// Fraction of the uniform→best path needed to clear the target, then
	// half of the remaining slack on top for strictness.
	need := 0.0
	if rbest > rbar {
		need = (target - rbar) / (rbest - rbar)
	}
	if need < 0 {
		need = 0
	}
	t := 0.5 * (1 + need)

	y := make([]float64, n-1)
	for i := range y {
		y[i] = (1 - t) / float64(n)
		if i == best {
			y[i] += t
		}
	}

	return y
}

// expand maps the reduced vector y back to the full simplex point x with
// x_n = 1 − Σy.
func expand(y []float64) []float64 {
	x := make([]float64, len(y)+1)
	copy(x, y)
	x[len(y)] = 1 - floats.Sum(y)

	return x
}

// quadForm evaluates xᵀCx.
func quadForm(cov *mat.SymDense, x []float64) float64 {
	var q float64
	for i := range x {
		for j := range x {
			q += x[i] * cov.At(i, j) * x[j]
		}
	}

	return q
}

// barrierProblem builds the smooth subproblem for one barrier weight:
// objective, gradient and Hessian over the reduced variable y ∈ R^{n−1}.
// Outside the strictly feasible region the objective is +Inf, which
// makes the Armijo search backtrack into the interior; gradient and
// Hessian are only ever evaluated at accepted (interior) points.
func barrierProblem(r []float64, cov *mat.SymDense, target, mu float64) (newton.Objective, newton.Gradient, newton.Hessian) {
	n := len(r)
	m := n - 1

	// a_i = r_i − r_n is the reduced return direction; the return slack
	// is s_r = a·y + (r_n − target).
	a := make([]float64, m)
	for i := range a {
		a[i] = r[i] - r[n-1]
	}
	c0 := r[n-1] - target

	// slacks returns (s_n, s_r) along with validity of the whole point.
	slacks := func(y []float64) (sn, sr float64, ok bool) {
		sn = 1 - floats.Sum(y)
		sr = floats.Dot(a, y) + c0
		if sn <= 0 || sr <= 0 {
			return 0, 0, false
		}
		for _, yi := range y {
			if yi <= 0 {
				return 0, 0, false
			}
		}

		return sn, sr, true
	}

	f := func(y []float64) float64 {
		sn, sr, ok := slacks(y)
		if !ok {
			return math.Inf(1)
		}
		v := quadForm(cov, expand(y))
		for _, yi := range y {
			v -= mu * math.Log(yi)
		}
		v -= mu * math.Log(sn)
		v -= mu * math.Log(sr)

		return v
	}

	grad := func(y []float64) []float64 {
		sn, sr, _ := slacks(y)
		x := expand(y)

		// cx_i = (Cx)_i; the reduced gradient of xᵀCx is 2(cx_i − cx_n).
		cx := make([]float64, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				cx[i] += cov.At(i, j) * x[j]
			}
		}

		g := make([]float64, m)
		for i := range g {
			g[i] = 2 * (cx[i] - cx[n-1])
			g[i] -= mu / y[i]      // yᵢ ≥ 0 barrier
			g[i] += mu / sn        // x_n ≥ 0 barrier
			g[i] -= mu * a[i] / sr // return barrier
		}

		return g
	}

	hess := func(y []float64) *matrix.Dense {
		sn, sr, _ := slacks(y)

		rows := make([][]float64, m)
		for i := 0; i < m; i++ {
			rows[i] = make([]float64, m)
			for j := 0; j < m; j++ {
				// Reduced curvature of xᵀCx.
				v := 2 * (cov.At(i, j) - cov.At(i, n-1) - cov.At(n-1, j) + cov.At(n-1, n-1))
				v += mu / (sn * sn)               // x_n barrier
				v += mu * a[i] * a[j] / (sr * sr) // return barrier
				if i == j {
					v += mu / (y[i] * y[i]) // yᵢ barrier
				}
				rows[i][j] = v
			}
		}
		h, _ := matrix.NewDenseFromRows(rows)

		return h
	}

	return f, grad, hess
}
