// Package portfolio: data records, options and sentinel errors.
package portfolio

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by the estimation and optimization stages.
var (
	// ErrTooFewPeriods indicates a price or return history with fewer
	// than two rows, from which no statistics can be formed.
	ErrTooFewPeriods = errors.New("portfolio: at least two periods required")

	// ErrNoAssets indicates an input with zero columns.
	ErrNoAssets = errors.New("portfolio: no assets")

	// ErrRaggedInput indicates rows of unequal length.
	ErrRaggedInput = errors.New("portfolio: rows have unequal length")

	// ErrNonPositivePrice indicates a price ≤ 0, for which a simple
	// return is undefined.
	ErrNonPositivePrice = errors.New("portfolio: prices must be positive")

	// ErrNilStats indicates a nil or incomplete Stats value.
	ErrNilStats = errors.New("portfolio: nil statistics")

	// ErrInfeasibleTarget indicates a target return at or above the best
	// single expected return; no strictly feasible allocation exists.
	ErrInfeasibleTarget = errors.New("portfolio: target return unreachable")

	// ErrBadBarrier indicates Options.Barrier ≤ 0.
	ErrBadBarrier = errors.New("portfolio: barrier weight must be positive")

	// ErrBadShrink indicates Options.Shrink outside (0, 1).
	ErrBadShrink = errors.New("portfolio: shrink factor must lie in (0, 1)")

	// ErrBadOuter indicates Options.Outer < 1.
	ErrBadOuter = errors.New("portfolio: outer iteration count must be at least 1")

	// ErrBadTolerance indicates Options.Tol ≤ 0.
	ErrBadTolerance = errors.New("portfolio: tolerance must be positive")
)

// Stats holds the sample statistics of a return history.
type Stats struct {
	// Mean is the expected return per asset.
	Mean []float64

	// Cov is the sample covariance matrix of the returns.
	Cov *mat.SymDense
}

// Options configures MinimumRisk.
type Options struct {
	// TargetReturn is the minimum acceptable expected return of the
	// allocation. Must be strictly below max(Mean).
	TargetReturn float64

	// Barrier is the initial log-barrier weight μ₀.
	Barrier float64

	// Shrink is the geometric factor applied to the barrier weight after
	// each outer round; must lie in (0, 1).
	Shrink float64

	// Outer is the number of barrier rounds.
	Outer int

	// Tol is the gradient-norm tolerance of each inner Newton solve.
	Tol float64
}

// DefaultOptions returns the reference configuration for the given
// target return: μ₀ = 0.01 shrunk by 0.2 over 12 rounds, inner
// tolerance 1e-9.
func DefaultOptions(target float64) Options {
	return Options{
		TargetReturn: target,
		Barrier:      1e-2,
		Shrink:       0.2,
		Outer:        12,
		Tol:          1e-9,
	}
}

// validate checks the option fields against their domains.
func (o Options) validate() error {
	if o.Barrier <= 0 {
		return ErrBadBarrier
	}
	if o.Shrink <= 0 || o.Shrink >= 1 {
		return ErrBadShrink
	}
	if o.Outer < 1 {
		return ErrBadOuter
	}
	if o.Tol <= 0 {
		return ErrBadTolerance
	}

	return nil
}

// Allocation is the result of MinimumRisk.
type Allocation struct {
	// Weights is the portfolio, one non-negative weight per asset,
	// summing to one.
	Weights []float64

	// ExpReturn is Mean · Weights.
	ExpReturn float64

	// Risk is the portfolio variance WeightsᵀC Weights.
	Risk float64
}
