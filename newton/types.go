// Package newton: core types, configuration record and sentinel errors.
package newton

import (
	"errors"

	"github.com/katalvlaran/descent/matrix"
)

// Objective is a pure function mapping a fixed-dimension real vector to a
// real scalar. It must not retain or mutate x.
type Objective func(x []float64) float64

// Gradient is the first derivative of an Objective: it maps x to a vector
// of the same dimension. The returned slice is owned by the caller of the
// minimizer; implementations must allocate, not reuse, storage.
type Gradient func(x []float64) []float64

// Hessian is the second derivative of an Objective: it maps x to a square
// d×d matrix (symmetric for twice continuously differentiable f).
type Hessian func(x []float64) *matrix.Dense

// Sentinel errors returned by Minimize.
var (
	// ErrNilObjective indicates a nil Objective callable.
	ErrNilObjective = errors.New("newton: objective is nil")

	// ErrNilGradient indicates a nil Gradient callable.
	ErrNilGradient = errors.New("newton: gradient is nil")

	// ErrNilHessian indicates a nil Hessian callable.
	ErrNilHessian = errors.New("newton: hessian is nil")

	// ErrEmptyStart indicates an empty starting vector.
	ErrEmptyStart = errors.New("newton: starting point is empty")

	// ErrBadAlpha indicates AlphaBar <= 0.
	ErrBadAlpha = errors.New("newton: AlphaBar must be positive")

	// ErrBadRho indicates a backtracking factor outside (0,1).
	ErrBadRho = errors.New("newton: Rho must lie in (0,1)")

	// ErrBadDecrease indicates a sufficient-decrease constant outside (0,1).
	ErrBadDecrease = errors.New("newton: C must lie in (0,1)")

	// ErrBadTolerance indicates Epsilon <= 0.
	ErrBadTolerance = errors.New("newton: Epsilon must be positive")

	// ErrBadMaxIter indicates MaxIter <= 0.
	ErrBadMaxIter = errors.New("newton: MaxIter must be positive")

	// ErrBadMaxBacktracks indicates MaxBacktracks <= 0 while the line
	// search is enabled.
	ErrBadMaxBacktracks = errors.New("newton: MaxBacktracks must be positive")

	// ErrDimensionMismatch indicates that a gradient or Hessian evaluation
	// returned a shape inconsistent with the starting vector.
	ErrDimensionMismatch = errors.New("newton: derivative dimension mismatch")

	// ErrLineSearchFailed indicates that the backtracking loop could not
	// produce an acceptable step: either the Armijo condition was not
	// satisfied within MaxBacktracks reductions, or α shrank until the
	// probe point x + α·d rounded to x itself, at which point the
	// condition can only hold vacuously. Both exits make a stalled
	// search a reportable failure instead of a silent spin on
	// zero-length steps. The partial traces up to the failing iteration
	// are preserved in the returned Result.
	ErrLineSearchFailed = errors.New("newton: line search failed to satisfy the Armijo condition")
)

// Status reports why a run terminated. Both non-failure exits are valid:
// callers must inspect the Status to distinguish them.
type Status int

const (
	// Converged: the gradient norm fell to Epsilon or below.
	Converged Status = iota

	// BudgetExhausted: MaxIter iterations were spent without reaching the
	// gradient tolerance. The best-so-far iterate is still returned.
	BudgetExhausted

	// LineSearchFailed: the Armijo loop hit MaxBacktracks. Reported
	// together with ErrLineSearchFailed.
	LineSearchFailed
)

// String returns a short human-readable form of the status.
func (s Status) String() string {
	switch s {
	case Converged:
		return "Converged"
	case BudgetExhausted:
		return "BudgetExhausted"
	case LineSearchFailed:
		return "LineSearchFailed"
	default:
		return "Unknown"
	}
}

// StepKind tags the direction used for one accepted step. It is a local
// two-variant choice, not an extensibility point: either the Newton
// system produced the direction, or the solve degraded to steepest
// descent.
type StepKind int

const (
	// NewtonStep: d solves H·d = −g.
	NewtonStep StepKind = iota

	// GradientStep: d = −g, taken because the Hessian was singular or the
	// Newton solve produced a non-finite direction.
	GradientStep
)

// String returns a short human-readable form of the step kind.
func (k StepKind) String() string {
	if k == GradientStep {
		return "GradientStep"
	}

	return "NewtonStep"
}

// Options configures a minimization run. The record is immutable for the
// duration of the run; validation happens before the first evaluation.
type Options struct {
	// AlphaBar is the initial step bound ᾱ for the line search (> 0).
	// With the line search disabled it is the fixed step length.
	AlphaBar float64

	// Rho is the backtracking factor ρ ∈ (0,1); each rejection shrinks
	// the candidate step to ρ·α.
	Rho float64

	// C is the Armijo sufficient-decrease constant c ∈ (0,1).
	C float64

	// Epsilon is the gradient-norm tolerance ε (> 0) for convergence.
	Epsilon float64

	// MaxIter is the iteration budget (> 0).
	MaxIter int

	// MaxBacktracks bounds the Armijo rejections per iteration (> 0 when
	// the line search is enabled; ignored otherwise).
	MaxBacktracks int

	// LineSearch enables the Armijo backtracking loop. Disabled, every
	// iteration takes the full step AlphaBar.
	LineSearch bool
}

// DefaultOptions returns the configuration used throughout the package
// documentation: ᾱ=1, ρ=0.5, c=0.1, ε=1e-4, 100 iterations, 60 backtracks,
// line search enabled. With ρ=0.5 the candidate step usually rounds to
// zero length after ~54 rejections, so the precision exit of the search
// typically fires before the backtrack bound; the bound remains as the
// hard ceiling for configurations with ρ near 1.
func DefaultOptions() Options {
	return Options{
		AlphaBar:      1.0,
		Rho:           0.5,
		C:             0.1,
		Epsilon:       1e-4,
		MaxIter:       100,
		MaxBacktracks: 60,
		LineSearch:    true,
	}
}

// FixedStepOptions returns the degenerate configuration of the classic
// Newton iteration: full step (ᾱ=1), no line search, the given gradient
// tolerance and iteration budget.
func FixedStepOptions(epsilon float64, maxIter int) Options {
	return Options{
		AlphaBar:      1.0,
		Rho:           0.5,
		C:             0.1,
		Epsilon:       epsilon,
		MaxIter:       maxIter,
		MaxBacktracks: 1,
		LineSearch:    false,
	}
}

// validate checks the configuration record in a fixed order and returns
// the first violated sentinel, or nil.
func (o Options) validate() error {
	if o.AlphaBar <= 0 {
		return ErrBadAlpha
	}
	if o.Rho <= 0 || o.Rho >= 1 {
		return ErrBadRho
	}
	if o.C <= 0 || o.C >= 1 {
		return ErrBadDecrease
	}
	if o.Epsilon <= 0 {
		return ErrBadTolerance
	}
	if o.MaxIter <= 0 {
		return ErrBadMaxIter
	}
	if o.LineSearch && o.MaxBacktracks <= 0 {
		return ErrBadMaxBacktracks
	}

	return nil
}

// Result carries everything a run produces. Iterates[0] is always the
// starting point; every accepted transition appends one entry to
// Iterates, StepSizes and Steps, so
// len(StepSizes) == len(Steps) == len(Iterates)-1 always holds.
type Result struct {
	// X is the terminal vector: the converged iterate, or the last
	// accepted iterate when the budget ran out.
	X []float64

	// Status reports why the run stopped.
	Status Status

	// Iterates is the ordered sequence x_0, x_1, …, x_k. Each entry is
	// owned solely by this run and never aliased to caller or callee
	// storage.
	Iterates [][]float64

	// StepSizes records the accepted line-search step length per
	// iteration, in order.
	StepSizes []float64

	// Steps records, per iteration, whether the Newton direction or the
	// steepest-descent fallback was taken.
	Steps []StepKind
}
