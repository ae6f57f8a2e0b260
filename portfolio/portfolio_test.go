package portfolio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/descent/portfolio"
)

// TestReturns_Validation verifies the shape and domain guards of the
// price-to-return conversion.
func TestReturns_Validation(t *testing.T) {
	_, err := portfolio.Returns([][]float64{{10, 20}})
	assert.ErrorIs(t, err, portfolio.ErrTooFewPeriods)

	_, err = portfolio.Returns([][]float64{{}, {}})
	assert.ErrorIs(t, err, portfolio.ErrNoAssets)

	_, err = portfolio.Returns([][]float64{{10, 20}, {11}})
	assert.ErrorIs(t, err, portfolio.ErrRaggedInput)

	_, err = portfolio.Returns([][]float64{{10, 20}, {11, 0}})
	assert.ErrorIs(t, err, portfolio.ErrNonPositivePrice)

	_, err = portfolio.Returns([][]float64{{10, -5}, {11, 20}})
	assert.ErrorIs(t, err, portfolio.ErrNonPositivePrice)
}

// TestReturnsEstimate_Numeric verifies the statistics on a hand-computed
// three-period, two-asset history.
func TestReturnsEstimate_Numeric(t *testing.T) {
	prices := [][]float64{
		{10, 20},
		{11, 18},
		{11, 19.8},
	}

	rets, err := portfolio.Returns(prices)
	require.NoError(t, err)
	require.Len(t, rets, 2)
	assert.InDelta(t, 0.1, rets[0][0], 1e-12)
	assert.InDelta(t, -0.1, rets[0][1], 1e-12)
	assert.InDelta(t, 0.0, rets[1][0], 1e-12)
	assert.InDelta(t, 0.1, rets[1][1], 1e-12)

	stats, err := portfolio.Estimate(rets)
	require.NoError(t, err)

	// Means: (0.1+0)/2 and (−0.1+0.1)/2.
	assert.InDelta(t, 0.05, stats.Mean[0], 1e-12)
	assert.InDelta(t, 0.0, stats.Mean[1], 1e-12)

	// Sample covariance with n−1 normalization.
	assert.InDelta(t, 0.005, stats.Cov.At(0, 0), 1e-12)
	assert.InDelta(t, 0.02, stats.Cov.At(1, 1), 1e-12)
	assert.InDelta(t, -0.01, stats.Cov.At(0, 1), 1e-12)
	assert.InDelta(t, stats.Cov.At(0, 1), stats.Cov.At(1, 0), 0)
}

// TestEstimate_Validation verifies the estimation guards.
func TestEstimate_Validation(t *testing.T) {
	_, err := portfolio.Estimate([][]float64{{0.1, 0.2}})
	assert.ErrorIs(t, err, portfolio.ErrTooFewPeriods)

	_, err = portfolio.Estimate([][]float64{{}, {}})
	assert.ErrorIs(t, err, portfolio.ErrNoAssets)

	_, err = portfolio.Estimate([][]float64{{0.1, 0.2}, {0.1}})
	assert.ErrorIs(t, err, portfolio.ErrRaggedInput)
}

// TestMinimumRisk_Validation verifies the input and option guards.
func TestMinimumRisk_Validation(t *testing.T) {
	_, err := portfolio.MinimumRisk(nil, portfolio.DefaultOptions(0.1))
	assert.ErrorIs(t, err, portfolio.ErrNilStats)

	stats := &portfolio.Stats{
		Mean: []float64{0.1, 0.1},
		Cov:  mat.NewSymDense(2, []float64{0.04, 0, 0, 0.04}),
	}

	bad := portfolio.DefaultOptions(0.05)
	bad.Barrier = 0
	_, err = portfolio.MinimumRisk(stats, bad)
	assert.ErrorIs(t, err, portfolio.ErrBadBarrier)

	bad = portfolio.DefaultOptions(0.05)
	bad.Shrink = 1
	_, err = portfolio.MinimumRisk(stats, bad)
	assert.ErrorIs(t, err, portfolio.ErrBadShrink)

	bad = portfolio.DefaultOptions(0.05)
	bad.Outer = 0
	_, err = portfolio.MinimumRisk(stats, bad)
	assert.ErrorIs(t, err, portfolio.ErrBadOuter)

	bad = portfolio.DefaultOptions(0.05)
	bad.Tol = 0
	_, err = portfolio.MinimumRisk(stats, bad)
	assert.ErrorIs(t, err, portfolio.ErrBadTolerance)
}

// TestMinimumRisk_EqualReturns verifies the symmetric two-asset case:
// identical returns and variances, loose target. The minimum-variance
// portfolio is the even split.
func TestMinimumRisk_EqualReturns(t *testing.T) {
	stats := &portfolio.Stats{
		Mean: []float64{0.1, 0.1},
		Cov:  mat.NewSymDense(2, []float64{0.04, 0, 0, 0.04}),
	}

	alloc, err := portfolio.MinimumRisk(stats, portfolio.DefaultOptions(0.05))
	require.NoError(t, err)

	assert.InDelta(t, 0.5, alloc.Weights[0], 1e-3)
	assert.InDelta(t, 0.5, alloc.Weights[1], 1e-3)
	assert.InDelta(t, 0.1, alloc.ExpReturn, 1e-3)
	assert.InDelta(t, 0.02, alloc.Risk, 1e-3)
}

// TestMinimumRisk_BindingTarget verifies the case where the target
// forces the portfolio off the unconstrained optimum: with unit
// variances and returns 0.05/0.15, a 0.12 target pins the solution at
// x = (0.3, 0.7) where the return constraint holds with equality.
func TestMinimumRisk_BindingTarget(t *testing.T) {
	stats := &portfolio.Stats{
		Mean: []float64{0.05, 0.15},
		Cov:  mat.NewSymDense(2, []float64{1, 0, 0, 1}),
	}

	alloc, err := portfolio.MinimumRisk(stats, portfolio.DefaultOptions(0.12))
	require.NoError(t, err)

	assert.InDelta(t, 0.3, alloc.Weights[0], 1e-3)
	assert.InDelta(t, 0.7, alloc.Weights[1], 1e-3)
	assert.InDelta(t, 0.12, alloc.ExpReturn, 1e-3)
	assert.InDelta(t, 0.58, alloc.Risk, 2e-3)
}

// TestMinimumRisk_SimplexInvariants verifies the feasibility of the
// returned allocation on a three-asset instance: weights on the
// simplex, return at or above target.
func TestMinimumRisk_SimplexInvariants(t *testing.T) {
	stats := &portfolio.Stats{
		Mean: []float64{0.02, 0.08, 0.14},
		Cov: mat.NewSymDense(3, []float64{
			0.01, 0.002, 0.001,
			0.002, 0.04, 0.003,
			0.001, 0.003, 0.09,
		}),
	}

	alloc, err := portfolio.MinimumRisk(stats, portfolio.DefaultOptions(0.06))
	require.NoError(t, err)

	var sum float64
	for i, w := range alloc.Weights {
		assert.GreaterOrEqual(t, w, -1e-9, "asset %d", i)
		sum += w
	}
	assert.InDelta(t, 1, sum, 1e-9)
	assert.GreaterOrEqual(t, alloc.ExpReturn, 0.06-1e-6)
	assert.Greater(t, alloc.Risk, 0.0)
}

// TestMinimumRisk_InfeasibleTarget verifies that a target at or above
// the best single expected return is rejected.
func TestMinimumRisk_InfeasibleTarget(t *testing.T) {
	stats := &portfolio.Stats{
		Mean: []float64{0.05, 0.15},
		Cov:  mat.NewSymDense(2, []float64{1, 0, 0, 1}),
	}

	_, err := portfolio.MinimumRisk(stats, portfolio.DefaultOptions(0.2))
	assert.ErrorIs(t, err, portfolio.ErrInfeasibleTarget)

	// Equality is infeasible too: no strictly interior point exists.
	_, err = portfolio.MinimumRisk(stats, portfolio.DefaultOptions(0.15))
	assert.ErrorIs(t, err, portfolio.ErrInfeasibleTarget)
}

// TestMinimumRisk_SingleAsset verifies the degenerate one-asset case
// where the budget constraint pins the whole answer.
func TestMinimumRisk_SingleAsset(t *testing.T) {
	stats := &portfolio.Stats{
		Mean: []float64{0.1},
		Cov:  mat.NewSymDense(1, []float64{0.04}),
	}

	alloc, err := portfolio.MinimumRisk(stats, portfolio.DefaultOptions(0.05))
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, alloc.Weights)
	assert.InDelta(t, 0.1, alloc.ExpReturn, 1e-12)
	assert.InDelta(t, 0.04, alloc.Risk, 1e-12)

	_, err = portfolio.MinimumRisk(stats, portfolio.DefaultOptions(0.2))
	assert.ErrorIs(t, err, portfolio.ErrInfeasibleTarget)
}
