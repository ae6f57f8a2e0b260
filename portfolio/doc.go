// Package portfolio implements mean-variance portfolio selection: given
// a history of asset prices it estimates expected returns and their
// covariance, then finds the allocation of minimum variance whose
// expected return reaches a target.
//
// The pipeline has three stages:
//
//	rets, err := portfolio.Returns(prices)       // period-over-period returns
//	stats, err := portfolio.Estimate(rets)       // sample mean + covariance
//	alloc, err := portfolio.MinimumRisk(stats,
//	    portfolio.DefaultOptions(0.12))          // min xᵀCx, r·x ≥ 0.12
//
// MinimumRisk solves
//
//	min  xᵀ C x
//	s.t. Σ xᵢ = 1,  r·x ≥ target,  x ≥ 0
//
// by eliminating the budget equality through substitution, folding the
// inequalities into a logarithmic barrier, and driving the resulting
// smooth unconstrained problems through the newton package with a
// geometrically shrinking barrier weight. The target must lie strictly
// below the best single expected return; otherwise no strictly feasible
// allocation exists and ErrInfeasibleTarget is returned.
//
// Short positions are not modeled (x ≥ 0 throughout).
package portfolio
