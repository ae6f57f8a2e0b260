package portfolio

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Returns converts a price history into period-over-period simple
// returns. Rows are periods in chronological order, columns are assets;
// the result has one row fewer than the input, with
// r[t][j] = prices[t+1][j]/prices[t][j] − 1.
//
// Errors: ErrTooFewPeriods, ErrNoAssets, ErrRaggedInput,
// ErrNonPositivePrice.
func Returns(prices [][]float64) ([][]float64, error) {
	if len(prices) < 2 {
		return nil, ErrTooFewPeriods
	}
	width := len(prices[0])
	if width == 0 {
		return nil, ErrNoAssets
	}
	for _, row := range prices {
		if len(row) != width {
			return nil, ErrRaggedInput
		}
		for _, p := range row {
			if p <= 0 {
				return nil, ErrNonPositivePrice
			}
		}
	}

	rets := make([][]float64, len(prices)-1)
	for t := range rets {
		rets[t] = make([]float64, width)
		for j := 0; j < width; j++ {
			rets[t][j] = prices[t+1][j]/prices[t][j] - 1
		}
	}

	return rets, nil
}

// Estimate computes the sample mean and the sample covariance matrix
// (n−1 normalization) of a return history.
//
// Errors: ErrTooFewPeriods (covariance needs at least two return rows),
// ErrNoAssets, ErrRaggedInput.
func Estimate(returns [][]float64) (*Stats, error) {
	if len(returns) < 2 {
		return nil, ErrTooFewPeriods
	}
	width := len(returns[0])
	if width == 0 {
		return nil, ErrNoAssets
	}
	for _, row := range returns {
		if len(row) != width {
			return nil, ErrRaggedInput
		}
	}

	// 1) Pack the history into a dense periods×assets matrix.
	data := mat.NewDense(len(returns), width, nil)
	for t, row := range returns {
		data.SetRow(t, row)
	}

	// 2) Column means.
	mean := make([]float64, width)
	col := make([]float64, len(returns))
	for j := 0; j < width; j++ {
		mat.Col(col, j, data)
		mean[j] = stat.Mean(col, nil)
	}

	// 3) Sample covariance. SymDense keeps the matrix symmetric by
	//    construction, matching the usual 0.5(C+Cᵀ) cleanup.
	cov := mat.NewSymDense(width, nil)
	stat.CovarianceMatrix(cov, data, nil)

	return &Stats{Mean: mean, Cov: cov}, nil
}
