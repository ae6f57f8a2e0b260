package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opLU     = "LU"
	opSolve  = "Solve"
	opMatVec = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is keeps matching the sentinel.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L.
// No pivoting is performed: the factorization is fully deterministic and a
// zero pivot is reported as ErrSingular rather than repaired.
//
// Stage 1 (Validate): A non-nil and square.
// Stage 2 (Factorize): for i = 0..n-1, build row i of U, guard the pivot,
// then column i of L — fixed order, flat indexing.
//
// Returns L (unit lower triangular) and U (upper triangular).
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: O(n³) time, O(n²) space.
func LU(a *Dense) (*Dense, *Dense, error) {
	// Validate input non-nil and square
	if err := ValidateSquare(a); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Allocate L and U
	n := a.r
	l := &Dense{r: n, c: n, data: make([]float64, n*n)}
	u := &Dense{r: n, c: n, data: make([]float64, n*n)}

	// Initialize L diagonal to 1 (unit lower triangular)
	var i, j, k int // loop iterators
	for i = 0; i < n; i++ {
		l.data[i*n+i] = 1.0
	}

	var sum, pivot float64
	var baseI, baseJ int // flat row offsets
	for i = 0; i < n; i++ {
		baseI = i * n

		// Compute U[i][j] for j >= i
		for j = i; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += l.data[baseI+k] * u.data[k*n+j]
			}
			u.data[baseI+j] = a.data[baseI+j] - sum
		}

		// Zero-pivot guard (deterministic singularity detection)
		if u.data[baseI+i] == 0 {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		// Compute L[j][i] for j > i
		pivot = u.data[baseI+i]
		for j = i + 1; j < n; j++ {
			sum = 0
			baseJ = j * n
			for k = 0; k < i; k++ {
				sum += l.data[baseJ+k] * u.data[k*n+i]
			}
			l.data[baseJ+i] = (a.data[baseJ+i] - sum) / pivot
		}
	}

	// Return L and U
	return l, u, nil
}

// Solve finds x such that A*x = b for a single right-hand side.
//
// Stage 1 (Validate): A non-nil and square, len(b) == n.
// Stage 2 (Factorize): A = L*U via the non-pivoting Doolittle kernel.
// Stage 3 (Substitute): forward solve L*y = b, then backward solve U*x = y.
//
// A zero pivot at either stage surfaces as ErrSingular; callers that can
// fall back to a cheaper direction (newton) branch on that sentinel.
// Neither A nor b is mutated.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrSingular.
// Complexity: O(n³) time, O(n²) space.
func Solve(a *Dense, b []float64) ([]float64, error) {
	// Validate the system shape before factorizing
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := a.r
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	// Factorize A = L*U
	l, u, err := LU(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	var (
		i, k  int // loop iterators
		base  int // flat row offset
		sum   float64
		pivot float64
		y     = make([]float64, n) // forward substitution workspace
		x     = make([]float64, n) // backward substitution result
	)

	// Forward substitution: L*y = b (top-down, unit diagonal)
	for i = 0; i < n; i++ {
		sum = 0
		base = i * n
		for k = 0; k < i; k++ {
			sum += l.data[base+k] * y[k]
		}
		y[i] = b[i] - sum
	}

	// Backward substitution: U*x = y (bottom-up, pivot-checked)
	for i = n - 1; i >= 0; i-- {
		sum = 0
		base = i * n
		for k = i + 1; k < n; k++ {
			sum += u.data[base+k] * x[k]
		}
		pivot = u.data[base+i]
		if pivot == 0 {
			return nil, matrixErrorf(opSolve, ErrSingular)
		}
		x[i] = (y[i] - sum) / pivot
	}

	return x, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order; zero x[j] entries are skipped.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·c) time, O(r) space.
func MatVec(m *Dense, x []float64) ([]float64, error) {
	// Validate operand and vector length
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, m.r)
	var (
		i, j, base int
		acc, xv    float64
	)
	for i = 0; i < m.r; i++ {
		acc = 0
		base = i * m.c
		for j = 0; j < m.c; j++ {
			xv = x[j]
			if xv != 0 { // skip zero multiplications
				acc += m.data[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y, nil
}
