// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All kernels return these sentinels (possibly wrapped
// with operation context via %w) and tests check them via errors.Is.
// Panics are reserved for programmer errors in private helpers.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (rows <= 0 or cols <= 0, or ragged row input).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside
	// valid bounds. Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. MatVec where len(x) != m.Cols().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the
	// input was rectangular.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense was used as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular is returned when a zero pivot is encountered during
	// the non-pivoting LU factorization or a solve built on it.
	// Intentional for determinism: no row exchanges, no perturbation.
	ErrSingular = errors.New("matrix: singular matrix")
)
