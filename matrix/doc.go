// Package matrix provides the small set of dense linear-algebra kernels
// the rest of descent is built on: a row-major Dense matrix, a Doolittle
// LU factorization, a single-right-hand-side linear solve, and a
// matrix-vector product.
//
// Design rules (shared by every kernel):
//   - Fail-fast validation through the central validators; every failure
//     is a package sentinel matched via errors.Is.
//   - Fixed, data-independent loop orders — identical inputs produce
//     bit-for-bit identical outputs across runs.
//   - No pivoting in LU. A vanishing pivot surfaces as ErrSingular
//     instead of being silently perturbed; callers that can degrade
//     (see the newton package) key on that sentinel.
//   - Inputs are never mutated; results are freshly allocated.
//
// Complexity:
//
//	LU / Solve: O(n³) time, O(n²) space.
//	MatVec:     O(r·c) time, O(r) space.
package matrix
