// Package matrix provides the small dense linear-algebra core used by the
// analysis package: a row-major float64 Dense matrix, vector kernels
// (MulVec, VecMul, Transpose), and direct solvers.
//
// Solvers:
//   - Solve: square systems via Gaussian elimination with partial pivoting;
//     ErrSingular when no usable pivot exists.
//   - SolveLeastSquares: minimum-residual solutions of overdetermined systems
//     via the normal equations, backed by Solve.
//
// Dense matrices here are always short-lived intermediates materialized from
// a chain for a single analytical call; the sparse chain stays the source of
// truth.
//
// All failures are sentinel errors (errors.Is-checkable), wrapped with an
// operation tag ("matrix.Solve: ...") at the facade. No panics on
// user-triggered conditions.
package matrix
