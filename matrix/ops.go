// File: ops.go
// Role: Vector/matrix kernels used by the solvers and by analysis.
// All kernels validate fail-fast and wrap sentinels with an operation tag.
package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMulVec    = "MulVec"
	opVecMul    = "VecMul"
	opTranspose = "Transpose"
	opSolve     = "Solve"
	opLSQ       = "SolveLeastSquares"
)

// opErrorf wraps err with an operation tag, preserving errors.Is matching.
// Call only with a non-nil err.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("matrix.%s: %w", tag, err)
}

// MulVec computes the matrix-vector product a·x.
// Requires len(x) == a.Cols(); returns a fresh slice of length a.Rows().
// Complexity: O(r*c).
func MulVec(a *Dense, x []float64) ([]float64, error) {
	if a == nil {
		return nil, opErrorf(opMulVec, ErrNilMatrix)
	}
	if len(x) != a.c {
		return nil, opErrorf(opMulVec, ErrDimensionMismatch)
	}

	out := make([]float64, a.r)
	for i := 0; i < a.r; i++ {
		sum := 0.0
		row := a.data[i*a.c : (i+1)*a.c]
		for j, v := range row {
			sum += v * x[j]
		}
		out[i] = sum
	}

	return out, nil
}

// VecMul computes the row-vector-matrix product xᵀ·a (one step of a
// distribution under a transition matrix). Requires len(x) == a.Rows();
// returns a fresh slice of length a.Cols().
// Complexity: O(r*c).
func VecMul(x []float64, a *Dense) ([]float64, error) {
	if a == nil {
		return nil, opErrorf(opVecMul, ErrNilMatrix)
	}
	if len(x) != a.r {
		return nil, opErrorf(opVecMul, ErrDimensionMismatch)
	}

	out := make([]float64, a.c)
	for i := 0; i < a.r; i++ {
		xi := x[i]
		if xi == 0 {
			continue
		}
		row := a.data[i*a.c : (i+1)*a.c]
		for j, v := range row {
			out[j] += xi * v
		}
	}

	return out, nil
}

// Transpose returns a new c×r matrix with aᵀ[j][i] = a[i][j].
// Complexity: O(r*c).
func Transpose(a *Dense) (*Dense, error) {
	if a == nil {
		return nil, opErrorf(opTranspose, ErrNilMatrix)
	}

	out, err := NewDense(a.c, a.r)
	if err != nil {
		return nil, opErrorf(opTranspose, err)
	}
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			out.data[j*out.c+i] = a.data[i*a.c+j]
		}
	}

	return out, nil
}
