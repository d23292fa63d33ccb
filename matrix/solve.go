// File: solve.go
// Role: Direct linear solvers: pivoted Gaussian elimination and a
// least-squares facade over it.
//
// Partial pivoting (unlike a plain Doolittle LU) is required here because the
// systems built from stochastic matrices routinely place small or zero
// entries on the diagonal; row exchange keeps elimination stable.
package matrix

import "math"

// pivotTol is the magnitude below which a pivot is treated as zero.
const pivotTol = 1e-12

// Solve solves the square system a·x = b by Gaussian elimination with
// partial pivoting and back substitution. Inputs are not mutated.
// Returns ErrSingular when no usable pivot exists (the system has no unique
// solution). Complexity: O(n³) time, O(n²) space.
func Solve(a *Dense, b []float64) ([]float64, error) {
	if a == nil {
		return nil, opErrorf(opSolve, ErrNilMatrix)
	}
	if a.r != a.c {
		return nil, opErrorf(opSolve, ErrNonSquare)
	}
	n := a.r
	if len(b) != n {
		return nil, opErrorf(opSolve, ErrDimensionMismatch)
	}

	// Work on copies; callers keep their operands.
	w := a.Clone()
	rhs := make([]float64, n)
	copy(rhs, b)

	// Forward elimination with row pivoting.
	for col := 0; col < n; col++ {
		// Select the largest-magnitude pivot in this column.
		pivot := col
		pmax := math.Abs(w.data[col*n+col])
		for row := col + 1; row < n; row++ {
			if mag := math.Abs(w.data[row*n+col]); mag > pmax {
				pivot, pmax = row, mag
			}
		}
		if pmax < pivotTol {
			return nil, opErrorf(opSolve, ErrSingular)
		}
		if pivot != col {
			swapRows(w, pivot, col)
			rhs[pivot], rhs[col] = rhs[col], rhs[pivot]
		}

		// Eliminate below the pivot.
		inv := 1.0 / w.data[col*n+col]
		for row := col + 1; row < n; row++ {
			factor := w.data[row*n+col] * inv
			if factor == 0 {
				continue
			}
			w.data[row*n+col] = 0
			for k := col + 1; k < n; k++ {
				w.data[row*n+k] -= factor * w.data[col*n+k]
			}
			rhs[row] -= factor * rhs[col]
		}
	}

	// Back substitution.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := rhs[i]
		for j := i + 1; j < n; j++ {
			sum -= w.data[i*n+j] * x[j]
		}
		x[i] = sum / w.data[i*n+i]
	}

	return x, nil
}

// swapRows exchanges rows i and j of w in place.
func swapRows(w *Dense, i, j int) {
	ri := w.data[i*w.c : (i+1)*w.c]
	rj := w.data[j*w.c : (j+1)*w.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// SolveLeastSquares finds the x minimizing ‖a·x − b‖₂ for a (possibly
// overdetermined) system with a.Rows() ≥ a.Cols(), via the normal equations
// (aᵀa)·x = aᵀb solved with the pivoted eliminator. Returns ErrSingular when
// a is rank-deficient. Complexity: O(r·c² + c³).
func SolveLeastSquares(a *Dense, b []float64) ([]float64, error) {
	if a == nil {
		return nil, opErrorf(opLSQ, ErrNilMatrix)
	}
	if len(b) != a.r {
		return nil, opErrorf(opLSQ, ErrDimensionMismatch)
	}
	if a.r < a.c {
		return nil, opErrorf(opLSQ, ErrDimensionMismatch)
	}

	at, err := Transpose(a)
	if err != nil {
		return nil, opErrorf(opLSQ, err)
	}

	// Normal matrix n = aᵀa (c×c), symmetric positive semi-definite.
	normal, err := NewDense(a.c, a.c)
	if err != nil {
		return nil, opErrorf(opLSQ, err)
	}
	for i := 0; i < a.c; i++ {
		for j := 0; j < a.c; j++ {
			sum := 0.0
			for k := 0; k < a.r; k++ {
				sum += at.data[i*at.c+k] * a.data[k*a.c+j]
			}
			normal.data[i*normal.c+j] = sum
		}
	}

	// Right-hand side y = aᵀb.
	y, err := MulVec(at, b)
	if err != nil {
		return nil, opErrorf(opLSQ, err)
	}

	x, err := Solve(normal, y)
	if err != nil {
		return nil, opErrorf(opLSQ, err)
	}

	return x, nil
}
