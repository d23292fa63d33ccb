// File: stationary.go
// Role: Stationary distribution via exact linear solve or power iteration.
package analysis

import (
	"fmt"

	"github.com/katalvlaran/markov/chain"
	"github.com/katalvlaran/markov/matrix"
)

// StationaryDistribution computes π with πP = π, Σπ = 1, π ≥ 0, returning a
// mapping from every state label to its stationary probability.
//
// Methods (WithMethod):
//   - MethodLinear: least-squares solve of (Pᵗ−I)π = 0 augmented with the
//     normalization row Σπ = 1 (the homogeneous system is rank-deficient by
//     one for an irreducible chain). Negative numerical noise is clipped to
//     zero and the result renormalized. Failure wraps ErrLinearSolve; retry
//     with MethodPower.
//   - MethodPower: row-normalizes P defensively (a zero row becomes a
//     self-stay to avoid division by zero), starts from the uniform
//     distribution, and iterates π ← πP until the L1 change drops below
//     WithTolerance or WithMaxIter is exhausted. Budget exhaustion is not an
//     error: the best estimate is renormalized and returned.
//   - MethodAuto (default): MethodLinear for Len() ≤ AutoLinearLimit,
//     MethodPower otherwise.
//
// Complexity: O(n³) linear; O(maxIter·n²) power.
func StationaryDistribution(c *chain.Chain, opts ...Option) (map[string]float64, error) {
	if c == nil {
		return nil, fmt.Errorf("StationaryDistribution: %w", ErrNilChain)
	}
	if c.Len() == 0 {
		return nil, fmt.Errorf("StationaryDistribution: %w", ErrEmptyChain)
	}

	o := gatherOptions(opts...)

	method := o.method
	if method == MethodAuto {
		method = MethodPower
		if c.Len() <= AutoLinearLimit {
			method = MethodLinear
		}
	}

	p, states, err := transitionMatrix(c)
	if err != nil {
		return nil, fmt.Errorf("StationaryDistribution: %w", err)
	}

	var pi []float64
	switch method {
	case MethodLinear:
		pi, err = stationaryLinear(p)
	case MethodPower:
		pi, err = stationaryPower(p, o.tol, o.maxIter)
	default:
		return nil, fmt.Errorf("StationaryDistribution(%v): %w", method, ErrBadMethod)
	}
	if err != nil {
		return nil, fmt.Errorf("StationaryDistribution: %w", err)
	}

	out := make(map[string]float64, len(states))
	for i, s := range states {
		out[s] = pi[i]
	}

	return out, nil
}

// stationaryLinear solves the augmented least-squares system
// [(Pᵗ−I); 1ᵀ]·π = [0; 1], clips negative noise, and renormalizes.
func stationaryLinear(p *matrix.Dense) ([]float64, error) {
	n := p.Rows()

	a, err := matrix.NewDense(n+1, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			// Row i of Pᵗ−I is column i of P minus the unit diagonal.
			pji, _ := p.At(j, i)
			v := pji
			if i == j {
				v -= 1
			}
			_ = a.Set(i, j, v)
		}
	}
	for j := 0; j < n; j++ {
		_ = a.Set(n, j, 1)
	}

	b := make([]float64, n+1)
	b[n] = 1

	pi, err := matrix.SolveLeastSquares(a, b)
	if err != nil {
		return nil, fmt.Errorf("%w (retry with MethodPower): %w", ErrLinearSolve, err)
	}

	// Clip solver noise below zero, then renormalize to a distribution.
	total := 0.0
	for i, v := range pi {
		if v < 0 {
			pi[i] = 0
			continue
		}
		total += v
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w (retry with MethodPower): degenerate solution", ErrLinearSolve)
	}
	for i := range pi {
		pi[i] /= total
	}

	return pi, nil
}

// stationaryPower runs π ← πP from the uniform distribution on a defensively
// row-normalized copy of p, stopping when the L1 delta drops below tol or
// after maxIter sweeps (not an error), then renormalizes.
func stationaryPower(p *matrix.Dense, tol float64, maxIter int) ([]float64, error) {
	n := p.Rows()

	// Defensive row normalization: a zero-mass row becomes a self-stay so
	// the iteration never divides by zero.
	w := p.Clone()
	for i := 0; i < n; i++ {
		total := 0.0
		for j := 0; j < n; j++ {
			v, _ := w.At(i, j)
			total += v
		}
		if total <= 0 {
			for j := 0; j < n; j++ {
				_ = w.Set(i, j, 0)
			}
			_ = w.Set(i, i, 1)
			continue
		}
		for j := 0; j < n; j++ {
			v, _ := w.At(i, j)
			_ = w.Set(i, j, v/total)
		}
	}

	pi := make([]float64, n)
	for i := range pi {
		pi[i] = 1.0 / float64(n)
	}

	for iter := 0; iter < maxIter; iter++ {
		next, err := matrix.VecMul(pi, w)
		if err != nil {
			return nil, err
		}

		delta := 0.0
		for i := range next {
			d := next[i] - pi[i]
			if d < 0 {
				d = -d
			}
			delta += d
		}
		pi = next
		if delta < tol {
			break
		}
	}

	// Renormalize against accumulated floating-point drift.
	total := 0.0
	for _, v := range pi {
		total += v
	}
	if total > 0 {
		for i := range pi {
			pi[i] /= total
		}
	}

	return pi, nil
}
