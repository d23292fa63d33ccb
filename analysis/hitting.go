// File: hitting.go
// Role: Expected hitting times via a direct linear solve.
package analysis

import (
	"fmt"

	"github.com/katalvlaran/markov/chain"
	"github.com/katalvlaran/markov/matrix"
)

// transitionMatrix materializes the chain's dense transition matrix in the
// chain's natural state order. The matrix is scoped to one analytical call
// and never cached: the sparse chain stays the source of truth.
func transitionMatrix(c *chain.Chain) (*matrix.Dense, []string, error) {
	states := c.States()
	rows, err := c.ToMatrix(nil)
	if err != nil {
		return nil, nil, err
	}
	p, err := matrix.FromRows(rows)
	if err != nil {
		return nil, nil, err
	}

	return p, states, nil
}

// ExpectedHittingTimes computes, for every state, the expected number of
// steps to first reach the target state, resolving target as a label in the
// chain's state order. h[target] = 0 and h[i] = 1 + Σ_j P[i][j]·h[j] for all
// other i; the result follows the chain's state order. An unresolvable label
// fails with ErrStateNotFound. A chain in which the target is not reachable
// from some state yields a singular system, surfaced as the solver's error.
// Complexity: O(n³).
func ExpectedHittingTimes(c *chain.Chain, target string) ([]float64, error) {
	if c == nil {
		return nil, fmt.Errorf("ExpectedHittingTimes: %w", ErrNilChain)
	}

	idx := -1
	for i, s := range c.States() {
		if s == target {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("ExpectedHittingTimes(%q): %w", target, ErrStateNotFound)
	}

	return ExpectedHittingTimesAt(c, idx)
}

// ExpectedHittingTimesAt is ExpectedHittingTimes with the target given as a
// zero-based index into the chain's state order. An out-of-bounds index
// fails with ErrIndexOutOfRange.
// Complexity: O(n³).
func ExpectedHittingTimesAt(c *chain.Chain, target int) ([]float64, error) {
	if c == nil {
		return nil, fmt.Errorf("ExpectedHittingTimesAt: %w", ErrNilChain)
	}
	n := c.Len()
	if n == 0 {
		return nil, fmt.Errorf("ExpectedHittingTimesAt: %w", ErrEmptyChain)
	}
	if target < 0 || target >= n {
		return nil, fmt.Errorf("ExpectedHittingTimesAt(%d) with %d states: %w", target, n, ErrIndexOutOfRange)
	}

	p, _, err := transitionMatrix(c)
	if err != nil {
		return nil, fmt.Errorf("ExpectedHittingTimesAt: %w", err)
	}

	// Build A·h = b: identity row at the target, (I − P) rows elsewhere.
	a, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("ExpectedHittingTimesAt: %w", err)
	}
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		if i == target {
			_ = a.Set(i, i, 1)
			continue
		}
		b[i] = 1
		for j := 0; j < n; j++ {
			pij, _ := p.At(i, j)
			v := -pij
			if i == j {
				v = 1 - pij
			}
			_ = a.Set(i, j, v)
		}
	}

	h, err := matrix.Solve(a, b)
	if err != nil {
		return nil, fmt.Errorf("ExpectedHittingTimesAt: %w", err)
	}

	return h, nil
}
