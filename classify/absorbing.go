// File: absorbing.go
// Role: Absorbing/transient state classification and mass diagnostics.
package classify

import (
	"fmt"

	"github.com/katalvlaran/markov/chain"
)

// IsAbsorbing reports whether state s, once entered, is never left: it has no
// outgoing edges, or its only outgoing edge is a self-loop with weight within
// tol of 1. A non-positive tol falls back to chain.DefaultStochasticTol.
// Complexity: O(d).
func IsAbsorbing(c *chain.Chain, s string, tol float64) (bool, error) {
	if c == nil {
		return false, fmt.Errorf("IsAbsorbing: %w", ErrNilChain)
	}
	if !c.HasState(s) {
		return false, fmt.Errorf("IsAbsorbing(%q): %w", s, ErrStateNotFound)
	}
	if tol <= 0 {
		tol = chain.DefaultStochasticTol
	}

	succ, err := c.Successors(s)
	if err != nil {
		return false, fmt.Errorf("IsAbsorbing: %w", err)
	}

	switch {
	case len(succ) == 0:
		// Terminal state: absorbing by definition.
		return true, nil
	case len(succ) == 1 && succ[0] == s:
		p := c.TransitionMass(s, s)
		diff := p - 1.0
		if diff < 0 {
			diff = -diff
		}

		return diff < tol, nil
	default:
		return false, nil
	}
}

// IsTransient reports whether s can leave itself, i.e. it is not absorbing.
// Complexity: O(d).
func IsTransient(c *chain.Chain, s string) (bool, error) {
	absorbing, err := IsAbsorbing(c, s, 0)
	if err != nil {
		return false, fmt.Errorf("IsTransient: %w", err)
	}

	return !absorbing, nil
}

// AbsorbingStates returns all absorbing states in the chain's insertion
// order, using chain.DefaultStochasticTol for the self-loop check.
// Complexity: O(V + E).
func AbsorbingStates(c *chain.Chain) ([]string, error) {
	if c == nil {
		return nil, fmt.Errorf("AbsorbingStates: %w", ErrNilChain)
	}

	var out []string
	for _, s := range c.States() {
		absorbing, err := IsAbsorbing(c, s, 0)
		if err != nil {
			return nil, fmt.Errorf("AbsorbingStates: %w", err)
		}
		if absorbing {
			out = append(out, s)
		}
	}

	return out, nil
}

// OutgoingMass returns the sum of weights on s's outgoing edges. Diagnostic
// query: a nil chain or unknown state contributes 0 rather than an error.
// Complexity: O(d).
func OutgoingMass(c *chain.Chain, s string) float64 {
	if c == nil || !c.HasState(s) {
		return 0
	}

	total, err := c.WeightedOutDegree(s)
	if err != nil {
		return 0
	}

	return total
}
