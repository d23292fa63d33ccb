// File: simulate.go
// Role: Weighted random walks over a Chain.
package simulate

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/markov/chain"
)

// NextState draws one successor of current with probability proportional to
// each outgoing edge's weight. Weights need not be pre-normalized. Fails with
// ErrNoTransitions when current has no outgoing edges and ErrNoMass when the
// outgoing weights have no positive total.
//
// Repeated calls with default options draw from identical fresh streams; pass
// WithRand with a shared source to advance a walk across calls.
// Complexity: O(d log d) for out-degree d (successors are sorted for
// deterministic cumulative order).
func NextState(c *chain.Chain, current string, opts ...Option) (string, error) {
	if c == nil {
		return "", fmt.Errorf("NextState: %w", ErrNilChain)
	}
	if !c.HasState(current) {
		return "", fmt.Errorf("NextState(%q): %w", current, ErrStateNotFound)
	}

	o := gatherOptions(opts...)

	return draw(c, current, o.rng)
}

// draw performs one weighted draw from u's successors using rng.
func draw(c *chain.Chain, u string, rng *rand.Rand) (string, error) {
	succ, err := c.Successors(u)
	if err != nil {
		return "", fmt.Errorf("draw: %w", err)
	}
	if len(succ) == 0 {
		return "", fmt.Errorf("draw(%q): %w", u, ErrNoTransitions)
	}

	total := 0.0
	weights := make([]float64, len(succ))
	for i, v := range succ {
		weights[i] = c.TransitionMass(u, v)
		total += weights[i]
	}
	if total <= 0 {
		return "", fmt.Errorf("draw(%q): %w", u, ErrNoMass)
	}

	// Inverse-CDF sampling over the sorted successor order.
	x := rng.Float64() * total
	acc := 0.0
	for i, v := range succ {
		acc += weights[i]
		if x < acc {
			return v, nil
		}
	}

	// Floating-point slack: x landed on the upper boundary.
	return succ[len(succ)-1], nil
}

// Simulate produces a path of steps transitions from start: a sequence of
// steps+1 states, start inclusive. The returned trace is a one-shot
// realization; a fresh call re-simulates. Fails with ErrStateNotFound when
// start is unknown and ErrNegativeSteps when steps < 0.
// Complexity: O(steps · d log d).
func Simulate(c *chain.Chain, start string, steps int, opts ...Option) ([]string, error) {
	if c == nil {
		return nil, fmt.Errorf("Simulate: %w", ErrNilChain)
	}
	if !c.HasState(start) {
		return nil, fmt.Errorf("Simulate(%q): %w", start, ErrStateNotFound)
	}
	if steps < 0 {
		return nil, fmt.Errorf("Simulate(%q, %d): %w", start, steps, ErrNegativeSteps)
	}

	o := gatherOptions(opts...)

	route := make([]string, 1, steps+1)
	route[0] = start
	current := start
	for i := 0; i < steps; i++ {
		next, err := draw(c, current, o.rng)
		if err != nil {
			return nil, fmt.Errorf("Simulate: step %d: %w", i, err)
		}
		route = append(route, next)
		current = next
	}

	return route, nil
}

// SimulateUntil simulates from start until target is reached, returning the
// realized path with target inclusive; the path has length 1 when
// start == target. The walk is bounded by WithMaxSteps (DefaultMaxSteps when
// unset); exhausting the bound fails with ErrMaxStepsExceeded, which is how
// runs that wander into a foreign absorbing state surface. Fails with
// ErrStateNotFound when start or target is unknown.
// Complexity: O(maxSteps · d log d) worst case.
func SimulateUntil(c *chain.Chain, start, target string, opts ...Option) ([]string, error) {
	if c == nil {
		return nil, fmt.Errorf("SimulateUntil: %w", ErrNilChain)
	}
	if !c.HasState(start) {
		return nil, fmt.Errorf("SimulateUntil(%q): %w", start, ErrStateNotFound)
	}
	if !c.HasState(target) {
		return nil, fmt.Errorf("SimulateUntil(target %q): %w", target, ErrStateNotFound)
	}

	o := gatherOptions(opts...)

	route := []string{start}
	if start == target {
		return route, nil
	}

	current := start
	for i := 0; i < o.maxSteps; i++ {
		next, err := draw(c, current, o.rng)
		if err != nil {
			return nil, fmt.Errorf("SimulateUntil: step %d: %w", i, err)
		}
		route = append(route, next)
		if next == target {
			return route, nil
		}
		current = next
	}

	return nil, fmt.Errorf("SimulateUntil(%q→%q): after %d steps: %w", start, target, o.maxSteps, ErrMaxStepsExceeded)
}
