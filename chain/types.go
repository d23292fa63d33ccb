// Package chain: sentinel errors, the Transition record, and construction
// options. All chain operations return these sentinels (possibly wrapped with
// fmt.Errorf("...: %w", ...)); callers check them via errors.Is. No operation
// panics on user-triggered conditions.
package chain

import "errors"

// DefaultStochasticTol is the tolerance used by IsStochastic when the caller
// passes a non-positive tolerance. A row is stochastic when its outgoing mass
// is within this distance of 1.
const DefaultStochasticTol = 1e-12

// Sentinel errors for chain construction and queries.
var (
	// ErrNilChain indicates a nil *Chain was passed to a package function.
	ErrNilChain = errors.New("chain: chain is nil")

	// ErrEmptyStateID indicates the provided state label is the empty string.
	ErrEmptyStateID = errors.New("chain: state label is empty")

	// ErrStateNotFound indicates an operation referenced a non-registered state.
	ErrStateNotFound = errors.New("chain: state not found")

	// ErrTransitionNotFound indicates a lookup on a non-existent transition.
	ErrTransitionNotFound = errors.New("chain: transition not found")

	// ErrInvalidTransition indicates a malformed bulk transition record.
	ErrInvalidTransition = errors.New("chain: invalid transition")

	// ErrEmptyMatrix indicates an adjacency matrix with no rows.
	ErrEmptyMatrix = errors.New("chain: matrix is empty")

	// ErrNonSquareMatrix indicates a row whose length differs from the row count.
	ErrNonSquareMatrix = errors.New("chain: matrix is not square")

	// ErrNegativeEntry indicates a negative value in an adjacency matrix.
	ErrNegativeEntry = errors.New("chain: matrix entries must be non-negative")

	// ErrZeroRow indicates an adjacency matrix row summing to zero.
	ErrZeroRow = errors.New("chain: matrix rows must have positive sum")

	// ErrStateCountMismatch indicates len(labels) != matrix dimension.
	ErrStateCountMismatch = errors.New("chain: state count must match matrix dimension")

	// ErrBadMergeMode indicates an unrecognized MergeMode value.
	ErrBadMergeMode = errors.New("chain: unknown merge mode")
)

// Transition is a directed weighted edge between two states.
//
// P is the transition weight (a probability once the chain is normalized) and
// is kept as a typed field, separate from the open Attrs extension map. A
// transition added without an explicit weight stores P == 0; Normalize and the
// mass queries treat that the same as an unset probability.
type Transition struct {
	// From is the origin state label.
	From string

	// To is the target state label.
	To string

	// P is the transition weight. Relative weight is what matters for
	// sampling; IsStochastic and Normalize interpret it as probability mass.
	P float64

	// Attrs stores arbitrary user data attached to this transition.
	Attrs map[string]any
}

// T builds a bare transition record u→v with no weight (P == 0).
// Use with AddTransitions for bulk insertion.
func T(u, v string) Transition {
	return Transition{From: u, To: v}
}

// TW builds a weighted transition record u→v with weight p.
func TW(u, v string, p float64) Transition {
	return Transition{From: u, To: v, P: p}
}

// TWA builds a weighted, attributed transition record u→v.
func TWA(u, v string, p float64, attrs map[string]any) Transition {
	return Transition{From: u, To: v, P: p, Attrs: attrs}
}

// Option configures a Chain at construction time. Use with New(opts...).
type Option func(*Chain)

// WithStates registers the given labels as initial states, in order.
// Empty labels are ignored (New is infallible by contract).
func WithStates(labels ...string) Option {
	return func(c *Chain) {
		for _, s := range labels {
			if s != "" {
				c.ensureState(s)
			}
		}
	}
}

// WithAttrs merges m into the chain-level attribute map.
func WithAttrs(m map[string]any) Option {
	return func(c *Chain) {
		for k, v := range m {
			c.attrs[k] = v
		}
	}
}
