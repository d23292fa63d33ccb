// File: merge.go
// Role: Union of two chains' state and edge sets.
package chain

import "fmt"

// MergeMode selects how overlapping (origin, target) pairs combine.
type MergeMode int

const (
	// MergeAdd sums the weights of overlapping transitions.
	MergeAdd MergeMode = iota

	// MergeOverwrite lets the second chain's transitions replace the first's
	// on overlap; transitions only in the first chain are preserved unchanged.
	MergeOverwrite
)

// MergeOption configures Merge.
type MergeOption func(*mergeConfig)

type mergeConfig struct {
	normalize bool
}

// WithMergeNormalize rescales each resulting state's outgoing weights to sum
// to 1 after the union (states with zero total are left unchanged).
func WithMergeNormalize() MergeOption {
	return func(cfg *mergeConfig) { cfg.normalize = true }
}

// Merge unions two chains into a new Chain. States keep a's insertion order
// first, then b's new states. State and chain attributes merge with b taking
// precedence on conflicting keys. Overlapping transitions combine per mode.
// Neither input is mutated.
// Complexity: O(V + E) over both inputs.
func Merge(a, b *Chain, mode MergeMode, opts ...MergeOption) (*Chain, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Merge: %w", ErrNilChain)
	}
	if mode != MergeAdd && mode != MergeOverwrite {
		return nil, fmt.Errorf("Merge: mode %d: %w", mode, ErrBadMergeMode)
	}

	cfg := mergeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	out := New()

	// Chain-level attributes: a first, b wins on conflicts.
	for k, v := range a.attrs {
		out.attrs[k] = v
	}
	for k, v := range b.attrs {
		out.attrs[k] = v
	}

	// States in a's order, then b's new states.
	for _, src := range []*Chain{a, b} {
		for _, s := range src.order {
			_ = out.AddState(s, src.states[s])
		}
	}

	// a's transitions verbatim.
	for _, rec := range a.AllTransitions() {
		_ = out.AddTransition(rec.From, rec.To, rec.P, rec.Attrs)
	}

	// b's transitions, combined per mode on overlap.
	for _, rec := range b.AllTransitions() {
		p := rec.P
		attrs := rec.Attrs
		if mode == MergeAdd && out.HasTransition(rec.From, rec.To) {
			p += out.TransitionMass(rec.From, rec.To)
			existing, _ := out.TransitionAttrs(rec.From, rec.To)
			merged := make(map[string]any, len(existing)+len(rec.Attrs))
			for k, v := range existing {
				merged[k] = v
			}
			for k, v := range rec.Attrs {
				merged[k] = v
			}
			attrs = merged
		}
		_ = out.AddTransition(rec.From, rec.To, p, attrs)
	}

	if cfg.normalize {
		out.Normalize()
	}

	return out, nil
}
