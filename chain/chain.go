// File: chain.go
// Role: Chain storage and the state/transition lifecycle & query surface.
//
// Determinism:
//   - States() enumerates labels in insertion order (matrix conversion relies on it).
//   - Successors()/Predecessors() return labels sorted lexicographically ascending.
//
// Concurrency:
//   - A Chain is owned by a single caller; no internal locking. Wrap the whole
//     instance in a mutex externally if shared mutation is ever needed.
package chain

import (
	"fmt"
	"sort"
)

// Chain is a discrete-time Markov chain: a sparse adjacency structure of
// attributed states and weighted transitions. It stores structure only;
// algorithms live in the classify, simulate, and analysis packages.
type Chain struct {
	// attrs holds chain-level metadata (name, flags), independent of states.
	attrs map[string]any

	// order records state labels in insertion order.
	order []string

	// states maps state label → state attribute map.
	states map[string]map[string]any

	// trans maps origin label → target label → transition record.
	// At most one record per ordered (origin, target) pair; re-adding
	// overwrites (last-write-wins).
	trans map[string]map[string]*Transition
}

// New creates an empty Chain and applies the given options.
// Complexity: O(len(opts) + initial states).
func New(opts ...Option) *Chain {
	c := &Chain{
		attrs:  make(map[string]any),
		states: make(map[string]map[string]any),
		trans:  make(map[string]map[string]*Transition),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ensureState registers s if missing and returns its attribute map.
// Callers must have validated s != "".
func (c *Chain) ensureState(s string) map[string]any {
	attrs, ok := c.states[s]
	if !ok {
		attrs = make(map[string]any)
		c.states[s] = attrs
		c.trans[s] = make(map[string]*Transition)
		c.order = append(c.order, s)
	}

	return attrs
}

// AddState registers state s, merging attrs into its attribute map.
// Idempotent: adding an existing state only merges attributes.
// Complexity: O(len(attrs)) amortized.
func (c *Chain) AddState(s string, attrs map[string]any) error {
	if s == "" {
		return ErrEmptyStateID
	}

	existing := c.ensureState(s)
	for k, v := range attrs {
		existing[k] = v
	}

	return nil
}

// AddStates registers multiple states in order, with empty attribute maps.
// Complexity: O(len(labels)) amortized.
func (c *Chain) AddStates(labels ...string) error {
	for _, s := range labels {
		if err := c.AddState(s, nil); err != nil {
			return fmt.Errorf("AddStates(%q): %w", s, err)
		}
	}

	return nil
}

// AddTransition sets the single transition record u→v to weight p and attrs.
// Both endpoints are auto-registered as states if absent. Re-adding the same
// pair overwrites the previous record (last-write-wins).
// Complexity: O(len(attrs)) amortized.
func (c *Chain) AddTransition(u, v string, p float64, attrs map[string]any) error {
	if u == "" || v == "" {
		return ErrEmptyStateID
	}

	c.ensureState(u)
	c.ensureState(v)

	rec := &Transition{From: u, To: v, P: p, Attrs: make(map[string]any, len(attrs))}
	for k, val := range attrs {
		rec.Attrs[k] = val
	}
	c.trans[u][v] = rec

	return nil
}

// AddTransitions inserts the given records in order. Build records with the
// T, TW, and TWA constructors. A record with an empty endpoint fails with
// ErrInvalidTransition; records before it remain applied.
// Complexity: O(len(recs)) amortized.
func (c *Chain) AddTransitions(recs ...Transition) error {
	for i, r := range recs {
		if r.From == "" || r.To == "" {
			return fmt.Errorf("AddTransitions: record %d (%q→%q): %w", i, r.From, r.To, ErrInvalidTransition)
		}
		if err := c.AddTransition(r.From, r.To, r.P, r.Attrs); err != nil {
			return fmt.Errorf("AddTransitions: record %d: %w", i, err)
		}
	}

	return nil
}

// States returns all state labels in insertion order.
// The returned slice is a copy; callers may retain it.
// Complexity: O(V).
func (c *Chain) States() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)

	return out
}

// Len returns the number of states.
// Complexity: O(1).
func (c *Chain) Len() int {
	return len(c.order)
}

// TransitionCount returns the total number of stored transitions.
// Complexity: O(V).
func (c *Chain) TransitionCount() int {
	n := 0
	for _, nbrs := range c.trans {
		n += len(nbrs)
	}

	return n
}

// HasState reports whether s is registered (empty label ⇒ false).
// Complexity: O(1).
func (c *Chain) HasState(s string) bool {
	if s == "" {
		return false
	}
	_, ok := c.states[s]

	return ok
}

// HasTransition reports whether the edge u→v exists.
// Complexity: O(1).
func (c *Chain) HasTransition(u, v string) bool {
	nbrs, ok := c.trans[u]
	if !ok {
		return false
	}
	_, ok = nbrs[v]

	return ok
}

// Successors returns the states reachable from u in one step, sorted
// lexicographically ascending. Returns ErrStateNotFound for an unknown u.
// Complexity: O(d log d) where d = out-degree of u.
func (c *Chain) Successors(u string) ([]string, error) {
	nbrs, ok := c.trans[u]
	if !ok {
		return nil, fmt.Errorf("Successors(%q): %w", u, ErrStateNotFound)
	}

	out := make([]string, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	sort.Strings(out)

	return out, nil
}

// Predecessors returns the states with an edge into v, sorted
// lexicographically ascending. Returns ErrStateNotFound for an unknown v.
// No reverse index is maintained: this scans every state's outgoing edges.
// Complexity: O(V) plus sorting.
func (c *Chain) Predecessors(v string) ([]string, error) {
	if !c.HasState(v) {
		return nil, fmt.Errorf("Predecessors(%q): %w", v, ErrStateNotFound)
	}

	var out []string
	for u, nbrs := range c.trans {
		if _, ok := nbrs[v]; ok {
			out = append(out, u)
		}
	}
	sort.Strings(out)

	return out, nil
}

// TransitionMass returns the stored weight of the edge u→v, or 0 when the
// edge (or either endpoint) is absent. Pure query: never errors.
// Complexity: O(1).
func (c *Chain) TransitionMass(u, v string) float64 {
	nbrs, ok := c.trans[u]
	if !ok {
		return 0
	}
	rec, ok := nbrs[v]
	if !ok {
		return 0
	}

	return rec.P
}

// Transitions returns copies of the transition records leaving u, ordered by
// target label ascending. Returns ErrStateNotFound for an unknown u.
// Complexity: O(d log d).
func (c *Chain) Transitions(u string) ([]Transition, error) {
	targets, err := c.Successors(u)
	if err != nil {
		return nil, err
	}

	out := make([]Transition, 0, len(targets))
	for _, v := range targets {
		out = append(out, *c.trans[u][v])
	}

	return out, nil
}

// AllTransitions returns copies of every transition record: origins in state
// insertion order, targets sorted ascending within each origin.
// Complexity: O(V + E log d).
func (c *Chain) AllTransitions() []Transition {
	var out []Transition
	for _, u := range c.order {
		recs, _ := c.Transitions(u)
		out = append(out, recs...)
	}

	return out
}

// OutDegree returns the number of outgoing edges of u.
// Returns ErrStateNotFound for an unknown u.
// Complexity: O(1).
func (c *Chain) OutDegree(u string) (int, error) {
	nbrs, ok := c.trans[u]
	if !ok {
		return 0, fmt.Errorf("OutDegree(%q): %w", u, ErrStateNotFound)
	}

	return len(nbrs), nil
}

// WeightedOutDegree returns the sum of outgoing weights of u.
// Returns ErrStateNotFound for an unknown u.
// Complexity: O(d).
func (c *Chain) WeightedOutDegree(u string) (float64, error) {
	nbrs, ok := c.trans[u]
	if !ok {
		return 0, fmt.Errorf("WeightedOutDegree(%q): %w", u, ErrStateNotFound)
	}

	total := 0.0
	for _, rec := range nbrs {
		total += rec.P
	}

	return total, nil
}

// InDegree returns the number of edges entering v.
// Returns ErrStateNotFound for an unknown v.
// Complexity: O(V) — scans all origins (no reverse index).
func (c *Chain) InDegree(v string) (int, error) {
	if !c.HasState(v) {
		return 0, fmt.Errorf("InDegree(%q): %w", v, ErrStateNotFound)
	}

	deg := 0
	for _, nbrs := range c.trans {
		if _, ok := nbrs[v]; ok {
			deg++
		}
	}

	return deg, nil
}

// WeightedInDegree returns the sum of weights on edges entering v.
// Returns ErrStateNotFound for an unknown v.
// Complexity: O(V).
func (c *Chain) WeightedInDegree(v string) (float64, error) {
	if !c.HasState(v) {
		return 0, fmt.Errorf("WeightedInDegree(%q): %w", v, ErrStateNotFound)
	}

	total := 0.0
	for _, nbrs := range c.trans {
		if rec, ok := nbrs[v]; ok {
			total += rec.P
		}
	}

	return total, nil
}

// IsStochastic reports whether every state with at least one outgoing edge
// has outgoing mass within tol of 1. States with no outgoing edges are
// exempt (absorbing/terminal states are well-formed). A non-positive tol
// falls back to DefaultStochasticTol.
// Complexity: O(V + E).
func (c *Chain) IsStochastic(tol float64) bool {
	if tol <= 0 {
		tol = DefaultStochasticTol
	}

	for _, nbrs := range c.trans {
		if len(nbrs) == 0 {
			continue
		}
		total := 0.0
		for _, rec := range nbrs {
			total += rec.P
		}
		if total-1.0 > tol || 1.0-total > tol {
			return false
		}
	}

	return true
}

// Normalize rescales each state's outgoing weights so they sum to 1.
// States whose current total is not positive are left unchanged (the chain
// stays non-stochastic there; classification tolerates this). Idempotent for
// states with positive mass.
// Complexity: O(V + E).
func (c *Chain) Normalize() {
	for _, nbrs := range c.trans {
		total := 0.0
		for _, rec := range nbrs {
			total += rec.P
		}
		if total <= 0 {
			continue
		}
		for _, rec := range nbrs {
			rec.P /= total
		}
	}
}

// Attr returns the chain-level attribute stored under key.
// Complexity: O(1).
func (c *Chain) Attr(key string) (any, bool) {
	v, ok := c.attrs[key]

	return v, ok
}

// SetAttr stores a chain-level attribute under key.
// Complexity: O(1).
func (c *Chain) SetAttr(key string, value any) {
	c.attrs[key] = value
}

// StateAttrs returns the live attribute map of state s. Mutations through the
// returned map are visible to the chain.
// Returns ErrStateNotFound for an unknown s.
// Complexity: O(1).
func (c *Chain) StateAttrs(s string) (map[string]any, error) {
	attrs, ok := c.states[s]
	if !ok {
		return nil, fmt.Errorf("StateAttrs(%q): %w", s, ErrStateNotFound)
	}

	return attrs, nil
}

// TransitionAttrs returns the live attribute map of the edge u→v.
// Returns ErrTransitionNotFound when the edge does not exist.
// Complexity: O(1).
func (c *Chain) TransitionAttrs(u, v string) (map[string]any, error) {
	nbrs, ok := c.trans[u]
	if !ok {
		return nil, fmt.Errorf("TransitionAttrs(%q,%q): %w", u, v, ErrTransitionNotFound)
	}
	rec, ok := nbrs[v]
	if !ok {
		return nil, fmt.Errorf("TransitionAttrs(%q,%q): %w", u, v, ErrTransitionNotFound)
	}

	return rec.Attrs, nil
}

// String implements fmt.Stringer for quick diagnostics.
func (c *Chain) String() string {
	return fmt.Sprintf("Chain with %d states and %d transitions", c.Len(), c.TransitionCount())
}
