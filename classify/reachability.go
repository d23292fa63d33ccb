// File: reachability.go
// Role: Directed reachability and the communication-class partition.
package classify

import (
	"fmt"

	"github.com/katalvlaran/markov/chain"
)

// CanStep reports whether u has a direct transition to v.
// Pure membership query; unknown states yield false.
// Complexity: O(1).
func CanStep(c *chain.Chain, u, v string) bool {
	if c == nil {
		return false
	}

	return c.HasTransition(u, v)
}

// Reachable returns the set of all states reachable from source via any
// directed path, including source itself. Uses an explicit-stack depth-first
// traversal with a visited set, so cycles are safe.
// Complexity: O(V + E).
func Reachable(c *chain.Chain, source string) (map[string]bool, error) {
	if c == nil {
		return nil, fmt.Errorf("Reachable: %w", ErrNilChain)
	}
	if !c.HasState(source) {
		return nil, fmt.Errorf("Reachable(%q): %w", source, ErrStateNotFound)
	}

	visited := make(map[string]bool, c.Len())
	stack := []string{source}

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[u] {
			continue
		}
		visited[u] = true

		succ, err := c.Successors(u)
		if err != nil {
			return nil, fmt.Errorf("Reachable: Successors(%q): %w", u, err)
		}
		stack = append(stack, succ...)
	}

	return visited, nil
}

// coreachable returns the set of states from which target is reachable,
// including target itself. Traverses a reverse adjacency built in one pass.
func coreachable(c *chain.Chain, target string) map[string]bool {
	preds := make(map[string][]string, c.Len())
	for _, rec := range c.AllTransitions() {
		preds[rec.To] = append(preds[rec.To], rec.From)
	}

	visited := make(map[string]bool, c.Len())
	stack := []string{target}

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[v] {
			continue
		}
		visited[v] = true
		stack = append(stack, preds[v]...)
	}

	return visited
}

// Communicates reports whether u and v are mutually reachable:
// v ∈ Reachable(u) and u ∈ Reachable(v). Every state communicates with
// itself.
// Complexity: O(V + E).
func Communicates(c *chain.Chain, u, v string) (bool, error) {
	fromU, err := Reachable(c, u)
	if err != nil {
		return false, fmt.Errorf("Communicates: %w", err)
	}
	if !fromU[v] {
		// v must exist even when unreachable from u.
		if !c.HasState(v) {
			return false, fmt.Errorf("Communicates(%q): %w", v, ErrStateNotFound)
		}

		return false, nil
	}

	fromV, err := Reachable(c, v)
	if err != nil {
		return false, fmt.Errorf("Communicates: %w", err)
	}

	return fromV[u], nil
}

// CommunicationClasses partitions all states into classes of mutual
// reachability. Classes are pairwise disjoint and their union covers every
// state (an equivalence relation). Each class is the intersection of the
// forward and backward reachable sets of its first-discovered member; classes
// and their members follow the chain's insertion order.
// Complexity: O(V·(V + E)) worst case.
func CommunicationClasses(c *chain.Chain) ([][]string, error) {
	if c == nil {
		return nil, fmt.Errorf("CommunicationClasses: %w", ErrNilChain)
	}

	states := c.States()
	assigned := make(map[string]bool, len(states))
	var classes [][]string

	for _, s := range states {
		if assigned[s] {
			continue
		}

		forward, err := Reachable(c, s)
		if err != nil {
			return nil, fmt.Errorf("CommunicationClasses: %w", err)
		}
		backward := coreachable(c, s)

		var class []string
		for _, t := range states {
			if forward[t] && backward[t] {
				class = append(class, t)
				assigned[t] = true
			}
		}
		classes = append(classes, class)
	}

	return classes, nil
}

// IsClosed reports whether no state in class has an outgoing edge to a state
// outside the class. An empty class is trivially closed.
// Complexity: O(V + E).
func IsClosed(c *chain.Chain, class []string) (bool, error) {
	if c == nil {
		return false, fmt.Errorf("IsClosed: %w", ErrNilChain)
	}

	members := make(map[string]bool, len(class))
	for _, s := range class {
		if !c.HasState(s) {
			return false, fmt.Errorf("IsClosed(%q): %w", s, ErrStateNotFound)
		}
		members[s] = true
	}

	for _, u := range class {
		succ, err := c.Successors(u)
		if err != nil {
			return false, fmt.Errorf("IsClosed: Successors(%q): %w", u, err)
		}
		for _, v := range succ {
			if !members[v] {
				return false, nil
			}
		}
	}

	return true, nil
}
