package chain_test

import (
	"fmt"

	"github.com/katalvlaran/markov/chain"
)

// ExampleNew demonstrates building a small weather chain transition by
// transition. Structure:
//
//	sunny ──0.1──▶ rainy
//	  ▲  ╲0.9       │ ╲0.5
//	  └──0.5────────┘  ▼
//	 (self-loops on both)
func ExampleNew() {
	// Build the chain from transition records; endpoints are registered
	// automatically in first-seen order.
	c := chain.New()
	if err := c.AddTransitions(
		chain.TW("sunny", "sunny", 0.9),
		chain.TW("sunny", "rainy", 0.1),
		chain.TW("rainy", "sunny", 0.5),
		chain.TW("rainy", "rainy", 0.5),
	); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(c)
	fmt.Println("stochastic:", c.IsStochastic(0))
	fmt.Printf("P(sunny→rainy) = %.1f\n", c.TransitionMass("sunny", "rainy"))

	// Output:
	// Chain with 2 states and 4 transitions
	// stochastic: true
	// P(sunny→rainy) = 0.1
}

// ExampleFromAdjacencyMatrix demonstrates importing a weighted adjacency
// matrix: rows are normalized to probability distributions by default.
func ExampleFromAdjacencyMatrix() {
	c, err := chain.FromAdjacencyMatrix([][]float64{
		{1, 3},
		{2, 2},
	}, chain.WithLabels("hot", "cold"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("P(hot→cold) = %.2f\n", c.TransitionMass("hot", "cold"))
	fmt.Printf("P(cold→hot) = %.2f\n", c.TransitionMass("cold", "hot"))

	// Output:
	// P(hot→cold) = 0.75
	// P(cold→hot) = 0.50
}

// ExampleMerge demonstrates combining two chains, summing the weights of
// overlapping transitions and renormalizing each row.
func ExampleMerge() {
	a := chain.New()
	_ = a.AddTransition("A", "B", 2, nil)
	_ = a.AddTransition("A", "C", 8, nil)

	b := chain.New()
	_ = b.AddTransition("A", "B", 10, nil)

	merged, err := chain.Merge(a, b, chain.MergeAdd, chain.WithMergeNormalize())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("P(A→B) = %.1f\n", merged.TransitionMass("A", "B"))
	fmt.Printf("P(A→C) = %.1f\n", merged.TransitionMass("A", "C"))

	// Output:
	// P(A→B) = 0.6
	// P(A→C) = 0.4
}
