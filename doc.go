// Package markov is an in-memory toolkit for building, inspecting, and
// analyzing finite discrete-time Markov chains.
//
// 🚀 What is markov?
//
//	A small, deterministic library that brings together:
//		• Chain primitives: attributed states & weighted transitions, stochastic checks
//		• Matrix views: dense & sparse adjacency export, matrix-driven construction
//		• Structure: reachability, communication classes, closed & absorbing classes
//		• Simulation: seeded weighted random walks, bounded first-passage runs
//		• Numerics: expected hitting times, stationary distributions (linear & power)
//
// ✨ Why choose markov?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – insertion-ordered states, sorted successors, seeded RNG
//   - Pure Go – no cgo, no hidden deps
//   - Honest errors – sentinel errors everywhere, checkable with errors.Is
//
// Everything is organized under five subpackages:
//
//	chain/    — the Chain structure: states, transitions, attributes, matrix conversion, merging
//	classify/ — structural classification: reachability, communication classes, absorbing states
//	simulate/ — stochastic path generation with injectable randomness
//	matrix/   — dense float64 matrices and the linear solvers backing analysis
//	analysis/ — expected hitting times and stationary distributions
//
// Quick example:
//
//	c := chain.New()
//	c.AddTransition("A", "A", 0.9, nil)
//	c.AddTransition("A", "B", 0.1, nil)
//	c.AddTransition("B", "A", 0.5, nil)
//	c.AddTransition("B", "B", 0.5, nil)
//	pi, _ := analysis.StationaryDistribution(c)
//	// pi["A"] ≈ 5/6, pi["B"] ≈ 1/6
//
// See each subpackage's doc.go for contracts, complexity notes, and examples.
package markov
