// Package chain implements the core Chain structure for discrete-time Markov
// chains: an attributed sparse adjacency representation with validated
// probability semantics and conversion to/from dense matrix form.
//
// Key features:
//   - Attributed states & transitions: open key→value maps plus a typed
//     transition weight P, kept separate from the extension map
//   - Idempotent AddState, last-write-wins AddTransition, bulk AddTransitions
//     via explicit record constructors (T, TW, TWA)
//   - Stochastic invariant: IsStochastic checks each non-terminal row sums to
//     1 within tolerance; Normalize rescales rows with positive mass
//   - Matrix bridge: FromAdjacencyMatrix (validated, optionally normalized)
//     and ToMatrix/ToSparse exports in a caller-chosen or natural state order
//   - Merge: union two chains with additive or overwrite overlap policy
//
// Determinism:
//   - States() preserves insertion order (the default matrix order).
//   - Successors/Predecessors are sorted lexicographically ascending.
//
// Errors:
//   - All failures are package sentinels (ErrStateNotFound, ErrZeroRow, ...)
//     suitable for errors.Is, optionally wrapped with call context.
//
// The package stores structure only. Algorithms live in classify (structural
// classification), simulate (random walks), and analysis (numerics).
package chain
