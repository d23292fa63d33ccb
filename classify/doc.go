// Package classify provides structural analysis of Markov chains: directed
// reachability, communication classes, closed classes, and absorbing-state
// detection.
//
// All functions are pure reads over the chain's query surface; nothing here
// mutates a Chain. Results that enumerate states do so deterministically:
// class members and absorbing-state lists follow the chain's insertion order.
//
// Complexity:
//   - Reachable, IsClosed:        O(V + E)
//   - Communicates:               O(V + E)
//   - CommunicationClasses:       O(V·(V + E)) worst case (one forward and one
//     backward traversal per undiscovered class representative)
//   - IsAbsorbing, OutgoingMass:  O(d) for out-degree d
//
// Errors:
//   - ErrNilChain       — nil chain argument
//   - ErrStateNotFound  — a referenced state is not registered
//
// OutgoingMass is the exception to strict lookups: it is a diagnostic that
// never errors and reports 0 for unknown states.
package classify
