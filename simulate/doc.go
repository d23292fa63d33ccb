// Package simulate generates stochastic paths through a Markov chain using
// weighted random sampling over each state's outgoing transitions.
//
// Key features:
//   - NextState(c, current): one weighted draw, proportional to edge weights
//     (no pre-normalization required)
//   - Simulate(c, start, steps): a trace of steps+1 states, start inclusive
//   - SimulateUntil(c, start, target): first-passage path, bounded by
//     WithMaxSteps with a distinct ErrMaxStepsExceeded outcome
//
// Randomness is an injectable dependency, never ambient process state:
// WithSeed(n) gives a reproducible stream, WithRand(r) shares and advances a
// caller-owned source. With no option, a fixed default seed applies, so the
// zero-configuration behavior is reproducible too.
//
// Errors:
//   - ErrStateNotFound     — unknown start/target/current state
//   - ErrNoTransitions     — drawing from a state with no outgoing edges
//   - ErrNoMass            — outgoing weights sum to zero
//   - ErrNegativeSteps     — Simulate with steps < 0
//   - ErrMaxStepsExceeded  — SimulateUntil exhausted its step bound
package simulate
