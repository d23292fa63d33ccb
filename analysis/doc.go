// Package analysis implements the linear-algebra-backed routines over Markov
// chains: expected hitting times and stationary distributions.
//
// Key features:
//   - ExpectedHittingTimes / ExpectedHittingTimesAt: expected steps to first
//     reach a target (label or zero-based index), solved as (I−P')h = b with
//     an identity constraint at the target row
//   - StationaryDistribution: πP = π, Σπ = 1, via an exact augmented
//     least-squares solve (MethodLinear), power iteration with convergence
//     control (MethodPower), or a size-based choice (MethodAuto)
//
// Dense matrices are materialized from the chain per call and discarded; the
// sparse chain remains the source of truth (a cached matrix would go stale
// on mutation).
//
// Errors:
//   - ErrStateNotFound / ErrIndexOutOfRange — target resolution failures,
//     kept distinct per the lookup-vs-range taxonomy
//   - ErrLinearSolve — linear stationary solve failed; the message suggests
//     MethodPower, and the underlying matrix sentinel stays errors.Is-visible
//   - matrix.ErrSingular — surfaced unwrapped from hitting-time systems with
//     unreachable targets
package analysis
