// Package simulate: sentinel errors, options, and the deterministic RNG
// policy shared by the walk generators.
//
// RNG policy (no ambient randomness):
//   - Every entry point draws from an explicit *rand.Rand.
//   - Without WithRand/WithSeed, a fixed default seed is used, so results are
//     reproducible by default. Pass WithSeed for independent streams, or
//     WithRand to share and advance one source across calls.
//   - math/rand.Rand is not goroutine-safe; do not share one across goroutines.
package simulate

import (
	"errors"
	"math/rand"
)

// DefaultMaxSteps bounds SimulateUntil when WithMaxSteps is not given.
// Reaching the bound without hitting the target fails with
// ErrMaxStepsExceeded rather than looping forever.
const DefaultMaxSteps = 1_000_000

// defaultSeed is the fixed seed used when callers configure no randomness.
// Arbitrary but stable, to keep reproducible defaults.
const defaultSeed int64 = 1

var (
	// ErrNilChain is returned when a nil *chain.Chain is passed in.
	ErrNilChain = errors.New("simulate: chain is nil")

	// ErrStateNotFound indicates a start/target state is not in the chain.
	ErrStateNotFound = errors.New("simulate: state not found")

	// ErrNoTransitions indicates a draw from a state with no outgoing edges.
	ErrNoTransitions = errors.New("simulate: no outgoing transitions")

	// ErrNoMass indicates a draw from a state whose outgoing weights sum to
	// zero (or less); there is nothing to sample proportionally to.
	ErrNoMass = errors.New("simulate: outgoing weights have no positive mass")

	// ErrNegativeSteps indicates a negative step count.
	ErrNegativeSteps = errors.New("simulate: steps must be non-negative")

	// ErrMaxStepsExceeded indicates SimulateUntil hit its step bound before
	// reaching the target.
	ErrMaxStepsExceeded = errors.New("simulate: target not reached within step bound")
)

// Option configures a simulation call.
type Option func(*options)

type options struct {
	rng      *rand.Rand
	maxSteps int
}

// WithRand injects an explicit random source. The source is advanced by the
// call; share one across calls for a continuing walk. A nil source has no
// effect (the seeded default is retained).
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rng = r
		}
	}
}

// WithSeed derives a deterministic random source from seed.
// Seed 0 selects the package default stream.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rngFromSeed(seed) }
}

// WithMaxSteps bounds SimulateUntil to at most n transitions.
// Non-positive values are ignored (DefaultMaxSteps is retained).
func WithMaxSteps(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxSteps = n
		}
	}
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// gatherOptions resolves setters against the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{maxSteps: DefaultMaxSteps}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rngFromSeed(0)
	}

	return o
}
