// Package analysis: methods, options, constants, and sentinel errors for the
// numerical routines.
package analysis

import "errors"

// Method selects how StationaryDistribution computes π.
type Method int

const (
	// MethodAuto picks MethodLinear for chains with at most AutoLinearLimit
	// states and MethodPower otherwise, trading exactness for scalability.
	MethodAuto Method = iota

	// MethodLinear solves the augmented system (Pᵗ−I)π = 0, Σπ = 1 as a
	// least-squares problem. Exact up to solver tolerance; O(n³).
	MethodLinear

	// MethodPower iterates π ← πP from the uniform distribution until the L1
	// change drops below the tolerance or the iteration budget runs out.
	MethodPower
)

// String implements fmt.Stringer for Method.
func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodLinear:
		return "linear"
	case MethodPower:
		return "power"
	default:
		return "unknown"
	}
}

// Documented defaults (single source of truth).
const (
	// DefaultTolerance is the L1 convergence threshold for the power method.
	DefaultTolerance = 1e-12

	// DefaultMaxIter bounds power-method iterations. Exhausting it is not an
	// error; the best estimate so far is returned.
	DefaultMaxIter = 100_000

	// AutoLinearLimit is the largest state count for which MethodAuto still
	// chooses the exact linear solve.
	AutoLinearLimit = 20
)

var (
	// ErrNilChain is returned when a nil *chain.Chain is passed in.
	ErrNilChain = errors.New("analysis: chain is nil")

	// ErrEmptyChain indicates a chain with no states.
	ErrEmptyChain = errors.New("analysis: chain has no states")

	// ErrStateNotFound indicates an unresolvable target state label.
	ErrStateNotFound = errors.New("analysis: state not found")

	// ErrIndexOutOfRange indicates an out-of-bounds numeric state index.
	ErrIndexOutOfRange = errors.New("analysis: state index out of range")

	// ErrBadMethod indicates an unrecognized Method value.
	ErrBadMethod = errors.New("analysis: unknown method")

	// ErrLinearSolve indicates the linear stationary solve failed; retry
	// with MethodPower.
	ErrLinearSolve = errors.New("analysis: linear stationary solve failed")
)

// Option configures StationaryDistribution.
type Option func(*options)

type options struct {
	method  Method
	tol     float64
	maxIter int
}

// WithMethod selects the computation method (default MethodAuto).
func WithMethod(m Method) Option {
	return func(o *options) { o.method = m }
}

// WithTolerance sets the power-method L1 convergence threshold.
// Non-positive values are ignored (DefaultTolerance is retained).
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.tol = tol
		}
	}
}

// WithMaxIter sets the power-method iteration budget.
// Non-positive values are ignored (DefaultMaxIter is retained).
func WithMaxIter(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIter = n
		}
	}
}

// gatherOptions resolves setters against the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{method: MethodAuto, tol: DefaultTolerance, maxIter: DefaultMaxIter}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
