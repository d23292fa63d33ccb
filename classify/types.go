// Package classify: sentinel errors shared by the structural algorithms.
package classify

import "errors"

var (
	// ErrNilChain is returned when a nil *chain.Chain is passed in.
	ErrNilChain = errors.New("classify: chain is nil")

	// ErrStateNotFound indicates a referenced state is not in the chain.
	ErrStateNotFound = errors.New("classify: state not found")
)
