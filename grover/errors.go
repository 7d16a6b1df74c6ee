package grover

import "errors"

var (
	// ErrNoSampling rejects a backend without sampled read-out. Raised
	// before any program is constructed.
	ErrNoSampling = errors.New("backend does not support sampled read-out")

	// ErrBadOracle rejects an oracle whose registers are malformed.
	ErrBadOracle = errors.New("malformed oracle")
)
