package grover

import (
	"context"

	"github.com/reusee/qsearch/circuits"
)

// Backend executes assembled programs. Execute may block for an arbitrary
// backend-dependent duration; callers wanting cancellation wrap ctx with a
// deadline and treat expiry as an execution failure.
type Backend interface {

	// SupportsSampling reports whether Execute returns sampled read-out.
	// Backends describing only an exact final state cannot drive the
	// search and are rejected up front.
	SupportsSampling() bool

	Execute(ctx context.Context, program circuits.Program) (circuits.Counts, error)
}
