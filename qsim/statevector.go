package qsim

import (
	"context"
	"errors"

	"github.com/reusee/qsearch/circuits"
)

var ErrNoSampledReadout = errors.New("statevector backend returns the exact final state, not sampled read-out")

// Statevector is a backend that only produces the exact final state. It
// cannot serve as a sampling Execution Adapter; callers needing amplitudes
// use State directly.
type Statevector struct{}

func (Statevector) SupportsSampling() bool {
	return false
}

func (Statevector) Execute(ctx context.Context, program circuits.Program) (circuits.Counts, error) {
	return nil, ErrNoSampledReadout
}

// State runs the program and returns the final amplitudes.
func (Statevector) State(program circuits.Program) ([]complex128, error) {
	machine := NewMachine(program.Qubits)
	if err := machine.Run(program); err != nil {
		return nil, err
	}
	return machine.Amps, nil
}
