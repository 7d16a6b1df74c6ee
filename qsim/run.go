package qsim

import (
	"fmt"
	"sort"

	"github.com/reusee/qsearch/circuits"
)

// Run interprets every gate of the program. Barriers are scheduling fences
// with no effect on the state. Measurements are deferred: they record a
// wire-to-bit mapping consumed by Probabilities after the run.
func (m *Machine) Run(program circuits.Program) error {
	if program.Qubits != m.Qubits {
		return fmt.Errorf("program wants %d qubits, machine has %d", program.Qubits, m.Qubits)
	}

	for _, gate := range program.Gates {
		switch gate.Kind {

		case circuits.GateH:
			if err := m.checkWire(gate.Qubit); err != nil {
				return err
			}
			m.applyH(gate.Qubit)

		case circuits.GateX:
			if err := m.checkWire(gate.Qubit); err != nil {
				return err
			}
			m.applyX(gate.Qubit)

		case circuits.GateCNX:
			if err := m.checkWire(gate.Qubit); err != nil {
				return err
			}
			for _, c := range gate.Wires {
				if err := m.checkWire(c); err != nil {
					return err
				}
			}
			m.applyCNX(gate.Wires, gate.Qubit)

		case circuits.GateBarrier:

		case circuits.GateMeasure:
			if err := m.checkWire(gate.Qubit); err != nil {
				return err
			}
			m.measured = append(m.measured, measurement{
				qubit: gate.Qubit,
				clbit: gate.Clbit,
			})

		default:
			return fmt.Errorf("unknown gate kind: %d", gate.Kind)
		}
	}

	return nil
}

func (m *Machine) checkWire(q int) error {
	if q < 0 || q >= m.Qubits {
		return fmt.Errorf("wire %d out of range [0, %d)", q, m.Qubits)
	}
	return nil
}

// Probabilities marginalizes the state over the measured wires, producing
// the probability of each read-out bit string. Unmeasured clbits read 0.
func (m *Machine) Probabilities(clbits int) map[string]float64 {
	probs := make(map[string]float64)
	key := make([]byte, clbits)
	for idx, amp := range m.Amps {
		p := real(amp)*real(amp) + imag(amp)*imag(amp)
		if p == 0 {
			continue
		}
		for i := range key {
			key[i] = '0'
		}
		for _, mm := range m.measured {
			if mm.clbit < 0 || mm.clbit >= clbits {
				continue
			}
			if idx&(1<<mm.qubit) != 0 {
				key[mm.clbit] = '1'
			}
		}
		probs[string(key)] += p
	}
	return probs
}

// sortedOutcomes fixes an iteration order so sampling is reproducible.
func sortedOutcomes(probs map[string]float64) []string {
	keys := make([]string, 0, len(probs))
	for key := range probs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
