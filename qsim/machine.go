package qsim

import "math"

// Machine holds the full state vector of a wire set. Basis index bit q is
// the value of wire q.
type Machine struct {
	Qubits int
	Amps   []complex128

	measured []measurement
}

type measurement struct {
	qubit int
	clbit int
}

func NewMachine(qubits int) *Machine {
	amps := make([]complex128, 1<<qubits)
	amps[0] = 1
	return &Machine{
		Qubits: qubits,
		Amps:   amps,
	}
}

var invSqrt2 = complex(1/math.Sqrt2, 0)

func (m *Machine) applyH(q int) {
	mask := 1 << q
	for idx := range m.Amps {
		if idx&mask != 0 {
			continue
		}
		a := m.Amps[idx]
		b := m.Amps[idx|mask]
		m.Amps[idx] = invSqrt2 * (a + b)
		m.Amps[idx|mask] = invSqrt2 * (a - b)
	}
}

func (m *Machine) applyX(q int) {
	mask := 1 << q
	for idx := range m.Amps {
		if idx&mask == 0 {
			peer := idx | mask
			m.Amps[idx], m.Amps[peer] = m.Amps[peer], m.Amps[idx]
		}
	}
}

func (m *Machine) applyCNX(controls []int, target int) {
	var controlMask int
	for _, c := range controls {
		controlMask |= 1 << c
	}
	targetMask := 1 << target
	for idx := range m.Amps {
		if idx&controlMask == controlMask && idx&targetMask == 0 {
			peer := idx | targetMask
			m.Amps[idx], m.Amps[peer] = m.Amps[peer], m.Amps[idx]
		}
	}
}
