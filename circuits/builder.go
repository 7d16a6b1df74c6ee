package circuits

// Builder accumulates gates and produces a Fragment.
type Builder struct {
	gates []Gate
}

func (b *Builder) emit(g Gate) {
	b.gates = append(b.gates, g)
}

func (b *Builder) H(qubits ...int) {
	for _, q := range qubits {
		b.emit(Gate{Kind: GateH, Qubit: q})
	}
}

func (b *Builder) X(qubits ...int) {
	for _, q := range qubits {
		b.emit(Gate{Kind: GateX, Qubit: q})
	}
}

// CNX emits an X on target controlled on every wire in controls.
func (b *Builder) CNX(controls []int, target int) {
	wires := make([]int, len(controls))
	copy(wires, controls)
	b.emit(Gate{Kind: GateCNX, Qubit: target, Wires: wires})
}

func (b *Builder) Barrier(wires ...int) {
	ws := make([]int, len(wires))
	copy(ws, wires)
	b.emit(Gate{Kind: GateBarrier, Wires: ws})
}

func (b *Builder) Measure(qubit, clbit int) {
	b.emit(Gate{Kind: GateMeasure, Qubit: qubit, Clbit: clbit})
}

// Append copies the gates of a fragment into the builder.
func (b *Builder) Append(f Fragment) {
	b.gates = append(b.gates, f.gates...)
}

func (b *Builder) Fragment() Fragment {
	gates := make([]Gate, len(b.gates))
	copy(gates, b.gates)
	return Fragment{
		gates: gates,
	}
}
