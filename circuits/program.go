package circuits

// Program is an assembled, executable gate sequence over a fixed number of
// wires and classical read-out bits.
type Program struct {
	Qubits int    `json:"qubits"`
	Clbits int    `json:"clbits"`
	Gates  []Gate `json:"gates"`
}

// Assemble concatenates fragments into a Program.
func Assemble(qubits, clbits int, fragments ...Fragment) Program {
	var f Fragment
	if len(fragments) > 0 {
		f = fragments[0].Compose(fragments[1:]...)
	}
	return Program{
		Qubits: qubits,
		Clbits: clbits,
		Gates:  f.gates,
	}
}
