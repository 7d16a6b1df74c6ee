package circuits

// Fragment is an immutable ordered gate sequence. Fragments compose by
// concatenation into new values; a composed fragment never aliases the
// backing storage of its operands.
type Fragment struct {
	gates []Gate
}

func NewFragment(gates ...Gate) Fragment {
	return Fragment{
		gates: gates,
	}
}

func (f Fragment) Len() int {
	return len(f.gates)
}

// Gates returns a copy of the gate sequence.
func (f Fragment) Gates() []Gate {
	ret := make([]Gate, len(f.gates))
	copy(ret, f.gates)
	return ret
}

// Compose returns f followed by others, in order.
func (f Fragment) Compose(others ...Fragment) Fragment {
	n := len(f.gates)
	for _, o := range others {
		n += len(o.gates)
	}
	gates := make([]Gate, 0, n)
	gates = append(gates, f.gates...)
	for _, o := range others {
		gates = append(gates, o.gates...)
	}
	return Fragment{
		gates: gates,
	}
}

// Repeat returns f concatenated with itself n times. Repeat(0) is the empty
// fragment.
func (f Fragment) Repeat(n int) Fragment {
	gates := make([]Gate, 0, len(f.gates)*n)
	for range n {
		gates = append(gates, f.gates...)
	}
	return Fragment{
		gates: gates,
	}
}

func (f Fragment) Equal(o Fragment) bool {
	if len(f.gates) != len(o.gates) {
		return false
	}
	for i, g := range f.gates {
		if !g.equal(o.gates[i]) {
			return false
		}
	}
	return true
}
