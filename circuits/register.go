package circuits

// Register is an ordered group of wires. Two registers of the same program
// never share wires.
type Register struct {
	Name  string
	Wires []int
}

// NewRegister allocates width consecutive wires starting at start.
func NewRegister(name string, start, width int) Register {
	wires := make([]int, width)
	for i := range wires {
		wires[i] = start + i
	}
	return Register{
		Name:  name,
		Wires: wires,
	}
}

func (r Register) Width() int {
	return len(r.Wires)
}
