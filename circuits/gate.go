package circuits

type GateKind uint8

const (
	GateH GateKind = iota + 1
	GateX
	GateCNX
	GateBarrier
	GateMeasure
)

func (k GateKind) String() string {
	switch k {
	case GateH:
		return "h"
	case GateX:
		return "x"
	case GateCNX:
		return "cnx"
	case GateBarrier:
		return "barrier"
	case GateMeasure:
		return "measure"
	}
	return "unknown"
}

// Gate is one primitive operation. Qubit is the target wire for GateH,
// GateX and GateCNX, and the measured wire for GateMeasure. Wires holds the
// control wires for GateCNX and the fenced wires for GateBarrier. Clbit is
// the destination bit for GateMeasure.
type Gate struct {
	Kind  GateKind `json:"kind"`
	Qubit int      `json:"qubit"`
	Wires []int    `json:"wires,omitempty"`
	Clbit int      `json:"clbit,omitempty"`
}

func (g Gate) equal(o Gate) bool {
	if g.Kind != o.Kind || g.Qubit != o.Qubit || g.Clbit != o.Clbit {
		return false
	}
	if len(g.Wires) != len(o.Wires) {
		return false
	}
	for i, w := range g.Wires {
		if w != o.Wires[i] {
			return false
		}
	}
	return true
}
