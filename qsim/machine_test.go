package qsim

import (
	"math"
	"testing"

	"github.com/reusee/qsearch/circuits"
)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMachineInitialState(t *testing.T) {
	m := NewMachine(3)
	if len(m.Amps) != 8 {
		t.Fatalf("got %d amplitudes", len(m.Amps))
	}
	if m.Amps[0] != 1 {
		t.Fatal("not in all-zero state")
	}
}

func TestHadamardSplitsAmplitude(t *testing.T) {
	var b circuits.Builder
	b.H(0)
	b.Measure(0, 0)
	program := circuits.Assemble(1, 1, b.Fragment())

	m := NewMachine(1)
	if err := m.Run(program); err != nil {
		t.Fatal(err)
	}
	probs := m.Probabilities(1)
	if !almost(probs["0"], 0.5) || !almost(probs["1"], 0.5) {
		t.Fatalf("got %v", probs)
	}
}

func TestXFlips(t *testing.T) {
	var b circuits.Builder
	b.X(0)
	b.Measure(0, 0)
	program := circuits.Assemble(1, 1, b.Fragment())

	m := NewMachine(1)
	if err := m.Run(program); err != nil {
		t.Fatal(err)
	}
	probs := m.Probabilities(1)
	if !almost(probs["1"], 1) {
		t.Fatalf("got %v", probs)
	}
}

func TestCNXTruthTable(t *testing.T) {
	for input := range 4 {
		var b circuits.Builder
		if input&1 != 0 {
			b.X(0)
		}
		if input&2 != 0 {
			b.X(1)
		}
		b.CNX([]int{0, 1}, 2)
		for q := range 3 {
			b.Measure(q, q)
		}
		program := circuits.Assemble(3, 3, b.Fragment())

		m := NewMachine(3)
		if err := m.Run(program); err != nil {
			t.Fatal(err)
		}
		probs := m.Probabilities(3)

		want := []byte{'0', '0', '0'}
		if input&1 != 0 {
			want[0] = '1'
		}
		if input&2 != 0 {
			want[1] = '1'
		}
		if input == 3 {
			want[2] = '1'
		}
		if !almost(probs[string(want)], 1) {
			t.Fatalf("input %d: got %v, want %s", input, probs, want)
		}
	}
}

func TestBarrierIsNoOp(t *testing.T) {
	var b circuits.Builder
	b.X(0)
	b.Barrier(0, 1)
	b.Measure(0, 0)
	program := circuits.Assemble(2, 1, b.Fragment())

	m := NewMachine(2)
	if err := m.Run(program); err != nil {
		t.Fatal(err)
	}
	if probs := m.Probabilities(1); !almost(probs["1"], 1) {
		t.Fatalf("got %v", probs)
	}
}

func TestUnmeasuredBitReadsZero(t *testing.T) {
	var b circuits.Builder
	b.X(0)
	b.Measure(0, 1)
	program := circuits.Assemble(1, 2, b.Fragment())

	m := NewMachine(1)
	if err := m.Run(program); err != nil {
		t.Fatal(err)
	}
	if probs := m.Probabilities(2); !almost(probs["01"], 1) {
		t.Fatalf("got %v", probs)
	}
}

func TestRunRejectsWidthMismatch(t *testing.T) {
	m := NewMachine(1)
	if err := m.Run(circuits.Program{Qubits: 2}); err == nil {
		t.Fatal("expected error")
	}
}

func TestRunRejectsBadWire(t *testing.T) {
	var b circuits.Builder
	b.H(5)
	program := circuits.Assemble(2, 0, b.Fragment())
	m := NewMachine(2)
	if err := m.Run(program); err == nil {
		t.Fatal("expected error")
	}
}

func TestRunRejectsUnknownGate(t *testing.T) {
	program := circuits.Program{
		Qubits: 1,
		Gates:  []circuits.Gate{{Kind: 99}},
	}
	m := NewMachine(1)
	if err := m.Run(program); err == nil {
		t.Fatal("expected error")
	}
}
