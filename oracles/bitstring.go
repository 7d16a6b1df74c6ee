package oracles

import (
	"fmt"

	"github.com/reusee/qsearch/circuits"
)

// Bitstring is an oracle satisfied by exactly one assignment. Handy as the
// canonical single-marked-state search and as the reference oracle in
// tests.
type Bitstring struct {
	target  string
	search  circuits.Register
	outcome int
}

func NewBitstring(target string) (*Bitstring, error) {
	if len(target) == 0 {
		return nil, fmt.Errorf("empty target")
	}
	for i, c := range target {
		if c != '0' && c != '1' {
			return nil, fmt.Errorf("bad character %q at cell %d", c, i)
		}
	}
	return &Bitstring{
		target:  target,
		search:  circuits.NewRegister("v", 0, len(target)),
		outcome: len(target),
	}, nil
}

func (o *Bitstring) SearchRegister() circuits.Register {
	return o.search
}

func (o *Bitstring) AuxiliaryRegister() circuits.Register {
	return circuits.Register{Name: "a"}
}

func (o *Bitstring) OutcomeCell() int {
	return o.outcome
}

// PredicateFragment flips the outcome cell exactly when the search register
// holds the target: X the zero cells, apply a fully controlled X, undo.
func (o *Bitstring) PredicateFragment() circuits.Fragment {
	var zeros []int
	for i, c := range o.target {
		if c == '0' {
			zeros = append(zeros, o.search.Wires[i])
		}
	}
	var b circuits.Builder
	b.X(zeros...)
	b.CNX(o.search.Wires, o.outcome)
	b.X(zeros...)
	return b.Fragment()
}

func (o *Bitstring) Decode(counts circuits.Counts) string {
	return counts.MostFrequent()
}

func (o *Bitstring) Verify(assignment string) bool {
	return assignment == o.target
}
