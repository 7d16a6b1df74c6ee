package grover

import "github.com/reusee/qsearch/circuits"

// fragments builds the three program segments once per run. The prefix
// spreads the search register uniformly, the block is one amplification
// round (predicate evaluation followed by inversion about the mean), and
// the measurement fences the search register and reads it out. The block
// is reused verbatim for every round, so assembling k rounds then one more
// is structurally identical to assembling k+1 rounds directly.
func (s *Search) fragments() (prefix, block, measurement circuits.Fragment) {
	search := s.oracle.SearchRegister()
	outcome := s.oracle.OutcomeCell()

	var p circuits.Builder
	p.H(search.Wires...)
	prefix = p.Fragment()

	var b circuits.Builder
	b.Append(s.oracle.PredicateFragment())
	b.H(search.Wires...)
	b.X(search.Wires...)
	b.X(outcome)
	b.H(outcome)
	b.CNX(search.Wires, outcome)
	b.H(outcome)
	b.X(search.Wires...)
	b.X(outcome)
	b.H(search.Wires...)
	b.H(outcome)
	block = b.Fragment()

	var m circuits.Builder
	m.Barrier(search.Wires...)
	for i, wire := range search.Wires {
		m.Measure(wire, i)
	}
	measurement = m.Fragment()

	return
}

// width is the total wire count of assembled programs.
func (s *Search) width() int {
	max := s.oracle.OutcomeCell()
	for _, w := range s.oracle.SearchRegister().Wires {
		if w > max {
			max = w
		}
	}
	for _, w := range s.oracle.AuxiliaryRegister().Wires {
		if w > max {
			max = w
		}
	}
	return max + 1
}
