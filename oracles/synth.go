package oracles

import (
	"fmt"

	"github.com/reusee/qsearch/circuits"
	"go.starlark.net/syntax"
)

// synthesizer turns a parsed boolean expression into gates. Sub-results are
// computed into ancilla wires with X and controlled-X only, so the whole
// compute network is undone by replaying it in reverse. The produced
// predicate fragment is compute, copy to outcome, uncompute; ancillae come
// back to zero every round.
type synthesizer struct {
	index       map[string]int
	wireOf      func(cell int) int
	outcome     int
	nextAncilla int

	compute circuits.Builder
}

func (s *synthesizer) predicate(e syntax.Expr) (circuits.Fragment, error) {
	result, err := s.synth(e)
	if err != nil {
		return circuits.Fragment{}, err
	}

	forward := s.compute.Fragment()

	var b circuits.Builder
	b.Append(forward)
	b.CNX([]int{result}, s.outcome)
	gates := forward.Gates()
	for i := len(gates) - 1; i >= 0; i-- {
		b.Append(circuits.NewFragment(gates[i]))
	}
	return b.Fragment(), nil
}

func (s *synthesizer) alloc() int {
	wire := s.nextAncilla
	s.nextAncilla++
	return wire
}

// synth computes the value of e into the returned wire, leaving every other
// wire it touched restored.
func (s *synthesizer) synth(e syntax.Expr) (int, error) {
	switch e := e.(type) {

	case *syntax.ParenExpr:
		return s.synth(e.X)

	case *syntax.Ident:
		cell, ok := s.index[e.Name]
		if !ok {
			return 0, fmt.Errorf("undeclared variable: %s", e.Name)
		}
		return s.wireOf(cell), nil

	case *syntax.UnaryExpr:
		if e.Op != syntax.NOT {
			return 0, fmt.Errorf("unsupported unary operator: %s", e.Op)
		}
		w, err := s.synth(e.X)
		if err != nil {
			return 0, err
		}
		anc := s.alloc()
		s.compute.CNX([]int{w}, anc)
		s.compute.X(anc)
		return anc, nil

	case *syntax.BinaryExpr:
		wa, err := s.synth(e.X)
		if err != nil {
			return 0, err
		}
		wb, err := s.synth(e.Y)
		if err != nil {
			return 0, err
		}
		if wa == wb {
			// degenerate "a and a" / "a or a"
			switch e.Op {
			case syntax.AND, syntax.OR:
				return wa, nil
			default:
				return 0, fmt.Errorf("unsupported binary operator: %s", e.Op)
			}
		}
		anc := s.alloc()
		switch e.Op {
		case syntax.AND:
			s.compute.CNX([]int{wa, wb}, anc)
		case syntax.OR:
			// De Morgan on the inputs, then flip the result
			s.compute.X(wa, wb)
			s.compute.CNX([]int{wa, wb}, anc)
			s.compute.X(anc)
			s.compute.X(wa, wb)
		default:
			return 0, fmt.Errorf("unsupported binary operator: %s", e.Op)
		}
		return anc, nil

	case *syntax.CallExpr:
		ident, ok := e.Fn.(*syntax.Ident)
		if !ok || ident.Name != "xor" {
			return 0, fmt.Errorf("unsupported call")
		}
		if len(e.Args) != 2 {
			return 0, fmt.Errorf("xor wants 2 arguments, got %d", len(e.Args))
		}
		wa, err := s.synth(e.Args[0])
		if err != nil {
			return 0, err
		}
		wb, err := s.synth(e.Args[1])
		if err != nil {
			return 0, err
		}
		anc := s.alloc()
		s.compute.CNX([]int{wa}, anc)
		if wb != wa {
			s.compute.CNX([]int{wb}, anc)
		} else {
			// xor(a, a) is constantly false
			s.compute.CNX([]int{wa}, anc)
		}
		return anc, nil

	}
	return 0, fmt.Errorf("unsupported expression: %T", e)
}
