package grover

import "github.com/reusee/qsearch/circuits"

// Oracle is the predicate capability consumed by the search. Any value
// implementing these methods is a valid oracle; the search never looks
// inside the predicate.
//
// Register wires and the outcome wire must not overlap. Character i of an
// assignment corresponds to cell i of the search register.
type Oracle interface {

	// SearchRegister returns the register spanning the search space.
	SearchRegister() circuits.Register

	// AuxiliaryRegister returns the oracle's workspace register. A
	// zero-width register means no workspace is needed.
	AuxiliaryRegister() circuits.Register

	// OutcomeCell returns the wire receiving the predicate outcome.
	OutcomeCell() int

	// PredicateFragment builds the predicate evaluation: it reads the
	// search and auxiliary registers and writes the outcome cell.
	PredicateFragment() circuits.Fragment

	// Decode picks a candidate assignment from one execution's counts.
	Decode(counts circuits.Counts) string

	// Verify re-evaluates the predicate classically on an assignment.
	Verify(assignment string) bool
}
