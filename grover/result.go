package grover

import "github.com/reusee/qsearch/circuits"

// Result is the outcome of a completed run: the last assembled program,
// the counts it produced, and the decoded assignment. Verified is true
// only when the oracle's classical evaluation accepted the assignment;
// sampling statistics alone never set it.
type Result struct {
	Program    circuits.Program
	Counts     circuits.Counts
	Assignment string
	Verified   bool

	// Iterations is the amplification round count of the final trial.
	Iterations int
}
