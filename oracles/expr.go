package oracles

import (
	"fmt"

	"github.com/reusee/qsearch/circuits"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Expr is an oracle whose predicate is a Starlark boolean expression over
// named one-bit variables, e.g. "(a and b) or xor(c, not d)". The quantum
// side is synthesized into gates with ancilla workspace; classical
// verification evaluates the same source through the Starlark interpreter.
type Expr struct {
	source   string
	names    []string
	search   circuits.Register
	aux      circuits.Register
	outcome  int
	fragment circuits.Fragment
}

var fileOptions = &syntax.FileOptions{}

// NewExpr parses and synthesizes the predicate. names fixes the variable
// order: variable i maps to cell i of the search register.
func NewExpr(source string, names []string) (*Expr, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("no variables declared")
	}
	index := make(map[string]int)
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("empty variable name at %d", i)
		}
		if _, ok := index[name]; ok {
			return nil, fmt.Errorf("duplicated variable: %s", name)
		}
		index[name] = i
	}

	parsed, err := fileOptions.ParseExpr("predicate", source, 0)
	if err != nil {
		return nil, fmt.Errorf("parse predicate: %w", err)
	}

	n := len(names)
	syn := &synthesizer{
		index:       index,
		wireOf:      func(cell int) int { return cell },
		outcome:     n,
		nextAncilla: n + 1,
	}
	fragment, err := syn.predicate(parsed)
	if err != nil {
		return nil, err
	}

	o := &Expr{
		source:   source,
		names:    names,
		search:   circuits.NewRegister("v", 0, n),
		aux:      circuits.NewRegister("a", n+1, syn.nextAncilla-n-1),
		outcome:  n,
		fragment: fragment,
	}

	// reject predicates that parse but do not evaluate to a boolean
	if _, err := o.evaluate(make([]bool, n)); err != nil {
		return nil, fmt.Errorf("evaluate predicate: %w", err)
	}

	return o, nil
}

func (o *Expr) SearchRegister() circuits.Register {
	return o.search
}

func (o *Expr) AuxiliaryRegister() circuits.Register {
	return o.aux
}

func (o *Expr) OutcomeCell() int {
	return o.outcome
}

func (o *Expr) PredicateFragment() circuits.Fragment {
	return o.fragment
}

func (o *Expr) Decode(counts circuits.Counts) string {
	return counts.MostFrequent()
}

func (o *Expr) Verify(assignment string) bool {
	if len(assignment) != len(o.names) {
		return false
	}
	values := make([]bool, len(assignment))
	for i, c := range assignment {
		switch c {
		case '0':
		case '1':
			values[i] = true
		default:
			return false
		}
	}
	ok, err := o.evaluate(values)
	if err != nil {
		return false
	}
	return ok
}

func (o *Expr) evaluate(values []bool) (bool, error) {
	env := starlark.StringDict{
		"xor": starlarkutil.MakeFunc("xor", func(a, b bool) bool {
			return a != b
		}),
	}
	for i, name := range o.names {
		env[name] = starlark.Bool(values[i])
	}
	thread := &starlark.Thread{Name: "verify"}
	value, err := starlark.EvalOptions(fileOptions, thread, "predicate", o.source, env)
	if err != nil {
		return false, err
	}
	return bool(value.Truth()), nil
}
