package main

import (
	"fmt"
	"strings"

	"github.com/reusee/qsearch/cmds"
	"github.com/reusee/qsearch/grover"
	"github.com/reusee/qsearch/oracles"
	"github.com/reusee/qsearch/vars"
)

var targetArg = cmds.Var[string]("-target")

var exprArg = cmds.Var[string]("-expr")

var varsArg = cmds.Var[string]("-vars")

func init() {
	cmds.Define("-oracle-help", cmds.Func(func() {
		fmt.Println(`oracles:
  -target 1011            search for an exact bit string
  -expr "a and not b"     search for a satisfying assignment
  -vars a,b               variable names for -expr, cell order`)
	}).Desc("describe oracle selection"))
}

func buildOracle() (grover.Oracle, error) {
	target := vars.DerefOrZero(targetArg)
	expr := vars.DerefOrZero(exprArg)

	if target != "" && expr != "" {
		return nil, fmt.Errorf("pass either -target or -expr, not both")
	}

	if target != "" {
		oracle, err := oracles.NewBitstring(target)
		if err != nil {
			return nil, err
		}
		return oracle, nil
	}

	if expr != "" {
		if *varsArg == "" {
			return nil, fmt.Errorf("-expr needs -vars")
		}
		names := strings.Split(*varsArg, ",")
		for i, name := range names {
			names[i] = strings.TrimSpace(name)
		}
		oracle, err := oracles.NewExpr(expr, names)
		if err != nil {
			return nil, err
		}
		return oracle, nil
	}

	return nil, fmt.Errorf("no oracle, pass -target or -expr")
}
