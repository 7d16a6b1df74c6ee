package qsearchconfigs

import (
	"github.com/reusee/qsearch/cmds"
	"github.com/reusee/qsearch/configs"
	"github.com/reusee/qsearch/vars"
)

// Incremental selects adaptive round growth over a fixed round count.
type Incremental bool

// NumIterations is the fixed amplification round count. Ignored when
// Incremental is set.
type NumIterations int

var incrementalFlag = cmds.Switch("-incremental")

var numIterationsFlag = cmds.Var[int]("-iterations")

func (Module) Incremental(
	loader configs.Loader,
) Incremental {
	if *incrementalFlag {
		return true
	}
	return Incremental(configs.First[bool](loader, "incremental"))
}

func (Module) NumIterations(
	loader configs.Loader,
) NumIterations {
	if n := vars.FirstNonZero(
		*numIterationsFlag,
		configs.First[int](loader, "num_iterations"),
	); n >= 1 {
		return NumIterations(n)
	}
	return 1
}
