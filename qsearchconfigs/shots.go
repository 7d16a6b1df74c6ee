package qsearchconfigs

import (
	"github.com/reusee/qsearch/cmds"
	"github.com/reusee/qsearch/configs"
	"github.com/reusee/qsearch/vars"
)

// Shots is the sample count per trial execution.
type Shots int

var shotsFlag = cmds.Var[int]("-shots")

func (Module) Shots(
	loader configs.Loader,
) Shots {
	if n := vars.FirstNonZero(
		*shotsFlag,
		configs.First[int](loader, "shots"),
	); n > 0 {
		return Shots(n)
	}
	return 1024
}
