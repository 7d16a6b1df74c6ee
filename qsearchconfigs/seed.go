package qsearchconfigs

import (
	"github.com/reusee/qsearch/cmds"
	"github.com/reusee/qsearch/configs"
	"github.com/reusee/qsearch/modes"
)

// Seed drives the sampler RNG. Zero means non-reproducible.
type Seed uint64

var seedFlag = cmds.Var[uint64]("-seed")

func (Module) Seed(
	loader configs.Loader,
	mode modes.Mode,
) Seed {
	if *seedFlag != 0 {
		return Seed(*seedFlag)
	}
	if n := configs.First[uint64](loader, "seed"); n != 0 {
		return Seed(n)
	}
	if mode == modes.ModeDevelopment {
		// reproducible runs under test
		return 1
	}
	return 0
}
