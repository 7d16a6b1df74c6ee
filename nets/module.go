package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/qsearch/logs"
	"github.com/reusee/qsearch/qsearchconfigs"
)

type Module struct {
	dscope.Module
	Configs qsearchconfigs.Module
	Logs    logs.Module
}
