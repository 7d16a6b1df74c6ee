package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/qsearch/backends"
	"github.com/reusee/qsearch/qsearchconfigs"
)

type Module struct {
	dscope.Module
	Backends backends.Module
	Configs  qsearchconfigs.Module
}
