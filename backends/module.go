package backends

import (
	"fmt"

	"github.com/reusee/dscope"
	"github.com/reusee/qsearch/grover"
	"github.com/reusee/qsearch/logs"
	"github.com/reusee/qsearch/nets"
	"github.com/reusee/qsearch/qsearchconfigs"
	"github.com/reusee/qsearch/qsim"
)

type Module struct {
	dscope.Module
	Configs qsearchconfigs.Module
	Nets    nets.Module
	Logs    logs.Module
}

// Backend resolves the configured Execution Adapter. The statevector
// backend resolves too; the search itself rejects it for lacking sampled
// read-out.
func (Module) Backend(
	name qsearchconfigs.BackendName,
	shots qsearchconfigs.Shots,
	seed qsearchconfigs.Seed,
	remoteAddr qsearchconfigs.RemoteAddr,
	client nets.HTTPClient,
	logger logs.Logger,
) grover.Backend {
	logger.Debug("backend",
		"name", name,
		"shots", shots,
	)
	switch name {

	case "simulator", "":
		return qsim.NewSampler(int(shots), uint64(seed))

	case "statevector":
		return qsim.Statevector{}

	case "remote":
		if remoteAddr == "" {
			panic(fmt.Errorf("remote backend needs remote_addr"))
		}
		return nets.NewRemote(string(remoteAddr), client)

	}
	panic(fmt.Errorf("unknown backend: %s", name))
}
