package qsearchconfigs

import (
	"github.com/reusee/qsearch/cmds"
	"github.com/reusee/qsearch/configs"
	"github.com/reusee/qsearch/vars"
)

// BackendName selects the Execution Adapter.
type BackendName string

// RemoteAddr is the sampler service URL used by the remote backend.
type RemoteAddr string

var backendFlag = cmds.Var[string]("-backend")

var remoteAddrFlag = cmds.Var[string]("-remote-addr")

func (Module) BackendName(
	loader configs.Loader,
) BackendName {
	return BackendName(vars.FirstNonZero(
		*backendFlag,
		configs.First[string](loader, "backend"),
		"simulator",
	))
}

func (Module) RemoteAddr(
	loader configs.Loader,
) RemoteAddr {
	return RemoteAddr(vars.FirstNonZero(
		*remoteAddrFlag,
		configs.First[string](loader, "remote_addr"),
	))
}
