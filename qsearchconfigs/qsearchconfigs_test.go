package qsearchconfigs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/qsearch/configs"
	"github.com/reusee/qsearch/logs"
	"github.com/reusee/qsearch/modes"
)

func testScope(t *testing.T) dscope.Scope {
	loader := configs.NewLoader(nil, "")
	return dscope.New(
		new(Module),
		new(logs.Module),
		modes.ForTest(t),
	).Fork(
		&loader,
	)
}

func TestDefaults(t *testing.T) {
	testScope(t).Call(func(
		shots Shots,
		seed Seed,
		name BackendName,
		incremental Incremental,
		numIterations NumIterations,
		remoteAddr RemoteAddr,
	) {
		if shots != 1024 {
			t.Fatalf("got %d", shots)
		}
		// development mode pins the seed
		if seed != 1 {
			t.Fatalf("got %d", seed)
		}
		if name != "simulator" {
			t.Fatalf("got %q", name)
		}
		if incremental {
			t.Fatal()
		}
		if numIterations != 1 {
			t.Fatalf("got %d", numIterations)
		}
		if remoteAddr != "" {
			t.Fatalf("got %q", remoteAddr)
		}
	})
}

func TestConfigOverrides(t *testing.T) {
	loader := configs.NewLoader([]string{"testdata/override.cue"}, schema)
	dscope.New(
		new(Module),
		new(logs.Module),
		modes.ForTest(t),
	).Fork(
		&loader,
	).Call(func(
		shots Shots,
		name BackendName,
		incremental Incremental,
		numIterations NumIterations,
	) {
		if shots != 64 {
			t.Fatalf("got %d", shots)
		}
		if name != "statevector" {
			t.Fatalf("got %q", name)
		}
		if !incremental {
			t.Fatal()
		}
		if numIterations != 3 {
			t.Fatalf("got %d", numIterations)
		}
	})
}

func TestConfigFlag(t *testing.T) {
	*configPathsFlag = []string{"testdata/override.cue"}
	defer func() {
		*configPathsFlag = nil
	}()
	dscope.New(
		new(Module),
		new(logs.Module),
		modes.ForTest(t),
	).Call(func(
		shots Shots,
		name BackendName,
	) {
		if shots != 64 {
			t.Fatalf("got %d", shots)
		}
		if name != "statevector" {
			t.Fatalf("got %q", name)
		}
	})
}
