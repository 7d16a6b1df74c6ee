package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/qsearch/cmds"
	"github.com/reusee/qsearch/grover"
	"github.com/reusee/qsearch/logs"
	"github.com/reusee/qsearch/modes"
	"github.com/reusee/qsearch/qsearchconfigs"
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		backend grover.Backend,
		incremental qsearchconfigs.Incremental,
		numIterations qsearchconfigs.NumIterations,
	) {
		ctx, _ := newSpan(ctx, "")

		oracle, err := buildOracle()
		ce(err)

		search, err := grover.New(oracle, backend, grover.Options{
			Incremental:   bool(incremental),
			NumIterations: int(numIterations),
			Logger:        logger,
		})
		ce(err)

		logger.InfoContext(ctx, "search",
			"cells", oracle.SearchRegister().Width(),
			"incremental", incremental,
			"max iterations", search.MaxIterations(),
		)

		result, err := search.Run(ctx)
		ce(logs.WrapSpan(ctx, err))

		logger.InfoContext(ctx, "done",
			"iterations", result.Iterations,
			"verified", result.Verified,
		)

		if !result.Verified {
			fmt.Printf("no solution, best candidate %s\n", result.Assignment)
			os.Exit(1)
		}
		fmt.Println(result.Assignment)
	})
}
