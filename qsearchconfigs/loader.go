package qsearchconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/qsearch/cmds"
	"github.com/reusee/qsearch/configs"
	"github.com/reusee/qsearch/logs"
)

//go:embed schema.cue
var schema string

var configPathsFlag = cmds.Collect[string]("-config")

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	// explicit files take priority
	paths = append(paths, *configPathsFlag...)

	filenames := []string{
		"qsearch.cue",
		".qsearch.cue",
	}

	// working directory
	if workingDir, err := os.Getwd(); err == nil {
		for _, filename := range filenames {
			path := filepath.Join(workingDir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	// user config dir
	if configDir, err := os.UserConfigDir(); err == nil {
		for _, filename := range filenames {
			path := filepath.Join(configDir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	// system wide
	for _, filename := range filenames {
		path := filepath.Join("/etc", filename)
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}

	return configs.NewLoader(paths, schema)
}
