package runtime

import (
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/runforge/runforge/config"
	"github.com/runforge/runforge/console"
	"github.com/runforge/runforge/logger"
	"github.com/runforge/runforge/util"
)

// RunContext bundles everything a step may need during one run: resolved
// options, merged configuration, the resolved output path and the sinks
// for console and log output. It is constructed once per run and never
// mutated afterwards.
type RunContext struct {
	Options Options
	Config  *config.RunConfig

	// OutputPath is the resolved destination for run outputs: the
	// warehouse location for release runs, OUTPUT_PATH otherwise.
	OutputPath string
	// LogPath is the directory run logs are written to.
	LogPath string

	Console console.Console
	Log     *logger.Log
}

// NewRunContext validates the option/config combination and resolves the
// output path. A release run without a configured warehouse is a fatal
// configuration error.
func NewRunContext(opts Options, cfg *config.RunConfig, cons console.Console, log *logger.Log) (*RunContext, error) {
	if cfg == nil {
		return nil, errors.New("run context requires a configuration")
	}
	if cons == nil {
		return nil, errors.New("run context requires a console sink")
	}
	if log == nil {
		return nil, errors.New("run context requires a logger")
	}

	outputPath := cfg.Paths.OutputPath
	if opts.Release {
		if cfg.Paths.WarehousePath == "" || cfg.Paths.PipelineWarehouseFolder == "" {
			return nil, errors.New("release run requires PATHS.WAREHOUSE_PATH and PATHS.PIPELINE_WAREHOUSE_FOLDER")
		}
		outputPath = filepath.Join(cfg.Paths.WarehousePath, cfg.Paths.PipelineWarehouseFolder)
	}

	return &RunContext{
		Options:    opts,
		Config:     cfg,
		OutputPath: outputPath,
		LogPath:    cfg.Paths.LogPath,
		Console:    cons,
		Log:        log,
	}, nil
}

// BaseData returns the ambient keyword set merged into every step
// invocation: the CLI options plus the resolved paths. The returned map
// is fresh on every call, so callers may extend it freely.
func (rc *RunContext) BaseData() util.Data {
	return util.Data{
		"verbose":     rc.Options.Verbose,
		"force":       rc.Options.Force,
		"release":     rc.Options.Release,
		"output_path": rc.OutputPath,
		"log_path":    rc.LogPath,
	}
}
