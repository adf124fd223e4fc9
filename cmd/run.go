package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runforge/runforge/config"
	"github.com/runforge/runforge/console"
	"github.com/runforge/runforge/logger"
	"github.com/runforge/runforge/pipeline"
	"github.com/runforge/runforge/runtime"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute the pipeline and write the run manifest",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := buildRunContext()
		if err != nil {
			return err
		}

		registry, err := defaultRegistry()
		if err != nil {
			return err
		}

		runner, err := pipeline.NewRunner(ctx, registry)
		if err != nil {
			return err
		}
		if err := runner.RunAll(); err != nil {
			return err
		}
		_, _, err = runner.Finalize()
		return err
	},
}

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "List the registered pipeline steps",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := defaultRegistry()
		if err != nil {
			return err
		}
		for _, id := range registry.IDs() {
			desc, err := registry.Get(id)
			if err != nil {
				return err
			}
			label := desc.ListItem
			if label == "" {
				label = desc.ResolvedActionName()
			}
			cmd.Printf("%-6s %s\n", id, label)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(stepsCmd)
}

func buildRunContext() (*runtime.RunContext, error) {
	cfg, err := config.NewLoader(options.ConfigPath, localOverridePath(options.ConfigPath)).Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Paths.LogPath, options.Verbose)
	if err != nil {
		return nil, err
	}

	cons := console.NewTerminal(os.Stdout, !options.Verbose)
	return runtime.NewRunContext(*options, cfg, cons, log)
}

// localOverridePath derives the sibling override file for a base config,
// e.g. config/config.yaml -> config/config.local.yaml.
func localOverridePath(basePath string) string {
	ext := filepath.Ext(basePath)
	return strings.TrimSuffix(basePath, ext) + ".local" + ext
}
