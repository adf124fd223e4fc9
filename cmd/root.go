package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/runforge/runforge/runtime"
)

var options = runtime.NewOptions()

var rootCmd = &cobra.Command{
	Use:          "runforge",
	Short:        "Reproducible, auditable batch pipeline runs",
	Long:         "runforge executes a declared sequence of pipeline steps and leaves behind a verifiable JSON manifest of what ran, when, where and against which revision.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&options.Verbose, "verbose", "v", false, "enable verbose (debug) logging")
	rootCmd.PersistentFlags().BoolVarP(&options.Force, "force", "f", false, "overwrite existing outputs")
	rootCmd.PersistentFlags().BoolVarP(&options.Release, "release", "r", false, "release run: resolve outputs into the warehouse")
	rootCmd.PersistentFlags().StringVarP(&options.ConfigPath, "config", "c", options.ConfigPath, "path to the base configuration file")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
