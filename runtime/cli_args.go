package runtime

// Options holds the resolved command-line options that affect run
// behavior. They are bound by the Cobra command layer and treated as
// read-only afterwards.
type Options struct {
	Verbose bool // Enable verbose (debug) logging and full console output
	Force   bool // Overwrite existing outputs where a step would otherwise skip work
	Release bool // Release run: outputs are resolved into the shared warehouse

	ConfigPath string // Path to the base configuration file
}

// NewOptions creates an Options with default values.
func NewOptions() *Options {
	return &Options{
		ConfigPath: "config.yaml",
	}
}
