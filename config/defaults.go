package config

// Default path values applied when the configuration files leave them unset.
// They match the folders bootstrapped at the start of every run.
const (
	DefaultOutputPath = "output"
	DefaultLogPath    = "log"
)

// SetDefaults fills unset fields of cfg with their default values.
// It never overrides a value that came from a configuration file.
func SetDefaults(cfg *RunConfig) {
	if cfg == nil {
		return
	}
	if cfg.Paths.OutputPath == "" {
		cfg.Paths.OutputPath = DefaultOutputPath
	}
	if cfg.Paths.LogPath == "" {
		cfg.Paths.LogPath = DefaultLogPath
	}
}
