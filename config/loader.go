package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Loader handles loading and merging of the layered RunConfig files.
// The base file is required; the override file, when present, replaces
// any value it sets on top of the base.
type Loader struct {
	basePath     string
	overridePath string
}

// NewLoader creates a configuration loader for the given base file and an
// optional local override file. Pass an empty overridePath to disable the
// override layer.
func NewLoader(basePath, overridePath string) *Loader {
	return &Loader{
		basePath:     basePath,
		overridePath: overridePath,
	}
}

// Load reads the base configuration, merges the override layer on top of
// it, applies defaults and validates the result.
func (l *Loader) Load() (*RunConfig, error) {
	if l.basePath == "" {
		return nil, errors.New("configuration file path is empty")
	}

	cfg, err := readConfigFile(l.basePath)
	if err != nil {
		return nil, err
	}

	if l.overridePath != "" {
		if _, statErr := os.Stat(l.overridePath); statErr == nil {
			override, err := readConfigFile(l.overridePath)
			if err != nil {
				return nil, err
			}
			Merge(cfg, override)
		} else if !os.IsNotExist(statErr) {
			return nil, errors.Wrapf(statErr, "failed to check override config '%s'", l.overridePath)
		}
	}

	SetDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readConfigFile(path string) (*RunConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file '%s'", path)
	}
	if len(content) == 0 {
		return nil, errors.Errorf("configuration file '%s' is empty", path)
	}

	var cfg RunConfig
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config YAML from '%s'", path)
	}
	return &cfg, nil
}

// Merge overlays every set value of override onto base.
func Merge(base, override *RunConfig) {
	if base == nil || override == nil {
		return
	}
	if override.Pipeline.Name != "" {
		base.Pipeline.Name = override.Pipeline.Name
	}
	if override.Paths.OutputPath != "" {
		base.Paths.OutputPath = override.Paths.OutputPath
	}
	if override.Paths.LogPath != "" {
		base.Paths.LogPath = override.Paths.LogPath
	}
	if override.Paths.WarehousePath != "" {
		base.Paths.WarehousePath = override.Paths.WarehousePath
	}
	if override.Paths.PipelineWarehouseFolder != "" {
		base.Paths.PipelineWarehouseFolder = override.Paths.PipelineWarehouseFolder
	}
	if len(override.Dependencies) > 0 {
		base.Dependencies = append([]DependencySource(nil), override.Dependencies...)
	}
}

func validate(cfg *RunConfig) error {
	for i, src := range cfg.Dependencies {
		if src.Path == "" {
			return errors.Errorf("config validation failed: DEPENDENCIES[%d].PATH is required", i)
		}
		if src.Kind == "" {
			return errors.Errorf("config validation failed: DEPENDENCIES[%d].KIND is required", i)
		}
	}
	return nil
}
