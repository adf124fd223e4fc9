package config

// RunConfig is the top-level configuration structure for one pipeline run.
// Section and key names mirror the on-disk YAML layout consumed by
// external tooling, so they are upper-cased on purpose.
type RunConfig struct {
	Pipeline     PipelineSpec       `yaml:"PIPELINE"`
	Paths        PathsSpec          `yaml:"PATHS"`
	Dependencies []DependencySource `yaml:"DEPENDENCIES,omitempty"`
}

// PipelineSpec carries pipeline-level metadata.
type PipelineSpec struct {
	// Name overrides the pipeline name recorded in the run log.
	// When empty, the repository name is used.
	Name string `yaml:"NAME,omitempty"`
}

// PathsSpec defines the resolved filesystem layout for a run.
type PathsSpec struct {
	OutputPath string `yaml:"OUTPUT_PATH"`
	LogPath    string `yaml:"LOG_PATH"`
	// WarehousePath and PipelineWarehouseFolder are only consulted for
	// release runs, where outputs are mirrored into a shared warehouse.
	WarehousePath           string `yaml:"WAREHOUSE_PATH,omitempty"`
	PipelineWarehouseFolder string `yaml:"PIPELINE_WAREHOUSE_FOLDER,omitempty"`
}

// DependencySource names one dependency manifest that must be resolved
// into the run log at finalize time.
type DependencySource struct {
	Path string `yaml:"PATH"`
	Kind string `yaml:"KIND"` // e.g. gomod, package-lock, requirements, environment
}
