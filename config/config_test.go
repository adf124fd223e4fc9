package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseConfigYAML = `
PIPELINE:
  NAME: variant-pipeline
PATHS:
  OUTPUT_PATH: output
  LOG_PATH: log
  WAREHOUSE_PATH: /srv/warehouse
  PIPELINE_WAREHOUSE_FOLDER: variant-pipeline
DEPENDENCIES:
  - PATH: go.mod
    KIND: gomod
  - PATH: requirements.txt
    KIND: requirements
`

const overrideConfigYAML = `
PATHS:
  OUTPUT_PATH: /scratch/output
`

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_LoadBaseOnly(t *testing.T) {
	dir := t.TempDir()
	base := writeConfig(t, dir, "config.yaml", baseConfigYAML)

	cfg, err := NewLoader(base, "").Load()
	require.NoError(t, err)

	assert.Equal(t, "variant-pipeline", cfg.Pipeline.Name)
	assert.Equal(t, "output", cfg.Paths.OutputPath)
	assert.Equal(t, "/srv/warehouse", cfg.Paths.WarehousePath)
	require.Len(t, cfg.Dependencies, 2)
	assert.Equal(t, "gomod", cfg.Dependencies[0].Kind)
}

func TestLoader_OverrideLayerWins(t *testing.T) {
	dir := t.TempDir()
	base := writeConfig(t, dir, "config.yaml", baseConfigYAML)
	override := writeConfig(t, dir, "config.local.yaml", overrideConfigYAML)

	cfg, err := NewLoader(base, override).Load()
	require.NoError(t, err)

	assert.Equal(t, "/scratch/output", cfg.Paths.OutputPath)
	// Values the override leaves unset survive from the base layer.
	assert.Equal(t, "log", cfg.Paths.LogPath)
	assert.Equal(t, "variant-pipeline", cfg.Pipeline.Name)
}

func TestLoader_MissingOverrideIsIgnored(t *testing.T) {
	dir := t.TempDir()
	base := writeConfig(t, dir, "config.yaml", baseConfigYAML)

	cfg, err := NewLoader(base, filepath.Join(dir, "nope.yaml")).Load()
	require.NoError(t, err)
	assert.Equal(t, "output", cfg.Paths.OutputPath)
}

func TestLoader_MissingBaseIsAnError(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope.yaml"), "").Load()
	assert.Error(t, err)
}

func TestLoader_EmptyFileIsAnError(t *testing.T) {
	dir := t.TempDir()
	base := writeConfig(t, dir, "config.yaml", "")
	_, err := NewLoader(base, "").Load()
	assert.Error(t, err)
}

func TestLoader_DefaultsFillUnsetPaths(t *testing.T) {
	dir := t.TempDir()
	base := writeConfig(t, dir, "config.yaml", "PIPELINE:\n  NAME: demo\n")

	cfg, err := NewLoader(base, "").Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultOutputPath, cfg.Paths.OutputPath)
	assert.Equal(t, DefaultLogPath, cfg.Paths.LogPath)
}

func TestLoader_DependencyValidation(t *testing.T) {
	dir := t.TempDir()
	base := writeConfig(t, dir, "config.yaml", "DEPENDENCIES:\n  - PATH: go.mod\n")

	_, err := NewLoader(base, "").Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KIND is required")
}

func TestMerge_DependenciesReplacedWholesale(t *testing.T) {
	base := &RunConfig{Dependencies: []DependencySource{{Path: "a", Kind: "gomod"}}}
	override := &RunConfig{Dependencies: []DependencySource{{Path: "b", Kind: "requirements"}}}

	Merge(base, override)
	require.Len(t, base.Dependencies, 1)
	assert.Equal(t, "b", base.Dependencies[0].Path)
}
