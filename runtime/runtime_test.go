package runtime

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runforge/runforge/config"
	"github.com/runforge/runforge/console"
	"github.com/runforge/runforge/logger"
)

func testConfig() *config.RunConfig {
	return &config.RunConfig{
		Paths: config.PathsSpec{
			OutputPath:              "output",
			LogPath:                 "log",
			WarehousePath:           "/srv/warehouse",
			PipelineWarehouseFolder: "demo-pipeline",
		},
	}
}

func newTestContext(t *testing.T, opts Options, cfg *config.RunConfig) (*RunContext, error) {
	t.Helper()
	log, err := logger.New("", false)
	require.NoError(t, err)
	return NewRunContext(opts, cfg, console.NewTerminal(&bytes.Buffer{}, false), log)
}

func TestNewRunContext_ResolvesOutputPath(t *testing.T) {
	rc, err := newTestContext(t, Options{}, testConfig())
	require.NoError(t, err)
	assert.Equal(t, "output", rc.OutputPath)
	assert.Equal(t, "log", rc.LogPath)
}

func TestNewRunContext_ReleaseResolvesWarehouse(t *testing.T) {
	rc, err := newTestContext(t, Options{Release: true}, testConfig())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/srv/warehouse", "demo-pipeline"), rc.OutputPath)
}

func TestNewRunContext_ReleaseWithoutWarehouseIsFatal(t *testing.T) {
	cfg := testConfig()
	cfg.Paths.WarehousePath = ""

	_, err := newTestContext(t, Options{Release: true}, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WAREHOUSE_PATH")
}

func TestNewRunContext_RequiresCollaborators(t *testing.T) {
	log, err := logger.New("", false)
	require.NoError(t, err)

	_, err = NewRunContext(Options{}, nil, console.NewTerminal(&bytes.Buffer{}, false), log)
	assert.Error(t, err)

	_, err = NewRunContext(Options{}, testConfig(), nil, log)
	assert.Error(t, err)

	_, err = NewRunContext(Options{}, testConfig(), console.NewTerminal(&bytes.Buffer{}, false), nil)
	assert.Error(t, err)
}

func TestBaseData(t *testing.T) {
	rc, err := newTestContext(t, Options{Verbose: true, Force: true}, testConfig())
	require.NoError(t, err)

	data := rc.BaseData()
	assert.Equal(t, true, data["verbose"])
	assert.Equal(t, true, data["force"])
	assert.Equal(t, false, data["release"])
	assert.Equal(t, "output", data["output_path"])
	assert.Equal(t, "log", data["log_path"])

	// Each call returns a fresh map; extending one does not leak.
	data["extra"] = 1
	assert.NotContains(t, rc.BaseData(), "extra")
}
