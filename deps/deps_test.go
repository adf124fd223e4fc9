package deps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolve_GoMod(t *testing.T) {
	path := writeManifest(t, "go.mod", `module example.com/demo

go 1.23

require (
	github.com/sirupsen/logrus v1.9.3
	gopkg.in/yaml.v3 v3.0.1
)
`)

	versions, err := Resolve(path, KindGoMod)
	require.NoError(t, err)
	assert.Equal(t, "v1.9.3", versions["github.com/sirupsen/logrus"])
	assert.Equal(t, "v3.0.1", versions["gopkg.in/yaml.v3"])
}

func TestResolve_PackageLockV2(t *testing.T) {
	path := writeManifest(t, "package-lock.json", `{
  "name": "demo",
  "lockfileVersion": 2,
  "packages": {
    "": {"name": "demo", "version": "1.0.0"},
    "node_modules/left-pad": {"version": "1.3.0"},
    "node_modules/@scope/pkg/node_modules/nested": {"version": "2.0.1"}
  }
}`)

	versions, err := Resolve(path, KindPackageLock)
	require.NoError(t, err)
	assert.Equal(t, "1.3.0", versions["left-pad"])
	assert.Equal(t, "2.0.1", versions["nested"])
	assert.NotContains(t, versions, "")
}

func TestResolve_PackageLockV1(t *testing.T) {
	path := writeManifest(t, "package-lock.json", `{
  "name": "demo",
  "lockfileVersion": 1,
  "dependencies": {
    "left-pad": {"version": "1.3.0"}
  }
}`)

	versions, err := Resolve(path, KindPackageLock)
	require.NoError(t, err)
	assert.Equal(t, "1.3.0", versions["left-pad"])
}

func TestResolve_Requirements(t *testing.T) {
	path := writeManifest(t, "requirements.txt", `# pinned deps
numpy==1.26.0
pandas>=2.0  # data frames
scipy
-r other.txt
`)

	versions, err := Resolve(path, KindRequirements)
	require.NoError(t, err)
	assert.Equal(t, "1.26.0", versions["numpy"])
	assert.Equal(t, "2.0", versions["pandas"])
	assert.Equal(t, "", versions["scipy"])
	assert.NotContains(t, versions, "-r other.txt")
}

func TestResolve_Environment(t *testing.T) {
	path := writeManifest(t, "environment.yml", `name: demo
dependencies:
  - python=3.11
  - pip
  - pip:
      - requests==2.31.0
`)

	versions, err := Resolve(path, KindEnvironment)
	require.NoError(t, err)
	assert.Equal(t, "3.11", versions["python"])
	assert.Equal(t, "", versions["pip"])
	assert.Equal(t, "2.31.0", versions["requests"])
}

func TestResolve_MissingManifestIsAnError(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "absent.mod"), KindGoMod)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not be read")
}

func TestResolve_UnknownKind(t *testing.T) {
	path := writeManifest(t, "something.txt", "content")
	_, err := Resolve(path, Kind("cargo"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown dependency manifest kind")
}
