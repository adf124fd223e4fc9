package deps

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"
)

// Kind names a dependency-manifest format.
type Kind string

const (
	// KindGoMod is a Go module file (go.mod).
	KindGoMod Kind = "gomod"
	// KindPackageLock is an npm package-lock.json (v1 or v2/v3 layout).
	KindPackageLock Kind = "package-lock"
	// KindRequirements is a pip requirements.txt.
	KindRequirements Kind = "requirements"
	// KindEnvironment is a conda environment.yml.
	KindEnvironment Kind = "environment"
)

// Resolve extracts the package-to-version table from the manifest at
// path. A missing manifest is an error, not an empty result: the
// dependency table is part of the audit record and must never be silently
// absent.
func Resolve(path string, kind Kind) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dependency manifest '%s' could not be read", path)
	}

	switch kind {
	case KindGoMod:
		return parseGoMod(path, data)
	case KindPackageLock:
		return parsePackageLock(data)
	case KindRequirements:
		return parseRequirements(data), nil
	case KindEnvironment:
		return parseEnvironment(data)
	default:
		return nil, errors.Errorf("unknown dependency manifest kind '%s'", kind)
	}
}

func parseGoMod(path string, data []byte) (map[string]string, error) {
	f, err := modfile.Parse(path, data, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse go.mod '%s'", path)
	}
	versions := make(map[string]string, len(f.Require))
	for _, req := range f.Require {
		versions[req.Mod.Path] = req.Mod.Version
	}
	return versions, nil
}

type packageLockFile struct {
	// Packages is the v2/v3 layout, keyed by install path.
	Packages map[string]struct {
		Version string `json:"version"`
	} `json:"packages"`
	// Dependencies is the v1 layout, keyed by package name.
	Dependencies map[string]struct {
		Version string `json:"version"`
	} `json:"dependencies"`
}

func parsePackageLock(data []byte) (map[string]string, error) {
	var lock packageLockFile
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, errors.Wrap(err, "failed to parse package-lock.json")
	}

	versions := make(map[string]string)
	if len(lock.Packages) > 0 {
		for installPath, entry := range lock.Packages {
			if installPath == "" {
				continue // The root project entry carries no dependency.
			}
			name := installPath
			if i := strings.LastIndex(installPath, "node_modules/"); i >= 0 {
				name = installPath[i+len("node_modules/"):]
			}
			versions[name] = entry.Version
		}
		return versions, nil
	}

	for name, entry := range lock.Dependencies {
		versions[name] = entry.Version
	}
	return versions, nil
}

func parseRequirements(data []byte) map[string]string {
	versions := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		if i := strings.Index(line, " #"); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		name, version := splitRequirement(line)
		versions[name] = version
	}
	return versions
}

// splitRequirement splits "name==1.2.3" style pins. A specifier-less line
// records an empty version, which still names the dependency in the audit
// record.
func splitRequirement(line string) (string, string) {
	for _, op := range []string{"==", ">=", "<=", "~=", "!=", ">", "<"} {
		if i := strings.Index(line, op); i >= 0 {
			return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+len(op):])
		}
	}
	return line, ""
}

type environmentFile struct {
	Dependencies []interface{} `yaml:"dependencies"`
}

func parseEnvironment(data []byte) (map[string]string, error) {
	var env environmentFile
	if err := yaml.Unmarshal(data, &env); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment.yml")
	}

	versions := make(map[string]string)
	for _, dep := range env.Dependencies {
		switch d := dep.(type) {
		case string:
			parts := strings.SplitN(d, "=", 2)
			if len(parts) == 2 {
				versions[parts[0]] = strings.TrimPrefix(parts[1], "=")
			} else {
				versions[d] = ""
			}
		case map[string]interface{}:
			// Nested pip section: {"pip": ["name==1.2.3", ...]}.
			for _, value := range d {
				pipList, ok := value.([]interface{})
				if !ok {
					continue
				}
				for _, item := range pipList {
					if s, ok := item.(string); ok {
						name, version := splitRequirement(s)
						versions[name] = version
					}
				}
			}
		}
	}
	return versions, nil
}
