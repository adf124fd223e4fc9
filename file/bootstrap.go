package file

import (
	"path/filepath"

	"github.com/pkg/errors"
)

// BootstrapResult records the outcome of the working-folder bootstrap so
// it can be written into the run log as the implicit first step.
type BootstrapResult struct {
	FoldersCreated     []string `json:"folders_created"`
	FoldersInExistence []string `json:"folders_in_existence"`
}

// Bootstrap ensures every named folder exists under baseDir, creating the
// missing ones. The operation is idempotent: re-running it reports all
// folders as already in existence instead of failing.
func Bootstrap(baseDir string, folders []string) (*BootstrapResult, error) {
	result := &BootstrapResult{
		FoldersCreated:     []string{},
		FoldersInExistence: []string{},
	}

	for _, folder := range folders {
		path := filepath.Join(baseDir, folder)
		exists, err := PathExists(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to check folder %s", path)
		}
		if exists {
			result.FoldersInExistence = append(result.FoldersInExistence, folder)
			continue
		}
		if err := CreateDir(path); err != nil {
			return nil, errors.Wrapf(err, "failed to create folder %s", path)
		}
		result.FoldersCreated = append(result.FoldersCreated, folder)
	}

	return result, nil
}
