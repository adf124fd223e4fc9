package runner

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// localRunner implements Runner using os/exec on the current machine.
type localRunner struct{}

// NewLocalRunner creates a Runner that executes commands locally.
func NewLocalRunner() Runner {
	return &localRunner{}
}

// Run executes the command and waits for it to complete. A non-zero exit
// status is reported through exitCode with a nil err, so callers can
// distinguish "command failed" from "command could not run".
func (r *localRunner) Run(ctx context.Context, dir string, name string, args ...string) (string, string, int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	outStr := strings.TrimRight(stdout.String(), "\n")
	errStr := strings.TrimRight(stderr.String(), "\n")

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return outStr, errStr, exitErr.ExitCode(), nil
		}
		return outStr, errStr, -1, errors.Wrapf(err, "failed to run command '%s'", name)
	}
	return outStr, errStr, 0, nil
}
