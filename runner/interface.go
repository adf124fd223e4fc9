package runner

import "context"

// Runner defines an interface for executing commands on the local machine.
// Probes depend on this rather than os/exec directly so tests can swap in
// a canned implementation.
type Runner interface {
	// Run executes a command with arguments in the given working directory
	// (empty means the current directory).
	// Returns stdout, stderr, exit code, and error.
	Run(ctx context.Context, dir string, name string, args ...string) (stdout string, stderr string, exitCode int, err error)
}
