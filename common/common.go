package common

import "io/fs"

const (
	AppName = "runforge"
)

// Log field keys used across the application. Keeping them in one place
// lets the formatter display them in a stable order.
const (
	LogFieldApp      = "App"
	LogFieldPipeline = "Pipeline"
	LogFieldStep     = "Step"
	LogFieldProbe    = "Probe"
)

const (
	// FileMode0755 represents rwxr-xr-x
	FileMode0755 fs.FileMode = 0755
	// FileMode0644 represents rw-r--r--
	FileMode0644 fs.FileMode = 0644
)

// BootstrapFolders are the working directories every run expects to exist
// relative to the current working directory. Step zero creates the missing
// ones and records the outcome.
var BootstrapFolders = []string{"input", "output", "tmp", "log"}

const (
	// StepZeroIdentifier addresses the implicit folder-bootstrap step in the run log.
	StepZeroIdentifier = "0"
	// StepZeroAction is the recorded action name for the bootstrap step.
	StepZeroAction = "bootstrap_folders"
)

// OperationState describes the lifecycle of one orchestrated unit of work.
type OperationState int

const (
	StatePending OperationState = iota
	StateRunning
	StateSuccess
	StateFailed
)

func (s OperationState) String() string {
	switch s {
	case StatePending:
		return "Pending"
	case StateRunning:
		return "Running"
	case StateSuccess:
		return "Success"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}
