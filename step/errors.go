package step

import "fmt"

// UnknownStepError is returned when a step identifier has no entry in the
// registry. It is fatal for that run-step call but does not corrupt the
// run log accumulated so far.
type UnknownStepError struct {
	ID string
}

func (e *UnknownStepError) Error() string {
	return fmt.Sprintf("step '%s' not found in registry", e.ID)
}

// InvalidDescriptorError is returned when a descriptor fails validation at
// registration time, before any step executes.
type InvalidDescriptorError struct {
	ID     string
	Reason string
}

func (e *InvalidDescriptorError) Error() string {
	return fmt.Sprintf("invalid descriptor for step '%s': %s", e.ID, e.Reason)
}
