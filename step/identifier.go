package step

import "strconv"

// Identifier derives the stable, sortable textual identifier for a step or
// fan-out iteration. A nil substep yields the bare step number
// ("3"); a non-nil substep yields the dotted form ("3.1"). Presence is an
// explicit tri-state rather than a numeric truthiness check, so a substep
// of 0 still renders as "3.0". The runner assigns 1-based substep
// ordinals, so the zero form never occurs during normal execution.
func Identifier(stepNumber int, substep *int) string {
	if substep == nil {
		return strconv.Itoa(stepNumber)
	}
	return strconv.Itoa(stepNumber) + "." + strconv.Itoa(*substep)
}

// Substep wraps an ordinal for use with Identifier and ActionLog fields.
func Substep(n int) *int {
	return &n
}
