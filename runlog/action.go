package runlog

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/runforge/runforge/util"
)

// ActionLog is the structured record of one executed unit of work, either
// a singular step or one fan-out iteration.
type ActionLog struct {
	// Step is the integer step number.
	Step int `json:"step"`
	// SubstepNumber is the 1-based fan-out ordinal, nil for singular steps.
	SubstepNumber *int `json:"substep_number"`
	// StepAction is the resolved name of the function that was invoked.
	StepAction string `json:"step_action"`
	// StartedAt and CompletedAt bracket the invocation. CompletedAt is
	// stamped when the ActionLog is built, immediately after the
	// invocation returns; it is never estimated.
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
	// Arguments is the keyword subset that varied for this invocation,
	// nil for non-fan-out steps.
	Arguments util.Data `json:"arguments"`
	// ActionOutput is whatever the invoked function returned; the engine
	// treats it as opaque.
	ActionOutput interface{} `json:"action_output"`
}

// NewAction builds the record for one completed invocation. The
// completion timestamp is taken from clock at call time, so callers must
// build the record immediately after the underlying invocation returns.
// actionOutput is stored as-is, never copied or mutated.
func NewAction(clock clockwork.Clock, stepNumber int, substep *int, startedAt time.Time, args util.Data, actionOutput interface{}, actionName string) *ActionLog {
	return &ActionLog{
		Step:          stepNumber,
		SubstepNumber: substep,
		StepAction:    actionName,
		StartedAt:     startedAt,
		CompletedAt:   clock.Now(),
		Arguments:     args,
		ActionOutput:  actionOutput,
	}
}

// Elapsed returns the wall time the invocation took.
func (a *ActionLog) Elapsed() time.Duration {
	return a.CompletedAt.Sub(a.StartedAt)
}
