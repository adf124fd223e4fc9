package step

import (
	"reflect"
	goruntime "runtime"
	"strings"

	"github.com/runforge/runforge/runtime"
	"github.com/runforge/runforge/util"
)

// Func is the uniform signature every orchestrated step function
// implements. It receives the immutable run context and the merged
// keyword set for this invocation, and returns an arbitrary result value
// that is recorded opaquely in the action log.
type Func func(ctx *runtime.RunContext, args util.Data) (interface{}, error)

// Descriptor declares one step: the function to invoke, how to announce
// it, and whether it fans out into one invocation per option value.
// Descriptors are constructed by the caller before a run starts and are
// immutable during the run.
type Descriptor struct {
	// Fn is the step function.
	Fn Func
	// ActionName overrides the recorded action name. When empty, the name
	// is derived from the function's own symbol.
	ActionName string
	// TitleTemplate is a text/template string rendered against the merged
	// keyword set to produce the step's display title.
	TitleTemplate string
	// Args are step-specific keyword arguments merged on top of the
	// ambient run context for every invocation.
	Args util.Data
	// IsMulti marks a fan-out step: Fn runs once per MultiOptions value.
	IsMulti bool
	// MultiParam is the keyword that varies across fan-out invocations.
	MultiParam string
	// MultiOptions are the values substituted one at a time into MultiParam.
	MultiOptions []interface{}
	// HasProgress marks steps that report their own progress; when false
	// the runner wraps the invocation in a busy indicator.
	HasProgress bool
	// ListItem is a short display label for step listings.
	ListItem string
}

// Validate checks the fan-out invariant: a multi step needs both the
// varying parameter name and a non-empty option list.
func (d *Descriptor) Validate(id string) error {
	if d.Fn == nil {
		return &InvalidDescriptorError{ID: id, Reason: "step function is nil"}
	}
	if d.IsMulti {
		if d.MultiParam == "" {
			return &InvalidDescriptorError{ID: id, Reason: "fan-out step requires MultiParam"}
		}
		if len(d.MultiOptions) == 0 {
			return &InvalidDescriptorError{ID: id, Reason: "fan-out step requires non-empty MultiOptions"}
		}
	}
	return nil
}

// ResolvedActionName returns the declared action name, falling back to
// the function's own symbol name.
func (d *Descriptor) ResolvedActionName() string {
	if d.ActionName != "" {
		return d.ActionName
	}
	return FunctionName(d.Fn)
}

// FunctionName recovers a human-readable name from a step function. The
// full symbol ("github.com/org/repo/pkg.FetchData") is trimmed to its
// final element; method values lose their "-fm" suffix.
func FunctionName(fn Func) string {
	if fn == nil {
		return "unknown"
	}
	full := goruntime.FuncForPC(reflect.ValueOf(fn).Pointer()).Name()
	if i := strings.LastIndex(full, "/"); i >= 0 {
		full = full[i+1:]
	}
	if i := strings.Index(full, "."); i >= 0 {
		full = full[i+1:]
	}
	return strings.TrimSuffix(full, "-fm")
}
