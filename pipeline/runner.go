package pipeline

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"

	"github.com/runforge/runforge/common"
	"github.com/runforge/runforge/deps"
	"github.com/runforge/runforge/file"
	"github.com/runforge/runforge/probe"
	"github.com/runforge/runforge/runlog"
	"github.com/runforge/runforge/runner"
	"github.com/runforge/runforge/runtime"
	"github.com/runforge/runforge/step"
	"github.com/runforge/runforge/util"
)

// Runner orchestrates one pipeline execution: it expands the step
// registry into ordered invocations, threads every result into the run
// log, and finalizes the log into the on-disk manifest. Execution is
// strictly sequential; fan-out iterations run one at a time in option
// order. A step function that hangs blocks the run, there is no timeout
// or cancellation mechanism.
type Runner struct {
	ctx      *runtime.RunContext
	registry *step.Registry
	probes   *probe.Resolver
	clock    clockwork.Clock
	baseDir  string

	log *runlog.RunLog
}

// Option configures a Runner.
type Option func(*Runner)

// WithClock replaces the wall clock, letting tests control timestamps.
func WithClock(clock clockwork.Clock) Option {
	return func(r *Runner) {
		r.clock = clock
	}
}

// WithProbeResolver replaces the environment probe resolver.
func WithProbeResolver(p *probe.Resolver) Option {
	return func(r *Runner) {
		r.probes = p
	}
}

// WithBaseDir sets the directory the working folders are bootstrapped
// under. Defaults to the current working directory.
func WithBaseDir(dir string) Option {
	return func(r *Runner) {
		r.baseDir = dir
	}
}

// NewRunner initializes a run: it resolves the repository identity
// (fatal when missing), snapshots the environment (best effort),
// bootstraps the working folders and records the outcome as the implicit
// step zero. After NewRunner returns, the run log carries exactly one
// entry.
func NewRunner(ctx *runtime.RunContext, registry *step.Registry, opts ...Option) (*Runner, error) {
	if ctx == nil {
		return nil, errors.New("runner requires a run context")
	}
	if registry == nil {
		return nil, errors.New("runner requires a step registry")
	}

	r := &Runner{
		ctx:      ctx,
		registry: registry,
		clock:    clockwork.NewRealClock(),
		baseDir:  ".",
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.probes == nil {
		r.probes = probe.NewResolver(runner.NewLocalRunner())
	}

	identity, err := r.probes.RepositoryIdentity(context.Background())
	if err != nil {
		return nil, err
	}

	systemInfo, err := r.probes.SystemInfo(context.Background())
	if err != nil {
		// A missing snapshot degrades to null in the manifest; the reason
		// is only interesting in the logs.
		ctx.Log.ForProbe("system_info").Warnf("environment snapshot unavailable: %v", err)
		systemInfo = nil
	}

	pipelineName := ctx.Config.Pipeline.Name
	if pipelineName == "" {
		pipelineName = identity.Name
	}

	r.log = runlog.New(r.clock, identity.Name, pipelineName, identity.Revision, systemInfo)

	ctx.Console.Rule(fmt.Sprintf("%s @ %s", identity.DisplayName, shortRevision(identity.Revision)))

	startedAt := r.clock.Now()
	bootstrap, err := file.Bootstrap(r.baseDir, common.BootstrapFolders)
	if err != nil {
		return nil, errors.Wrap(err, "folder bootstrap failed")
	}
	r.log.Record(common.StepZeroIdentifier, runlog.NewAction(
		r.clock, 0, nil, startedAt, nil, bootstrap, common.StepZeroAction,
	))

	return r, nil
}

// Log exposes the accumulating run log.
func (r *Runner) Log() *runlog.RunLog {
	return r.log
}

// RunStep executes the step registered under id and returns the action
// logs it produced: one for a singular step, one per option value for a
// fan-out step. Every produced entry is also inserted into the run log
// under its (dotted, for fan-out) identifier. A failing step function
// propagates immediately; nothing is recorded for the failed unit.
func (r *Runner) RunStep(id string) ([]*runlog.ActionLog, error) {
	desc, err := r.registry.Get(id)
	if err != nil {
		return nil, err
	}

	stepNumber, err := strconv.Atoi(id)
	if err != nil || stepNumber < 0 {
		return nil, errors.Errorf("step identifier '%s' must be a non-negative integer", id)
	}

	stepLog := r.ctx.Log.ForStep(id)
	stepLog.Debugf("%s: %s", desc.ResolvedActionName(), common.StateRunning)

	merged := util.MergeData(r.ctx.BaseData(), desc.Args)

	title, err := r.stepTitle(desc, merged)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to render title for step '%s'", id)
	}
	r.ctx.Console.Rule(title)

	if !desc.IsMulti {
		a, err := r.invoke(desc, stepNumber, nil, merged, nil)
		if err != nil {
			stepLog.Errorf("%s: %s: %v", desc.ResolvedActionName(), common.StateFailed, err)
			return nil, err
		}
		r.log.Record(id, a)
		stepLog.Debugf("%s: %s in %s", desc.ResolvedActionName(), common.StateSuccess, a.Elapsed())
		return []*runlog.ActionLog{a}, nil
	}

	actions := make([]*runlog.ActionLog, 0, len(desc.MultiOptions))
	for i, option := range desc.MultiOptions {
		r.ctx.Console.Printf("  %s = %v\n", desc.MultiParam, option)
		varied := util.Data{desc.MultiParam: option}
		substep := step.Substep(i + 1)
		a, err := r.invoke(desc, stepNumber, substep, util.MergeData(merged, varied), varied)
		if err != nil {
			stepLog.Errorf("%s: %s: %v", desc.ResolvedActionName(), common.StateFailed, err)
			return nil, err
		}
		r.log.Record(step.Identifier(stepNumber, substep), a)
		actions = append(actions, a)
	}
	stepLog.Debugf("%s: %s", desc.ResolvedActionName(), common.StateSuccess)
	return actions, nil
}

// invoke runs the step function once and builds its action log
// immediately after it returns. varied is the per-invocation keyword
// subset recorded in the log, nil for singular steps.
func (r *Runner) invoke(desc *step.Descriptor, stepNumber int, substep *int, args util.Data, varied util.Data) (*runlog.ActionLog, error) {
	startedAt := r.clock.Now()

	var output interface{}
	call := func() error {
		out, err := desc.Fn(r.ctx, args)
		output = out
		return err
	}

	var err error
	if desc.HasProgress {
		err = call()
	} else {
		label := desc.ListItem
		if label == "" {
			label = desc.ResolvedActionName()
		}
		err = r.ctx.Console.Busy(label, call)
	}
	if err != nil {
		return nil, err
	}

	return runlog.NewAction(r.clock, stepNumber, substep, startedAt, varied, output, desc.ResolvedActionName()), nil
}

// RunAll executes every registered step in registration order, aborting
// on the first failure.
func (r *Runner) RunAll() error {
	for _, id := range r.registry.IDs() {
		if _, err := r.RunStep(id); err != nil {
			return err
		}
	}
	return nil
}

// Finalize resolves the configured dependency manifests (a missing
// manifest is fatal), stamps the completion timestamp and writes the run
// log to the log directory. It returns the finalized log and the path of
// the written file. Finalize is meant to be called once; a second call
// writes a second file under a new completion hash.
func (r *Runner) Finalize() (*runlog.RunLog, string, error) {
	var resolved map[string]map[string]string
	for _, src := range r.ctx.Config.Dependencies {
		table, err := deps.Resolve(src.Path, deps.Kind(src.Kind))
		if err != nil {
			return nil, "", err
		}
		if resolved == nil {
			resolved = make(map[string]map[string]string)
		}
		resolved[src.Path] = table
	}

	path, err := r.log.Finalize(r.clock, resolved, r.ctx.LogPath)
	if err != nil {
		return nil, "", err
	}

	r.ctx.Console.Println()
	r.ctx.Console.Printf("completed in %s, run log written to %s\n", r.log.Elapsed(), path)
	return r.log, path, nil
}

func (r *Runner) stepTitle(desc *step.Descriptor, merged util.Data) (string, error) {
	if desc.TitleTemplate == "" {
		return desc.ResolvedActionName(), nil
	}
	return util.RenderString(desc.TitleTemplate, merged)
}

func shortRevision(revision string) string {
	if len(revision) > 8 {
		return revision[:8]
	}
	return revision
}
