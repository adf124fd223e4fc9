package probe

import (
	"context"

	"github.com/runforge/runforge/cache"
	"github.com/runforge/runforge/runner"
)

// Resolver answers environment questions about the machine and checkout a
// run executes on. Results are memoized so a probe consulted at both the
// init and finalize boundaries only runs once.
type Resolver struct {
	runner runner.Runner
	memo   *cache.Cache[string, interface{}]
}

// NewResolver creates a Resolver backed by the given command runner.
func NewResolver(r runner.Runner) *Resolver {
	return &Resolver{
		runner: r,
		memo:   cache.NewCache[string, interface{}](),
	}
}

// RepositoryIdentity resolves the repository name, revision and display
// name of the current checkout. Failure is fatal to the run.
func (p *Resolver) RepositoryIdentity(ctx context.Context) (*RepositoryIdentity, error) {
	v, err := p.memo.GetOrSet("repository_identity", func() (interface{}, error) {
		return p.resolveRepositoryIdentity(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*RepositoryIdentity), nil
}

// SystemInfo resolves a best-effort snapshot of platform facts. Callers
// treat an error as "no snapshot" rather than a run failure.
func (p *Resolver) SystemInfo(ctx context.Context) (map[string]string, error) {
	v, err := p.memo.GetOrSet("system_info", func() (interface{}, error) {
		return p.resolveSystemInfo(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(map[string]string), nil
}
