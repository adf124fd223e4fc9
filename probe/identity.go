package probe

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// RepositoryIdentity names the code revision a run executed against.
type RepositoryIdentity struct {
	// Name is the repository directory name, e.g. "variant-pipeline".
	Name string
	// Revision is the full VCS revision hash.
	Revision string
	// DisplayName is Name with separators spaced out for console output.
	DisplayName string
}

// ErrRepositoryIdentity marks a run started outside a usable VCS checkout.
// Missing revision metadata is fatal: without it the run log cannot name
// the code it audited.
var ErrRepositoryIdentity = errors.New("repository identity could not be resolved")

func (p *Resolver) resolveRepositoryIdentity(ctx context.Context) (*RepositoryIdentity, error) {
	toplevel, stderr, code, err := p.runner.Run(ctx, "", "git", "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, errors.Wrap(ErrRepositoryIdentity, err.Error())
	}
	if code != 0 {
		return nil, errors.Wrapf(ErrRepositoryIdentity, "git rev-parse --show-toplevel exited %d: %s", code, stderr)
	}

	revision, stderr, code, err := p.runner.Run(ctx, "", "git", "rev-parse", "HEAD")
	if err != nil {
		return nil, errors.Wrap(ErrRepositoryIdentity, err.Error())
	}
	if code != 0 {
		return nil, errors.Wrapf(ErrRepositoryIdentity, "git rev-parse HEAD exited %d: %s", code, stderr)
	}

	name := filepath.Base(strings.TrimSpace(toplevel))
	return &RepositoryIdentity{
		Name:        name,
		Revision:    strings.TrimSpace(revision),
		DisplayName: displayName(name),
	}, nil
}

func displayName(name string) string {
	replacer := strings.NewReplacer("-", " ", "_", " ")
	return replacer.Replace(name)
}
