package probe

import (
	"context"
	"os"
	goruntime "runtime"
	"strconv"

	"github.com/pkg/errors"
)

func (p *Resolver) resolveSystemInfo(ctx context.Context) (map[string]string, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve hostname")
	}

	info := map[string]string{
		"hostname":   hostname,
		"os":         goruntime.GOOS,
		"arch":       goruntime.GOARCH,
		"cpus":       strconv.Itoa(goruntime.NumCPU()),
		"go_version": goruntime.Version(),
	}

	// Kernel details are nice to have but not worth failing the snapshot
	// over; uname is absent on some platforms.
	if kernel, _, code, unameErr := p.runner.Run(ctx, "", "uname", "-sr"); unameErr == nil && code == 0 {
		info["kernel"] = kernel
	}

	return info, nil
}
