// Package artifact resolves build artifacts (bootloaders, kernels, root
// filesystems, device trees) to URLs and downloads them.
package artifact

import (
	"errors"
	"fmt"

	"github.com/trustedfirmware/lavagen/config"
)

// ErrMissingBuildMode is reported when an artifact is resolved without a
// build mode. There is no sensible default, so this is always a
// configuration error.
var ErrMissingBuildMode = errors.New("build mode is required")

// Resolver turns artifact filenames into URLs. Under the CI server the URL
// points at the server's artifact archive for the current job build;
// locally it points into the workspace via a file scheme.
type Resolver struct {
	CI            bool
	Base          string
	JobName       string
	BuildNumber   string
	WorkspaceRoot string
}

// NewResolver builds a resolver from the process configuration.
func NewResolver(cfg config.Config) Resolver {
	return Resolver{
		CI:            cfg.CI,
		Base:          cfg.CIBase,
		JobName:       cfg.JobName,
		BuildNumber:   cfg.BuildNumber,
		WorkspaceRoot: cfg.WorkspaceRoot,
	}
}

// URL returns the location of `filename` built in `buildMode`. Pure string
// construction; fetching the URL is the caller's concern.
func (r Resolver) URL(filename, buildMode string) (string, error) {
	if buildMode == "" {
		return "", fmt.Errorf("%w to resolve '%s'", ErrMissingBuildMode, filename)
	}
	if r.CI {
		return fmt.Sprintf("%s/job/%s/%s/artifact/artefacts/%s/%s",
			r.Base, r.JobName, r.BuildNumber, buildMode, filename), nil
	}
	return fmt.Sprintf("file://%s/artefacts/%s/%s", r.WorkspaceRoot, buildMode, filename), nil
}
