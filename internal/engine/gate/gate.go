// Package gate implements the rebuild gate: the stateful decision point that
// determines whether the project must be rebuilt before a request is served.
package gate

import (
	"context"
	"sync"
	"time"

	"go.trai.ch/peek/internal/core/domain"
	"go.trai.ch/peek/internal/core/ports"
	"go.trai.ch/zerr"
)

// Gate remembers the tree fingerprint as of the last successful build and
// serializes all check-then-rebuild sequences behind one mutex. The stored
// fingerprint is the only mutable state and is touched exclusively inside
// the locked section.
type Gate struct {
	scanner ports.Scanner
	runner  ports.Runner
	logger  ports.Logger

	root    string
	ignores []string
	command domain.BuildCommand

	mu    sync.Mutex
	last  domain.Fingerprint
	known bool
}

// New creates a Gate in the unbuilt state, so the first request always
// triggers a build.
func New(scanner ports.Scanner, runner ports.Runner, logger ports.Logger, settings domain.Settings) *Gate {
	return &Gate{
		scanner: scanner,
		runner:  runner,
		logger:  logger,
		root:    settings.WatchDir,
		ignores: settings.IgnoredPaths,
		command: settings.Command,
	}
}

// EnsureFresh guarantees the served output reflects the current tree. It
// returns nil when the tree is unchanged since the last successful build or
// after a successful rebuild, and a BuildFailure when the build (or the tree
// scan itself) failed.
//
// The whole sequence runs under the gate's mutex: concurrent callers
// serialize, and a caller that blocked behind a completed rebuild re-checks
// the fingerprint and falls through without a redundant build. A failed
// build leaves the stored fingerprint untouched, so every subsequent call
// retries until the build succeeds or the tree changes again.
func (g *Gate) EnsureFresh(ctx context.Context) *domain.BuildFailure {
	g.mu.Lock()
	defer g.mu.Unlock()

	scanStart := time.Now()
	current, err := g.scanner.Fingerprint(g.root, g.ignores)
	if err != nil {
		g.logger.Error(zerr.Wrap(err, "tree scan failed"))
		return domain.NewScanFailure(err)
	}

	if g.known && current == g.last {
		return nil
	}

	g.logger.Info("change detected, rebuilding",
		"fingerprint", current.String(),
		"scan", time.Since(scanStart).Round(time.Microsecond).String(),
	)

	buildStart := time.Now()
	result := g.runner.Run(ctx, g.command)
	if !result.Succeeded {
		g.logger.Info("build failed",
			"exit_status", result.ExitStatus,
			"duration", time.Since(buildStart).Round(time.Millisecond).String(),
		)
		return domain.NewBuildFailure(result.CombinedOutput)
	}

	g.last = current
	g.known = true
	g.logger.Info("build succeeded",
		"duration", time.Since(buildStart).Round(time.Millisecond).String(),
	)
	return nil
}
