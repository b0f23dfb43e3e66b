package ports

import (
	"context"

	"go.trai.ch/peek/internal/core/domain"
)

// Runner executes the configured build command.
type Runner interface {
	// Run executes command in a shell and blocks until it exits, with
	// stderr merged into stdout. A failing build is a normal outcome
	// reported through the result, never through a Go error; a command
	// that cannot be launched at all is folded into the result the same
	// way, with diagnostic text as output.
	//
	// No timeout is imposed: a hung build blocks the caller.
	Run(ctx context.Context, command domain.BuildCommand) domain.BuildResult
}
