// Package shell provides a shell-based runner for the build command.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"go.trai.ch/peek/internal/core/domain"
	"go.trai.ch/peek/internal/core/ports"
)

var _ ports.Runner = (*Runner)(nil)

// Runner implements ports.Runner by handing the command to "sh -c". The
// subprocess inherits the server's environment and working directory; its
// stderr is merged into stdout so the captured output reads like a terminal
// session.
type Runner struct{}

// NewRunner creates a new Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes the build command and blocks until it exits. Build failure is
// reported through the result, never as a Go error: a non-zero exit keeps
// whatever the process wrote, and a command that could not be launched at
// all gets the launch error appended as diagnostic output with ExitStatus
// -1. The empty command is a no-op success.
func (r *Runner) Run(ctx context.Context, command domain.BuildCommand) domain.BuildResult {
	if command.Empty() {
		return domain.BuildResult{Succeeded: true}
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", string(command)) //nolint:gosec // user provided command

	var combined bytes.Buffer
	cmd.Stdout = &combined
	cmd.Stderr = &combined

	err := cmd.Run()
	if err == nil {
		return domain.BuildResult{
			CombinedOutput: combined.Bytes(),
			Succeeded:      true,
		}
	}

	exitStatus := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitStatus = exitErr.ExitCode()
	} else {
		// Launch failure: fold the diagnostic into the captured output
		// so it surfaces on the failure page like any other build error.
		combined.WriteString(err.Error())
		combined.WriteByte('\n')
	}

	return domain.BuildResult{
		CombinedOutput: combined.Bytes(),
		Succeeded:      false,
		ExitStatus:     exitStatus,
	}
}
