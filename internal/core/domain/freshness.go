// Package domain defines the core types shared across peek.
package domain

import "fmt"

// Fingerprint is a scalar summary of a directory tree's freshness. Only
// equality against a previously observed value is meaningful; the numeric
// value itself carries no ordering contract.
type Fingerprint uint64

// ZeroFingerprint is the fingerprint of an empty tree.
const ZeroFingerprint Fingerprint = 0

// String renders the fingerprint for diagnostics.
func (f Fingerprint) String() string {
	return fmt.Sprintf("%016x", uint64(f))
}

// BuildCommand is an opaque shell command that produces the served output.
// Immutable for the server's lifetime. The empty command means "nothing to
// build" and always succeeds.
type BuildCommand string

// Empty reports whether no build command is configured.
func (c BuildCommand) Empty() bool {
	return c == ""
}

// BuildResult captures one invocation of the build command.
type BuildResult struct {
	// CombinedOutput is the interleaved stdout/stderr of the subprocess.
	CombinedOutput []byte
	// Succeeded is true iff the subprocess exited with status zero.
	Succeeded bool
	// ExitStatus is the subprocess exit status, or -1 when the process
	// could not be launched or was terminated abnormally.
	ExitStatus int
}

// buildFailurePrefix is the literal prefix of every rendered build failure.
const buildFailurePrefix = "Failed to build! Command output:\n\n"

// BuildFailure is the rendered outcome of a failed freshness check. It is a
// routine, expected result rather than an error: the server stays up and the
// message is shown to the browser instead of the requested file.
type BuildFailure struct {
	Message string
}

// NewBuildFailure renders a failed build's combined output into the message
// shown to the browser.
func NewBuildFailure(combinedOutput []byte) *BuildFailure {
	return &BuildFailure{Message: buildFailurePrefix + string(combinedOutput)}
}

// NewScanFailure renders a tree scan error the same way, so an unreadable
// watch root is reported in-band instead of killing the server.
func NewScanFailure(err error) *BuildFailure {
	return &BuildFailure{Message: "Failed to scan project tree:\n\n" + err.Error()}
}
