package domain

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// DefaultPort is the port peek listens on when none is configured.
const DefaultPort = 3000

// Settings describe one peek server instance. They are assembled from flags
// and the optional peek.yaml file at startup and never change afterwards.
type Settings struct {
	// Port is the TCP port to listen on.
	Port int
	// ServeDir is the directory whose files are served.
	ServeDir string
	// WatchDir is the tree whose modification times gate rebuilds.
	WatchDir string
	// IgnoredPaths are absolute paths excluded from freshness scanning.
	// Matching is exact, not prefix or glob; an ignored directory is
	// pruned wholesale.
	IgnoredPaths []string
	// Command is the build command run when the tree changed.
	Command BuildCommand
	// DigestFingerprint selects the tree-digest fingerprint strategy
	// instead of the default newest-mtime one.
	DigestFingerprint bool
}

// Canonicalize resolves the serve, watch and ignored paths to cleaned
// absolute form, so that ignore matching is a plain string comparison.
func (s *Settings) Canonicalize() error {
	serve, err := filepath.Abs(s.ServeDir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve serve directory"), "path", s.ServeDir)
	}
	s.ServeDir = serve

	watch, err := filepath.Abs(s.WatchDir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve watch directory"), "path", s.WatchDir)
	}
	s.WatchDir = watch

	for i, ignore := range s.IgnoredPaths {
		abs, err := filepath.Abs(ignore)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to resolve ignored path"), "path", ignore)
		}
		s.IgnoredPaths[i] = abs
	}
	return nil
}

// Validate checks the settings against their invariants. It expects
// Canonicalize to have run first.
func (s *Settings) Validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return zerr.With(ErrInvalidPort, "port", s.Port)
	}

	info, err := os.Stat(s.ServeDir)
	if err != nil {
		return zerr.With(ErrServeDirNotFound, "path", s.ServeDir)
	}
	if !info.IsDir() {
		return zerr.With(ErrServeDirNotADir, "path", s.ServeDir)
	}

	info, err = os.Stat(s.WatchDir)
	if err != nil {
		return zerr.With(ErrWatchDirNotFound, "path", s.WatchDir)
	}
	if !info.IsDir() {
		return zerr.With(ErrWatchDirNotADir, "path", s.WatchDir)
	}
	return nil
}

// FileConfig is the subset of settings an optional peek.yaml may provide.
// Nil fields were absent from the file, which lets explicit flags win over
// file values during merging.
type FileConfig struct {
	Port    *int
	Serve   *string
	Watch   *string
	Ignore  []string
	Command *string
	Digest  *bool
}
