package fs

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/peek/internal/core/domain"
	"go.trai.ch/peek/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Scanner = (*ModTimeScanner)(nil)
	_ ports.Scanner = (*DigestScanner)(nil)
)

// ModTimeScanner fingerprints a tree by the newest modification time among
// its files. Cheap and good enough for the common edit-save-refresh loop,
// but blind to deletions and to mtime-preserving changes.
type ModTimeScanner struct {
	walker *Walker
}

// NewModTimeScanner creates a scanner using the newest-mtime strategy.
func NewModTimeScanner(walker *Walker) *ModTimeScanner {
	return &ModTimeScanner{walker: walker}
}

// Fingerprint returns the maximum modification timestamp (UnixNano) observed
// across all non-ignored files, or domain.ZeroFingerprint for an empty tree.
// Directories' own mtimes are not considered.
func (s *ModTimeScanner) Fingerprint(root string, ignores []string) (domain.Fingerprint, error) {
	var latest int64

	files, walkErr := s.walker.WalkFiles(root, ignores)
	for _, d := range files {
		info, err := d.Info()
		if err != nil {
			// File vanished after enumeration, skip it.
			continue
		}
		if mtime := info.ModTime().UnixNano(); mtime > latest {
			latest = mtime
		}
	}
	if err := walkErr(); err != nil {
		return domain.ZeroFingerprint, zerr.With(zerr.Wrap(err, "failed to walk watch root"), "root", root)
	}

	return domain.Fingerprint(latest), nil //nolint:gosec // equality-only value, sign loss is harmless
}

// DigestScanner fingerprints a tree by folding every file's path, size and
// modification time into a single xxhash sum. Slightly more work per scan
// than ModTimeScanner, but it also notices deletions and renames.
type DigestScanner struct {
	walker *Walker
}

// NewDigestScanner creates a scanner using the tree-digest strategy.
func NewDigestScanner(walker *Walker) *DigestScanner {
	return &DigestScanner{walker: walker}
}

// Fingerprint returns an xxhash digest over the tree's file metadata, or
// domain.ZeroFingerprint for an empty tree. WalkFiles yields files in
// lexical order, which keeps the digest deterministic.
func (s *DigestScanner) Fingerprint(root string, ignores []string) (domain.Fingerprint, error) {
	digest := xxhash.New()
	empty := true

	files, walkErr := s.walker.WalkFiles(root, ignores)
	for path, d := range files {
		info, err := d.Info()
		if err != nil {
			continue
		}
		empty = false

		_, _ = digest.WriteString(path)
		_, _ = digest.Write([]byte{0})

		var buf [16]byte
		binary.LittleEndian.PutUint64(buf[:8], uint64(info.Size()))               //nolint:gosec // folded into a hash
		binary.LittleEndian.PutUint64(buf[8:], uint64(info.ModTime().UnixNano())) //nolint:gosec // folded into a hash
		_, _ = digest.Write(buf[:])
	}
	if err := walkErr(); err != nil {
		return domain.ZeroFingerprint, zerr.With(zerr.Wrap(err, "failed to walk watch root"), "root", root)
	}

	if empty {
		return domain.ZeroFingerprint, nil
	}
	return domain.Fingerprint(digest.Sum64()), nil
}
