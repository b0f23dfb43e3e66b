// Package fs provides the file system adapters that detect project changes.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Walker enumerates the files of a directory tree, pruning ignored paths.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every regular file under root together with its directory
// entry, top-down in lexical order. Paths whose cleaned form exactly matches
// an entry of ignores are excluded; an ignored directory is pruned wholesale,
// its contents are never visited. The .git and .jj directories are always
// pruned.
//
// Entries that error mid-walk (typically files deleted between enumeration
// and stat) are skipped, not fatal. The error function returned alongside
// the iterator reports whether the root itself could not be read.
func (w *Walker) WalkFiles(root string, ignores []string) (iter.Seq2[string, fs.DirEntry], func() error) {
	var rootErr error

	seq := func(yield func(string, fs.DirEntry) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == root {
					rootErr = err
					return filepath.SkipAll
				}
				// Transient: entry vanished or became unreadable
				// between enumeration and stat.
				return nil
			}

			if d.IsDir() {
				if w.pruneDir(path, d, ignores) {
					return filepath.SkipDir
				}
				return nil
			}

			if ignoredPath(path, ignores) {
				return nil
			}

			if !yield(path, d) {
				return filepath.SkipAll
			}
			return nil
		})
	}

	return seq, func() error { return rootErr }
}

// pruneDir reports whether a directory subtree is excluded from the scan.
func (w *Walker) pruneDir(path string, d fs.DirEntry, ignores []string) bool {
	name := d.Name()
	if name == ".git" || name == ".jj" {
		return true
	}
	return ignoredPath(path, ignores)
}

// ignoredPath matches a path against the ignore set. Matching is exact
// string comparison on cleaned paths, not prefix or glob matching.
func ignoredPath(path string, ignores []string) bool {
	cleaned := filepath.Clean(path)
	for _, ignore := range ignores {
		if cleaned == ignore {
			return true
		}
	}
	return false
}
