// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/peek/internal/core/domain"

// Scanner computes a freshness fingerprint for a directory tree.
type Scanner interface {
	// Fingerprint walks root and returns a scalar summary of the tree's
	// freshness, pruning every path in ignores (exact absolute match).
	//
	// Unreadable or vanished entries are skipped rather than failing the
	// scan; an error is returned only when the root itself cannot be
	// walked.
	Fingerprint(root string, ignores []string) (domain.Fingerprint, error)
}
