package git

import "context"

// HistoryProvider defines the interface for reading Git repository history.
// This abstraction allows for easier testing and alternative backends.
type HistoryProvider interface {
	// ListCommits returns every commit reachable from any ref, newest first.
	ListCommits(ctx context.Context) ([]CommitRecord, error)
	// FilesTouchedBy returns the repository-relative paths changed by a commit.
	FilesTouchedBy(ctx context.Context, id string) ([]string, error)
}

// Compile-time interface conformance check.
var _ HistoryProvider = (*HistoryReader)(nil)
