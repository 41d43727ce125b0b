package git

import (
	"fmt"
	"strings"
)

// CommitRecord represents a single commit as seen by the history provider.
type CommitRecord struct {
	ID      string
	Parents []string // Ordered as recorded in the commit object
	Message string   // Subject line only
}

// IsRoot returns true if the commit has no parents.
func (c CommitRecord) IsRoot() bool {
	return len(c.Parents) == 0
}

// IsMerge returns true if the commit has two or more parents.
func (c CommitRecord) IsMerge() bool {
	return len(c.Parents) > 1
}

// ShortID returns the first 8 characters of the commit ID.
func (c CommitRecord) ShortID() string {
	return ShortID(c.ID)
}

// ShortID abbreviates an object name to its first 8 characters.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// Backend selects the history provider implementation.
type Backend string

const (
	BackendCLI   Backend = "cli"
	BackendGoGit Backend = "gogit"
)

// ParseBackend parses a backend name. An empty string selects the CLI backend.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cli", "git":
		return BackendCLI, nil
	case "gogit", "go-git":
		return BackendGoGit, nil
	default:
		return "", fmt.Errorf("unknown backend %q (expected cli or gogit)", s)
	}
}

// ReadOptions configures the history reader.
type ReadOptions struct {
	RepoPath string
	Backend  Backend
}

// subjectLine returns the first line of a commit message.
func subjectLine(message string) string {
	if idx := strings.IndexByte(message, '\n'); idx != -1 {
		message = message[:idx]
	}
	return strings.TrimRight(message, "\r")
}

// isObjectName reports whether s is a full hex object name (SHA-1 or SHA-256).
func isObjectName(s string) bool {
	if len(s) != 40 && len(s) != 64 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
