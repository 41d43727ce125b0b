package filter

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher decides whether a touched path matches the target file.
type Matcher struct {
	target string
	glob   bool
}

// NewMatcher creates a Matcher for a repository-relative target path.
// Targets containing glob metacharacters are matched with doublestar semantics
// (e.g. "docs/**/*.md"); any other target must equal the touched path.
func NewMatcher(target string) (*Matcher, error) {
	normalized := normalizePath(target)
	if normalized == "" {
		return nil, fmt.Errorf("target file is empty")
	}

	glob := strings.ContainsAny(normalized, "*?[{")
	if glob && !doublestar.ValidatePattern(normalized) {
		return nil, fmt.Errorf("invalid target pattern %q", target)
	}
	return &Matcher{target: normalized, glob: glob}, nil
}

// ValidateTarget checks that target can be used to filter commits.
func ValidateTarget(target string) error {
	_, err := NewMatcher(target)
	return err
}

// Target returns the normalized target.
func (m *Matcher) Target() string {
	return m.target
}

// Match returns true if path is the target (or matches the target pattern).
func (m *Matcher) Match(path string) bool {
	path = normalizePath(path)
	if !m.glob {
		return path == m.target
	}
	// The pattern was validated in NewMatcher.
	matched, _ := doublestar.Match(m.target, path)
	return matched
}

// MatchAny returns true if any of the paths matches.
func (m *Matcher) MatchAny(paths []string) bool {
	for _, p := range paths {
		if m.Match(p) {
			return true
		}
	}
	return false
}

// normalizePath converts separators to forward slashes and drops a leading "./".
func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	path = strings.ReplaceAll(path, "\\", "/")
	for strings.HasPrefix(path, "./") {
		path = path[2:]
	}
	return path
}
