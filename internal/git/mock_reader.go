package git

import (
	"context"
	"sync"
)

// MockHistoryProvider is a test double for HistoryReader.
// It allows tests to provide predefined commit data without needing a real Git repository.
type MockHistoryProvider struct {
	Commits   []CommitRecord
	Files     map[string][]string // commit ID -> touched paths
	ListError error
	FileError map[string]error // commit ID -> error returned by FilesTouchedBy

	mu      sync.Mutex
	queries map[string]int
}

// NewMockHistoryProvider creates a new MockHistoryProvider with the given data.
func NewMockHistoryProvider(commits []CommitRecord, files map[string][]string) *MockHistoryProvider {
	return &MockHistoryProvider{
		Commits: commits,
		Files:   files,
	}
}

// ListCommits returns the predefined commits or error.
func (m *MockHistoryProvider) ListCommits(_ context.Context) ([]CommitRecord, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.Commits, nil
}

// FilesTouchedBy returns the predefined paths for id and records the query.
func (m *MockHistoryProvider) FilesTouchedBy(_ context.Context, id string) ([]string, error) {
	m.mu.Lock()
	if m.queries == nil {
		m.queries = make(map[string]int)
	}
	m.queries[id]++
	m.mu.Unlock()

	if err, ok := m.FileError[id]; ok {
		return nil, err
	}
	return m.Files[id], nil
}

// Queries returns how many times FilesTouchedBy was called for id.
func (m *MockHistoryProvider) Queries(id string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.queries[id]
}

// TotalQueries returns the number of FilesTouchedBy calls across all IDs.
func (m *MockHistoryProvider) TotalQueries() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.queries {
		total += n
	}
	return total
}

// Compile-time interface conformance check.
var _ HistoryProvider = (*MockHistoryProvider)(nil)
