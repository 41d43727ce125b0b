package git

import (
	"context"
	"errors"
	"testing"
)

func TestMockHistoryProvider(t *testing.T) {
	commits := []CommitRecord{
		{ID: "b", Parents: []string{"a"}, Message: "second"},
		{ID: "a", Message: "first"},
	}
	files := map[string][]string{"a": {"x.go"}, "b": {"x.go", "y.go"}}

	t.Run("returns commits", func(t *testing.T) {
		m := NewMockHistoryProvider(commits, files)

		got, err := m.ListCommits(context.Background())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(got) != len(commits) {
			t.Errorf("expected %d commits, got %d", len(commits), len(got))
		}
	})

	t.Run("counts queries", func(t *testing.T) {
		m := NewMockHistoryProvider(commits, files)

		if _, err := m.FilesTouchedBy(context.Background(), "a"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, err := m.FilesTouchedBy(context.Background(), "a"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if m.Queries("a") != 2 || m.Queries("b") != 0 || m.TotalQueries() != 2 {
			t.Errorf("queries a=%d b=%d total=%d", m.Queries("a"), m.Queries("b"), m.TotalQueries())
		}
	})

	t.Run("returns errors", func(t *testing.T) {
		expectedErr := errors.New("test error")
		m := NewMockHistoryProvider(nil, nil)
		m.ListError = expectedErr
		m.FileError = map[string]error{"a": expectedErr}

		if _, err := m.ListCommits(context.Background()); err != expectedErr {
			t.Errorf("expected error %v, got %v", expectedErr, err)
		}
		if _, err := m.FilesTouchedBy(context.Background(), "a"); err != expectedErr {
			t.Errorf("expected error %v, got %v", expectedErr, err)
		}
	})
}
