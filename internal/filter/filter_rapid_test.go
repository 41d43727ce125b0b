package filter

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"pgregory.net/rapid"

	"github.com/masmgr/commitgraph/internal/git"
)

// --- Generators ---

type history struct {
	commits []git.CommitRecord
	files   map[string][]string
}

func genHistory() *rapid.Generator[history] {
	paths := []string{"a.go", "b.go", "pkg/c.go", "docs/readme.md"}
	return rapid.Custom(func(t *rapid.T) history {
		count := rapid.IntRange(0, 40).Draw(t, "count")
		h := history{files: make(map[string][]string, count)}
		for i := 0; i < count; i++ {
			id := fmt.Sprintf("c%03d", i)
			h.commits = append(h.commits, git.CommitRecord{ID: id, Message: "msg " + id})
			h.files[id] = rapid.SliceOfDistinct(rapid.SampledFrom(paths), rapid.ID[string]).Draw(t, "files"+id)
		}
		return h
	})
}

// --- Property Tests ---

func TestRapidCommits_ParallelMatchesSequential(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := genHistory().Draw(t, "history")
		workers := rapid.IntRange(2, 8).Draw(t, "workers")
		target := rapid.SampledFrom([]string{"a.go", "pkg/c.go", "**/*.md"}).Draw(t, "target")

		seq, err := Commits(context.Background(), git.NewMockHistoryProvider(h.commits, h.files), h.commits, Options{Target: target})
		if err != nil {
			t.Fatalf("sequential: %v", err)
		}
		par, err := Commits(context.Background(), git.NewMockHistoryProvider(h.commits, h.files), h.commits, Options{Target: target, Workers: workers})
		if err != nil {
			t.Fatalf("parallel: %v", err)
		}

		if !reflect.DeepEqual(ids(seq), ids(par)) {
			t.Fatalf("parallel result %v differs from sequential %v", ids(par), ids(seq))
		}
	})
}

func TestRapidCommits_IsOrderedSubsequence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := genHistory().Draw(t, "history")

		got, err := Commits(context.Background(), git.NewMockHistoryProvider(h.commits, h.files), h.commits, Options{Target: "a.go", Workers: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		j := 0
		for _, c := range h.commits {
			touches := false
			for _, f := range h.files[c.ID] {
				if f == "a.go" {
					touches = true
				}
			}
			if !touches {
				continue
			}
			if j >= len(got) || got[j].ID != c.ID {
				t.Fatalf("expected %s at position %d, got %v", c.ID, j, ids(got))
			}
			j++
		}
		if j != len(got) {
			t.Fatalf("result has %d extra commits", len(got)-j)
		}
	})
}
