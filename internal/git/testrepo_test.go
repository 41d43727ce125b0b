package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// testRepo holds the hashes of a small history with one branch and one merge:
//
//	root --- addB --- merge
//	   \             /
//	    feature -----
type testRepo struct {
	dir     string
	root    string
	feature string
	addB    string
	merge   string
}

func createTestRepo(t *testing.T) testRepo {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}

	write := func(rel, content string) {
		t.Helper()
		full := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		if _, err := wt.Add(rel); err != nil {
			t.Fatalf("Add(%s): %v", rel, err)
		}
	}

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	commit := func(msg string, offset time.Duration, parents ...plumbing.Hash) string {
		t.Helper()
		sig := &object.Signature{Name: "Test", Email: "test@example.com", When: base.Add(offset)}
		h, err := wt.Commit(msg, &gogit.CommitOptions{Author: sig, Committer: sig, Parents: parents})
		if err != nil {
			t.Fatalf("Commit(%s): %v", msg, err)
		}
		return h.String()
	}

	var r testRepo
	r.dir = dir

	write("src/a.txt", "initial\n")
	r.root = commit("add a", 0)

	head, err := repo.Head()
	if err != nil {
		t.Fatalf("Head: %v", err)
	}
	mainBranch := head.Name()

	if err := wt.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName("feature"),
		Create: true,
	}); err != nil {
		t.Fatalf("Checkout(feature): %v", err)
	}
	write("src/a.txt", "feature\n")
	r.feature = commit("change a on feature", time.Hour)

	if err := wt.Checkout(&gogit.CheckoutOptions{Branch: mainBranch}); err != nil {
		t.Fatalf("Checkout(%s): %v", mainBranch, err)
	}
	write("b.txt", "b\n")
	r.addB = commit("add b", 2*time.Hour)

	write("src/a.txt", "merged\n")
	r.merge = commit("merge feature", 3*time.Hour,
		plumbing.NewHash(r.addB), plumbing.NewHash(r.feature))

	return r
}
