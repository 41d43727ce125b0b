package git

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// HistoryReader reads commit history from a Git repository.
// The go-git backend keeps the opened repository; the CLI backend shells out per call.
type HistoryReader struct {
	repo *git.Repository
	opts ReadOptions
}

// NewHistoryReader creates a new history reader for the given repository.
func NewHistoryReader(opts ReadOptions) (*HistoryReader, error) {
	if opts.Backend == "" {
		opts.Backend = BackendCLI
	}

	r := &HistoryReader{opts: opts}
	if opts.Backend == BackendGoGit {
		repo, err := git.PlainOpen(opts.RepoPath)
		if err != nil {
			return nil, historyError("open repository "+opts.RepoPath, err)
		}
		r.repo = repo
	}
	return r, nil
}

// Backend returns the backend this reader uses.
func (r *HistoryReader) Backend() Backend {
	return r.opts.Backend
}

// ListCommits returns every commit reachable from any ref, newest first.
func (r *HistoryReader) ListCommits(ctx context.Context) ([]CommitRecord, error) {
	if r.opts.Backend == BackendGoGit {
		return r.listCommitsGoGit(ctx)
	}
	return r.listCommitsGitCLI(ctx)
}

// FilesTouchedBy returns the paths changed by the given commit.
func (r *HistoryReader) FilesTouchedBy(ctx context.Context, id string) ([]string, error) {
	if r.opts.Backend == BackendGoGit {
		return r.filesTouchedGoGit(ctx, id)
	}
	return r.filesTouchedGitCLI(ctx, id)
}

func (r *HistoryReader) listCommitsGoGit(ctx context.Context) ([]CommitRecord, error) {
	cIter, err := r.repo.Log(&git.LogOptions{All: true, Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, historyError("read log", err)
	}
	defer cIter.Close()

	var commits []CommitRecord
	err = cIter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		parents := make([]string, 0, len(c.ParentHashes))
		for _, h := range c.ParentHashes {
			parents = append(parents, h.String())
		}

		commits = append(commits, CommitRecord{
			ID:      c.Hash.String(),
			Parents: parents,
			Message: subjectLine(c.Message),
		})
		return nil
	})
	if err != nil {
		return nil, historyError("walk log", err)
	}

	return commits, nil
}

// filesTouchedGoGit mirrors `git show --name-only`: a root commit touches every
// file in its tree, an ordinary commit touches its diff against the parent, and
// a merge touches only the paths that differ from every parent.
func (r *HistoryReader) filesTouchedGoGit(ctx context.Context, id string) ([]string, error) {
	if !plumbing.IsHash(id) {
		return nil, &ParseError{Record: id, Reason: "not a commit hash"}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c, err := r.repo.CommitObject(plumbing.NewHash(id))
	if err != nil {
		return nil, historyError("load commit "+id, err)
	}

	tree, err := c.Tree()
	if err != nil {
		return nil, historyError("load tree of "+id, err)
	}

	if c.NumParents() == 0 {
		var paths []string
		err := tree.Files().ForEach(func(f *object.File) error {
			paths = append(paths, f.Name)
			return nil
		})
		if err != nil {
			return nil, historyError("list files of "+id, err)
		}
		sort.Strings(paths)
		return paths, nil
	}

	var touched map[string]bool
	err = c.Parents().ForEach(func(parent *object.Commit) error {
		parentTree, err := parent.Tree()
		if err != nil {
			return err
		}

		changes, err := object.DiffTree(parentTree, tree)
		if err != nil {
			return err
		}

		changed := make(map[string]bool, len(changes))
		for _, change := range changes {
			if change.From.Name != "" {
				changed[change.From.Name] = true
			}
			if change.To.Name != "" {
				changed[change.To.Name] = true
			}
		}

		if touched == nil {
			touched = changed
			return nil
		}
		for path := range touched {
			if !changed[path] {
				delete(touched, path)
			}
		}
		return nil
	})
	if err != nil {
		return nil, historyError(fmt.Sprintf("diff %s against parents", id), err)
	}

	paths := make([]string, 0, len(touched))
	for path := range touched {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}
