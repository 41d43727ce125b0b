package filter

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/masmgr/commitgraph/internal/git"
)

// Options configures commit filtering.
type Options struct {
	Target string
	// Workers bounds the number of concurrent FilesTouchedBy queries. Values below 2 query sequentially.
	Workers int
	// OnProgress is called after each query with the number of queries finished so far.
	// Calls are serialized.
	OnProgress func(done, total int)
}

// Commits returns the subsequence of commits that touched the target file, in input order.
// The provider is queried exactly once per commit; the first failed query aborts filtering.
func Commits(ctx context.Context, provider git.HistoryProvider, commits []git.CommitRecord, opts Options) ([]git.CommitRecord, error) {
	m, err := NewMatcher(opts.Target)
	if err != nil {
		return nil, err
	}

	matched := make([]bool, len(commits))
	progress := newProgress(len(commits), opts.OnProgress)

	check := func(ctx context.Context, i int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		files, err := provider.FilesTouchedBy(ctx, commits[i].ID)
		if err != nil {
			return fmt.Errorf("list files touched by %s: %w", commits[i].ID, err)
		}
		matched[i] = m.MatchAny(files)
		progress.step()
		return nil
	}

	if opts.Workers < 2 {
		for i := range commits {
			if err := check(ctx, i); err != nil {
				return nil, err
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(opts.Workers)
		for i := range commits {
			g.Go(func() error { return check(gctx, i) })
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	result := make([]git.CommitRecord, 0, len(commits))
	for i, c := range commits {
		if matched[i] {
			result = append(result, c)
		}
	}
	return result, nil
}

type progress struct {
	mu    sync.Mutex
	done  int
	total int
	fn    func(done, total int)
}

func newProgress(total int, fn func(done, total int)) *progress {
	return &progress{total: total, fn: fn}
}

func (p *progress) step() {
	if p.fn == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	p.fn(p.done, p.total)
}
