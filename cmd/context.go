package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/masmgr/commitgraph/config"
	"github.com/masmgr/commitgraph/internal/filter"
	"github.com/masmgr/commitgraph/internal/git"
	"github.com/masmgr/commitgraph/internal/output"
	"github.com/urfave/cli/v2"
)

// newHistoryProvider opens the history backend. Tests replace it with a mock.
var newHistoryProvider = func(opts git.ReadOptions) (git.HistoryProvider, error) {
	return git.NewHistoryReader(opts)
}

// CommandContext holds common state for command execution.
// It encapsulates the shared setup logic across commands.
type CommandContext struct {
	Config     *config.Config
	AllCommits []git.CommitRecord // Full history, newest first
	Commits    []git.CommitRecord // Commits touching the target, newest first
	Started    time.Time

	stdout  io.Writer
	stderr  io.Writer
	verbose bool
}

// NewCommandContext creates a context from CLI flags.
// It performs configuration loading, repository opening, history reading and filtering.
func NewCommandContext(c *cli.Context, overrides ...func(*config.Config)) (*CommandContext, error) {
	if boolFlag(c, "no-color") {
		color.NoColor = true
	}

	ctx := &CommandContext{
		Started: time.Now(),
		stdout:  c.App.Writer,
		stderr:  c.App.ErrWriter,
		verbose: boolFlag(c, "verbose"),
	}

	// Configuration errors abort before the repository is touched.
	cfg, err := loadConfig(c, overrides...)
	if err != nil {
		return nil, err
	}
	ctx.Config = cfg

	backend, err := git.ParseBackend(cfg.Backend)
	if err != nil {
		return nil, err
	}

	provider, err := newHistoryProvider(git.ReadOptions{
		RepoPath: cfg.RepositoryPath,
		Backend:  backend,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	ctx.AllCommits, err = provider.ListCommits(c.Context)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	ctx.logf("Read %d commits from %s\n", len(ctx.AllCommits), cfg.RepositoryPath)

	opts := filter.Options{
		Target:  cfg.TargetFile,
		Workers: cfg.Workers,
	}
	if ctx.verbose {
		opts.OnProgress = func(done, total int) {
			fmt.Fprintf(ctx.stderr, "\rChecked %d/%d commits", done, total)
			if done == total {
				fmt.Fprintln(ctx.stderr)
			}
		}
	}

	ctx.Commits, err = filter.Commits(c.Context, provider, ctx.AllCommits, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to filter history: %w", err)
	}

	return ctx, nil
}

// HasCommits returns true if any commit touched the target file.
func (ctx *CommandContext) HasCommits() bool {
	return len(ctx.Commits) > 0
}

// PrintNoCommitsMessage prints a message when no commits touched the target file.
func (ctx *CommandContext) PrintNoCommitsMessage() {
	output.NoCommits(ctx.stdout)
}

// PrintTiming prints the elapsed time when verbose output is enabled.
func (ctx *CommandContext) PrintTiming() {
	ctx.logf("Completed in %s\n", time.Since(ctx.Started))
}

func (ctx *CommandContext) logf(format string, args ...interface{}) {
	if !ctx.verbose {
		return
	}
	fmt.Fprintf(ctx.stderr, format, args...)
}
