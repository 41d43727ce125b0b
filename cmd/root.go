package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/masmgr/commitgraph/config"
	"github.com/masmgr/commitgraph/internal/git"
	"github.com/masmgr/commitgraph/internal/output"
	"github.com/urfave/cli/v2"
)

// Exit codes.
const (
	exitFailure = 1
	exitConfig  = 2
	exitHistory = 3
)

// App creates the CLI application.
// Running it without a subcommand is the same as running `graph`.
func App() *cli.App {
	return &cli.App{
		Name:    "commitgraph",
		Usage:   "Render the commit ancestry of one file as a PlantUML graph",
		Version: "1.0.0",
		Commands: []*cli.Command{
			GraphCmd(),
			LogCmd(),
			ConfigCmd(),
		},
		Flags:  graphFlags(),
		Action: graphAction,
	}
}

// Common flags shared across commands. They override values from the configuration file.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file (JSON or YAML)",
			Value:   config.DefaultPath,
		},
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository (overrides repository_path)",
		},
		&cli.StringFlag{
			Name:    "target",
			Aliases: []string{"t"},
			Usage:   "Repository-relative file path or glob (overrides target_file)",
		},
		&cli.StringFlag{
			Name:  "backend",
			Usage: "History backend: cli or gogit (overrides backend)",
		},
		&cli.IntFlag{
			Name:    "workers",
			Aliases: []string{"j"},
			Usage:   "Concurrent per-commit file queries (overrides workers)",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Print progress and timing to stderr",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable colored output",
		},
	}
}

// loadConfig loads configuration from file, applies CLI overrides and validates the result.
// Command-specific overrides run after the common ones.
func loadConfig(c *cli.Context, overrides ...func(*config.Config)) (*config.Config, error) {
	cfg, err := config.LoadConfig(stringFlag(c, "config", config.DefaultPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if fc, ok := setContext(c, "repo"); ok {
		cfg.RepositoryPath = fc.String("repo")
	}
	if fc, ok := setContext(c, "target"); ok {
		cfg.TargetFile = fc.String("target")
	}
	if fc, ok := setContext(c, "backend"); ok {
		cfg.Backend = fc.String("backend")
	}
	if fc, ok := setContext(c, "workers"); ok {
		cfg.Workers = fc.Int("workers")
	}
	for _, apply := range overrides {
		apply(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// setContext returns the nearest context in the lineage where name was given.
// The root app and its subcommands declare the same flags, so a flag placed
// before the subcommand name lives on the root context.
func setContext(c *cli.Context, name string) (*cli.Context, bool) {
	for _, lc := range c.Lineage() {
		if lc.IsSet(name) {
			return lc, true
		}
	}
	return c, false
}

func stringFlag(c *cli.Context, name, fallback string) string {
	if fc, ok := setContext(c, name); ok {
		return fc.String(name)
	}
	return fallback
}

func boolFlag(c *cli.Context, name string) bool {
	if fc, ok := setContext(c, name); ok {
		return fc.Bool(name)
	}
	return false
}

// exitCodeOf maps an error to the process exit code.
func exitCodeOf(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, config.ErrInvalidConfig):
		return exitConfig
	case errors.Is(err, git.ErrHistory):
		return exitHistory
	default:
		return exitFailure
	}
}

// Run executes the CLI application.
func Run() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := App().RunContext(ctx, os.Args)
	stop()

	if err != nil {
		output.Failure(os.Stderr, err)
		os.Exit(exitCodeOf(err))
	}
}
