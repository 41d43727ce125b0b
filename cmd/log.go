package cmd

import (
	"time"

	"github.com/masmgr/commitgraph/internal/output"
	"github.com/urfave/cli/v2"
)

// LogCmd returns the log command.
func LogCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, json, csv, markdown)",
			Value:   "console",
		},
		&cli.IntFlag{
			Name:    "top",
			Aliases: []string{"n"},
			Usage:   "Number of commits to show (0 for all)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Report file path (default: stdout)",
		},
	)

	return &cli.Command{
		Name:    "log",
		Aliases: []string{"l"},
		Usage:   "List the commits that touched the target file",
		Flags:   flags,
		Action:  logAction,
	}
}

func logAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	if !ctx.HasCommits() {
		ctx.PrintNoCommitsMessage()
		return nil
	}

	report := &output.CommitListReport{
		RepoPath:     ctx.Config.RepositoryPath,
		Target:       ctx.Config.TargetFile,
		GeneratedAt:  time.Now(),
		TotalCommits: len(ctx.AllCommits),
		Commits:      ctx.Commits,
	}

	opts := OutputOptions(c)
	opts.Stdout = ctx.stdout
	if err := output.NewCommitListWriter(opts.Format).Write(report, opts); err != nil {
		return err
	}

	ctx.PrintTiming()
	return nil
}

// OutputOptions creates OutputOptions from CLI flags.
func OutputOptions(c *cli.Context) output.OutputOptions {
	return output.OutputOptions{
		Format:     getOutputFormat(c.String("format")),
		Top:        c.Int("top"),
		OutputPath: c.String("output"),
	}
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.OutputFormat {
	switch s {
	case "json":
		return output.FormatJSON
	case "csv":
		return output.FormatCSV
	case "markdown", "md":
		return output.FormatMarkdown
	default:
		return output.FormatConsole
	}
}
