package cmd

import (
	"fmt"

	"github.com/masmgr/commitgraph/config"
	"github.com/masmgr/commitgraph/internal/graph"
	"github.com/masmgr/commitgraph/internal/output"
	"github.com/urfave/cli/v2"
)

// GraphCmd returns the graph command.
func GraphCmd() *cli.Command {
	return &cli.Command{
		Name:    "graph",
		Aliases: []string{"g"},
		Usage:   "Write the PlantUML graph of commits touching the target file",
		Flags:   graphFlags(),
		Action:  graphAction,
	}
}

func graphFlags() []cli.Flag {
	return append(commonFlags(),
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Graph file path (overrides output_path)",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Print the graph without writing the output file",
		},
	)
}

func graphAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c, func(cfg *config.Config) {
		if fc, ok := setContext(c, "output"); ok {
			cfg.OutputPath = fc.String("output")
		}
	})
	if err != nil {
		return err
	}

	if !ctx.HasCommits() {
		ctx.PrintNoCommitsMessage()
		return nil
	}

	doc := graph.Build(ctx.Commits)
	if err := output.Emit(ctx.stdout, doc.String()); err != nil {
		return fmt.Errorf("failed to print graph: %w", err)
	}

	s := graph.Summarize(ctx.Commits)
	ctx.logf("%d nodes, %d edges (%d merges, %d roots, %d to commits outside the graph)\n",
		s.Nodes, s.Edges, s.Merges, s.Roots, s.Dangling)

	if boolFlag(c, "dry-run") {
		ctx.PrintTiming()
		return nil
	}

	if err := output.WriteFile(ctx.Config.OutputPath, doc.String()); err != nil {
		return fmt.Errorf("failed to save graph: %w", err)
	}
	output.Saved(ctx.stdout, ctx.Config.OutputPath)

	ctx.PrintTiming()
	return nil
}
