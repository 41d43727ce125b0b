package output

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/masmgr/commitgraph/internal/git"
)

// ConsoleCommitWriter writes commit lists to the console.
type ConsoleCommitWriter struct{}

// Write outputs the commit list as a table.
func (w *ConsoleCommitWriter) Write(report *CommitListReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	commits := limitTop(report.Commits, options.Top)

	color.New(color.FgGreen).Fprintln(out, "Commits Touching Target File")
	fmt.Fprintf(out, "Repository: %s\n", report.RepoPath)
	fmt.Fprintf(out, "Target: %s\n", report.Target)
	fmt.Fprintf(out, "Matched %d of %d commits\n\n", len(report.Commits), report.TotalCommits)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSHA\tParents\tMessage")

	for i, c := range commits {
		parents := make([]string, len(c.Parents))
		for j, p := range c.Parents {
			parents[j] = git.ShortID(p)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			i+1,
			c.ShortID(),
			joinParents(parents),
			truncateMessage(c.Message, 60),
		)
	}

	return tw.Flush()
}

// Helper functions

func truncateMessage(msg string, maxLen int) string {
	runes := []rune(msg)
	if len(runes) <= maxLen {
		return msg
	}
	return string(runes[:maxLen-3]) + "..."
}
