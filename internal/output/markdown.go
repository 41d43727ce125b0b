package output

import (
	"fmt"
	"strings"

	"github.com/masmgr/commitgraph/internal/git"
)

// MarkdownCommitWriter writes commit lists as Markdown.
type MarkdownCommitWriter struct{}

// Write outputs the commit list as a Markdown table.
func (w *MarkdownCommitWriter) Write(report *CommitListReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintln(out, "# Commits Touching Target File")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Repository:** %s\n\n", report.RepoPath)
	fmt.Fprintf(out, "**Target:** `%s`\n\n", report.Target)
	fmt.Fprintf(out, "**Generated:** %s\n\n", report.GeneratedAt.Format(reportDateTimeLayout))
	fmt.Fprintf(out, "**Matched:** %d of %d commits\n\n", len(report.Commits), report.TotalCommits)

	fmt.Fprintln(out, "| # | SHA | Parents | Message |")
	fmt.Fprintln(out, "|---|-----|---------|---------|")

	for i, c := range limitTop(report.Commits, options.Top) {
		parents := make([]string, len(c.Parents))
		for j, p := range c.Parents {
			parents[j] = "`" + git.ShortID(p) + "`"
		}
		fmt.Fprintf(out, "| %d | `%s` | %s | %s |\n",
			i+1, c.ShortID(), strings.Join(parents, " "), escapeMarkdown(c.Message))
	}

	return nil
}

func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"|", "\\|",
		"*", "\\*",
		"_", "\\_",
		"`", "\\`",
	)
	return replacer.Replace(s)
}
