package output

import (
	"io"
	"time"

	"github.com/masmgr/commitgraph/internal/git"
)

// Compile-time interface conformance checks.
var (
	_ CommitListWriter = (*ConsoleCommitWriter)(nil)
	_ CommitListWriter = (*JSONCommitWriter)(nil)
	_ CommitListWriter = (*CSVCommitWriter)(nil)
	_ CommitListWriter = (*MarkdownCommitWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	Top        int
	OutputPath string    // Empty writes to Stdout
	Stdout     io.Writer // Defaults to os.Stdout
}

// CommitListReport holds the commits that touched a target file.
type CommitListReport struct {
	RepoPath     string
	Target       string
	GeneratedAt  time.Time
	TotalCommits int // Commits in the full history before filtering
	Commits      []git.CommitRecord
}

// CommitListWriter writes commit list reports.
type CommitListWriter interface {
	Write(report *CommitListReport, options OutputOptions) error
}

// NewCommitListWriter creates a commit list writer for the specified format.
func NewCommitListWriter(format OutputFormat) CommitListWriter {
	switch format {
	case FormatJSON:
		return &JSONCommitWriter{}
	case FormatCSV:
		return &CSVCommitWriter{}
	case FormatMarkdown:
		return &MarkdownCommitWriter{}
	default:
		return &ConsoleCommitWriter{}
	}
}
