package output

import (
	"encoding/json"
	"fmt"
	"time"
)

// JSONCommitWriter writes commit lists as JSON.
type JSONCommitWriter struct{}

// JSONCommitReport is the JSON output structure for a commit list.
type JSONCommitReport struct {
	RepoPath     string           `json:"repo"`
	Target       string           `json:"target"`
	GeneratedAt  string           `json:"generatedAt"`
	TotalCommits int              `json:"totalCommits"`
	Matched      int              `json:"matched"`
	Items        []JSONCommitItem `json:"items"`
}

// JSONCommitItem is the JSON output structure for a single commit.
type JSONCommitItem struct {
	SHA     string   `json:"sha"`
	Parents []string `json:"parents"`
	Message string   `json:"message"`
}

// Write outputs the commit list as JSON.
func (w *JSONCommitWriter) Write(report *CommitListReport, options OutputOptions) error {
	commits := limitTop(report.Commits, options.Top)

	items := make([]JSONCommitItem, len(commits))
	for i, c := range commits {
		parents := c.Parents
		if parents == nil {
			parents = []string{}
		}
		items[i] = JSONCommitItem{SHA: c.ID, Parents: parents, Message: c.Message}
	}

	jsonReport := JSONCommitReport{
		RepoPath:     report.RepoPath,
		Target:       report.Target,
		GeneratedAt:  report.GeneratedAt.Format(time.RFC3339),
		TotalCommits: report.TotalCommits,
		Matched:      len(report.Commits),
		Items:        items,
	}

	return writeJSON(jsonReport, options)
}

func writeJSON(data interface{}, options OutputOptions) error {
	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
