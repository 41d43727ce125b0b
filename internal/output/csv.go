package output

import (
	"encoding/csv"
	"fmt"
)

// CSVCommitWriter writes commit lists as CSV.
type CSVCommitWriter struct{}

// Write outputs the commit list as CSV.
func (w *CSVCommitWriter) Write(report *CommitListReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	writer := csv.NewWriter(out)

	if err := writer.Write([]string{"SHA", "Parents", "ParentCount", "Message"}); err != nil {
		return err
	}

	for _, c := range limitTop(report.Commits, options.Top) {
		row := []string{
			c.ID,
			joinParents(c.Parents),
			fmt.Sprintf("%d", len(c.Parents)),
			c.Message,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
