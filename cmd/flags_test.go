package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/masmgr/commitgraph/config"
	"github.com/masmgr/commitgraph/internal/git"
	"github.com/masmgr/commitgraph/internal/output"
)

func TestGetOutputFormat(t *testing.T) {
	tests := []struct {
		input string
		want  output.OutputFormat
	}{
		{"json", output.FormatJSON},
		{"csv", output.FormatCSV},
		{"markdown", output.FormatMarkdown},
		{"md", output.FormatMarkdown},
		{"console", output.FormatConsole},
		{"", output.FormatConsole},
		{"unknown", output.FormatConsole},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := getOutputFormat(tt.input); got != tt.want {
				t.Errorf("getOutputFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExitCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "config", err: fmt.Errorf("failed to load config: %w", &config.Error{Field: "target_file", Err: errors.New("missing")}), want: exitConfig},
		{name: "history", err: fmt.Errorf("failed to read history: %w", &git.CommandError{Args: []string{"log"}, Err: errors.New("exit status 128")}), want: exitHistory},
		{name: "other", err: errors.New("disk full"), want: exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeOf(tt.err); got != tt.want {
				t.Errorf("exitCodeOf(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
