package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// WriteFile writes text to path, creating missing parent directories.
func WriteFile(path, text string) error {
	if err := ensureParentDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Emit writes text to the console followed by a newline.
func Emit(w io.Writer, text string) error {
	_, err := fmt.Fprintln(w, text)
	return err
}

// Saved reports where the graph was written.
func Saved(w io.Writer, path string) {
	color.New(color.FgGreen).Fprintf(w, "Graph saved to %s\n", path)
}

// NoCommits reports that nothing touched the target file.
func NoCommits(w io.Writer) {
	color.New(color.FgYellow).Fprintln(w, "No commits found for the specified file.")
}

// Failure reports a fatal error.
func Failure(w io.Writer, err error) {
	color.New(color.FgRed).Fprintf(w, "Error: %v\n", err)
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}
