package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// gitExecutable is the command used by the CLI backend.
var gitExecutable = "git"

// Each commit header is prefixed by 0x1e (record separator), then NUL-separated fields.
// The subject cannot contain a newline, so only the trailing separator newline is trimmed.
const logFormat = "%x1e%H%x00%P%x00%s"

func (r *HistoryReader) listCommitsGitCLI(ctx context.Context) ([]CommitRecord, error) {
	out, err := r.runGit(ctx,
		"log",
		"--all",
		"--no-color",
		"--pretty=format:"+logFormat,
	)
	if err != nil {
		return nil, err
	}
	return parseGitLog(out)
}

func (r *HistoryReader) filesTouchedGitCLI(ctx context.Context, id string) ([]string, error) {
	if !isObjectName(id) {
		return nil, &ParseError{Record: id, Reason: "not a commit hash"}
	}

	out, err := r.runGit(ctx,
		"show",
		"--no-color",
		"--name-only",
		"--pretty=format:",
		"-z",
		id,
	)
	if err != nil {
		return nil, err
	}
	return parseNameOnly(out), nil
}

func (r *HistoryReader) runGit(ctx context.Context, args ...string) ([]byte, error) {
	full := append([]string{"-C", r.opts.RepoPath}, args...)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, gitExecutable, full...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &CommandError{
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return stdout.Bytes(), nil
}

// parseGitLog parses the output of `git log --pretty=format:` + logFormat.
func parseGitLog(out []byte) ([]CommitRecord, error) {
	records := bytes.Split(out, []byte{0x1e})
	commits := make([]CommitRecord, 0, len(records))

	for _, rec := range records {
		rec = bytes.TrimRight(rec, "\r\n")
		if len(rec) == 0 {
			continue
		}

		fields := bytes.SplitN(rec, []byte{0x00}, 3)
		if len(fields) < 3 {
			return nil, &ParseError{Record: string(rec), Reason: "expected id, parents and subject"}
		}

		id := string(fields[0])
		if !isObjectName(id) {
			return nil, &ParseError{Record: string(rec), Reason: "invalid commit id"}
		}

		parents := strings.Fields(string(fields[1]))
		for _, p := range parents {
			if !isObjectName(p) {
				return nil, &ParseError{Record: string(rec), Reason: "invalid parent id " + p}
			}
		}

		commits = append(commits, CommitRecord{
			ID:      id,
			Parents: parents,
			Message: string(fields[2]),
		})
	}

	return commits, nil
}

// parseNameOnly parses NUL-terminated paths from `git show --name-only -z`.
func parseNameOnly(out []byte) []string {
	var paths []string
	for _, field := range bytes.Split(out, []byte{0x00}) {
		path := strings.Trim(string(field), "\r\n")
		if path == "" {
			continue
		}
		paths = append(paths, path)
	}
	return paths
}
