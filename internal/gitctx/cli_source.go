package gitctx

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ProcessError reports a git invocation that exited non-zero.
type ProcessError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *ProcessError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("git %s: %v: %s", strings.Join(e.Args, " "), e.Err, e.Stderr)
	}
	return fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
}

func (e *ProcessError) Unwrap() error { return e.Err }

// runner executes a git subcommand and returns trimmed stdout.
type runner func(ctx context.Context, repoPath string, args ...string) (string, error)

// CLISource gathers change context by shelling out to git.
type CLISource struct {
	repoPath string
	filters  FilterOptions
	run      runner
}

// NewCLISource creates a subprocess-backed source for the repository at
// repoPath.
func NewCLISource(repoPath string, filters FilterOptions) *CLISource {
	return &CLISource{repoPath: repoPath, filters: filters, run: runGit}
}

func runGit(ctx context.Context, repoPath string, args ...string) (string, error) {
	full := append([]string{"-C", repoPath}, args...)
	cmd := exec.CommandContext(ctx, "git", full...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &ProcessError{
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Gather queries the commit log and changed-file list for the range.
// An empty log falls back to describing the end revision; an empty file
// list falls back to NoChangesPlaceholder.
func (s *CLISource) Gather(ctx context.Context, from, to string) (ChangeContext, error) {
	rangeExpr := RangeExpression(from, to)

	commits, err := s.run(ctx, s.repoPath, "log", "--pretty=format:%h %s", rangeExpr, "--")
	if err != nil {
		return ChangeContext{}, err
	}

	files, err := s.run(ctx, s.repoPath, "diff", "--name-only", rangeExpr, "--")
	if err != nil {
		return ChangeContext{}, err
	}

	if commits == "" {
		commits, err = s.run(ctx, s.repoPath, "show", "--pretty=format:%h %s", "--no-patch", to)
		if err != nil {
			return ChangeContext{}, err
		}
	}

	files = s.filters.Apply(files)
	if files == "" {
		files = NoChangesPlaceholder
	}

	return ChangeContext{CommitLog: commits, ChangedFiles: files}, nil
}

// Compile-time interface conformance check.
var _ Source = (*CLISource)(nil)
