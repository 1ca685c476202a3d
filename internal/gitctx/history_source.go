package gitctx

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// HistorySource gathers change context with go-git, without shelling
// out. Commit subjects and file paths are rendered in the same shape as
// the subprocess source.
type HistorySource struct {
	repo    *git.Repository
	filters FilterOptions
}

// NewHistorySource opens the repository at repoPath.
func NewHistorySource(repoPath string, filters FilterOptions) (*HistorySource, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", repoPath, err)
	}
	return &HistorySource{repo: repo, filters: filters}, nil
}

// Gather walks the log from "to" back to (but excluding) "from",
// collecting commit subjects and touched file paths. Equal revisions
// describe that single commit only.
func (s *HistorySource) Gather(ctx context.Context, from, to string) (ChangeContext, error) {
	fromHash, err := s.repo.ResolveRevision(plumbing.Revision(from))
	if err != nil {
		return ChangeContext{}, fmt.Errorf("resolve revision %s: %w", from, err)
	}
	toHash, err := s.repo.ResolveRevision(plumbing.Revision(to))
	if err != nil {
		return ChangeContext{}, fmt.Errorf("resolve revision %s: %w", to, err)
	}

	single := *fromHash == *toHash

	cIter, err := s.repo.Log(&git.LogOptions{From: *toHash})
	if err != nil {
		return ChangeContext{}, fmt.Errorf("read log: %w", err)
	}

	var logLines []string
	var files []string
	seen := make(map[string]struct{})

	err = cIter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !single && c.Hash == *fromHash {
			return storer.ErrStop
		}

		logLines = append(logLines, describeCommit(c))

		for _, path := range commitPaths(c) {
			if _, ok := seen[path]; ok {
				continue
			}
			seen[path] = struct{}{}
			files = append(files, path)
		}

		if single {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return ChangeContext{}, fmt.Errorf("walk log: %w", err)
	}

	commitLog := strings.Join(logLines, "\n")
	if commitLog == "" {
		// Empty range: describe the end revision instead of a diff.
		c, err := s.repo.CommitObject(*toHash)
		if err != nil {
			return ChangeContext{}, fmt.Errorf("load commit %s: %w", to, err)
		}
		commitLog = describeCommit(c)
	}

	changedFiles := s.filters.Apply(strings.Join(files, "\n"))
	if changedFiles == "" {
		changedFiles = NoChangesPlaceholder
	}

	return ChangeContext{CommitLog: commitLog, ChangedFiles: changedFiles}, nil
}

// describeCommit renders the "<short-hash> <subject>" form used in
// commit logs.
func describeCommit(c *object.Commit) string {
	subject := c.Message
	if idx := strings.IndexByte(subject, '\n'); idx != -1 {
		subject = subject[:idx]
	}
	return c.Hash.String()[:7] + " " + strings.TrimSpace(subject)
}

// commitPaths lists file paths touched by a commit. Merge commits are
// skipped; their changes appear on the parent branches.
func commitPaths(c *object.Commit) []string {
	if c.NumParents() > 1 {
		return nil
	}
	stats, err := c.Stats()
	if err != nil {
		return nil
	}
	paths := make([]string, 0, len(stats))
	for _, st := range stats {
		if st.Name != "" {
			paths = append(paths, st.Name)
		}
	}
	return paths
}

// Compile-time interface conformance check.
var _ Source = (*HistorySource)(nil)
