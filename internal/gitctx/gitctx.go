package gitctx

import "context"

// NoChangesPlaceholder substitutes for an empty changed-file list so the
// prompt never carries an empty section.
const NoChangesPlaceholder = "(no file path changes detected)"

// ChangeContext is the text context extracted from version control for
// one revision range. It is immutable once gathered.
type ChangeContext struct {
	// CommitLog holds "<short-hash> <subject>" lines, one per commit.
	CommitLog string
	// ChangedFiles holds touched file paths, one per line, or
	// NoChangesPlaceholder when the range touched nothing.
	ChangedFiles string
}

// Source gathers change context for a revision range.
// This abstraction allows tests to substitute deterministic fakes
// without a Git repository.
type Source interface {
	Gather(ctx context.Context, from, to string) (ChangeContext, error)
}

// RangeExpression builds the revision range string consumed by log
// queries: the single revision when both ends are equal, otherwise the
// half-open "from..to" range.
func RangeExpression(from, to string) string {
	if from == to {
		return to
	}
	return from + ".." + to
}
