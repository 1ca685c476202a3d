package gitctx

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FilterOptions holds glob patterns applied to changed file paths
// before they are interpolated into the prompt.
type FilterOptions struct {
	Include []string
	Exclude []string
}

// Apply filters a newline-separated file list, preserving input order.
func (f FilterOptions) Apply(files string) string {
	if files == "" || (len(f.Include) == 0 && len(f.Exclude) == 0) {
		return files
	}

	lines := strings.Split(files, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		path := strings.TrimSpace(line)
		if path == "" {
			continue
		}
		if f.matches(path) {
			kept = append(kept, path)
		}
	}
	return strings.Join(kept, "\n")
}

// matches checks a path against the include/exclude patterns.
func (f FilterOptions) matches(path string) bool {
	// Normalize path separators
	path = strings.ReplaceAll(path, "\\", "/")

	// Check exclude patterns first
	for _, pattern := range f.Exclude {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return false
		}
	}

	// If no include patterns, accept all
	if len(f.Include) == 0 {
		return true
	}

	for _, pattern := range f.Include {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return true
		}
	}

	return false
}
