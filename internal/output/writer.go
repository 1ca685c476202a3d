// Package output persists validated release notes to disk.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteNotes serializes the locale mapping to path as an indented JSON
// object. Parent directories are created as needed; an existing file is
// overwritten. Non-ASCII characters are written literally and the file
// ends with a single newline.
func WriteNotes(path string, notes map[string]string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(notes); err != nil {
		file.Close()
		return fmt.Errorf("encode release notes: %w", err)
	}

	return file.Close()
}
