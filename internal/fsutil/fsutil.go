// Package fsutil holds small filesystem helpers shared by the staleness
// checker, argument assembler, and orchestrator.
package fsutil

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Canonical returns the cleaned absolute form of a path. When the path
// cannot be made absolute, the cleaned input is returned as-is.
func Canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// Relativize shortens path relative to base when possible, for log and
// argument readability. When the path does not live under base (or base is
// empty), the canonical absolute path is returned instead.
func Relativize(path, base string) string {
	if base == "" {
		return Canonical(path)
	}

	rel, err := filepath.Rel(Canonical(base), Canonical(path))
	if err != nil || strings.HasPrefix(rel, "..") {
		return Canonical(path)
	}
	return rel
}

// PrepareDirectory ensures dir exists. With clear set, any existing
// content is removed first.
func PrepareDirectory(fs afero.Fs, dir string, clear bool) error {
	if clear {
		if err := fs.RemoveAll(dir); err != nil {
			return fmt.Errorf("failed to clear directory %s: %w", dir, err)
		}
	}
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
