package stale

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// Marker is the zero-content file whose modification timestamp records the
// last fully successful generation run. It is the only durable state the
// generation core owns.
type Marker struct {
	fs   afero.Fs
	path string
}

// NewMarker creates a Marker at the given path.
func NewMarker(fs afero.Fs, path string) *Marker {
	return &Marker{fs: fs, path: path}
}

// Path returns the marker file path.
func (m *Marker) Path() string {
	return m.path
}

// Exists reports whether the marker file is present.
func (m *Marker) Exists() bool {
	_, err := m.fs.Stat(m.path)
	return err == nil
}

// LastModified returns the marker's modification time.
func (m *Marker) LastModified() (time.Time, error) {
	info, err := m.fs.Stat(m.path)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to stat marker %s: %w", m.path, err)
	}
	return info.ModTime(), nil
}

// Touch creates the marker file if needed and sets its modification time
// to now. Called only after a fully successful generation run.
func (m *Marker) Touch() error {
	if err := m.fs.MkdirAll(filepath.Dir(m.path), 0755); err != nil {
		return fmt.Errorf("failed to create marker directory: %w", err)
	}
	if err := afero.WriteFile(m.fs, m.path, nil, 0644); err != nil {
		return fmt.Errorf("failed to write marker %s: %w", m.path, err)
	}

	now := time.Now()
	if err := m.fs.Chtimes(m.path, now, now); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to touch marker %s: %w", m.path, err)
	}
	return nil
}
