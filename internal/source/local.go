package source

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// LocalFile is a schema input on the local filesystem.
type LocalFile struct {
	fs   afero.Fs
	path string
}

// NewLocalFile creates a LocalFile backed by the given filesystem.
func NewLocalFile(fs afero.Fs, path string) *LocalFile {
	return &LocalFile{fs: fs, path: path}
}

// Path returns the filesystem path. Local files are the only locations
// whose XJC argument may be relativized.
func (l *LocalFile) Path() string {
	return l.path
}

// Locator returns the path itself.
func (l *LocalFile) Locator() string {
	return l.path
}

// LastModified stats the file.
func (l *LocalFile) LastModified() (time.Time, error) {
	info, err := l.fs.Stat(l.path)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to stat %s: %w", l.path, err)
	}
	return info.ModTime(), nil
}

// FileName returns the base name of the path.
func (l *LocalFile) FileName() (string, error) {
	return filepath.Base(l.path), nil
}

// Open opens the file for reading.
func (l *LocalFile) Open() (io.ReadCloser, error) {
	f, err := l.fs.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", l.path, err)
	}
	return f, nil
}
