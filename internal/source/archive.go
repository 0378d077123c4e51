package source

import (
	"archive/zip"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// ArchiveEntry is a schema input packaged inside a zip-format archive
// (typically a jar).
type ArchiveEntry struct {
	fs          afero.Fs
	archivePath string
	innerPath   string
}

// NewArchiveEntry creates an ArchiveEntry for the given archive and entry
// path within it.
func NewArchiveEntry(fs afero.Fs, archivePath, innerPath string) *ArchiveEntry {
	return &ArchiveEntry{fs: fs, archivePath: archivePath, innerPath: innerPath}
}

// Locator renders the jar-style composite locator.
func (a *ArchiveEntry) Locator() string {
	return fmt.Sprintf("jar:file:%s!/%s", a.archivePath, a.innerPath)
}

// LastModified opens the archive and reports the entry's recorded
// modification time. The archive handle is released before returning,
// whatever the outcome.
func (a *ArchiveEntry) LastModified() (time.Time, error) {
	r, f, err := a.open()
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	for _, entry := range r.File {
		if entry.Name == a.innerPath {
			return entry.Modified, nil
		}
	}
	return time.Time{}, fmt.Errorf("entry %s not found in %s", a.innerPath, a.archivePath)
}

// FileName returns the base name of the entry path.
func (a *ArchiveEntry) FileName() (string, error) {
	if a.innerPath == "" {
		return "", &LocatorError{Locator: a.Locator(), Reason: "empty entry path"}
	}
	return filepath.Base(a.innerPath), nil
}

// Open returns a reader over the entry's bytes. Closing the reader also
// closes the underlying archive handle.
func (a *ArchiveEntry) Open() (io.ReadCloser, error) {
	r, f, err := a.open()
	if err != nil {
		return nil, err
	}

	for _, entry := range r.File {
		if entry.Name == a.innerPath {
			rc, err := entry.Open()
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to open entry %s in %s: %w", a.innerPath, a.archivePath, err)
			}
			return &archiveReader{ReadCloser: rc, archive: f}, nil
		}
	}
	f.Close()
	return nil, fmt.Errorf("entry %s not found in %s", a.innerPath, a.archivePath)
}

func (a *ArchiveEntry) open() (*zip.Reader, afero.File, error) {
	f, err := a.fs.Open(a.archivePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open archive %s: %w", a.archivePath, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("failed to stat archive %s: %w", a.archivePath, err)
	}

	r, err := zip.NewReader(f, info.Size())
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("failed to read archive %s: %w", a.archivePath, err)
	}
	return r, f, nil
}

// archiveReader ties the lifetime of the archive handle to the entry
// reader handed to the caller.
type archiveReader struct {
	io.ReadCloser
	archive afero.File
}

func (r *archiveReader) Close() error {
	err := r.ReadCloser.Close()
	if cerr := r.archive.Close(); err == nil {
		err = cerr
	}
	return err
}
