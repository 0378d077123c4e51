package testutil

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TempWorkspace is a temporary directory with helpers for creating schema
// and binding fixtures.
type TempWorkspace struct {
	Path string
	T    *testing.T
}

// NewTempWorkspace creates a new temporary workspace.
func NewTempWorkspace(t *testing.T) *TempWorkspace {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "jaxb2gen-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	return &TempWorkspace{
		Path: tmpDir,
		T:    t,
	}
}

// Cleanup removes the workspace.
func (w *TempWorkspace) Cleanup() {
	w.T.Helper()
	if err := os.RemoveAll(w.Path); err != nil {
		w.T.Errorf("failed to cleanup workspace: %v", err)
	}
}

// Join resolves a name relative to the workspace root.
func (w *TempWorkspace) Join(name string) string {
	return filepath.Join(w.Path, name)
}

// CreateFile creates a file in the workspace, creating parent directories
// as needed, and returns its full path.
func (w *TempWorkspace) CreateFile(name, content string) string {
	w.T.Helper()

	path := w.Join(name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		w.T.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		w.T.Fatalf("failed to create file: %v", err)
	}
	return path
}

// Touch sets a file's modification time.
func (w *TempWorkspace) Touch(name string, modified time.Time) {
	w.T.Helper()

	if err := os.Chtimes(w.Join(name), modified, modified); err != nil {
		w.T.Fatalf("failed to touch %s: %v", name, err)
	}
}

// CreateZip creates a zip archive containing the given entries, all with
// the given modification time, and returns its full path.
func (w *TempWorkspace) CreateZip(name string, entries map[string]string, modified time.Time) string {
	w.T.Helper()

	path := w.Join(name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		w.T.Fatalf("failed to create directory: %v", err)
	}

	f, err := os.Create(path)
	if err != nil {
		w.T.Fatalf("failed to create archive: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for entryName, content := range entries {
		header := &zip.FileHeader{
			Name:     entryName,
			Method:   zip.Deflate,
			Modified: modified,
		}
		entry, err := zw.CreateHeader(header)
		if err != nil {
			w.T.Fatalf("failed to create archive entry: %v", err)
		}
		if _, err := entry.Write([]byte(content)); err != nil {
			w.T.Fatalf("failed to write archive entry: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		w.T.Fatalf("failed to close archive: %v", err)
	}
	return path
}
