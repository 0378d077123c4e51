package source

import (
	"io"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/yogeshrao/jaxb2-maven-plugin/internal/testutil"
)

func TestArchiveEntryLastModified(t *testing.T) {
	ws := testutil.NewTempWorkspace(t)
	defer ws.Cleanup()

	modified := time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)
	archive := ws.CreateZip("lib/schemas.jar", map[string]string{
		"common/types.xsd": "<schema/>",
	}, modified)

	entry := NewArchiveEntry(afero.NewOsFs(), archive, "common/types.xsd")
	got, err := entry.LastModified()
	if err != nil {
		t.Fatalf("last modified failed: %v", err)
	}

	// Zip timestamps carry limited precision.
	if diff := got.Sub(modified); diff < -2*time.Second || diff > 2*time.Second {
		t.Errorf("expected ~%v, got %v", modified, got)
	}
}

func TestArchiveEntryMissingEntry(t *testing.T) {
	ws := testutil.NewTempWorkspace(t)
	defer ws.Cleanup()

	archive := ws.CreateZip("lib/schemas.jar", map[string]string{
		"common/types.xsd": "<schema/>",
	}, time.Now())

	entry := NewArchiveEntry(afero.NewOsFs(), archive, "does/not/exist.xsd")
	if _, err := entry.LastModified(); err == nil {
		t.Fatal("expected error for missing entry")
	}
}

func TestArchiveEntryMissingArchive(t *testing.T) {
	entry := NewArchiveEntry(afero.NewOsFs(), "/no/such/archive.jar", "a.xsd")
	if _, err := entry.LastModified(); err == nil {
		t.Fatal("expected error for missing archive")
	}
}

func TestArchiveEntryOpen(t *testing.T) {
	ws := testutil.NewTempWorkspace(t)
	defer ws.Cleanup()

	archive := ws.CreateZip("lib/schemas.jar", map[string]string{
		"common/types.xsd": "<schema/>",
	}, time.Now())

	entry := NewArchiveEntry(afero.NewOsFs(), archive, "common/types.xsd")
	reader, err := entry.Open()
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(content) != "<schema/>" {
		t.Errorf("unexpected content '%s'", content)
	}
}
