package fsutil

import (
	"testing"

	"github.com/spf13/afero"
)

func TestRelativizeUnderBase(t *testing.T) {
	if got := Relativize("/base/src/a.xsd", "/base"); got != "src/a.xsd" {
		t.Errorf("expected 'src/a.xsd', got '%s'", got)
	}
}

func TestRelativizeOutsideBaseFallsBackToAbsolute(t *testing.T) {
	if got := Relativize("/elsewhere/a.xsd", "/base"); got != "/elsewhere/a.xsd" {
		t.Errorf("expected absolute fallback, got '%s'", got)
	}
}

func TestPrepareDirectoryClears(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/out/Old.java", []byte("old"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if err := PrepareDirectory(fs, "/out", true); err != nil {
		t.Fatalf("prepare failed: %v", err)
	}

	if exists, _ := afero.Exists(fs, "/out/Old.java"); exists {
		t.Error("existing content not cleared")
	}
	if exists, _ := afero.DirExists(fs, "/out"); !exists {
		t.Error("directory not recreated")
	}
}

func TestPrepareDirectoryKeepsContentWithoutClear(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/out/Keep.java", []byte("keep"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if err := PrepareDirectory(fs, "/out", false); err != nil {
		t.Fatalf("prepare failed: %v", err)
	}

	if exists, _ := afero.Exists(fs, "/out/Keep.java"); !exists {
		t.Error("existing content removed without clear")
	}
}
