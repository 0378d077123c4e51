package generate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/yogeshrao/jaxb2-maven-plugin/internal/models"
	"github.com/yogeshrao/jaxb2-maven-plugin/internal/source"
)

func TestResolveSourcesScansAndSorts(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, f := range []string{"/p/xsd/b.xsd", "/p/xsd/a.xsd", "/p/xsd/sub/c.xsd", "/p/xsd/readme.txt"} {
		if err := afero.WriteFile(fs, f, []byte("x"), 0644); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}

	locations, err := ResolveSources(fs, nil, []string{"/p/xsd", "/p/missing"}, nil, models.XMLSchema)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	var got []string
	for _, loc := range locations {
		got = append(got, loc.Locator())
	}
	want := []string{"/p/xsd/a.xsd", "/p/xsd/b.xsd", "/p/xsd/sub/c.xsd"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("resolved sources mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveSourcesAppendsExplicitLocators(t *testing.T) {
	fs := afero.NewMemMapFs()

	locations, err := ResolveSources(fs, nil, nil,
		[]string{"jar:file:/lib/schemas.jar!/types.xsd", "https://example.com/remote.xsd"},
		models.XMLSchema)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if len(locations) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(locations))
	}
	if _, ok := locations[0].(*source.ArchiveEntry); !ok {
		t.Errorf("expected ArchiveEntry, got %T", locations[0])
	}
	if _, ok := locations[1].(*source.RemoteResource); !ok {
		t.Errorf("expected RemoteResource, got %T", locations[1])
	}
}

func TestResolveSourcesRejectsMalformedLocator(t *testing.T) {
	_, err := ResolveSources(afero.NewMemMapFs(), nil, nil, []string{"jar:file:/lib/broken.jar"}, models.XMLSchema)
	if err == nil {
		t.Fatal("expected error for malformed locator")
	}
}

func TestResolveSourcesUnsupportedType(t *testing.T) {
	_, err := ResolveSources(afero.NewMemMapFs(), nil, nil, nil, models.SourceContentType("relaxng"))
	if err == nil {
		t.Fatal("expected error for unsupported source type")
	}
}

func TestResolveBindings(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, f := range []string{"/p/xjb/b.xjb", "/p/xjb/a.xjb", "/p/xjb/notes.md"} {
		if err := afero.WriteFile(fs, f, []byte("x"), 0644); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}

	bindings, err := ResolveBindings(fs, []string{"/p/xjb"}, []string{"/p/extra.xjb"})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	want := []string{"/p/xjb/a.xjb", "/p/xjb/b.xjb", "/p/extra.xjb"}
	if diff := cmp.Diff(want, bindings); diff != "" {
		t.Errorf("resolved bindings mismatch (-want +got):\n%s", diff)
	}
}
