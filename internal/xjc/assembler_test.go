package xjc

import (
	"errors"
	"testing"

	"github.com/spf13/afero"

	"github.com/yogeshrao/jaxb2-maven-plugin/internal/models"
	"github.com/yogeshrao/jaxb2-maven-plugin/internal/source"
)

func indexOf(tokens []string, token string) int {
	for i, t := range tokens {
		if t == token {
			return i
		}
	}
	return -1
}

func newRequest(fs afero.Fs) *models.GenerationRequest {
	return &models.GenerationRequest{
		SourceType: models.XMLSchema,
		Encoding:   "UTF-8",
		OutputDir:  "/proj/out",
		BaseDir:    "/proj",
		Sources: []source.Location{
			source.NewLocalFile(fs, "/proj/src/main/xsd/address.xsd"),
		},
	}
}

func TestBuildEmitsContentTypeFlagFirst(t *testing.T) {
	fs := afero.NewMemMapFs()
	args, err := NewAssembler(fs).Build(newRequest(fs))
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if args[0] != "-xmlschema" {
		t.Errorf("expected content type flag first, got '%s'", args[0])
	}
}

func TestBuildEpisodeForcesExtension(t *testing.T) {
	fs := afero.NewMemMapFs()
	req := newRequest(fs)
	req.GenerateEpisode = true
	req.EpisodeFile = "/proj/out/META-INF/sun-jaxb.episode"
	req.Extension = false

	args, err := NewAssembler(fs).Build(req)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	extension := indexOf(args, "-extension")
	episode := indexOf(args, "-episode")
	if extension == -1 {
		t.Fatal("extension flag not forced for episode generation")
	}
	if episode == -1 {
		t.Fatal("episode argument missing")
	}
	if extension > episode {
		t.Errorf("extension (index %d) must precede episode (index %d)", extension, episode)
	}
	if args[episode+1] != "/proj/out/META-INF/sun-jaxb.episode" {
		t.Errorf("unexpected episode path '%s'", args[episode+1])
	}

	// The episode file's parent directory must exist after assembly.
	if exists, _ := afero.DirExists(fs, "/proj/out/META-INF"); !exists {
		t.Error("episode parent directory was not created")
	}
}

func TestBuildEpisodeWithExtensionAlreadyEnabled(t *testing.T) {
	fs := afero.NewMemMapFs()
	req := newRequest(fs)
	req.GenerateEpisode = true
	req.EpisodeFile = "/proj/out/META-INF/sun-jaxb.episode"
	req.Extension = true

	args, err := NewAssembler(fs).Build(req)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	count := 0
	for _, a := range args {
		if a == "-extension" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one extension flag, got %d", count)
	}
}

func TestBuildFailsWithoutSources(t *testing.T) {
	fs := afero.NewMemMapFs()
	req := newRequest(fs)
	req.Sources = nil

	args, err := NewAssembler(fs).Build(req)
	if !errors.Is(err, ErrNoSources) {
		t.Fatalf("expected ErrNoSources, got %v", err)
	}
	if args != nil {
		t.Errorf("expected no partial token vector, got %v", args)
	}
}

func TestBuildEmitsOneBindingPairPerFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	req := newRequest(fs)
	req.Bindings = []string{"/proj/src/main/xjb/a.xjb", "/proj/src/main/xjb/b.xjb"}

	args, err := NewAssembler(fs).Build(req)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	var values []string
	for i, a := range args {
		if a == "-b" {
			values = append(values, args[i+1])
		}
	}
	if len(values) != 2 {
		t.Fatalf("expected two -b pairs, got %d", len(values))
	}
	if values[0] != "src/main/xjb/a.xjb" || values[1] != "src/main/xjb/b.xjb" {
		t.Errorf("binding pairs out of order or not relativized: %v", values)
	}
}

func TestBuildRelativizesLocalSourcesOnly(t *testing.T) {
	fs := afero.NewMemMapFs()
	req := newRequest(fs)
	req.Sources = []source.Location{
		source.NewLocalFile(fs, "/proj/src/main/xsd/address.xsd"),
		source.NewArchiveEntry(fs, "/lib/schemas.jar", "common/types.xsd"),
	}

	args, err := NewAssembler(fs).Build(req)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if indexOf(args, "src/main/xsd/address.xsd") == -1 {
		t.Errorf("local source not relativized: %v", args)
	}
	if indexOf(args, "jar:file:/lib/schemas.jar!/common/types.xsd") == -1 {
		t.Errorf("archive source not rendered as full locator: %v", args)
	}
}

func TestBuildProxyArgument(t *testing.T) {
	fs := afero.NewMemMapFs()
	req := newRequest(fs)
	req.Proxy = &models.ProxySpec{Username: "u", Password: "p", Host: "h", Port: 8080}

	args, err := NewAssembler(fs).Build(req)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	i := indexOf(args, "-httpproxy")
	if i == -1 || args[i+1] != "u:p@h:8080" {
		t.Errorf("httpproxy argument missing or wrong: %v", args)
	}
}

func TestBuildNoEpisodeTokensWhenDisabled(t *testing.T) {
	fs := afero.NewMemMapFs()
	req := newRequest(fs)
	req.GenerateEpisode = false

	args, err := NewAssembler(fs).Build(req)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if indexOf(args, "-episode") != -1 || indexOf(args, "-extension") != -1 {
		t.Errorf("unexpected episode/extension tokens: %v", args)
	}
}

func TestBuildAppendsExtraArgumentsVerbatim(t *testing.T) {
	fs := afero.NewMemMapFs()
	req := newRequest(fs)
	req.ExtraArguments = []string{"-Xfluent-api", "-Xinheritance"}

	args, err := NewAssembler(fs).Build(req)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	fluent := indexOf(args, "-Xfluent-api")
	inheritance := indexOf(args, "-Xinheritance")
	if fluent == -1 || inheritance == -1 || fluent > inheritance {
		t.Errorf("extra arguments missing or reordered: %v", args)
	}
}
