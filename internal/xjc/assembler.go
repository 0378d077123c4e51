package xjc

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/yogeshrao/jaxb2-maven-plugin/internal/fsutil"
	"github.com/yogeshrao/jaxb2-maven-plugin/internal/logging"
	"github.com/yogeshrao/jaxb2-maven-plugin/internal/models"
	"github.com/yogeshrao/jaxb2-maven-plugin/internal/source"
)

// Assembler turns a GenerationRequest into the ordered XJC argument
// vector. Token precedence follows the XJC contract: flags, named
// arguments, episode, catalog, extra arguments, binding files, sources.
type Assembler struct {
	fs  afero.Fs
	log *logrus.Entry
}

// NewAssembler creates an Assembler. The filesystem is used to create the
// episode file's parent directory when episode generation is requested.
func NewAssembler(fs afero.Fs) *Assembler {
	return &Assembler{fs: fs, log: logging.NewEntry("xjc")}
}

// Build assembles the full argument vector for the given request. It
// fails with ErrNoSources when the source list is empty.
func (a *Assembler) Build(req *models.GenerationRequest) ([]string, error) {
	b := NewArgumentBuilder()

	// Flags on the form '-flagName'.
	b.WithFlag(true, req.SourceType.XJCFlag())
	b.WithFlag(req.NoPackageLevelAnnotations, "npa")
	b.WithFlag(req.LaxSchemaValidation, "nv")
	b.WithFlag(req.Verbose, "verbose")
	b.WithFlag(req.Quiet, "quiet")
	b.WithFlag(req.EnableIntrospection, "enableIntrospection")
	b.WithFlag(req.Extension, "extension")
	b.WithFlag(req.ReadOnly, "readOnly")
	b.WithFlag(req.NoGeneratedHeaderComments, "no-header")
	b.WithFlag(req.AddGeneratedAnnotation, "mark-generated")

	// Named arguments on the form '-argumentName argumentValue', two
	// separate tokens each.
	b.WithNamedArgument("httpproxy", req.Proxy.String())
	b.WithNamedArgument("encoding", req.Encoding)
	b.WithNamedArgument("p", req.PackageName)
	b.WithNamedArgument("target", req.Target)
	b.WithNamedArgument("d", fsutil.Canonical(req.OutputDir))
	b.WithNamedArgument("classpath", req.Classpath)

	if req.GenerateEpisode {
		// XJC's episode argument requires extension mode.
		if !req.Extension {
			a.log.Info("adding 'extension' flag, required by episode generation")
			b.WithFlag(true, "extension")
		}

		episode := fsutil.Canonical(req.EpisodeFile)
		if err := a.fs.MkdirAll(filepath.Dir(episode), 0755); err != nil {
			return nil, fmt.Errorf("failed to create episode directory: %w", err)
		}
		b.WithNamedArgument("episode", episode)
	}

	if req.Catalog != "" {
		b.WithNamedArgument("catalog", fsutil.Canonical(req.Catalog))
	}

	b.WithPreCompiledArguments(req.ExtraArguments)

	// Each binding file must be a separate -b pair, never merged.
	for _, binding := range req.Bindings {
		b.WithNamedArgument("-b", fsutil.Relativize(binding, req.BaseDir))
	}

	if len(req.Sources) == 0 {
		a.log.Warn("no schema sources found, check your configuration")
		return nil, ErrNoSources
	}

	sources := make([]string, 0, len(req.Sources))
	for _, src := range req.Sources {
		// Only plain local files can be shortened; composite and remote
		// locators go through verbatim.
		if local, ok := src.(*source.LocalFile); ok {
			sources = append(sources, fsutil.Relativize(local.Path(), req.BaseDir))
		} else {
			sources = append(sources, src.Locator())
		}
	}
	b.WithPreCompiledArguments(sources)

	args := b.Build()
	a.log.Debugf("xjc arguments: %s", strings.Join(args, " "))
	return args, nil
}
