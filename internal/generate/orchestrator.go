package generate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/yogeshrao/jaxb2-maven-plugin/internal/fsutil"
	"github.com/yogeshrao/jaxb2-maven-plugin/internal/logging"
	"github.com/yogeshrao/jaxb2-maven-plugin/internal/models"
	"github.com/yogeshrao/jaxb2-maven-plugin/internal/stale"
	"github.com/yogeshrao/jaxb2-maven-plugin/internal/xjc"
)

// Options controls orchestrator behavior that is policy rather than
// request data.
type Options struct {
	// ClearOutputDir removes the output directory's content before the
	// run instead of only creating it.
	ClearOutputDir bool

	// FailOnNoSchemas makes an empty source list fatal. When false, an
	// empty list degrades to a warned skip.
	FailOnNoSchemas bool

	// Force runs generation even when the staleness check reports the
	// output as current.
	Force bool

	// XSDPathWithinArtifact, when non-empty, is the directory (relative
	// to ArtifactOutputDir) that source schemas are copied into after a
	// successful run.
	XSDPathWithinArtifact string

	// ArtifactOutputDir is the packaging output root for schema copies.
	ArtifactOutputDir string
}

// Orchestrator composes the staleness checker and argument assembler
// around one external tool invocation. It assumes single-writer,
// non-concurrent execution per output directory.
type Orchestrator struct {
	fs        afero.Fs
	project   ProjectContext
	checker   *stale.Checker
	assembler *xjc.Assembler
	runner    xjc.Runner
	opts      Options
	log       *logrus.Entry
}

// NewOrchestrator wires an Orchestrator from its collaborators.
func NewOrchestrator(fs afero.Fs, project ProjectContext, runner xjc.Runner, opts Options) *Orchestrator {
	return &Orchestrator{
		fs:        fs,
		project:   project,
		checker:   stale.NewChecker(fs),
		assembler: xjc.NewAssembler(fs),
		runner:    runner,
		opts:      opts,
		log:       logging.NewEntry("generate"),
	}
}

// Run performs one generation step and reports whether regeneration
// happened. When it returns true the caller is expected to touch the
// marker file; the touch is deferred to the caller so it only happens
// after all post-processing completed without error.
func (o *Orchestrator) Run(ctx context.Context, req *models.GenerationRequest) (bool, error) {
	marker := stale.NewMarker(o.fs, o.project.StaleFile())
	if !o.opts.Force && !o.checker.IsStale(marker, req.Sources, req.Bindings) {
		o.log.Info("generated sources are up to date, skipping XJC")
		return false, nil
	}

	if err := fsutil.PrepareDirectory(o.fs, req.OutputDir, o.opts.ClearOutputDir); err != nil {
		return false, err
	}

	// Assembly also recreates the episode file's parent directory, which
	// matters when the output directory was just cleared.
	args, err := o.assembler.Build(req)
	if err != nil {
		if errors.Is(err, xjc.ErrNoSources) && !o.opts.FailOnNoSchemas {
			o.log.Warn("no schema sources found, skipping generation")
			return false, nil
		}
		return false, err
	}

	exitCode, err := o.runner.Run(ctx, args, o.project.Classpath())
	if err != nil {
		return false, fmt.Errorf("xjc invocation failed: %w", err)
	}
	if exitCode != 0 {
		return false, &xjc.ToolError{ExitCode: exitCode, Sources: req.Sources}
	}

	o.project.AddGeneratedSourceRoot(o.project.OutputDirectory())
	if req.GenerateEpisode {
		o.project.AddResourceDirectory(filepath.Dir(req.EpisodeFile))
	}

	if o.opts.XSDPathWithinArtifact != "" {
		if err := o.copySchemas(req.Sources); err != nil {
			return false, err
		}
	}

	return true, nil
}
