package generate

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/yogeshrao/jaxb2-maven-plugin/internal/source"
)

// copySchemas copies every source schema into the configured packaging
// location under its base file name. A name collision is not promoted to
// a failure: it concerns output artifacts, not correctness of generated
// sources, so the copy is skipped with a warning.
func (o *Orchestrator) copySchemas(sources []source.Location) error {
	targetDir := filepath.Join(o.opts.ArtifactOutputDir, o.opts.XSDPathWithinArtifact)
	if err := o.fs.MkdirAll(targetDir, 0755); err != nil {
		return fmt.Errorf("failed to create schema target directory: %w", err)
	}

	for _, src := range sources {
		name, err := src.FileName()
		if err != nil {
			return err
		}

		targetFile := filepath.Join(targetDir, name)
		if exists, _ := afero.Exists(o.fs, targetFile); exists {
			o.log.Warnf("file %s already exists, not copying %s to it", targetFile, src.Locator())
			continue
		}

		if err := o.copyOne(src, targetFile); err != nil {
			return err
		}
	}

	o.project.AddResourceDirectory(targetDir)
	return nil
}

func (o *Orchestrator) copyOne(src source.Location, targetFile string) error {
	reader, err := src.Open()
	if err != nil {
		return fmt.Errorf("failed to read schema %s: %w", src.Locator(), err)
	}
	defer reader.Close()

	out, err := o.fs.Create(targetFile)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", targetFile, err)
	}

	if _, err := io.Copy(out, reader); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", src.Locator(), targetFile, err)
	}
	return out.Close()
}
