package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/yogeshrao/jaxb2-maven-plugin/internal/config"
	"github.com/yogeshrao/jaxb2-maven-plugin/internal/generate"
	"github.com/yogeshrao/jaxb2-maven-plugin/internal/models"
	"github.com/yogeshrao/jaxb2-maven-plugin/internal/stale"
	"github.com/yogeshrao/jaxb2-maven-plugin/internal/xjc"
)

var generateForce bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run XJC if generated sources are stale",
	Long: `Run one incremental generation step.

The staleness of generated sources is decided by comparing the marker
file's timestamp against every schema and binding input. When stale, the
XJC argument vector is assembled, the tool is invoked, and on success the
marker file is touched.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().BoolVar(&generateForce, "force", false, "Regenerate even when sources are unchanged")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	return executeGeneration(afero.NewOsFs(), generateForce)
}

// executeGeneration is the shared generation step behind the generate and
// watch commands. The marker is touched here, after the orchestrator's
// post-processing completed without error.
func executeGeneration(fs afero.Fs, force bool) error {
	req, err := resolveRequest(fs)
	if err != nil {
		return err
	}

	orchestrator := generate.NewOrchestrator(fs, newProject(), xjc.NewExecRunner(config.GetToolCommand()), generate.Options{
		ClearOutputDir:        config.ShouldClearOutputDir(),
		FailOnNoSchemas:       config.ShouldFailOnNoSchemas(),
		Force:                 force,
		XSDPathWithinArtifact: config.GetXSDPathWithinArtifact(),
		ArtifactOutputDir:     config.GetArtifactOutputDir(),
	})

	regenerated, err := orchestrator.Run(context.Background(), req)
	if err != nil {
		return err
	}
	if !regenerated {
		fmt.Println("Generated sources are up to date.")
		return nil
	}

	marker := stale.NewMarker(fs, config.GetStaleFile())
	if err := marker.Touch(); err != nil {
		return fmt.Errorf("generation succeeded but marker update failed: %w", err)
	}

	fmt.Printf("Generated sources from %d schema(s) into %s\n", len(req.Sources), req.OutputDir)
	return nil
}

// resolveRequest builds the generation request from configuration and
// resolves its schema sources and binding files.
func resolveRequest(fs afero.Fs) (*models.GenerationRequest, error) {
	sources, err := generate.ResolveSources(fs, config.NewHTTPClient(),
		config.GetSourceDirs(), config.GetSourceLocators(), config.GetSourceType())
	if err != nil {
		return nil, err
	}

	bindings, err := generate.ResolveBindings(fs, config.GetBindingDirs(), config.GetBindingFiles())
	if err != nil {
		return nil, err
	}

	req := config.NewGenerationRequest()
	req.Sources = sources
	req.Bindings = bindings
	return req, nil
}

func newProject() *generate.DirProject {
	return &generate.DirProject{
		OutputDir:     config.GetOutputDir(),
		BaseDir:       config.GetBaseDir(),
		ClasspathStr:  config.GetClasspath(),
		StaleFilePath: config.GetStaleFile(),
	}
}
