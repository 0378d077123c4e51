package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/alpkeskin/gotoon"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/yogeshrao/jaxb2-maven-plugin/internal/config"
	"github.com/yogeshrao/jaxb2-maven-plugin/internal/stale"
	"github.com/yogeshrao/jaxb2-maven-plugin/internal/xjc"
)

var (
	planJSON bool
	planToon bool
)

// planReport is the machine-readable dry-run summary.
type planReport struct {
	Stale     bool     `json:"stale"`
	Marker    string   `json:"marker"`
	Arguments []string `json:"arguments"`
	Sources   []string `json:"sources"`
	Bindings  []string `json:"bindings"`
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the staleness decision and XJC argument vector without running the tool",
	RunE:  runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().BoolVar(&planJSON, "json", false, "Output as JSON")
	planCmd.Flags().BoolVar(&planToon, "toon", false, "Output as Toon (for agentic tools)")
}

func runPlan(cmd *cobra.Command, args []string) error {
	fs := afero.NewOsFs()

	req, err := resolveRequest(fs)
	if err != nil {
		return err
	}

	marker := stale.NewMarker(fs, config.GetStaleFile())
	isStale := stale.NewChecker(fs).IsStale(marker, req.Sources, req.Bindings)

	// Assemble against a scratch filesystem so a dry run never creates
	// the episode directory on disk.
	arguments, err := xjc.NewAssembler(afero.NewMemMapFs()).Build(req)
	if err != nil {
		return err
	}

	report := planReport{
		Stale:     isStale,
		Marker:    marker.Path(),
		Arguments: arguments,
		Bindings:  req.Bindings,
	}
	for _, src := range req.Sources {
		report.Sources = append(report.Sources, src.Locator())
	}

	if planJSON {
		output, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	if planToon {
		output, err := gotoon.Encode(report)
		if err != nil {
			return fmt.Errorf("failed to encode Toon: %w", err)
		}
		fmt.Println(output)
		return nil
	}

	if report.Stale {
		fmt.Println("Generated sources are stale, XJC would run.")
	} else {
		fmt.Println("Generated sources are up to date, XJC would be skipped.")
	}
	fmt.Println()
	fmt.Printf("Sources (%d):\n", len(report.Sources))
	for _, s := range report.Sources {
		fmt.Printf("  %s\n", s)
	}
	if len(report.Bindings) > 0 {
		fmt.Printf("Bindings (%d):\n", len(report.Bindings))
		for _, b := range report.Bindings {
			fmt.Printf("  %s\n", b)
		}
	}
	fmt.Println()
	fmt.Println("Arguments:")
	for _, a := range report.Arguments {
		fmt.Printf("  %s\n", a)
	}
	return nil
}
