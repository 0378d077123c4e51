package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/alpkeskin/gotoon"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/yogeshrao/jaxb2-maven-plugin/internal/config"
	"github.com/yogeshrao/jaxb2-maven-plugin/internal/stale"
)

var (
	checkJSON bool
	checkToon bool
)

// checkReport is the machine-readable staleness summary.
type checkReport struct {
	Stale    bool     `json:"stale"`
	Marker   string   `json:"marker"`
	Sources  []string `json:"sources"`
	Bindings []string `json:"bindings"`
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report whether generated sources are stale",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Output as JSON")
	checkCmd.Flags().BoolVar(&checkToon, "toon", false, "Output as Toon (for agentic tools)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	fs := afero.NewOsFs()

	req, err := resolveRequest(fs)
	if err != nil {
		return err
	}

	marker := stale.NewMarker(fs, config.GetStaleFile())
	report := checkReport{
		Stale:    stale.NewChecker(fs).IsStale(marker, req.Sources, req.Bindings),
		Marker:   marker.Path(),
		Bindings: req.Bindings,
	}
	for _, src := range req.Sources {
		report.Sources = append(report.Sources, src.Locator())
	}

	if checkJSON {
		output, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	if checkToon {
		output, err := gotoon.Encode(report)
		if err != nil {
			return fmt.Errorf("failed to encode Toon: %w", err)
		}
		fmt.Println(output)
		return nil
	}

	if report.Stale {
		fmt.Println("Generated sources are stale.")
	} else {
		fmt.Println("Generated sources are up to date.")
	}
	return nil
}
