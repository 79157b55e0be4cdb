// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/review-triage/internal/ingest"
	"github.com/pdiddy/review-triage/internal/report"
	"github.com/pdiddy/review-triage/internal/selection"
	"github.com/pdiddy/review-triage/internal/triage"
	"github.com/pdiddy/review-triage/pkg/types"
)

var triageCmd = &cobra.Command{
	Use:   "triage FILE...",
	Short: "Run the triage pipeline over citation export files",
	Long: `Triage parses the given .ris and .bib files, normalizes and aggregates
their records, removes exact duplicates, scores title/abstract coherence,
and applies the keyword and date selection criteria.

Files that fail to parse are skipped with a warning; the run continues
with the rest. Use --csv, --csl, or --db to export the selected set, and
--year to narrow the exports and the final table to a single year.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTriage,
}

func runTriage(cmd *cobra.Command, args []string) error {
	cfg := triageConfig(cmd)

	batch, skipped := ingest.ReadFiles(args, os.Stderr)
	res := triage.Run(batch, skipped, cfg)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		if err := report.WriteJSON(os.Stdout, res); err != nil {
			return err
		}
	} else {
		report.WriteSummary(os.Stdout, res)
	}

	// The exported view is the selected set, optionally narrowed to one
	// year the way the dashboard's year picker narrows it.
	view := res.Selected
	if cmd.Flags().Changed("year") {
		year, _ := cmd.Flags().GetInt("year")
		view = selection.ByYear(res.Selected, year)
		if !jsonOutput {
			fmt.Fprintf(os.Stdout, "\nRecords for year %d: %d\n", year, len(view))
			if len(view) > 0 {
				report.WriteTable(os.Stdout, view)
			}
		}
	}

	if csvPath, _ := cmd.Flags().GetString("csv"); csvPath != "" {
		if err := exportCSV(csvPath, view); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Exported CSV to %s\n", csvPath)
	}

	if cslPath, _ := cmd.Flags().GetString("csl"); cslPath != "" {
		if err := exportCSL(cslPath, view); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Exported CSL-YAML to %s\n", cslPath)
	}

	if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
		store, err := report.NewStore(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.Save(res); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote results database to %s\n", dbPath)
	}

	return nil
}

func exportCSV(path string, view types.Collection) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return report.WriteCSV(csv.NewWriter(f), view)
}

func exportCSL(path string, view types.Collection) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return report.WriteCSL(f, view)
}

func init() {
	triageCmd.Flags().Float64("threshold", 0.2, "coherence threshold; records scoring below it are set aside")
	triageCmd.Flags().StringSlice("keywords", []string{"portfolio", "optimization"}, "abstract keywords, any match selects (comma-separated)")
	triageCmd.Flags().Int("year-from", 2017, "inclusive lower bound for the publication year")
	triageCmd.Flags().Int("year-to", 2024, "inclusive upper bound for the publication year")
	triageCmd.Flags().Int("year", 0, "narrow the exported view to a single year")
	triageCmd.Flags().String("csv", "", "export the selected records as CSV to this path")
	triageCmd.Flags().String("csl", "", "export the selected records as CSL-YAML to this path")
	triageCmd.Flags().String("db", "", "write the run's results database to this path")
	triageCmd.Flags().Bool("json", false, "output the full run result as JSON")

	rootCmd.AddCommand(triageCmd)
}
