/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ademuri/catalog-stats/internal/analysis"
	"github.com/ademuri/catalog-stats/internal/export"
)

var reportCmd = &cobra.Command{
	Use:   "report [from (optional)] [to (optional)]",
	Short: "Generates a comprehensive genre popularity report",
	Long: `Runs every analysis and prints a YAML report (or JSON with --format json)
containing the top genres, the top genres per year, peak years, yearly leaders,
the popularity trend and the explicit breakdowns.`,
	Args: cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		err := runReport(os.Stdout, args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func buildReport(args []string) (*analysis.Report, string, error) {
	config, err := loadConfig()
	if err != nil {
		return nil, "", err
	}

	tracks, err := loadTracks(config)
	if err != nil {
		return nil, "", err
	}
	tracks, err = filterByDateArgs(tracks, args)
	if err != nil {
		return nil, "", err
	}

	report, err := analysis.GenerateReport(tracks, config.Analysis)
	if err != nil {
		return nil, "", fmt.Errorf("analyzing data: %w", err)
	}
	return report, config.Format, nil
}

func runReport(out io.Writer, args []string) error {
	report, format, err := buildReport(args)
	if err != nil {
		return err
	}

	if format == "json" {
		return export.WriteJSON(out, report)
	}
	return export.WriteYAML(out, report)
}
