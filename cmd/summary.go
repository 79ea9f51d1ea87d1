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
	"os"

	"github.com/spf13/cobra"

	"github.com/ademuri/catalog-stats/internal/analysis"
	"github.com/ademuri/catalog-stats/internal/catalog"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Describes the popularity distribution of the catalog",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := runAnalysis(os.Stdout, &SummaryAnalyser{}, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

type SummaryAnalyser struct{}

func (s *SummaryAnalyser) GetName() string {
	return "Catalog summary"
}

func (s *SummaryAnalyser) GetResults(tracks []catalog.Track, config analysis.Config) (a Analysis, err error) {
	summary := analysis.SummarizePopularity(tracks)
	a.results = analysis.SummaryTable(summary)
	a.data = summary

	dated := 0
	for _, t := range tracks {
		if _, ok := t.Year(); ok {
			dated++
		}
	}
	a.summary = fmt.Sprintf("%d tracks, %d with a release year, %d genres",
		len(tracks), dated, len(analysis.DistinctGenres(tracks)))
	return
}
