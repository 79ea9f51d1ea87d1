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

var peaksCmd = &cobra.Command{
	Use:   "peaks [from (optional)] [to (optional)]",
	Short: "Finds the peak year of each top genre",
	Long: `For each of the --top-n genres, prints the release year in which its average
popularity was highest. Only (year, genre) groups with at least --min-support
tracks count. When two years tie, the later one is reported.`,
	Args: cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		err := runAnalysis(os.Stdout, &PeaksAnalyser{}, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(peaksCmd)
}

type PeaksAnalyser struct {
	thresholds
}

func (p *PeaksAnalyser) GetName() string {
	return "Peak years"
}

func (p *PeaksAnalyser) GetResults(tracks []catalog.Track, config analysis.Config) (a Analysis, err error) {
	pipeline := analysis.RunPipeline(tracks, p.apply(config))
	peaks := analysis.PeakPerGenre(pipeline.Supported, analysis.GenreNames(pipeline.TopGenres))

	a.results = analysis.PeaksTable(peaks)
	a.data = peaks
	if len(peaks) == 0 {
		a.summary = noGroupsMessage
	} else {
		a.summary = fmt.Sprintf("Peak years of %d top genres", len(peaks))
	}
	return
}
