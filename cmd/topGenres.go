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

var topGenresCmd = &cobra.Command{
	Use:   "top-genres [from (optional)] [to (optional)]",
	Short: "Gets the most popular genres",
	Long: `Ranks genres by average popularity over every track, keeping genres with at
least --min-support tracks. Tracks without a release date are included unless a
date range is given.

Date strings look like 'yyyy', 'yyyy-mm', 'yyyy-mm-dd', or relative like '10y'.`,
	Args: cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		err := runAnalysis(os.Stdout, &TopGenresAnalyser{}, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(topGenresCmd)
}

type TopGenresAnalyser struct {
	thresholds
}

func (t *TopGenresAnalyser) GetName() string {
	return "Top genres"
}

func (t *TopGenresAnalyser) GetResults(tracks []catalog.Track, config analysis.Config) (a Analysis, err error) {
	config = t.apply(config)
	stats := analysis.GenreStats(tracks)
	top := analysis.TopGenres(stats, config.MinSupportCount, config.OverallTopN)

	a.results = analysis.GenreStatsTable(top)
	a.data = top
	if len(top) == 0 {
		a.summary = fmt.Sprintf("No genre has at least %d tracks.", config.MinSupportCount)
	} else {
		a.summary = fmt.Sprintf("Top %d of %d genres with at least %d tracks", len(top), len(stats), config.MinSupportCount)
	}
	return
}
