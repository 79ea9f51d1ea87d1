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

const (
	explicitByGenre = "genre"
	explicitByYear  = "year"
)

var explicitBy string
var explicitCmd = &cobra.Command{
	Use:   "explicit [from (optional)] [to (optional)]",
	Short: "Compares explicit and non-explicit tracks",
	Long: `Without --by, prints the average popularity of explicit and non-explicit
tracks. --by genre compares them within each genre that has both kinds of
tracks, and --by year counts them per release year.`,
	Args: cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		err := runAnalysis(os.Stdout, &ExplicitAnalyser{By: explicitBy}, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(explicitCmd)

	explicitCmd.Flags().StringVar(&explicitBy, "by", "", "Break down by 'genre' or 'year'")
}

type ExplicitAnalyser struct {
	By string
}

func (e *ExplicitAnalyser) GetName() string {
	switch e.By {
	case explicitByGenre:
		return "Explicit popularity by genre"
	case explicitByYear:
		return "Explicit songs by year"
	default:
		return "Explicit popularity"
	}
}

func (e *ExplicitAnalyser) GetResults(tracks []catalog.Track, config analysis.Config) (a Analysis, err error) {
	var n int
	switch e.By {
	case explicitByGenre:
		stats := analysis.GenreExplicitPopularity(tracks)
		a.results, a.data, n = analysis.GenreExplicitTable(stats), stats, len(stats)
	case explicitByYear:
		counts := analysis.YearlyExplicitCounts(tracks)
		a.results, a.data, n = analysis.YearlyExplicitTable(counts), counts, len(counts)
	case "":
		stats := analysis.ExplicitPopularity(tracks)
		a.results, a.data, n = analysis.ExplicitTable(stats), stats, len(stats)
	default:
		err = fmt.Errorf("--by must be %q or %q, got %q", explicitByGenre, explicitByYear, e.By)
		return
	}

	if n == 0 {
		a.summary = "No tracks with explicit information."
	} else {
		a.summary = fmt.Sprintf("%d rows from %d tracks", n, len(tracks))
	}
	return
}
