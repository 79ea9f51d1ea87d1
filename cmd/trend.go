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

var trendCmd = &cobra.Command{
	Use:   "trend [from (optional)] [to (optional)]",
	Short: "Shows the popularity of the top genres over time",
	Args:  cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		err := runAnalysis(os.Stdout, &TrendAnalyser{}, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(trendCmd)
}

type TrendAnalyser struct {
	thresholds
}

func (t *TrendAnalyser) GetName() string {
	return "Popularity trend"
}

func (t *TrendAnalyser) GetResults(tracks []catalog.Track, config analysis.Config) (a Analysis, err error) {
	pipeline := analysis.RunPipeline(tracks, t.apply(config))
	trend := analysis.BuildTrend(pipeline.Supported, analysis.GenreNames(pipeline.TopGenres))

	a.results = analysis.TrendTable(trend)
	a.data = trend
	if len(trend.Series) == 0 {
		a.summary = noGroupsMessage
	} else {
		a.summary = fmt.Sprintf("%d genres over %d years", len(trend.Series), len(trend.Years))
	}
	return
}
