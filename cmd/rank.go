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

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ademuri/catalog-stats/internal/analysis"
	"github.com/ademuri/catalog-stats/internal/catalog"
)

var rankCmd = &cobra.Command{
	Use:   "rank [from (optional)] [to (optional)]",
	Short: "Ranks genres within each release year",
	Long: `Groups tracks by (release year, genre), drops groups with fewer than
--min-support tracks, and prints the --top-k genres of each year by average
popularity.`,
	Args: cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		err := runAnalysis(os.Stdout, &RankAnalyser{}, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)
}

type RankAnalyser struct {
	thresholds
}

func (r *RankAnalyser) GetName() string {
	return "Top genres per year"
}

func (r *RankAnalyser) GetResults(tracks []catalog.Track, config analysis.Config) (a Analysis, err error) {
	config = r.apply(config)
	supported := analysis.FilterSupport(analysis.Aggregate(analysis.Normalize(tracks)), config.MinSupportCount)
	top := analysis.TopK(analysis.RankWithinYear(supported), config.TopKPerYear)

	a.results = analysis.RankedTable(top)
	a.data = top
	if len(top) == 0 {
		a.summary = noGroupsMessage
	} else {
		years := lo.Uniq(lo.Map(top, func(g analysis.RankedGroup, _ int) int { return g.Year }))
		a.summary = fmt.Sprintf("Top %d genres for %d years, from %d supported groups", config.TopKPerYear, len(years), len(supported))
	}
	return
}
