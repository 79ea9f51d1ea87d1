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

var leadersCmd = &cobra.Command{
	Use:   "leaders [from (optional)] [to (optional)]",
	Short: "Finds the leading top genre of each year",
	Long: `Among the --top-n genres, prints the most popular one for every release
year, most popular first.`,
	Args: cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		err := runAnalysis(os.Stdout, &LeadersAnalyser{}, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(leadersCmd)
}

type LeadersAnalyser struct {
	thresholds
}

func (l *LeadersAnalyser) GetName() string {
	return "Yearly leaders"
}

func (l *LeadersAnalyser) GetResults(tracks []catalog.Track, config analysis.Config) (a Analysis, err error) {
	pipeline := analysis.RunPipeline(tracks, l.apply(config))
	leaders := analysis.YearlyLeaders(pipeline.Supported, analysis.GenreNames(pipeline.TopGenres))

	a.results = analysis.GroupsTable(leaders)
	a.data = leaders
	if len(leaders) == 0 {
		a.summary = noGroupsMessage
	} else {
		a.summary = fmt.Sprintf("Leading genre for %d years", len(leaders))
	}
	return
}
