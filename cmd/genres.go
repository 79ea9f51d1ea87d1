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

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "Lists every genre with its number of tracks",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := runAnalysis(os.Stdout, &GenresAnalyser{}, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(genresCmd)
}

type GenresAnalyser struct{}

func (g *GenresAnalyser) GetName() string {
	return "Genres"
}

func (g *GenresAnalyser) GetResults(tracks []catalog.Track, config analysis.Config) (a Analysis, err error) {
	counts := analysis.DistinctGenres(tracks)
	a.results = analysis.GenreCountsTable(counts)
	a.summary = fmt.Sprintf("Found %d genres in %d tracks", len(counts), len(tracks))
	a.data = counts
	return
}
