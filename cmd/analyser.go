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
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"

	"github.com/ademuri/catalog-stats/internal/analysis"
	"github.com/ademuri/catalog-stats/internal/catalog"
	"github.com/ademuri/catalog-stats/internal/export"
)

const noGroupsMessage = "No groups met the support threshold."

type Analysis struct {
	// First row is the header.
	results [][]string
	summary string

	// Structured result, used for json and yaml output.
	data interface{}
}

type Analyser interface {
	GetResults(tracks []catalog.Track, config analysis.Config) (Analysis, error)

	GetName() string
}

type Configurable interface {
	Configure(params map[string]string) error
}

func (a Analysis) empty() bool {
	return len(a.results) <= 1
}

func (a Analysis) String() string {
	out := new(bytes.Buffer)
	if !a.empty() {
		table := tablewriter.NewWriter(out)
		table.Header(a.results[0])
		for _, row := range a.results[1:] {
			if err := table.Append(row); err != nil {
				return fmt.Sprintf("Error rendering table: %v", err)
			}
		}
		if err := table.Render(); err != nil {
			return fmt.Sprintf("Error rendering table: %v", err)
		}
	}
	fmt.Fprintf(out, "%s\n", a.summary)
	return out.String()
}

// Write prints the analysis in the given format.
func (a Analysis) Write(w io.Writer, format string) error {
	switch format {
	case "table", "":
		_, err := fmt.Fprint(w, a.String())
		return err
	case "csv":
		return export.WriteCSV(w, a.results)
	case "json":
		return export.WriteJSON(w, a.data)
	case "yaml":
		return export.WriteYAML(w, a.data)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// runAnalysis loads the configured catalog, restricts it to the release date
// range in args, and prints the result of the analyser.
func runAnalysis(out io.Writer, a Analyser, args []string) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}

	tracks, err := loadTracks(config)
	if err != nil {
		return err
	}
	tracks, err = filterByDateArgs(tracks, args)
	if err != nil {
		return err
	}

	result, err := a.GetResults(tracks, config.Analysis)
	if err != nil {
		return fmt.Errorf("%s: %w", a.GetName(), err)
	}
	if result.empty() {
		log.Warn().Str("analysis", a.GetName()).Int("tracks", len(tracks)).Msg("Empty result")
	}
	return result.Write(out, config.Format)
}

func getActionFromName(actionName string) (Analyser, error) {
	// Pointers required for Configure.
	actionMap := map[string]Analyser{
		"genres":          &GenresAnalyser{},
		"top-genres":      &TopGenresAnalyser{},
		"rank":            &RankAnalyser{},
		"peaks":           &PeaksAnalyser{},
		"leaders":         &LeadersAnalyser{},
		"trend":           &TrendAnalyser{},
		"explicit":        &ExplicitAnalyser{},
		"genre-explicit":  &ExplicitAnalyser{By: explicitByGenre},
		"yearly-explicit": &ExplicitAnalyser{By: explicitByYear},
		"summary":         &SummaryAnalyser{},
	}

	action, ok := actionMap[actionName]
	if !ok {
		return nil, fmt.Errorf("Invalid analysis_name: %s", actionName)
	}

	return action, nil
}

func intParam(params map[string]string, key string, dst *int) error {
	val, ok := params[key]
	if !ok {
		return nil
	}
	v, err := strconv.Atoi(val)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	if v < 1 {
		return fmt.Errorf("invalid %s: must be at least 1", key)
	}
	*dst = v
	return nil
}

// thresholds overrides the configured analysis thresholds. Zero values keep
// the configured ones.
type thresholds struct {
	MinCount int
	K        int
	N        int
}

// Configure accepts min, k and n.
func (t *thresholds) Configure(params map[string]string) error {
	if err := intParam(params, "min", &t.MinCount); err != nil {
		return err
	}
	if err := intParam(params, "k", &t.K); err != nil {
		return err
	}
	return intParam(params, "n", &t.N)
}

func (t thresholds) apply(config analysis.Config) analysis.Config {
	if t.MinCount > 0 {
		config.MinSupportCount = t.MinCount
	}
	if t.K > 0 {
		config.TopKPerYear = t.K
	}
	if t.N > 0 {
		config.OverallTopN = t.N
	}
	return config
}
