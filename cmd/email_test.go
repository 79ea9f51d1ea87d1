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
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ademuri/catalog-stats/internal/analysis"
	"github.com/ademuri/catalog-stats/internal/export"
)

func TestSplitDateArgs(t *testing.T) {
	rest, dates := splitDateArgs([]string{"a@example.com", "b@example.com", "2020", "2021-06"})
	if !reflect.DeepEqual(rest, []string{"a@example.com", "b@example.com"}) {
		t.Errorf("rest = %v", rest)
	}
	if !reflect.DeepEqual(dates, []string{"2020", "2021-06"}) {
		t.Errorf("dates = %v", dates)
	}

	rest, dates = splitDateArgs([]string{"a@example.com"})
	if len(rest) != 1 || len(dates) != 0 {
		t.Errorf("splitDateArgs without dates = %v, %v", rest, dates)
	}
}

func TestParseParams(t *testing.T) {
	got := parseParams("n=20,min=3,bogus")
	expected := map[string]string{"n": "20", "min": "3"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("parseParams() = %v, expected %v", got, expected)
	}
	if len(parseParams("")) != 0 {
		t.Errorf("Expected empty params")
	}
}

func TestGetActions(t *testing.T) {
	actions, err := getActions(SendEmailConfig{
		Types:  []string{"top-genres", "genres"},
		Params: []map[string]string{{"n": "1"}},
	})
	if err != nil {
		t.Fatalf("getActions: %v", err)
	}
	if len(actions) != 2 {
		t.Fatalf("Expected 2 actions, got %d", len(actions))
	}

	a, err := actions[0].GetResults(loadTestTracks(t), analysis.DefaultConfig())
	if err != nil {
		t.Fatalf("GetResults: %v", err)
	}
	if len(a.results) != 2 || a.results[1][0] != "pop" {
		t.Errorf("Expected only pop with n=1, got %v", a.results)
	}

	errorCases := []SendEmailConfig{
		{},
		{Types: []string{"top-artists"}},
		{Types: []string{"genres"}, Params: []map[string]string{{"n": "2"}}},
		{Types: []string{"rank"}, Params: []map[string]string{{"k": "zero"}}},
		{Types: []string{"rank"}, Params: []map[string]string{{"min": "0"}}},
	}
	for _, c := range errorCases {
		if _, err := getActions(c); err == nil {
			t.Errorf("getActions(%+v) expected error", c)
		}
	}
}

func TestGenerateEmailContent(t *testing.T) {
	config := SendEmailConfig{
		Types:    []string{"rank", "peaks"},
		DateArgs: []string{"2021"},
	}
	actions, err := getActions(config)
	if err != nil {
		t.Fatalf("getActions: %v", err)
	}
	tracks, err := filterByDateArgs(loadTestTracks(t), config.DateArgs)
	if err != nil {
		t.Fatalf("filterByDateArgs: %v", err)
	}

	subject, plain, body, err := generateEmailContent(config, actions, tracks, analysis.DefaultConfig())
	if err != nil {
		t.Fatalf("generateEmailContent: %v", err)
	}

	if subject != "Catalog report for 2021-01-01 to 2022-01-01" {
		t.Errorf("Unexpected subject %q", subject)
	}
	for _, want := range []string{"<th>Avg Popularity</th>", "<td>indie</td>", "<h2>Peak years"} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected body to contain %q", want)
		}
	}
	if strings.Contains(body, "<td>2020</td>") {
		t.Errorf("Body contains tracks outside the date range")
	}
	if !strings.Contains(plain, "indie") {
		t.Errorf("Expected plain text to contain the rank table, got:\n%s", plain)
	}
}

func TestGenerateEmailContentEmpty(t *testing.T) {
	config := SendEmailConfig{Types: []string{"rank"}}
	actions, err := getActions(config)
	if err != nil {
		t.Fatalf("getActions: %v", err)
	}

	_, _, body, err := generateEmailContent(config, actions, nil, analysis.DefaultConfig())
	if err != nil {
		t.Fatalf("generateEmailContent: %v", err)
	}
	if !strings.Contains(body, "No results.") || !strings.Contains(body, noGroupsMessage) {
		t.Errorf("Expected empty result message, got:\n%s", body)
	}
}

func TestWriteChart(t *testing.T) {
	useInput(t, "table")
	path := filepath.Join(t.TempDir(), "report.xlsx")

	if err := writeChart(path, nil); err != nil {
		t.Fatalf("writeChart: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile(%s): %v", path, err)
	}
	defer f.Close()

	peak, err := f.GetCellValue(export.SheetPeakYears, "A2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if peak != "pop (2020)" {
		t.Errorf("Expected first peak to be pop (2020), got %q", peak)
	}
}
