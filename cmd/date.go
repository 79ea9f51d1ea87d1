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
	"regexp"
	"strconv"
	"time"

	"github.com/ademuri/catalog-stats/internal/catalog"
)

type ParsedDate struct {
	Date time.Time

	// Which precision the datestring had.
	Year     bool
	Month    bool
	Day      bool
	Relative bool
}

var relativeDate = regexp.MustCompile(`^(\d+)([dwmy])$`)

// filterByDateArgs keeps the tracks released within the range given by args.
// With no args every track is kept, including those without a release date.
func filterByDateArgs(tracks []catalog.Track, args []string) ([]catalog.Track, error) {
	if len(args) == 0 {
		return tracks, nil
	}
	start, end, err := parseDateRangeFromArgs(args)
	if err != nil {
		return nil, err
	}
	return catalog.InRange(tracks, start, end), nil
}

func parseDateRangeFromArgs(args []string) (start time.Time, end time.Time, err error) {
	switch len(args) {
	case 1:
		start, end, err = getImplicitDateRange(args[0])

	case 2:
		start, end, err = getExplicitDateRange(args[0], args[1])

	default:
		err = fmt.Errorf("Expected one or two date arguments")
	}
	return
}

func getImplicitDateRange(ds string) (start time.Time, end time.Time, err error) {
	date, err := parseSingleDatestring(ds)
	if err != nil {
		return
	}

	start = date.Date
	switch {
	case date.Year:
		end = start.AddDate(1, 0, 0)

	case date.Month:
		end = start.AddDate(0, 1, 0)

	case date.Day:
		end = start.AddDate(0, 0, 1)

	case date.Relative:
		end = time.Now()

	default:
		err = fmt.Errorf("Invalid format: %q", ds)
	}

	return
}

func getExplicitDateRange(startString, endString string) (start time.Time, end time.Time, err error) {
	startParsed, err := parseSingleDatestring(startString)
	if err != nil {
		return
	}
	start = startParsed.Date

	endParsed, err := parseSingleDatestring(endString)
	if err != nil {
		return
	}
	end = endParsed.Date

	if !end.After(start) {
		err = fmt.Errorf("End date %q is not after start date %q", endString, startString)
	}
	return
}

func parseSingleDatestring(ds string) (date ParsedDate, err error) {
	if m := relativeDate.FindStringSubmatch(ds); m != nil {
		amount, err := strconv.Atoi(m[1])
		if err != nil {
			return date, fmt.Errorf("Parsing relative datestring: %w", err)
		}
		now := time.Now()
		switch m[2] {
		case "d":
			date.Date = now.AddDate(0, 0, -amount)
		case "w":
			date.Date = now.AddDate(0, 0, -amount*7)
		case "m":
			date.Date = now.AddDate(0, -amount, 0)
		case "y":
			date.Date = now.AddDate(-amount, 0, 0)
		}
		date.Relative = true
		return date, nil
	}

	layouts := []struct {
		pattern *regexp.Regexp
		layout  string
		name    string
		flag    *bool
	}{
		{regexp.MustCompile(`^\d{4}$`), "2006", "year", &date.Year},
		{regexp.MustCompile(`^\d{4}-\d{2}$`), "2006-01", "month", &date.Month},
		{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), "2006-01-02", "day", &date.Day},
	}
	for _, l := range layouts {
		if !l.pattern.MatchString(ds) {
			continue
		}
		date.Date, err = time.Parse(l.layout, ds)
		if err != nil {
			err = fmt.Errorf("Parsing datestring as %s: %w", l.name, err)
			return
		}
		*l.flag = true
		return
	}

	err = fmt.Errorf("Invalid format: %q", ds)
	return
}
