package analysis

import (
	"strconv"

	"github.com/samber/lo"
)

// The functions below flatten results into rows of strings. The first row is
// always the header.

func GenreStatsTable(genreStats []GenreStat) [][]string {
	return append([][]string{{"Genre", "Avg Popularity", "Tracks"}},
		lo.Map(genreStats, func(g GenreStat, _ int) []string {
			return []string{g.Genre, formatFloat(g.AvgPopularity), strconv.Itoa(g.TrackCount)}
		})...)
}

func GenreCountsTable(counts []GenreCount) [][]string {
	return append([][]string{{"Genre", "Tracks"}},
		lo.Map(counts, func(g GenreCount, _ int) []string {
			return []string{g.Genre, strconv.Itoa(g.TrackCount)}
		})...)
}

func RankedTable(ranked []RankedGroup) [][]string {
	return append([][]string{{"Year", "Rank", "Genre", "Avg Popularity", "Tracks"}},
		lo.Map(ranked, func(r RankedGroup, _ int) []string {
			return []string{strconv.Itoa(r.Year), strconv.Itoa(r.Rank), r.Genre, formatFloat(r.AvgPopularity), strconv.Itoa(r.TrackCount)}
		})...)
}

func GroupsTable(groups []GenreYearGroup) [][]string {
	return append([][]string{{"Year", "Genre", "Avg Popularity", "Tracks"}},
		lo.Map(groups, func(g GenreYearGroup, _ int) []string {
			return []string{strconv.Itoa(g.Year), g.Genre, formatFloat(g.AvgPopularity), strconv.Itoa(g.TrackCount)}
		})...)
}

func PeaksTable(peaks []PeakRecord) [][]string {
	return append([][]string{{"Genre", "Peak Year", "Peak Popularity"}},
		lo.Map(peaks, func(p PeakRecord, _ int) []string {
			return []string{p.Genre, strconv.Itoa(p.PeakYear), formatFloat(p.PeakPopularity)}
		})...)
}

// TrendTable has one row per year and one column per genre. Years where a
// genre has no value are left blank.
func TrendTable(trend Trend) [][]string {
	header := append([]string{"Year"}, lo.Map(trend.Series, func(s TrendSeries, _ int) string { return s.Genre })...)
	rows := [][]string{header}
	for _, year := range trend.Years {
		row := []string{strconv.Itoa(year)}
		for _, s := range trend.Series {
			if v, ok := s.Values[year]; ok {
				row = append(row, formatFloat(v))
			} else {
				row = append(row, "")
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func ExplicitTable(explicit []ExplicitStat) [][]string {
	return append([][]string{{"Explicit", "Avg Popularity", "Tracks"}},
		lo.Map(explicit, func(e ExplicitStat, _ int) []string {
			return []string{strconv.FormatBool(e.Explicit), formatFloat(e.AvgPopularity), strconv.Itoa(e.TrackCount)}
		})...)
}

func GenreExplicitTable(stats []GenreExplicitStat) [][]string {
	return append([][]string{{"Genre", "Explicit", "Avg Popularity"}},
		lo.Map(stats, func(e GenreExplicitStat, _ int) []string {
			return []string{e.Genre, strconv.FormatBool(e.Explicit), formatFloat(e.AvgPopularity)}
		})...)
}

func YearlyExplicitTable(counts []YearExplicitCount) [][]string {
	return append([][]string{{"Year", "Explicit", "Songs"}},
		lo.Map(counts, func(c YearExplicitCount, _ int) []string {
			return []string{strconv.Itoa(c.Year), strconv.FormatBool(c.Explicit), strconv.Itoa(c.SongCount)}
		})...)
}

func SummaryTable(s PopularitySummary) [][]string {
	return [][]string{
		{"Statistic", "Popularity"},
		{"count", strconv.Itoa(s.Count)},
		{"mean", formatFloat(s.Mean)},
		{"std dev", formatFloat(s.StdDev)},
		{"min", formatFloat(s.Min)},
		{"median", formatFloat(s.Median)},
		{"p90", formatFloat(s.P90)},
		{"max", formatFloat(s.Max)},
	}
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
