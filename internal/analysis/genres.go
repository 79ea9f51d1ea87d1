package analysis

import (
	"sort"

	"github.com/aclements/go-moremath/stats"
	"github.com/samber/lo"

	"github.com/ademuri/catalog-stats/internal/catalog"
)

// GenreStats aggregates popularity per genre over every track, including
// tracks without a release date.
func GenreStats(tracks []catalog.Track) []GenreStat {
	var order []string
	values := make(map[string][]float64)
	for _, r := range Normalize(tracks) {
		if _, ok := values[r.Genre]; !ok {
			order = append(order, r.Genre)
		}
		values[r.Genre] = append(values[r.Genre], r.Popularity)
	}

	out := make([]GenreStat, 0, len(order))
	for _, genre := range order {
		xs := values[genre]
		out = append(out, GenreStat{
			Genre:         genre,
			AvgPopularity: round(stats.Mean(xs), 2),
			TrackCount:    len(xs),
		})
	}
	return out
}

// TopGenres returns the n most popular genres with at least minCount tracks.
func TopGenres(genreStats []GenreStat, minCount, n int) []GenreStat {
	top := lo.Filter(genreStats, func(g GenreStat, _ int) bool {
		return g.TrackCount >= minCount
	})
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].AvgPopularity > top[j].AvgPopularity
	})
	if n >= 0 && len(top) > n {
		top = top[:n]
	}
	return top
}

func GenreNames(genreStats []GenreStat) []string {
	return lo.Map(genreStats, func(g GenreStat, _ int) string { return g.Genre })
}

// DistinctGenres lists every genre token with the number of tracks carrying
// it, sorted by name. A token repeated on one track counts once.
func DistinctGenres(tracks []catalog.Track) []GenreCount {
	counts := lo.CountValues(lo.FlatMap(tracks, func(t catalog.Track, _ int) []string { return lo.Uniq(t.Genres) }))
	out := make([]GenreCount, 0, len(counts))
	for genre, n := range counts {
		out = append(out, GenreCount{Genre: genre, TrackCount: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Genre < out[j].Genre })
	return out
}

// YearlyLeaders returns, for each year, the most popular genre among
// genreSet. Expects groups already filtered by support. Ordered by
// popularity, most popular first.
func YearlyLeaders(groups []GenreYearGroup, genreSet []string) []GenreYearGroup {
	restricted := lo.Filter(groups, func(g GenreYearGroup, _ int) bool {
		return lo.Contains(genreSet, g.Genre)
	})
	leaders := lo.FilterMap(RankWithinYear(restricted), func(r RankedGroup, _ int) (GenreYearGroup, bool) {
		return r.GenreYearGroup, r.Rank == 1
	})
	sort.SliceStable(leaders, func(i, j int) bool {
		return leaders[i].AvgPopularity > leaders[j].AvgPopularity
	})
	return leaders
}

// BuildTrend pivots year x genre average popularity for the genres in
// genreSet.
func BuildTrend(groups []GenreYearGroup, genreSet []string) Trend {
	series := make(map[string]map[int]float64)
	var years []int
	for _, g := range groups {
		if !lo.Contains(genreSet, g.Genre) {
			continue
		}
		if series[g.Genre] == nil {
			series[g.Genre] = make(map[int]float64)
		}
		series[g.Genre][g.Year] = g.AvgPopularity
		years = append(years, g.Year)
	}
	years = lo.Uniq(years)
	sort.Ints(years)

	trend := Trend{Years: years, Series: []TrendSeries{}}
	if trend.Years == nil {
		trend.Years = []int{}
	}
	for _, genre := range lo.Uniq(genreSet) {
		values, ok := series[genre]
		if !ok {
			continue
		}
		trend.Series = append(trend.Series, TrendSeries{Genre: genre, Values: values})
	}
	return trend
}
