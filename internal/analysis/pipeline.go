// Package analysis computes genre popularity statistics over a track catalog.
//
// The functions here are pure: they never modify their inputs and always
// produce the same output for the same input, including tie-breaks.
package analysis

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"github.com/samber/lo"

	"github.com/ademuri/catalog-stats/internal/catalog"
)

// Normalize emits one row per (track, genre token).
func Normalize(tracks []catalog.Track) []GenreRow {
	rows := make([]GenreRow, 0, len(tracks))
	for _, t := range tracks {
		year, hasYear := t.Year()
		for _, genre := range t.Genres {
			rows = append(rows, GenreRow{
				Year:       year,
				HasYear:    hasYear,
				Genre:      genre,
				Popularity: t.Popularity,
			})
		}
	}
	return rows
}

type yearGenre struct {
	year  int
	genre string
}

// Aggregate groups rows by (year, genre). Rows without a year are skipped.
// Groups come out in the order their key was first seen.
func Aggregate(rows []GenreRow) []GenreYearGroup {
	var order []yearGenre
	values := make(map[yearGenre][]float64)
	for _, r := range rows {
		if !r.HasYear {
			continue
		}
		key := yearGenre{r.Year, r.Genre}
		if _, ok := values[key]; !ok {
			order = append(order, key)
		}
		values[key] = append(values[key], r.Popularity)
	}

	groups := make([]GenreYearGroup, 0, len(order))
	for _, key := range order {
		xs := values[key]
		groups = append(groups, GenreYearGroup{
			Year:          key.year,
			Genre:         key.genre,
			AvgPopularity: round(stats.Mean(xs), 2),
			TrackCount:    len(xs),
		})
	}
	return groups
}

// FilterSupport keeps groups with at least minCount tracks.
func FilterSupport(groups []GenreYearGroup, minCount int) []GenreYearGroup {
	return lo.Filter(groups, func(g GenreYearGroup, _ int) bool {
		return g.TrackCount >= minCount
	})
}

// RankWithinYear ranks genres inside each year by descending average
// popularity. Ranks are 1..N without gaps; on a tie the group seen first keeps
// the better rank. The result is ordered by year, then rank.
func RankWithinYear(groups []GenreYearGroup) []RankedGroup {
	byYear := lo.GroupBy(groups, func(g GenreYearGroup) int { return g.Year })
	years := lo.Keys(byYear)
	sort.Ints(years)

	ranked := make([]RankedGroup, 0, len(groups))
	for _, year := range years {
		partition := append([]GenreYearGroup(nil), byYear[year]...)
		sort.SliceStable(partition, func(i, j int) bool {
			return partition[i].AvgPopularity > partition[j].AvgPopularity
		})
		for i, g := range partition {
			ranked = append(ranked, RankedGroup{GenreYearGroup: g, Rank: i + 1})
		}
	}
	return ranked
}

func TopK(ranked []RankedGroup, k int) []RankedGroup {
	return lo.Filter(ranked, func(r RankedGroup, _ int) bool {
		return r.Rank <= k
	})
}

// PeakPerGenre finds, for every genre in genreSet, the year with the highest
// average popularity. When two years tie, the later one wins. Records come out
// in genreSet order; genres with no groups are left out.
func PeakPerGenre(groups []GenreYearGroup, genreSet []string) []PeakRecord {
	best := make(map[string]GenreYearGroup)
	for _, g := range groups {
		if !lo.Contains(genreSet, g.Genre) {
			continue
		}
		cur, ok := best[g.Genre]
		if !ok || g.AvgPopularity > cur.AvgPopularity ||
			(g.AvgPopularity == cur.AvgPopularity && g.Year > cur.Year) {
			best[g.Genre] = g
		}
	}

	peaks := make([]PeakRecord, 0, len(best))
	for _, genre := range lo.Uniq(genreSet) {
		g, ok := best[genre]
		if !ok {
			continue
		}
		peaks = append(peaks, PeakRecord{
			Genre:          genre,
			PeakYear:       g.Year,
			PeakPopularity: g.AvgPopularity,
		})
	}
	return peaks
}

func round(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}
