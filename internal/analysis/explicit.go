package analysis

import (
	"sort"

	"github.com/aclements/go-moremath/stats"

	"github.com/ademuri/catalog-stats/internal/catalog"
)

// ExplicitPopularity is the mean popularity of explicit and non-explicit
// tracks, non-explicit first. Tracks with an unknown explicit value are
// ignored.
func ExplicitPopularity(tracks []catalog.Track) []ExplicitStat {
	var values [2][]float64
	for _, t := range tracks {
		if !t.Explicit.Valid {
			continue
		}
		i := boolIndex(t.Explicit.Bool)
		values[i] = append(values[i], t.Popularity)
	}

	out := []ExplicitStat{}
	for i, xs := range values {
		if len(xs) == 0 {
			continue
		}
		out = append(out, ExplicitStat{
			Explicit:      i == 1,
			AvgPopularity: stats.Mean(xs),
			TrackCount:    len(xs),
		})
	}
	return out
}

type genreExplicit struct {
	genre    string
	explicit bool
}

// GenreExplicitPopularity compares explicit and non-explicit popularity per
// genre. Only genres that have tracks of both kinds are reported.
func GenreExplicitPopularity(tracks []catalog.Track) []GenreExplicitStat {
	values := make(map[genreExplicit][]float64)
	variants := make(map[string][2]bool)
	for _, t := range tracks {
		if !t.Explicit.Valid {
			continue
		}
		for _, genre := range t.Genres {
			key := genreExplicit{genre, t.Explicit.Bool}
			values[key] = append(values[key], t.Popularity)
			v := variants[genre]
			v[boolIndex(t.Explicit.Bool)] = true
			variants[genre] = v
		}
	}

	out := []GenreExplicitStat{}
	for key, xs := range values {
		if v := variants[key.genre]; !v[0] || !v[1] {
			continue
		}
		out = append(out, GenreExplicitStat{
			Genre:         key.genre,
			Explicit:      key.explicit,
			AvgPopularity: round(stats.Mean(xs), 1),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Genre != out[j].Genre {
			return out[i].Genre < out[j].Genre
		}
		return !out[i].Explicit && out[j].Explicit
	})
	return out
}

type yearExplicit struct {
	year     int
	explicit bool
}

// YearlyExplicitCounts counts songs per release year and explicit flag.
func YearlyExplicitCounts(tracks []catalog.Track) []YearExplicitCount {
	counts := make(map[yearExplicit]int)
	for _, t := range tracks {
		year, ok := t.Year()
		if !ok || !t.Explicit.Valid {
			continue
		}
		counts[yearExplicit{year, t.Explicit.Bool}]++
	}

	out := make([]YearExplicitCount, 0, len(counts))
	for key, n := range counts {
		out = append(out, YearExplicitCount{Year: key.year, Explicit: key.explicit, SongCount: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return !out[i].Explicit && out[j].Explicit
	})
	return out
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}
