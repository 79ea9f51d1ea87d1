package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ademuri/catalog-stats/internal/catalog"
)

func TestGenreStatsIncludesUndated(t *testing.T) {
	stats := GenreStats([]catalog.Track{
		track(2000, "pop", 10),
		track(0, "pop", 20),
		track(0, "rock", 5),
	})

	assert.Equal(t, []GenreStat{
		{Genre: "pop", AvgPopularity: 15, TrackCount: 2},
		{Genre: "rock", AvgPopularity: 5, TrackCount: 1},
	}, stats)
}

func TestTopGenres(t *testing.T) {
	stats := []GenreStat{
		{Genre: "a", AvgPopularity: 10, TrackCount: 5},
		{Genre: "b", AvgPopularity: 90, TrackCount: 1},
		{Genre: "c", AvgPopularity: 50, TrackCount: 7},
		{Genre: "d", AvgPopularity: 50, TrackCount: 5},
	}

	top := TopGenres(stats, 5, 2)
	assert.Equal(t, []string{"c", "d"}, GenreNames(top))
	assert.Equal(t, "a", stats[0].Genre, "input must not be reordered")

	assert.Len(t, TopGenres(stats, 1, 10), 4)
	assert.Empty(t, TopGenres(stats, 100, 10))
}

func TestDistinctGenres(t *testing.T) {
	counts := DistinctGenres([]catalog.Track{
		track(2000, "rock, pop", 1),
		track(0, "pop", 1),
		track(2001, "", 1),
		track(2002, "pop, pop", 1),
	})

	assert.Equal(t, []GenreCount{
		{Genre: "", TrackCount: 1},
		{Genre: "pop", TrackCount: 3},
		{Genre: "rock", TrackCount: 1},
	}, counts)
}

func TestYearlyLeaders(t *testing.T) {
	groups := []GenreYearGroup{
		{Year: 2000, Genre: "pop", AvgPopularity: 40},
		{Year: 2000, Genre: "rock", AvgPopularity: 60},
		{Year: 2000, Genre: "metal", AvgPopularity: 99},
		{Year: 2001, Genre: "pop", AvgPopularity: 80},
		{Year: 2001, Genre: "rock", AvgPopularity: 20},
	}

	leaders := YearlyLeaders(groups, []string{"pop", "rock"})
	require.Len(t, leaders, 2)
	assert.Equal(t, GenreYearGroup{Year: 2001, Genre: "pop", AvgPopularity: 80}, leaders[0])
	assert.Equal(t, GenreYearGroup{Year: 2000, Genre: "rock", AvgPopularity: 60}, leaders[1])
}

func TestBuildTrend(t *testing.T) {
	groups := []GenreYearGroup{
		{Year: 2001, Genre: "pop", AvgPopularity: 80},
		{Year: 2000, Genre: "pop", AvgPopularity: 40},
		{Year: 2000, Genre: "rock", AvgPopularity: 60},
		{Year: 2003, Genre: "metal", AvgPopularity: 99},
	}

	trend := BuildTrend(groups, []string{"rock", "pop"})
	assert.Equal(t, []int{2000, 2001}, trend.Years)
	require.Len(t, trend.Series, 2)
	assert.Equal(t, "rock", trend.Series[0].Genre)
	assert.Equal(t, map[int]float64{2000: 60}, trend.Series[0].Values)
	assert.Equal(t, map[int]float64{2000: 40, 2001: 80}, trend.Series[1].Values)

	table := TrendTable(trend)
	assert.Equal(t, [][]string{
		{"Year", "rock", "pop"},
		{"2000", "60", "40"},
		{"2001", "", "80"},
	}, table)
}

func TestBuildTrendEmpty(t *testing.T) {
	trend := BuildTrend(nil, []string{"pop"})
	assert.NotNil(t, trend.Years)
	assert.NotNil(t, trend.Series)
	assert.Empty(t, trend.Series)
}
