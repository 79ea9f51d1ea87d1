package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ademuri/catalog-stats/internal/catalog"
)

func explicitCatalog() []catalog.Track {
	return []catalog.Track{
		explicitTrack(2000, "rap", 60, true),
		explicitTrack(2000, "rap", 70, true),
		explicitTrack(2000, "rap", 41, false),
		explicitTrack(2001, "pop", 50, false),
		explicitTrack(0, "pop", 10, true),
		track(2001, "pop", 99),
	}
}

func TestExplicitPopularity(t *testing.T) {
	stats := ExplicitPopularity(explicitCatalog())

	if assert.Len(t, stats, 2) {
		assert.False(t, stats[0].Explicit)
		assert.InDelta(t, 45.5, stats[0].AvgPopularity, 1e-9)
		assert.Equal(t, 2, stats[0].TrackCount)
		assert.True(t, stats[1].Explicit)
		assert.InDelta(t, 140.0/3, stats[1].AvgPopularity, 1e-9)
		assert.Equal(t, 3, stats[1].TrackCount)
	}
}

func TestExplicitPopularityOnlyKnown(t *testing.T) {
	assert.Empty(t, ExplicitPopularity([]catalog.Track{track(2000, "pop", 1)}))
}

func TestGenreExplicitPopularity(t *testing.T) {
	stats := GenreExplicitPopularity(append(explicitCatalog(), explicitTrack(2002, "jazz", 10, false)))

	assert.Equal(t, []GenreExplicitStat{
		{Genre: "pop", Explicit: false, AvgPopularity: 50},
		{Genre: "pop", Explicit: true, AvgPopularity: 10},
		{Genre: "rap", Explicit: false, AvgPopularity: 41},
		{Genre: "rap", Explicit: true, AvgPopularity: 65},
	}, stats)
}

func TestYearlyExplicitCounts(t *testing.T) {
	counts := YearlyExplicitCounts(explicitCatalog())

	assert.Equal(t, []YearExplicitCount{
		{Year: 2000, Explicit: false, SongCount: 1},
		{Year: 2000, Explicit: true, SongCount: 2},
		{Year: 2001, Explicit: false, SongCount: 1},
	}, counts)
}
