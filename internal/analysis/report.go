package analysis

import (
	"time"

	"github.com/aclements/go-moremath/stats"
	"github.com/creasty/defaults"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/ademuri/catalog-stats/internal/catalog"
)

// Config holds the thresholds used by the report.
type Config struct {
	MinSupportCount int `default:"5" validate:"gte=1"`
	TopKPerYear     int `default:"5" validate:"gte=1"`
	OverallTopN     int `default:"10" validate:"gte=1"`
}

func DefaultConfig() Config {
	var c Config
	if err := defaults.Set(&c); err != nil {
		panic(err)
	}
	return c
}

// Pipeline holds the intermediate results shared by most analyses.
type Pipeline struct {
	Groups    []GenreYearGroup
	Supported []GenreYearGroup
	Ranked    []RankedGroup
	TopGenres []GenreStat
}

// RunPipeline normalizes and aggregates the tracks, applies the support
// threshold and ranks the remaining groups within each year.
func RunPipeline(tracks []catalog.Track, cfg Config) Pipeline {
	var p Pipeline
	timed("aggregate", func() {
		p.Groups = Aggregate(Normalize(tracks))
	})
	timed("filter", func() {
		p.Supported = FilterSupport(p.Groups, cfg.MinSupportCount)
	})
	timed("rank", func() {
		p.Ranked = RankWithinYear(p.Supported)
	})
	timed("top genres", func() {
		p.TopGenres = TopGenres(GenreStats(tracks), cfg.MinSupportCount, cfg.OverallTopN)
	})
	if len(p.Supported) == 0 {
		log.Warn().Int("min_support", cfg.MinSupportCount).Msg("No (year, genre) group meets the support threshold")
	}
	return p
}

// GenerateReport runs every analysis over the tracks. No tracks give a report
// with empty sections.
func GenerateReport(tracks []catalog.Track, cfg Config) (*Report, error) {
	if len(tracks) == 0 {
		log.Warn().Msg("No tracks to report on")
	}

	p := RunPipeline(tracks, cfg)
	topNames := GenreNames(p.TopGenres)

	report := &Report{
		Metadata: ReportMetadata{
			GeneratedDate:   time.Now().Format("2006-01-02"),
			TotalTracks:     len(tracks),
			DistinctGenres:  len(DistinctGenres(tracks)),
			MinSupportCount: cfg.MinSupportCount,
			TopKPerYear:     cfg.TopKPerYear,
			OverallTopN:     cfg.OverallTopN,
			Popularity:      SummarizePopularity(tracks),
		},
		TopGenres:      p.TopGenres,
		YearlyTopK:     TopK(p.Ranked, cfg.TopKPerYear),
		PeakYears:      PeakPerGenre(p.Supported, topNames),
		YearlyLeaders:  YearlyLeaders(p.Supported, topNames),
		Trend:          BuildTrend(p.Supported, topNames),
		Explicit:       ExplicitPopularity(tracks),
		GenreExplicit:  GenreExplicitPopularity(tracks),
		YearlyExplicit: YearlyExplicitCounts(tracks),
	}

	years := lo.FilterMap(tracks, func(t catalog.Track, _ int) (int, bool) { return t.Year() })
	if len(years) > 0 {
		report.Metadata.FirstYear = lo.Min(years)
		report.Metadata.LastYear = lo.Max(years)
	}
	return report, nil
}

// SummarizePopularity describes the distribution of track popularity.
func SummarizePopularity(tracks []catalog.Track) PopularitySummary {
	if len(tracks) == 0 {
		return PopularitySummary{}
	}
	s := stats.Sample{Xs: lo.Map(tracks, func(t catalog.Track, _ int) float64 { return t.Popularity })}
	s.Sort()
	lowest, highest := s.Bounds()
	return PopularitySummary{
		Count:  len(s.Xs),
		Mean:   round(s.Mean(), 2),
		StdDev: round(s.StdDev(), 2),
		Min:    lowest,
		Median: round(s.Quantile(0.5), 2),
		P90:    round(s.Quantile(0.9), 2),
		Max:    highest,
	}
}

func timed(step string, f func()) {
	start := time.Now()
	f()
	log.Debug().Str("step", step).Dur("took", time.Since(start)).Msg("Analysis step finished")
}
