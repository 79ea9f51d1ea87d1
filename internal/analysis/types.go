package analysis

// Report is the top-level structure for the catalog popularity report.
type Report struct {
	Metadata       ReportMetadata      `yaml:"metadata" json:"metadata"`
	TopGenres      []GenreStat         `yaml:"top_genres" json:"top_genres"`
	YearlyTopK     []RankedGroup       `yaml:"yearly_top_k" json:"yearly_top_k"`
	PeakYears      []PeakRecord        `yaml:"peak_years" json:"peak_years"`
	YearlyLeaders  []GenreYearGroup    `yaml:"yearly_leaders" json:"yearly_leaders"`
	Trend          Trend               `yaml:"trend" json:"trend"`
	Explicit       []ExplicitStat      `yaml:"explicit" json:"explicit"`
	GenreExplicit  []GenreExplicitStat `yaml:"genre_explicit" json:"genre_explicit"`
	YearlyExplicit []YearExplicitCount `yaml:"yearly_explicit" json:"yearly_explicit"`
}

type ReportMetadata struct {
	GeneratedDate   string            `yaml:"generated_date" json:"generated_date"`
	TotalTracks     int               `yaml:"total_tracks" json:"total_tracks"`
	DistinctGenres  int               `yaml:"distinct_genres" json:"distinct_genres"`
	FirstYear       int               `yaml:"first_year,omitempty" json:"first_year,omitempty"`
	LastYear        int               `yaml:"last_year,omitempty" json:"last_year,omitempty"`
	MinSupportCount int               `yaml:"min_support_count" json:"min_support_count"`
	TopKPerYear     int               `yaml:"top_k_per_year" json:"top_k_per_year"`
	OverallTopN     int               `yaml:"overall_top_n" json:"overall_top_n"`
	Popularity      PopularitySummary `yaml:"popularity" json:"popularity"`
}

// GenreRow is one (track, genre token) pair produced by Normalize.
type GenreRow struct {
	Year       int
	HasYear    bool
	Genre      string
	Popularity float64
}

type GenreYearGroup struct {
	Year          int     `yaml:"year" json:"year"`
	Genre         string  `yaml:"genre" json:"genre"`
	AvgPopularity float64 `yaml:"avg_popularity" json:"avg_popularity"`
	TrackCount    int     `yaml:"track_count" json:"track_count"`
}

type RankedGroup struct {
	GenreYearGroup `yaml:",inline" json:",inline"`
	Rank           int `yaml:"rank" json:"rank"`
}

type PeakRecord struct {
	Genre          string  `yaml:"genre" json:"genre"`
	PeakYear       int     `yaml:"peak_year" json:"peak_year"`
	PeakPopularity float64 `yaml:"peak_popularity" json:"peak_popularity"`
}

type GenreStat struct {
	Genre         string  `yaml:"genre" json:"genre"`
	AvgPopularity float64 `yaml:"avg_popularity" json:"avg_popularity"`
	TrackCount    int     `yaml:"track_count" json:"track_count"`
}

type GenreCount struct {
	Genre      string `yaml:"genre" json:"genre"`
	TrackCount int    `yaml:"track_count" json:"track_count"`
}

// Trend is average popularity per year for a set of genres. A genre has no
// entry for years where it did not meet the support threshold.
type Trend struct {
	Years  []int         `yaml:"years" json:"years"`
	Series []TrendSeries `yaml:"series" json:"series"`
}

type TrendSeries struct {
	Genre  string          `yaml:"genre" json:"genre"`
	Values map[int]float64 `yaml:"values" json:"values"`
}

type ExplicitStat struct {
	Explicit      bool    `yaml:"explicit" json:"explicit"`
	AvgPopularity float64 `yaml:"avg_popularity" json:"avg_popularity"`
	TrackCount    int     `yaml:"track_count" json:"track_count"`
}

type GenreExplicitStat struct {
	Genre         string  `yaml:"genre" json:"genre"`
	Explicit      bool    `yaml:"explicit" json:"explicit"`
	AvgPopularity float64 `yaml:"avg_popularity" json:"avg_popularity"`
}

type YearExplicitCount struct {
	Year      int  `yaml:"year" json:"year"`
	Explicit  bool `yaml:"explicit" json:"explicit"`
	SongCount int  `yaml:"song_count" json:"song_count"`
}

type PopularitySummary struct {
	Count  int     `yaml:"count" json:"count"`
	Mean   float64 `yaml:"mean" json:"mean"`
	StdDev float64 `yaml:"std_dev" json:"std_dev"`
	Min    float64 `yaml:"min" json:"min"`
	Median float64 `yaml:"median" json:"median"`
	P90    float64 `yaml:"p90" json:"p90"`
	Max    float64 `yaml:"max" json:"max"`
}
