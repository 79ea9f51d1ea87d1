package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/ademuri/catalog-stats/internal/analysis"
)

func testReport() *analysis.Report {
	return &analysis.Report{
		Metadata: analysis.ReportMetadata{TotalTracks: 12, MinSupportCount: 5},
		TopGenres: []analysis.GenreStat{
			{Genre: "pop", AvgPopularity: 80, TrackCount: 6},
			{Genre: "rock", AvgPopularity: 55.25, TrackCount: 5},
		},
		YearlyTopK: []analysis.RankedGroup{
			{GenreYearGroup: analysis.GenreYearGroup{Year: 2020, Genre: "pop", AvgPopularity: 80, TrackCount: 6}, Rank: 1},
		},
		PeakYears: []analysis.PeakRecord{{Genre: "pop", PeakYear: 2020, PeakPopularity: 80}},
		Trend: analysis.Trend{
			Years: []int{2019, 2020},
			Series: []analysis.TrendSeries{
				{Genre: "pop", Values: map[int]float64{2020: 80}},
				{Genre: "rock", Values: map[int]float64{2019: 50, 2020: 60}},
			},
		},
		Explicit: []analysis.ExplicitStat{{Explicit: false, AvgPopularity: 60, TrackCount: 12}},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, [][]string{
		{"Genre", "Avg Popularity"},
		{"pop", "80"},
		{"hip hop, rap", "55.25"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Genre,Avg Popularity\npop,80\n\"hip hop, rap\",55.25\n", buf.String())
}

func TestWriteCSVKeepsNALiterals(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, [][]string{{"Genre", "Tracks"}, {"NA", "3"}, {"N/A", "1"}}))
	assert.Equal(t, "Genre,Tracks\nNA,3\nN/A,1\n", buf.String())
}

func TestWriteCSVHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, [][]string{{"Year", "Genre"}}))
	assert.Equal(t, "Year,Genre\n", buf.String())

	assert.Error(t, WriteCSV(&buf, nil))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, testReport().PeakYears))
	assert.JSONEq(t, `[{"genre":"pop","peak_year":2020,"peak_popularity":80}]`, buf.String())
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	report := testReport()
	require.NoError(t, WriteYAML(&buf, report))

	var decoded analysis.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, report.TopGenres, decoded.TopGenres)
	assert.Equal(t, report.YearlyTopK, decoded.YearlyTopK)
	assert.Contains(t, buf.String(), "top_genres:\n  - genre: pop\n")
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteWorkbook(path, testReport()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetTopGenres, SheetPeakYears, SheetTrend, SheetYearlyTopK, SheetExplicit}, f.GetSheetList())

	rows, err := f.GetRows(SheetTopGenres)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Genre", "Avg Popularity", "Tracks"}, rows[0])
	assert.Equal(t, "pop", rows[1][0])
	assert.Equal(t, "rock", rows[2][0])
	assert.Equal(t, "55.25", rows[2][1])

	peak, err := f.GetCellValue(SheetPeakYears, "A2")
	require.NoError(t, err)
	assert.Equal(t, "pop (2020)", peak)

	trend, err := f.GetRows(SheetTrend)
	require.NoError(t, err)
	assert.Equal(t, []string{"Year", "pop", "rock"}, trend[0])
	assert.Equal(t, []string{"2019", "", "50"}, trend[1])
}

func TestWriteWorkbookEmptyReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, WriteWorkbook(path, &analysis.Report{}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetTopGenres)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
