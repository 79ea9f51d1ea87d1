package export

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"github.com/ademuri/catalog-stats/internal/analysis"
)

const (
	SheetTopGenres  = "Top Genres"
	SheetPeakYears  = "Peak Years"
	SheetTrend      = "Trend"
	SheetYearlyTopK = "Yearly Top K"
	SheetExplicit   = "Explicit"
)

// WriteWorkbook saves the report as an XLSX file with one sheet per analysis.
// Sheets with data get a chart next to the table.
func WriteWorkbook(path string, report *analysis.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	topRows := lo.Map(report.TopGenres, func(g analysis.GenreStat, _ int) []interface{} {
		return []interface{}{g.Genre, g.AvgPopularity, g.TrackCount}
	})
	if err := writeSheet(f, SheetTopGenres, []interface{}{"Genre", "Avg Popularity", "Tracks"}, topRows); err != nil {
		return err
	}
	if err := addChart(f, SheetTopGenres, excelize.Col, "Average popularity of top genres", len(topRows), []int{2}); err != nil {
		return err
	}

	peakRows := lo.Map(report.PeakYears, func(p analysis.PeakRecord, _ int) []interface{} {
		return []interface{}{fmt.Sprintf("%s (%d)", p.Genre, p.PeakYear), p.PeakPopularity, p.Genre, p.PeakYear}
	})
	if err := writeSheet(f, SheetPeakYears, []interface{}{"Label", "Peak Popularity", "Genre", "Peak Year"}, peakRows); err != nil {
		return err
	}
	if err := addChart(f, SheetPeakYears, excelize.Col, "Peak year per genre", len(peakRows), []int{2}); err != nil {
		return err
	}

	trendHeader := []interface{}{"Year"}
	for _, s := range report.Trend.Series {
		trendHeader = append(trendHeader, s.Genre)
	}
	trendRows := lo.Map(report.Trend.Years, func(year int, _ int) []interface{} {
		row := []interface{}{strconv.Itoa(year)}
		for _, s := range report.Trend.Series {
			if v, ok := s.Values[year]; ok {
				row = append(row, v)
			} else {
				row = append(row, nil)
			}
		}
		return row
	})
	if err := writeSheet(f, SheetTrend, trendHeader, trendRows); err != nil {
		return err
	}
	trendCols := make([]int, len(report.Trend.Series))
	for i := range trendCols {
		trendCols[i] = i + 2
	}
	if err := addChart(f, SheetTrend, excelize.Line, "Popularity trend of top genres", len(trendRows), trendCols); err != nil {
		return err
	}

	topKRows := lo.Map(report.YearlyTopK, func(r analysis.RankedGroup, _ int) []interface{} {
		return []interface{}{r.Year, r.Rank, r.Genre, r.AvgPopularity, r.TrackCount}
	})
	if err := writeSheet(f, SheetYearlyTopK, []interface{}{"Year", "Rank", "Genre", "Avg Popularity", "Tracks"}, topKRows); err != nil {
		return err
	}

	explicitRows := lo.Map(report.Explicit, func(e analysis.ExplicitStat, _ int) []interface{} {
		return []interface{}{strconv.FormatBool(e.Explicit), e.AvgPopularity, e.TrackCount}
	})
	if err := writeSheet(f, SheetExplicit, []interface{}{"Explicit", "Avg Popularity", "Tracks"}, explicitRows); err != nil {
		return err
	}
	if err := addChart(f, SheetExplicit, excelize.Col, "Explicit vs non-explicit popularity", len(explicitRows), []int{2}); err != nil {
		return err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}
	if idx, err := f.GetSheetIndex(SheetTopGenres); err == nil {
		f.SetActiveSheet(idx)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	log.Debug().Str("path", path).Msg("Wrote workbook")
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet %q: %w", sheet, err)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing %q header: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %q row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// addChart plots the given value columns against the categories in column A.
func addChart(f *excelize.File, sheet string, chartType excelize.ChartType, title string, nrows int, valueCols []int) error {
	if nrows == 0 || len(valueCols) == 0 {
		log.Debug().Str("sheet", sheet).Msg("No data, skipping chart")
		return nil
	}

	last := nrows + 1
	var series []excelize.ChartSeries
	for _, col := range valueCols {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		series = append(series, excelize.ChartSeries{
			Name:       fmt.Sprintf("'%s'!$%s$1", sheet, name),
			Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", sheet, last),
			Values:     fmt.Sprintf("'%s'!$%s$2:$%s$%d", sheet, name, name, last),
		})
	}

	anchorCol, err := excelize.ColumnNumberToName(len(valueCols) + 4)
	if err != nil {
		return err
	}
	chart := &excelize.Chart{
		Type:   chartType,
		Series: series,
		Title:  []excelize.RichTextRun{{Text: title}},
		Legend: excelize.ChartLegend{Position: "bottom"},
	}
	if err := f.AddChart(sheet, anchorCol+"1", chart); err != nil {
		return fmt.Errorf("adding chart to %q: %w", sheet, err)
	}
	return nil
}
