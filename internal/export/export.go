// Package export writes analysis results as CSV, JSON, YAML or an XLSX
// workbook with charts.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WriteCSV writes a table whose first row is the header.
func WriteCSV(w io.Writer, table [][]string) error {
	if len(table) == 0 {
		return fmt.Errorf("writing csv: table has no header")
	}
	if len(table) == 1 {
		// gota refuses a frame without rows.
		cw := csv.NewWriter(w)
		if err := cw.Write(table[0]); err != nil {
			return fmt.Errorf("writing csv header: %w", err)
		}
		cw.Flush()
		return cw.Error()
	}

	df := dataframe.LoadRecords(table,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nil),
	)
	if df.Err != nil {
		return fmt.Errorf("building csv: %w", df.Err)
	}
	if err := df.WriteCSV(w); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

func WriteJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing json: %w", err)
	}
	return nil
}

func WriteYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}
