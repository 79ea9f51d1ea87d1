package catalog

import "fmt"

// InputFormatError means a required column is missing. It aborts the load.
type InputFormatError struct {
	Source string
	Column string
}

func (e *InputFormatError) Error() string {
	return fmt.Sprintf("%s: missing required column %q", e.Source, e.Column)
}

// DateParseError is reported for a row whose release date could not be
// parsed. The row is kept without a year.
type DateParseError struct {
	Source string
	Row    int
	Value  string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("%s row %d: unparseable release date %q", e.Source, e.Row, e.Value)
}

// RowError is reported for a row that had to be dropped.
type RowError struct {
	Source string
	Row    int
	Column string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s row %d: column %q: %v", e.Source, e.Row, e.Column, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
