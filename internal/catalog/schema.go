package catalog

import (
	"fmt"
	"strings"

	"github.com/creasty/defaults"
)

// Schema names the columns of the input file.
type Schema struct {
	GenreColumn       string `default:"Genre" validate:"required"`
	PopularityColumn  string `default:"Popularity" validate:"required"`
	ReleaseDateColumn string `default:"Release Date" validate:"required"`
	// ExplicitColumn is optional in the input.
	ExplicitColumn string `default:"Explicit"`
	Delimiter      rune   `default:"44" validate:"required"`
}

func DefaultSchema() (s Schema) {
	if err := defaults.Set(&s); err != nil {
		panic(err)
	}
	return
}

// columns maps the schema onto header positions. Names match case-insensitively.
type columns struct {
	genre, popularity, releaseDate int
	explicit                       int // -1 when absent
}

func (s Schema) resolve(source string, header []string) (columns, error) {
	find := func(name string) int {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
		return -1
	}

	cols := columns{
		genre:       find(s.GenreColumn),
		popularity:  find(s.PopularityColumn),
		releaseDate: find(s.ReleaseDateColumn),
		explicit:    find(s.ExplicitColumn),
	}
	required := []struct {
		name string
		idx  int
	}{
		{s.GenreColumn, cols.genre},
		{s.PopularityColumn, cols.popularity},
		{s.ReleaseDateColumn, cols.releaseDate},
	}
	for _, r := range required {
		if r.idx < 0 {
			return cols, &InputFormatError{Source: source, Column: r.name}
		}
	}
	return cols, nil
}

func (s Schema) String() string {
	return fmt.Sprintf("genre=%q popularity=%q date=%q explicit=%q", s.GenreColumn, s.PopularityColumn, s.ReleaseDateColumn, s.ExplicitColumn)
}
