package catalog

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var (
	fetchAttempts uint = 3
	fetchDelay         = 500 * time.Millisecond
)

type statusError struct {
	url  string
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("fetching %s: HTTP %d", e.url, e.code)
}

// Load reads a single source, which is a local path or an http(s) URL.
func Load(ctx context.Context, source string, schema Schema) (*Catalog, error) {
	r, err := open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return Read(source, r, schema)
}

// LoadAll reads every source concurrently and concatenates the tracks in
// argument order.
func LoadAll(ctx context.Context, sources []string, schema Schema) (*Catalog, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("no input sources given")
	}

	parts := make([]*Catalog, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, source := range sources {
		g.Go(func() error {
			c, err := Load(gctx, source, schema)
			if err != nil {
				return err
			}
			parts[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &Catalog{}
	var skipped *multierror.Error
	for _, p := range parts {
		merged.Tracks = append(merged.Tracks, p.Tracks...)
		if p.Skipped != nil {
			skipped = multierror.Append(skipped, p.Skipped)
		}
	}
	merged.Skipped = skipped.ErrorOrNil()
	return merged, nil
}

// Read parses a delimited catalog with a header row. A file with only a
// header is an empty catalog.
func Read(source string, r io.Reader, schema Schema) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}

	hr := csv.NewReader(bytes.NewReader(data))
	hr.Comma = schema.Delimiter
	hr.LazyQuotes = true
	header, err := hr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("reading %s: no header row", source)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s header: %w", source, err)
	}
	cols, err := schema.resolve(source, header)
	if err != nil {
		return nil, err
	}
	if _, err := hr.Read(); err == io.EOF {
		log.Warn().Str("source", source).Msg("Catalog has no rows")
		return &Catalog{Tracks: []Track{}}, nil
	}

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithDelimiter(schema.Delimiter),
		dataframe.WithLazyQuotes(true),
		dataframe.NaNValues(nil),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, df.Err)
	}
	names := df.Names()

	genres := df.Col(names[cols.genre]).Records()
	popularity := df.Col(names[cols.popularity]).Records()
	dates := df.Col(names[cols.releaseDate]).Records()
	var explicit []string
	if cols.explicit >= 0 {
		explicit = df.Col(names[cols.explicit]).Records()
	} else {
		log.Warn().Str("source", source).Str("column", schema.ExplicitColumn).Msg("Explicit column not found, explicit analyses will be empty")
	}

	var skipped *multierror.Error
	tracks := make([]Track, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		row := i + 1

		pop, err := strconv.ParseFloat(strings.TrimSpace(popularity[i]), 64)
		if err == nil && math.IsNaN(pop) {
			err = fmt.Errorf("NaN popularity")
		}
		if err != nil {
			skipped = multierror.Append(skipped, &RowError{Source: source, Row: row, Column: schema.PopularityColumn, Err: err})
			continue
		}

		track := Track{
			Genres:     SplitGenres(genres[i]),
			Popularity: pop,
		}

		if value := strings.TrimSpace(dates[i]); value != "" {
			if date, err := ParseReleaseDate(value); err == nil {
				track.ReleaseDate = date
			} else {
				skipped = multierror.Append(skipped, &DateParseError{Source: source, Row: row, Value: value})
			}
		}

		if explicit != nil {
			if b, err := strconv.ParseBool(strings.TrimSpace(explicit[i])); err == nil {
				track.Explicit.Bool = b
				track.Explicit.Valid = true
			}
		}

		tracks = append(tracks, track)
	}

	c := &Catalog{Tracks: tracks, Skipped: skipped.ErrorOrNil()}
	if skipped != nil {
		log.Warn().Str("source", source).Int("problems", len(skipped.Errors)).Int("tracks", len(tracks)).Msg("Some rows could not be fully parsed")
		for _, e := range skipped.Errors {
			log.Debug().Err(e).Msg("Row problem")
		}
	}
	log.Debug().Str("source", source).Int("tracks", len(tracks)).Msg("Loaded catalog")
	return c, nil
}

func open(ctx context.Context, source string) (io.ReadCloser, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return fetch(ctx, source)
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", source, err)
	}
	return f, nil
}

func fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	var body io.ReadCloser
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return err
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return err
			}
			if resp.StatusCode != http.StatusOK {
				resp.Body.Close()
				return &statusError{url: url, code: resp.StatusCode}
			}
			body = resp.Body
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(fetchAttempts),
		retry.Delay(fetchDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			var se *statusError
			if errors.As(err, &se) {
				return se.code/100 == 5
			}
			return ctx.Err() == nil
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().Err(err).Uint("attempt", n+1).Str("url", url).Msg("Fetching catalog failed, retrying")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	return body, nil
}
