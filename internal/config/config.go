// Package config builds the run configuration from defaults, the config file
// and command-line flags.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/ademuri/catalog-stats/internal/analysis"
	"github.com/ademuri/catalog-stats/internal/catalog"
)

// Keys used in viper and on the command line.
const (
	KeyDatabase         = "database"
	KeyInput            = "input"
	KeyGenreColumn      = "genre-column"
	KeyPopularityColumn = "popularity-column"
	KeyDateColumn       = "date-column"
	KeyExplicitColumn   = "explicit-column"
	KeyDelimiter        = "delimiter"
	KeyMinSupport       = "min-support"
	KeyTopK             = "top-k"
	KeyTopN             = "top-n"
	KeyFormat           = "format"
	KeyLogLevel         = "log-level"
	KeyFrom             = "from"
	KeySendgridKey      = "sendgrid_api_key"
)

var validate = validator.New()

type Config struct {
	Database  string   `default:"./catalog.db" validate:"required"`
	Inputs    []string `validate:"dive,required"`
	Format    string   `default:"table" validate:"oneof=table csv json yaml"`
	LogLevel  string   `default:"info" validate:"oneof=trace debug info warn error disabled"`
	Delimiter string   `default:"," validate:"len=1"`

	Schema   catalog.Schema
	Analysis analysis.Config
}

func Default() *Config {
	c := &Config{}
	if err := defaults.Set(c); err != nil {
		panic(err)
	}
	return c
}

// Load applies every key set in v on top of the defaults and validates the
// result. Flags only count when they were given explicitly.
func Load(v *viper.Viper) (*Config, error) {
	c := Default()

	setString := func(key string, dst *string) {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}
	setInt := func(key string, dst *int) {
		if v.IsSet(key) {
			*dst = v.GetInt(key)
		}
	}

	setString(KeyDatabase, &c.Database)
	setString(KeyFormat, &c.Format)
	setString(KeyLogLevel, &c.LogLevel)
	setString(KeyDelimiter, &c.Delimiter)
	setString(KeyGenreColumn, &c.Schema.GenreColumn)
	setString(KeyPopularityColumn, &c.Schema.PopularityColumn)
	setString(KeyDateColumn, &c.Schema.ReleaseDateColumn)
	setString(KeyExplicitColumn, &c.Schema.ExplicitColumn)
	setInt(KeyMinSupport, &c.Analysis.MinSupportCount)
	setInt(KeyTopK, &c.Analysis.TopKPerYear)
	setInt(KeyTopN, &c.Analysis.OverallTopN)
	if v.IsSet(KeyInput) {
		c.Inputs = v.GetStringSlice(KeyInput)
	}

	if err := validate.Struct(c); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	c.Schema.Delimiter, _ = utf8.DecodeRuneInString(c.Delimiter)
	return c, nil
}
