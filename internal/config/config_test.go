package config

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "./catalog.db", c.Database)
	assert.Equal(t, "table", c.Format)
	assert.Equal(t, 5, c.Analysis.MinSupportCount)
	assert.Equal(t, 5, c.Analysis.TopKPerYear)
	assert.Equal(t, 10, c.Analysis.OverallTopN)
	assert.Equal(t, "Genre", c.Schema.GenreColumn)
	assert.Equal(t, "Release Date", c.Schema.ReleaseDateColumn)
	assert.Equal(t, ',', c.Schema.Delimiter)
	assert.Empty(t, c.Inputs)
}

func TestLoadOverrides(t *testing.T) {
	v := viper.New()
	v.Set(KeyMinSupport, 3)
	v.Set(KeyDelimiter, ";")
	v.Set(KeyGenreColumn, "genres")
	v.Set(KeyFormat, "yaml")
	v.Set(KeyInput, []string{"a.csv", "b.csv"})

	c, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 3, c.Analysis.MinSupportCount)
	assert.Equal(t, ';', c.Schema.Delimiter)
	assert.Equal(t, "genres", c.Schema.GenreColumn)
	assert.Equal(t, "yaml", c.Format)
	assert.Equal(t, []string{"a.csv", "b.csv"}, c.Inputs)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value interface{}
	}{
		{"zero support", KeyMinSupport, 0},
		{"negative top k", KeyTopK, -1},
		{"unknown format", KeyFormat, "xml"},
		{"long delimiter", KeyDelimiter, "::"},
		{"empty genre column", KeyGenreColumn, ""},
		{"bad log level", KeyLogLevel, "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.value)

			_, err := Load(v)
			require.Error(t, err)
			var verrs validator.ValidationErrors
			assert.True(t, errors.As(err, &verrs), "expected validation errors, got %v", err)
		})
	}
}
