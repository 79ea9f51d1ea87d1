/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/ademuri/catalog-stats/internal/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "catalog-stats",
	Short: "Performs popularity analysis on a music catalog",
	Long: `Reads a music catalog export (CSV with genre, popularity, release date and
explicit columns) and ranks genres by popularity per release year.

Catalogs are read from --input, or from a database filled by 'import'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(viper.GetString(config.KeyLogLevel))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := config.Default()
	flags := rootCmd.PersistentFlags()

	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.catalog-stats.yaml)")

	flags.StringP(config.KeyDatabase, "d", defaults.Database, "Path to the SQLite database")
	flags.StringSliceP(config.KeyInput, "i", nil, "Catalog CSV file or http(s) URL to read instead of the database (repeatable)")

	flags.String(config.KeyGenreColumn, defaults.Schema.GenreColumn, "Name of the genre column")
	flags.String(config.KeyPopularityColumn, defaults.Schema.PopularityColumn, "Name of the popularity column")
	flags.String(config.KeyDateColumn, defaults.Schema.ReleaseDateColumn, "Name of the release date column")
	flags.String(config.KeyExplicitColumn, defaults.Schema.ExplicitColumn, "Name of the explicit column (optional in the input)")
	flags.String(config.KeyDelimiter, defaults.Delimiter, "Field delimiter of the input")

	flags.Int(config.KeyMinSupport, defaults.Analysis.MinSupportCount, "Minimum number of tracks for a (year, genre) group or a genre to count")
	flags.Int(config.KeyTopK, defaults.Analysis.TopKPerYear, "Number of genres to keep per year")
	flags.Int(config.KeyTopN, defaults.Analysis.OverallTopN, "Number of top genres overall")

	flags.String(config.KeyFormat, defaults.Format, "Output format: table, csv, json or yaml")
	flags.String(config.KeyLogLevel, defaults.LogLevel, "Log level: trace, debug, info, warn, error or disabled")

	for _, key := range []string{
		config.KeyDatabase, config.KeyInput,
		config.KeyGenreColumn, config.KeyPopularityColumn, config.KeyDateColumn, config.KeyExplicitColumn, config.KeyDelimiter,
		config.KeyMinSupport, config.KeyTopK, config.KeyTopN,
		config.KeyFormat, config.KeyLogLevel,
	} {
		viper.BindPFlag(key, flags.Lookup(key))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".catalog-stats" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".catalog-stats")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// See https://github.com/spf13/viper/pull/852
	flags := rootCmd.PersistentFlags()
	flags.VisitAll(func(f *pflag.Flag) {
		if !f.Changed && viper.IsSet(f.Name) && viper.GetString(f.Name) != "" {
			flags.Set(f.Name, viper.GetString(f.Name))
		}
	})
}

func setupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}

func loadConfig() (*config.Config, error) {
	return config.Load(viper.GetViper())
}
