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
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ademuri/catalog-stats/internal/catalog"
	"github.com/ademuri/catalog-stats/internal/store"
)

type ImportConfig struct {
	DbPath  string
	Sources []string
	Schema  catalog.Schema
	Replace bool
}

var importReplace bool
var importCmd = &cobra.Command{
	Use:   "import <source...>",
	Short: "Imports catalog files into the database",
	Long: `Reads each source (a CSV file or an http(s) URL) and stores its tracks in a
local SQLite database, so later commands can run without --input.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config, err := loadConfig()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		err = importCatalog(os.Stdout, ImportConfig{
			DbPath:  config.Database,
			Sources: args,
			Schema:  config.Schema,
			Replace: importReplace,
		})
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().BoolVar(&importReplace, "replace", false, "Delete previously imported tracks first")
}

func importCatalog(out io.Writer, config ImportConfig) error {
	db, err := store.New(config.DbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if config.Replace {
		fmt.Fprintln(out, "Removing previously imported tracks")
		if err := db.ClearTracks(); err != nil {
			return err
		}
	}

	last, err := db.GetLastImport()
	if err != nil {
		return err
	}
	if last != nil {
		fmt.Fprintf(out, "Last import: %s at %s (%d tracks)\n",
			last.Source, last.Imported.Local().Format(time.DateTime), last.Rows)
	}

	ctx := context.Background()
	var problems *multierror.Error
	for _, source := range config.Sources {
		c, err := catalog.Load(ctx, source, config.Schema)
		if err != nil {
			return fmt.Errorf("loading %s: %w", source, err)
		}
		if c.Skipped != nil {
			problems = multierror.Append(problems, c.Skipped)
		}

		id, err := db.AddTracks(source, c.Tracks)
		if err != nil {
			return fmt.Errorf("importing %s: %w", source, err)
		}
		log.Debug().Int64("import", id).Str("source", source).Msg("Recorded import")
		fmt.Fprintf(out, "Imported %d tracks from %s\n", len(c.Tracks), source)
	}

	if problems != nil {
		fmt.Fprintf(out, "%d rows had problems, run with --log-level debug for details\n", len(problems.Errors))
	}

	total, err := db.CountTracks()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Database now holds %d tracks\n", total)
	return nil
}
