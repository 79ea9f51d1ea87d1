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

	"github.com/rs/zerolog/log"

	"github.com/ademuri/catalog-stats/internal/catalog"
	"github.com/ademuri/catalog-stats/internal/config"
	"github.com/ademuri/catalog-stats/internal/store"
)

// loadTracks reads the catalog from the --input sources if any were given,
// and from the database otherwise.
func loadTracks(config *config.Config) ([]catalog.Track, error) {
	if len(config.Inputs) > 0 {
		c, err := catalog.LoadAll(context.Background(), config.Inputs, config.Schema)
		if err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}
		return c.Tracks, nil
	}

	db, err := store.New(config.Database)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	exists, err := db.Populated()
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("Database doesn't exist - run import first.")
	}

	tracks, err := db.GetTracks()
	if err != nil {
		return nil, err
	}
	log.Debug().Str("database", config.Database).Int("tracks", len(tracks)).Msg("Loaded tracks from database")
	return tracks, nil
}
