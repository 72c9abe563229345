// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cybrota/arbor/commands"
	"github.com/cybrota/arbor/store"
)

// app carries what every subcommand needs once flags and config are read.
type app struct {
	config *Config
	log    zerolog.Logger
	out    io.Writer
	plain  bool
}

func (a *app) loadStore(dataFile string) (*store.RecordStore, error) {
	s := store.New(store.Options{
		MatchCacheTTL: a.config.Query.MatchCacheTTL,
		Logger:        a.log,
	})
	_, err := loadDataFile(dataFile, s, ingestOptions{
		ShowProgress: a.config.Ingest.ShowProgress,
		SkipInvalid:  a.config.Ingest.SkipInvalid,
		Logger:       a.log.With().Str("scope", "ingest").Logger(),
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (a *app) dispatcher(s *store.RecordStore) *commands.Dispatcher {
	return commands.NewDispatcher(s, a.out, commands.Options{
		Suggestions: a.config.Query.Suggestions,
		Plain:       a.plain,
		Palette:     reportPalette(detectTerminalMode()),
		Logger:      a.log,
	})
}

// runCommandFile loads the census and executes every command of commandFile.
func (a *app) runCommandFile(dataFile, commandFile string) error {
	s, err := a.loadStore(dataFile)
	if err != nil {
		return err
	}

	file, err := os.Open(commandFile)
	if err != nil {
		return fmt.Errorf("could not open command file %s for reading: %w", commandFile, err)
	}
	defer file.Close()

	summary, err := a.dispatcher(s).RunScript(file)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		a.log.Warn().Int("failed", summary.Failed).Msg("some commands were skipped")
	}
	return nil
}

// listSpecies prints every species, or those matching partial.
func (a *app) listSpecies(dataFile, partial string) error {
	s, err := a.loadStore(dataFile)
	if err != nil {
		return err
	}
	if strings.TrimSpace(partial) == "" {
		return s.WriteSpecies(a.out)
	}
	return a.dispatcher(s).Execute("tree_info " + partial)
}

// listNear prints the species within km of a point.
func (a *app) listNear(dataFile string, lat, lon, km string) error {
	s, err := a.loadStore(dataFile)
	if err != nil {
		return err
	}
	return a.dispatcher(s).Execute(strings.Join([]string{"list_near", lat, lon, km}, " "))
}
