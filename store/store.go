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

// Package store keeps the census records in an AVL index ordered by
// species name and answers the queries issued by the command layer.
//
// Borough, zip code and radius queries scan every record: the index is
// ordered by species, which says nothing about where a tree stands.
package store

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/cybrota/arbor/avl"
	"github.com/cybrota/arbor/geo"
	"github.com/cybrota/arbor/species"
)

// Boroughs lists the five boroughs in report order.
var Boroughs = []string{"Bronx", "Manhattan", "Brooklyn", "Queens", "Staten Island"}

type BoroughCount struct {
	Name  string
	Count int
}

type Options struct {
	// MatchCacheTTL bounds how long a resolved partial name is reused.
	MatchCacheTTL time.Duration
	Logger        zerolog.Logger
}

// RecordStore is populated once and then queried by a single caller.
type RecordStore struct {
	trees    *avl.AVLTree[Record]
	registry *species.Registry
	matches  *cache.Cache
	opts     Options
	log      zerolog.Logger
}

func NewRecordStore() *RecordStore {
	return New(Options{Logger: zerolog.Nop()})
}

func New(opts Options) *RecordStore {
	return &RecordStore{
		trees:    avl.NewAVLTree[Record](CompareRecords),
		registry: species.NewRegistry(),
		matches:  newMatchCache(opts.MatchCacheTTL),
		opts:     opts,
		log:      opts.Logger.With().Str("scope", "store").Logger(),
	}
}

// Add inserts r and registers its species the first time it is seen. It
// returns false when a record with the same species and id is present.
func (s *RecordStore) Add(r Record) bool {
	if !s.trees.Insert(r) {
		s.log.Debug().Int("id", r.ID).Str("species", r.Species).Msg("duplicate record ignored")
		return false
	}
	if !s.registry.Contains(r.Species) {
		s.registry.Add(r.Species)
		// earlier results could not have seen the new name
		s.matches.Flush()
		s.log.Debug().Str("species", r.Species).Int("species_count", s.registry.Len()).Msg("new species")
	}
	return true
}

// Remove is not supported. The store is left untouched.
func (s *RecordStore) Remove(r Record) error {
	return s.trees.Remove(r)
}

// Len returns the number of records, the city wide tree count.
func (s *RecordStore) Len() int {
	return s.trees.Len()
}

// SpeciesCount returns the number of distinct species names.
func (s *RecordStore) SpeciesCount() int {
	return s.registry.Len()
}

// SpeciesMatching resolves a partial name to registered species names.
func (s *RecordStore) SpeciesMatching(partial string) []string {
	if m, ok := cachedMatches(s.matches, partial); ok {
		return slices.Clone(m)
	}
	m := s.registry.Match(partial)
	cacheMatches(s.matches, partial, m)
	return slices.Clone(m)
}

// SuggestSpecies returns up to limit names loosely resembling partial.
func (s *RecordStore) SuggestSpecies(partial string, limit int) []string {
	return s.registry.Suggest(partial, limit)
}

// CountInBorough counts trees of species name standing in borough.
func (s *RecordStore) CountInBorough(name, borough string) int {
	n := 0
	for _, r := range s.TreesOfSpecies(name) {
		if r.Borough == borough {
			n++
		}
	}
	return n
}

// CountsByBorough counts trees of species name in every borough and
// returns the counts in Boroughs order along with their sum. Trees
// outside the five boroughs are left out.
func (s *RecordStore) CountsByBorough(name string) ([]BoroughCount, int) {
	counts := make([]BoroughCount, len(Boroughs))
	for i, b := range Boroughs {
		counts[i].Name = b
	}

	total := 0
	for _, r := range s.TreesOfSpecies(name) {
		if i := slices.Index(Boroughs, r.Borough); i >= 0 {
			counts[i].Count++
			total++
		}
	}
	return counts, total
}

// CountInBoro counts every tree standing in borough.
func (s *RecordStore) CountInBoro(borough string) int {
	return s.trees.CountIf(func(r Record) bool {
		return r.Borough == borough
	})
}

// DistinctSpeciesInZipcode lists the species found in zip, each once,
// in index order. Spellings of one species are reported under the first
// one found.
func (s *RecordStore) DistinctSpeciesInZipcode(zip int) []string {
	records := s.trees.CollectIf(func(r Record) bool {
		return r.ZipCode == zip
	})

	seen := make(map[string]struct{})
	var result []string
	for _, r := range records {
		key := species.Normalize(r.Species)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, r.Species)
	}
	return result
}

// SpeciesWithinRadius returns the species of every record within km of
// the given point. Names repeat once per record, and names of one species
// are adjacent even when spelled differently ("Pin-Oak", "pin oak"), so
// callers can count frequencies in one pass over the normalized names.
func (s *RecordStore) SpeciesWithinRadius(lat, lon, km float64) []string {
	within := geo.Within(geo.Point{Lat: lat, Lon: lon}, km)
	records := s.trees.CollectIf(func(r Record) bool {
		return within(r.Point())
	})

	result := make([]string, 0, len(records))
	for _, r := range records {
		result = append(result, r.Species)
	}
	return result
}

// TreesOfSpecies returns the records whose species equals name ignoring
// case and hyphens. It descends only towards name in the index.
func (s *RecordStore) TreesOfSpecies(name string) []Record {
	target := species.Normalize(name)
	return s.trees.DirectedSearch(
		func(r Record) bool {
			return SameSpecies(r.Species, target)
		},
		func(r Record) avl.Direction {
			if species.Normalize(r.Species) < target {
				return avl.DescendRight
			}
			return avl.DescendLeft
		},
	)
}

// Lookup finds the record with the given species and id.
func (s *RecordStore) Lookup(name string, id int) (Record, bool) {
	return s.trees.Find(Record{Species: name, ID: id})
}

// FindByID scans for the record with id. Ids are unique in the census,
// the first record in index order wins otherwise.
func (s *RecordStore) FindByID(id int) (Record, bool) {
	var found Record
	ok := false
	s.trees.Ascend(func(r Record) bool {
		if r.ID == id {
			found, ok = r, true
			return false
		}
		return true
	})
	return found, ok
}

// DumpOrdered writes every record, one per line, in index order.
func (s *RecordStore) DumpOrdered(w io.Writer) error {
	_, err := s.trees.WriteTo(w)
	return err
}

// WriteSpecies writes the distinct species names in ascending order.
func (s *RecordStore) WriteSpecies(w io.Writer) error {
	_, err := s.registry.WriteTo(w)
	return err
}

// Clone returns a deep copy that shares no state with s.
func (s *RecordStore) Clone() *RecordStore {
	return &RecordStore{
		trees:    s.trees.Clone(),
		registry: s.registry.Clone(),
		matches:  newMatchCache(s.opts.MatchCacheTTL),
		opts:     s.opts,
		log:      s.log,
	}
}

// RemoveStumps would drop every record whose status is Stump. Removal is
// not supported, so it reports how many stumps were found together with
// avl.ErrRemoveUnsupported and leaves the store untouched.
func (s *RecordStore) RemoveStumps() (int, error) {
	stumps := s.trees.CollectIf(func(r Record) bool {
		return strings.EqualFold(r.Status, "Stump")
	})
	if len(stumps) == 0 {
		return 0, nil
	}
	return len(stumps), s.Remove(stumps[0])
}
