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

package store

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/cybrota/arbor/geo"
	"github.com/cybrota/arbor/species"
)

// Record is one tree of the census. Records are treated as immutable once
// added to a RecordStore.
type Record struct {
	ID        int
	Diameter  int
	Status    string // Alive, Dead, Stump or empty
	Health    string // Good, Fair, Poor or empty
	Species   string // common name
	ZipCode   int
	Address   string
	Borough   string
	Latitude  float64
	Longitude float64
}

// Point returns the record position.
func (r Record) Point() geo.Point {
	return geo.Point{Lat: r.Latitude, Lon: r.Longitude}
}

// PaddedZip renders the zip code with leading zeros to five digits.
func (r Record) PaddedZip() string {
	return fmt.Sprintf("%05d", r.ZipCode)
}

// String renders the record as a single dump line.
func (r Record) String() string {
	fields := []string{
		r.Species,
		strconv.Itoa(r.ID),
		strconv.Itoa(r.Diameter),
		r.Status,
		r.Health,
		r.Address,
		r.PaddedZip(),
		r.Borough,
		strconv.FormatFloat(r.Latitude, 'g', 6, 64),
		strconv.FormatFloat(r.Longitude, 'g', 6, 64),
	}
	return strings.Join(fields, ",")
}

// CompareRecords orders records by normalized species name, then by id.
func CompareRecords(a, b Record) int {
	if c := strings.Compare(species.Normalize(a.Species), species.Normalize(b.Species)); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// SameSpecies reports whether a and b share a species under the ordering
// used by CompareRecords.
func SameSpecies(a, b string) bool {
	return species.Normalize(a) == species.Normalize(b)
}
