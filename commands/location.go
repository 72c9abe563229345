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

package commands

import (
	"fmt"

	"github.com/cybrota/arbor/geo"
)

// ListAllInZipHandler lists the species growing in a zip code.
type ListAllInZipHandler struct{}

func (h *ListAllInZipHandler) Name() string { return "listall_inzip" }

func (h *ListAllInZipHandler) Run(cmd *Command, q Querier, rep *Report) error {
	zip, err := intArg(cmd, 0, "zip code")
	if err != nil {
		return err
	}
	if zip < 0 || zip > 99999 {
		return badCommand(cmd, "zip code must be in range [0,99999]")
	}

	rep.Header(fmt.Sprintf("listall_inzip %05d", zip))
	rep.Frequencies(q.DistinctSpeciesInZipcode(zip))
	return nil
}

// ListNearHandler lists the species within a distance of a point, with
// the number of trees of each.
type ListNearHandler struct{}

func (h *ListNearHandler) Name() string { return "list_near" }

func (h *ListNearHandler) Run(cmd *Command, q Querier, rep *Report) error {
	lat, err := floatArg(cmd, 0, "latitude")
	if err != nil {
		return err
	}
	if !geo.ValidLatitude(lat) {
		return badCommand(cmd, "latitude must be in range (-90,90)")
	}
	lon, err := floatArg(cmd, 1, "longitude")
	if err != nil {
		return err
	}
	if !geo.ValidLongitude(lon) {
		return badCommand(cmd, "longitude must be in range [-180,180]")
	}
	km, err := floatArg(cmd, 2, "distance")
	if err != nil {
		return err
	}
	if km < 0 {
		return badCommand(cmd, "distance is negative")
	}

	rep.Header(fmt.Sprintf("list_near %.6f %.6f %.6f", lat, lon, km))
	rep.Frequencies(q.SpeciesWithinRadius(lat, lon, km))
	return nil
}
