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
	"strings"

	"github.com/cybrota/arbor/species"
	"github.com/cybrota/arbor/store"
)

// TreeInfoHandler resolves a partial species name and reports how popular
// the matching species are across the city and each borough.
type TreeInfoHandler struct {
	// Suggestions caps the "did you mean" hints printed when nothing matches.
	Suggestions int
}

func (h *TreeInfoHandler) Name() string { return "tree_info" }

func (h *TreeInfoHandler) Run(cmd *Command, q Querier, rep *Report) error {
	if !cmd.HasArgs(1) {
		return badCommand(cmd, "missing tree to find")
	}
	name := cmd.Rest()
	rep.Header("tree_info " + name)

	matching := q.SpeciesMatching(name)
	if len(matching) == 0 {
		rep.Printf("There are no matching species.\n")
		if hints := q.SuggestSpecies(name, h.Suggestions); len(hints) > 0 {
			rep.Printf("Did you mean: %s?\n", strings.Join(hints, ", "))
		}
		return nil
	}

	rep.Section("The matching species are: ")
	for _, m := range matching {
		rep.Printf("\t%s\n", m)
	}
	rep.Section("Popularity in the city:")

	// spellings of one species share their trees
	counted := make(map[string]bool)
	byBorough := make([]int, len(store.Boroughs))
	total := 0
	for _, m := range matching {
		key := species.Normalize(m)
		if counted[key] {
			continue
		}
		counted[key] = true
		counts, sum := q.CountsByBorough(m)
		for i, c := range counts {
			byBorough[i] += c.Count
		}
		total += sum
	}

	inCity := q.Len()
	rep.Countf("\t%-15s%12d  (%12d)%12.2f%%\n", "New York City", total, inCity, percentage(total, inCity))
	for i, b := range store.Boroughs {
		inBorough := q.CountInBoro(b)
		rep.Countf("\t%-15s%12d  (%12d)%12.2f%%\n", b, byBorough[i], inBorough, percentage(byBorough[i], inBorough))
	}
	return nil
}

func percentage(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return 100 * float64(part) / float64(whole)
}
