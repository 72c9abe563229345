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

// Package species keeps the registry of distinct species names and
// resolves partial names typed by a user against it.
package species

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

const separator = ' '

// Normalize lower-cases, turns hyphens into spaces and then trims so that
// "Red-Oak", "red oak" and "oak-" style input compare as words.
func Normalize(name string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if r == '-' {
			return separator
		}
		return r
	}, strings.ToLower(name)))
}

// IsMatch reports whether partial could mean the species candidate. It
// holds when the two are equal, when partial is one whole word of
// candidate, or when partial occurs in candidate starting and ending on
// word boundaries.
func IsMatch(candidate, partial string) bool {
	c := Normalize(candidate)
	p := Normalize(partial)
	if p == "" {
		return false
	}
	return c == p || containsWord(c, p) || containsAlignedRun(c, p)
}

// Match filters names down to those partial could mean, keeping their order.
func Match(partial string, names []string) []string {
	var matches []string
	for _, name := range names {
		if IsMatch(name, partial) {
			matches = append(matches, name)
		}
	}
	return matches
}

func containsWord(candidate, partial string) bool {
	for _, word := range strings.Split(candidate, string(separator)) {
		if word == partial {
			return true
		}
	}
	return false
}

func containsAlignedRun(candidate, partial string) bool {
	if len(partial) > len(candidate) {
		return false
	}
	for offset := 0; offset+len(partial) <= len(candidate); {
		i := strings.Index(candidate[offset:], partial)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(partial)
		startsOnBoundary := start == 0 || candidate[start-1] == separator
		endsOnBoundary := end == len(candidate) || candidate[end] == separator
		if startsOnBoundary && endsOnBoundary {
			return true
		}
		offset = start + 1
	}
	return false
}

// Suggest ranks names by fuzzy similarity to partial, best first, and
// returns at most limit of them.
func Suggest(partial string, names []string, limit int) []string {
	p := Normalize(partial)
	if p == "" || limit <= 0 {
		return nil
	}

	normalized := make([]string, len(names))
	for i, name := range names {
		normalized[i] = Normalize(name)
	}

	var suggestions []string
	for _, m := range fuzzy.Find(p, normalized) {
		if len(suggestions) == limit {
			break
		}
		suggestions = append(suggestions, names[m.Index])
	}
	return suggestions
}
