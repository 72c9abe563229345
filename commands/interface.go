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

// Package commands interprets command files against a record store and
// renders the reports.
package commands

import (
	"io"
	"strings"

	"github.com/cybrota/arbor/store"
)

// Querier is the part of store.RecordStore the handlers rely on.
type Querier interface {
	Len() int
	SpeciesMatching(partial string) []string
	SuggestSpecies(partial string, limit int) []string
	CountsByBorough(name string) ([]store.BoroughCount, int)
	CountInBoro(borough string) int
	DistinctSpeciesInZipcode(zip int) []string
	SpeciesWithinRadius(lat, lon, km float64) []string
	DumpOrdered(w io.Writer) error
	WriteSpecies(w io.Writer) error
	RemoveStumps() (int, error)
	FindByID(id int) (store.Record, bool)
	Lookup(name string, id int) (store.Record, bool)
}

var _ Querier = (*store.RecordStore)(nil)

// Handler runs one command verb
type Handler interface {
	Name() string
	Run(cmd *Command, q Querier, rep *Report) error
}

// Command represents a parsed command line
type Command struct {
	Parts    []string
	Verb     string
	Args     []string
	FullName string
}

// NewCommand creates a new Command from command parts
func NewCommand(parts []string) *Command {
	if len(parts) == 0 {
		return &Command{Parts: parts}
	}

	return &Command{
		Parts:    parts,
		Verb:     parts[0],
		Args:     parts[1:],
		FullName: strings.Join(parts, " "),
	}
}

// HasArgs checks if command has at least n arguments
func (c *Command) HasArgs(n int) bool {
	return len(c.Args) >= n
}

// Arg returns the nth argument (0-indexed)
func (c *Command) Arg(n int) string {
	if n >= len(c.Args) {
		return ""
	}
	return c.Args[n]
}

// Rest joins the arguments back into a single string.
func (c *Command) Rest() string {
	return strings.Join(c.Args, " ")
}
