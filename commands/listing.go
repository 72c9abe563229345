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
	"errors"
	"fmt"
	"strings"

	"github.com/cybrota/arbor/avl"
	"github.com/cybrota/arbor/store"
)

// ListAllNamesHandler prints every distinct species name.
type ListAllNamesHandler struct{}

func (h *ListAllNamesHandler) Name() string { return "listall_names" }

func (h *ListAllNamesHandler) Run(cmd *Command, q Querier, rep *Report) error {
	rep.Header("listall_names")
	return q.WriteSpecies(rep.Writer())
}

// PrintAllHandler dumps every record in index order.
type PrintAllHandler struct{}

func (h *PrintAllHandler) Name() string { return "print_all" }

func (h *PrintAllHandler) Run(cmd *Command, q Querier, rep *Report) error {
	rep.Header("print_all")
	return q.DumpOrdered(rep.Writer())
}

// RemoveStumpsHandler reports that stumps cannot be removed from the index.
type RemoveStumpsHandler struct{}

func (h *RemoveStumpsHandler) Name() string { return "remove_stumps" }

func (h *RemoveStumpsHandler) Run(cmd *Command, q Querier, rep *Report) error {
	rep.Header("remove_stumps")
	n, err := q.RemoveStumps()
	if errors.Is(err, avl.ErrRemoveUnsupported) {
		rep.Countf("\t%d stumps found, removal is not supported\n", n)
		return nil
	}
	if err != nil {
		return fmt.Errorf("remove stumps: %w", err)
	}
	rep.Printf("\tno stumps found\n")
	return nil
}

// FindTreeHandler prints the record with a tree id. A species name after
// the id narrows the lookup to an index descent instead of a scan.
type FindTreeHandler struct{}

func (h *FindTreeHandler) Name() string { return "find_tree" }

func (h *FindTreeHandler) Run(cmd *Command, q Querier, rep *Report) error {
	id, err := intArg(cmd, 0, "tree id")
	if err != nil {
		return err
	}
	if id <= 0 {
		return badCommand(cmd, "tree id must be positive")
	}

	var r store.Record
	var ok bool
	echo := fmt.Sprintf("find_tree %d", id)
	if name := strings.Join(cmd.Args[1:], " "); name != "" {
		echo += " " + name
		r, ok = q.Lookup(name, id)
	} else {
		r, ok = q.FindByID(id)
	}

	rep.Header(echo)
	if !ok {
		rep.Printf("\tno tree with id %d\n", id)
		return nil
	}
	rep.Printf("\t%s\n", r)
	return nil
}
