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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Arbor %s**

Query the NYC street tree census from the command line: fuzzy species lookup,
borough popularity, zip code listings and trees near a point.

Built with Go %s

# 1. Usage
* arbor run \<datafile\> \<commandfile\>
* arbor species \<datafile\> [partial name]
* arbor near \<datafile\> \<latitude\> \<longitude\> \<km\>

# 2. Command file
One command per line, blank lines and lines starting with # are skipped.

* tree_info \<species name\>: matching species and their popularity by borough
* listall_names: every distinct species
* listall_inzip \<zip\>: species growing in a zip code
* list_near \<latitude\> \<longitude\> \<km\>: species within a distance, with counts
* print_all: every tree ordered by species
* remove_stumps: reports that removal is not supported
* find_tree \<id\> [species name]: the tree with an id, looked up in the index when the species is given

# 3. Species names
Case is ignored and hyphens equal spaces. A partial name matches a species when
it is the whole name, one of its words, or a run of whole words inside it.
"oak" finds "pin oak" and "white oak", "red-oak" finds "northern red oak".

# 4. Configuration
Settings live in ~/.arbor.yaml, run 'arbor settings' to create it.

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
