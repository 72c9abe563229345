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

package species

import (
	"fmt"
	"io"
	"slices"

	"github.com/willf/bloom"
)

const (
	// Sized for a few thousand distinct names, the census has about 130.
	registryBloomBits   = 1 << 14
	registryBloomHashes = 5
)

// Registry is an ascending, duplicate free list of species names.
type Registry struct {
	names  []string
	filter *bloom.BloomFilter
}

func NewRegistry() *Registry {
	return &Registry{
		filter: bloom.New(registryBloomBits, registryBloomHashes),
	}
}

// Add registers name and reports whether it was new.
func (r *Registry) Add(name string) bool {
	i, found := slices.BinarySearch(r.names, name)
	if found {
		return false
	}
	r.names = slices.Insert(r.names, i, name)
	r.filter.AddString(name)
	return true
}

// Contains reports whether name has been registered. The bloom filter
// answers most misses without touching the sorted list.
func (r *Registry) Contains(name string) bool {
	if !r.filter.TestString(name) {
		return false
	}
	_, found := slices.BinarySearch(r.names, name)
	return found
}

func (r *Registry) Len() int {
	return len(r.names)
}

// Names returns a copy of the registered names in ascending order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Match returns the registered names matching partial, in registry order.
func (r *Registry) Match(partial string) []string {
	return Match(partial, r.names)
}

// Suggest ranks registered names loosely resembling partial.
func (r *Registry) Suggest(partial string, limit int) []string {
	return Suggest(partial, r.names, limit)
}

// Clone returns an independent copy.
func (r *Registry) Clone() *Registry {
	c := NewRegistry()
	for _, name := range r.names {
		c.Add(name)
	}
	return c
}

// WriteTo prints one name per line.
func (r *Registry) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for _, name := range r.names {
		n, err := fmt.Fprintln(w, name)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
