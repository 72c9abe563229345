// cache.go

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
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/cybrota/arbor/species"
)

const (
	// DefaultMatchCacheExpiration keeps resolved partial names for 30 minutes
	DefaultMatchCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	matchCacheCleanup = 5 * time.Minute
)

// newMatchCache creates the cache holding species match results keyed by
// normalized partial name.
func newMatchCache(expiration time.Duration) *cache.Cache {
	if expiration <= 0 {
		expiration = DefaultMatchCacheExpiration
	}
	return cache.New(expiration, matchCacheCleanup)
}

func cacheMatches(c *cache.Cache, partial string, matches []string) {
	c.Set(species.Normalize(partial), matches, cache.DefaultExpiration)
}

func cachedMatches(c *cache.Cache, partial string) ([]string, bool) {
	val, ok := c.Get(species.Normalize(partial))
	if !ok {
		return nil, false
	}
	return val.([]string), true
}
