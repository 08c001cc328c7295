// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

/*
Package cache provides a thread-safe, bounded LRU cache with TTL expiry.

The recommendation engine keeps finished responses here, keyed by graph
version, parameters and the sorted label set, so repeated queries skip the
PageRank run. Loading a new graph clears the cache; entries of an older graph
version could never be hit again anyway.

# Usage

	c := cache.NewLRU[*recommend.Response](10000, 5*time.Minute)
	c.Add(key, resp)
	if resp, ok := c.Get(key); ok {
	    // served from cache
	}

# Semantics

  - Capacity bounds the entry count; adding past it evicts the least
    recently used entry.
  - Every Add restarts the entry's TTL. Get does not.
  - Expired entries count as misses and are removed when Get sees them.
  - Values are stored as given. Callers that hand out mutable values should
    copy on the way in and out.
*/
package cache
