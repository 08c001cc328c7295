// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tomtom215/filmgourmet/internal/metrics"
	"github.com/tomtom215/filmgourmet/internal/recommend/selection"
)

// cacheKey identifies a deterministic request. Label order does not matter.
func cacheKey(version int64, labels []string, o requestOptions) string {
	sorted := make([]string, len(labels))
	copy(sorted, labels)
	sort.Strings(sorted)
	return fmt.Sprintf("rec:%d:%g:%g:%d:%s", version, o.alpha, o.epsilon, o.k, strings.Join(sorted, "\x1f"))
}

// checkCache returns a copy of a valid cached response, or nil.
func (e *Engine) checkCache(key string) *Response {
	if !e.config.Cache.Enabled {
		return nil
	}

	cached, hit := e.responses.Get(key)
	metrics.RecordCacheLookup(hit)
	if !hit {
		e.cacheMisses.Add(1)
		return nil
	}
	e.cacheHits.Add(1)
	return copyCachedResponse(cached)
}

// copyCachedResponse creates a copy of a cached response.
func copyCachedResponse(resp *Response) *Response {
	items := make([]selection.Scored, len(resp.Items))
	copy(items, resp.Items)

	meta := resp.Metadata
	meta.Labels = append([]string(nil), resp.Metadata.Labels...)
	return &Response{Items: items, Metadata: meta}
}

// storeCache stores a copy of resp in the cache.
func (e *Engine) storeCache(key string, resp *Response) {
	if !e.config.Cache.Enabled {
		return
	}
	e.responses.Add(key, copyCachedResponse(resp))
}

// clearCache removes all cached entries.
func (e *Engine) clearCache() {
	e.responses.Clear()
	e.logger.Debug().Msg("cache cleared")
}

func (e *Engine) cacheSize() int {
	return e.responses.Len()
}
