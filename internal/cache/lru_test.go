// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock lets tests move time without sleeping.
type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestLRU(capacity int, ttl time.Duration) (*LRU[int], *fakeClock) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	c := NewLRU[int](capacity, ttl)
	c.now = clock.now
	return c, clock
}

func TestLRU_BasicOperations(t *testing.T) {
	c, _ := newTestLRU(3, time.Minute)

	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("c", 3)

	for key, want := range map[string]int{"a": 1, "b": 2, "c": 3} {
		got, ok := c.Get(key)
		require.True(t, ok, key)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 3, c.Len())

	_, ok := c.Get("missing")
	assert.False(t, ok)
}

func TestLRU_Eviction(t *testing.T) {
	c, _ := newTestLRU(3, time.Minute)
	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("c", 3)

	// Touch a so b becomes least recently used.
	_, _ = c.Get("a")
	c.Add("d", 4)

	_, ok := c.Get("b")
	assert.False(t, ok, "b should have been evicted")
	for _, key := range []string{"a", "c", "d"} {
		_, ok := c.Get(key)
		assert.True(t, ok, key)
	}
	assert.Equal(t, int64(1), c.Stats().Evictions)
}

func TestLRU_UpdateRestartsTTL(t *testing.T) {
	c, clock := newTestLRU(2, time.Minute)
	c.Add("a", 1)

	clock.advance(50 * time.Second)
	c.Add("a", 2)
	clock.advance(50 * time.Second)

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, got)
	assert.Equal(t, 1, c.Len())
}

func TestLRU_Expiration(t *testing.T) {
	c, clock := newTestLRU(10, time.Minute)
	c.Add("a", 1)
	c.Add("b", 2)

	clock.advance(30 * time.Second)
	c.Add("c", 3)
	clock.advance(45 * time.Second)

	_, ok := c.Get("a")
	assert.False(t, ok, "a expired")
	assert.Equal(t, 2, c.Len(), "Get drops the expired entry it sees")

	assert.Equal(t, 1, c.CleanupExpired(), "only b is left to expire")
	got, ok := c.Get("c")
	require.True(t, ok)
	assert.Equal(t, 3, got)
}

func TestLRU_RemoveAndClear(t *testing.T) {
	c, _ := newTestLRU(10, time.Minute)
	c.Add("a", 1)
	c.Add("b", 2)

	assert.True(t, c.Remove("a"))
	assert.False(t, c.Remove("a"))
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("b")
	assert.False(t, ok)

	// The list must still work after Clear.
	c.Add("c", 3)
	got, ok := c.Get("c")
	require.True(t, ok)
	assert.Equal(t, 3, got)
}

func TestLRU_Stats(t *testing.T) {
	c, _ := newTestLRU(1, time.Minute)
	c.Add("a", 1)
	_, _ = c.Get("a")
	_, _ = c.Get("a")
	_, _ = c.Get("b")
	c.Add("b", 2)

	assert.Equal(t, Stats{Hits: 2, Misses: 1, Evictions: 1, Size: 1}, c.Stats())
}

func TestNewLRU_Defaults(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
	}{
		{"zero", 0, 0},
		{"negative", -1, -time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewLRU[string](tt.capacity, tt.ttl)
			assert.Equal(t, DefaultCapacity, c.capacity)
			assert.Equal(t, DefaultTTL, c.ttl)
		})
	}
}

func TestLRU_Concurrent(t *testing.T) {
	c := NewLRU[int](64, time.Minute)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				key := fmt.Sprintf("k%d", (g*500+i)%100)
				c.Add(key, i)
				_, _ = c.Get(key)
			}
		}(g)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 64)
}
