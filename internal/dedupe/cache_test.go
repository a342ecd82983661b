// ABOUTME: Tests for the dedupe cache used to skip repeated registrations.
// ABOUTME: Validates TTL expiration, value replacement, eviction, cleanup, and concurrency safety.

package dedupe

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_Get_NotSeen(t *testing.T) {
	cache := New[string](5*time.Minute, 100)
	defer cache.Close()

	_, ok := cache.Get("never-seen-key")
	assert.False(t, ok)
}

func TestCache_PutGet(t *testing.T) {
	cache := New[string](5*time.Minute, 100)
	defer cache.Close()

	cache.Put("conn-1", "hash-a")

	v, ok := cache.Get("conn-1")
	assert.True(t, ok)
	assert.Equal(t, "hash-a", v)

	// A later Put replaces the value
	cache.Put("conn-1", "hash-b")
	v, ok = cache.Get("conn-1")
	assert.True(t, ok)
	assert.Equal(t, "hash-b", v)
	assert.Equal(t, 1, cache.Len())
}

func TestCache_Get_Expired(t *testing.T) {
	cache := New[int](10*time.Millisecond, 100)
	defer cache.Close()

	cache.Put("expiring-key", 1)
	_, ok := cache.Get("expiring-key")
	assert.True(t, ok)

	time.Sleep(20 * time.Millisecond)

	_, ok = cache.Get("expiring-key")
	assert.False(t, ok)
}

func TestCache_Put_RestartsTTL(t *testing.T) {
	cache := New[int](50*time.Millisecond, 100)
	defer cache.Close()

	cache.Put("refresh-key", 1)
	time.Sleep(30 * time.Millisecond)
	cache.Put("refresh-key", 2)
	time.Sleep(30 * time.Millisecond)

	// 60ms after the first Put but only 30ms after the second
	v, ok := cache.Get("refresh-key")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestCache_Delete(t *testing.T) {
	cache := New[string](time.Minute, 100)
	defer cache.Close()

	cache.Put("a", "1")
	cache.Delete("a")
	cache.Delete("missing")

	_, ok := cache.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}

func TestCache_EvictsOldestAtCapacity(t *testing.T) {
	cache := New[int](time.Minute, 3)
	defer cache.Close()

	cache.Put("k1", 1)
	cache.Put("k2", 2)
	cache.Put("k3", 3)
	// Re-storing k1 moves it to the back, so k2 is now the oldest
	cache.Put("k1", 10)
	cache.Put("k4", 4)

	_, ok := cache.Get("k2")
	assert.False(t, ok, "k2 should have been evicted")
	for _, key := range []string{"k1", "k3", "k4"} {
		_, ok := cache.Get(key)
		assert.True(t, ok, "%s should still be present", key)
	}
	assert.Equal(t, 3, cache.Len())
}

func TestCache_CleanupRemovesExpired(t *testing.T) {
	cache := New[int](20*time.Millisecond, 100)
	defer cache.Close()

	for i := range 5 {
		cache.Put(fmt.Sprintf("k%d", i), i)
	}

	assert.Eventually(t, func() bool {
		return cache.Len() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestCache_CloseIsIdempotent(t *testing.T) {
	cache := New[int](time.Minute, 10)
	cache.Close()
	cache.Close()
}

func TestCache_Concurrent(t *testing.T) {
	cache := New[int](time.Minute, 1000)
	defer cache.Close()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", n%10)
			cache.Put(key, n)
			cache.Get(key)
			if n%7 == 0 {
				cache.Delete(key)
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, cache.Len(), 10)
}
