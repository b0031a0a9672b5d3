package level

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/wzooom/AI-Game-Texture-Pipeline/texture"
)

// countingSource records how many times textures were requested per level.
type countingSource struct {
	calls atomic.Int64
}

func (s *countingSource) Get(level int) *texture.Set {
	s.calls.Add(1)
	return texture.EmptySet(level)
}

func TestCacheCreateOrGetConverges(t *testing.T) {
	cache := NewInstanceCache(newTestFactory(), &countingSource{})
	key := Key{Level: 2}

	const workers = 16
	results := make([]*Instance, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = cache.CreateOrGet(key)
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		if results[i] != results[0] {
			t.Fatalf("worker %d got a different instance for the same key", i)
		}
	}
	if cache.Len() != 1 {
		t.Fatalf("cache holds %d instances, want 1", cache.Len())
	}
}

func TestCacheDistinctKeys(t *testing.T) {
	cache := NewInstanceCache(newTestFactory(), &countingSource{})

	regular := cache.CreateOrGet(Key{Level: 1})
	boss := cache.CreateOrGet(Key{Level: 1, BossRoom: true})
	if regular == boss {
		t.Fatalf("regular level and boss room share an instance")
	}
	if cache.Len() != 2 {
		t.Fatalf("cache holds %d instances, want 2", cache.Len())
	}
}

func TestCacheClearRebuilds(t *testing.T) {
	src := &countingSource{}
	cache := NewInstanceCache(newTestFactory(), src)
	key := Key{Level: 1}

	first := cache.CreateOrGet(key)
	first.Platforms()
	cache.Clear()
	if cache.Len() != 0 {
		t.Fatalf("cache not empty after Clear")
	}

	second := cache.CreateOrGet(key)
	if second == first {
		t.Fatalf("Clear should force a fresh instance")
	}
	second.Platforms()
	if got := src.calls.Load(); got != 2 {
		t.Fatalf("texture source resolved %d times, want 2 (once per instance)", got)
	}

	// Templates survive the clear: geometry is identical across instances.
	if first.Template() != second.Template() {
		t.Fatalf("instances of the same key should share the factory template")
	}
}
