package level

import (
	"log"
	"sync"
)

// InstanceCache guarantees at most one live Instance per Key. The
// check-then-insert runs under one mutex, so concurrent requests for the same
// key always converge on the identical instance.
type InstanceCache struct {
	factory  *Factory
	textures TextureSource

	mu        sync.Mutex
	instances map[Key]*Instance
}

func NewInstanceCache(factory *Factory, textures TextureSource) *InstanceCache {
	return &InstanceCache{
		factory:   factory,
		textures:  textures,
		instances: make(map[Key]*Instance),
	}
}

// CreateOrGet returns the cached instance for key, building one from the
// factory's template on first request.
func (c *InstanceCache) CreateOrGet(key Key) *Instance {
	c.mu.Lock()
	defer c.mu.Unlock()

	if in, ok := c.instances[key]; ok {
		return in
	}
	in := newInstance(c.factory.Template(key), c.textures)
	c.instances[key] = in
	return in
}

// Clear evicts every instance, releasing materialized entities. Templates
// and textures are untouched.
func (c *InstanceCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.instances)
	c.instances = make(map[Key]*Instance)
	if n > 0 {
		log.Printf("level: cleared %d cached instances", n)
	}
}

// Len reports how many instances are currently cached.
func (c *InstanceCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.instances)
}
