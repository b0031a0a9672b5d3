package level

import "fmt"

// Key identifies a level variant. It is the cache key for both the template
// cache and the instance cache.
type Key struct {
	Level    int
	BossRoom bool
}

func (k Key) String() string {
	if k.BossRoom {
		return fmt.Sprintf("level %d (boss room)", k.Level)
	}
	return fmt.Sprintf("level %d", k.Level)
}
