package level

import (
	"testing"
)

func TestInstanceMemoizesCategories(t *testing.T) {
	in := newInstance(newTestFactory().Template(Key{Level: 2}), &countingSource{})

	platforms := in.Platforms()
	if len(platforms) == 0 {
		t.Fatalf("no platforms materialized")
	}
	again := in.Platforms()
	if &platforms[0] != &again[0] || len(platforms) != len(again) {
		t.Fatalf("Platforms rebuilt instead of memoized")
	}

	enemies := in.Enemies()
	if &enemies[0] != &in.Enemies()[0] {
		t.Fatalf("Enemies rebuilt instead of memoized")
	}
}

func TestInstanceResolvesTexturesOnce(t *testing.T) {
	src := &countingSource{}
	in := newInstance(newTestFactory().Template(Key{Level: 1}), src)

	in.Platforms()
	in.Enemies()
	in.Background()
	in.Chests()

	if got := src.calls.Load(); got != 1 {
		t.Fatalf("texture source called %d times, want 1", got)
	}
}

func TestInstanceNilTextureSource(t *testing.T) {
	in := newInstance(newTestFactory().Template(Key{Level: 1}), nil)

	// Materialization must not panic without a texture source; entities fall
	// back to placeholder fills at draw time.
	if len(in.Platforms()) == 0 {
		t.Fatalf("no platforms without textures")
	}
	if in.Background() == nil {
		t.Fatalf("no background without textures")
	}
}

func TestInstanceChestLootWithinRange(t *testing.T) {
	tmpl := newTestFactory().Template(Key{Level: 1})
	if len(tmpl.Chests) == 0 {
		t.Fatalf("regular level has no chests")
	}

	for i := 0; i < 20; i++ {
		in := newInstance(tmpl, nil)
		for j, c := range in.Chests() {
			spec := tmpl.Chests[j]
			loot := c.Loot
			if loot < spec.MinLoot || loot > spec.MaxLoot {
				t.Fatalf("chest %d loot %d outside [%d,%d]", j, loot, spec.MinLoot, spec.MaxLoot)
			}
		}
	}
}

func TestInstanceBossRoomEnemies(t *testing.T) {
	in := newInstance(newTestFactory().Template(Key{Level: 3, BossRoom: true}), &countingSource{})

	var bosses int
	for _, e := range in.Enemies() {
		if e.Boss {
			bosses++
		}
	}
	if bosses != 1 {
		t.Fatalf("boss room instance has %d bosses, want 1", bosses)
	}
	if len(in.Doors()) != 0 {
		t.Fatalf("boss room instance should have no doors")
	}
}
