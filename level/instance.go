package level

import (
	"math/rand"
	"sync"

	"github.com/wzooom/AI-Game-Texture-Pipeline/obj"
	"github.com/wzooom/AI-Game-Texture-Pipeline/texture"
)

// TextureSource hands out per-level texture sets. Satisfied by
// *texture.Provisioner; tests plug in stubs.
type TextureSource interface {
	Get(level int) *texture.Set
}

// Instance is the mutable materialization of a Template: concrete entity
// slices built lazily per category and memoized. The texture set is resolved
// once, on the first category that needs it; texture changes after that
// require an instance-cache clear to become visible.
type Instance struct {
	tmpl     *Template
	textures TextureSource

	mu sync.Mutex

	texSet      *texture.Set
	texResolved bool

	platforms []*obj.Platform
	enemies   []*obj.Enemy
	chests    []*obj.Chest
	pickups   []*obj.Pickup
	doors     []*obj.Door
	bg        *obj.Background

	platformsBuilt bool
	enemiesBuilt   bool
	chestsBuilt    bool
	pickupsBuilt   bool
	doorsBuilt     bool
	bgBuilt        bool
}

func newInstance(tmpl *Template, textures TextureSource) *Instance {
	return &Instance{tmpl: tmpl, textures: textures}
}

func (in *Instance) Key() Key            { return in.tmpl.Key }
func (in *Instance) Template() *Template { return in.tmpl }
func (in *Instance) Width() float64      { return in.tmpl.Width }
func (in *Instance) Height() float64     { return in.tmpl.Height }

// textureSet resolves textures once. Callers hold in.mu.
func (in *Instance) textureSet() *texture.Set {
	if !in.texResolved {
		if in.textures != nil {
			in.texSet = in.textures.Get(in.tmpl.Key.Level)
		} else {
			in.texSet = texture.EmptySet(in.tmpl.Key.Level)
		}
		in.texResolved = true
	}
	return in.texSet
}

// Platforms returns ground segments and floating platforms as solid
// entities, materializing them on first access.
func (in *Instance) Platforms() []*obj.Platform {
	in.mu.Lock()
	defer in.mu.Unlock()

	if !in.platformsBuilt {
		tex := in.textureSet().Image(texture.RolePlatform)
		for _, g := range in.tmpl.Ground {
			in.platforms = append(in.platforms, obj.NewPlatform(g.Rect(), tex, true))
		}
		for _, p := range in.tmpl.Platforms {
			in.platforms = append(in.platforms, obj.NewPlatform(p.Rect(), tex, false))
		}
		in.platformsBuilt = true
	}
	return in.platforms
}

func (in *Instance) Enemies() []*obj.Enemy {
	in.mu.Lock()
	defer in.mu.Unlock()

	if !in.enemiesBuilt {
		set := in.textureSet()
		basic := set.Image(texture.RoleEnemy)
		boss := set.Image(texture.RoleBoss)
		for _, e := range in.tmpl.Enemies {
			if e.Kind == EnemyBoss {
				in.enemies = append(in.enemies, obj.NewEnemy(e.X, e.Y, true, boss))
			} else {
				in.enemies = append(in.enemies, obj.NewEnemy(e.X, e.Y, false, basic))
			}
		}
		in.enemiesBuilt = true
	}
	return in.enemies
}

// Chests rolls the loot values here, so two instances of the same template
// differ only in loot, never in geometry.
func (in *Instance) Chests() []*obj.Chest {
	in.mu.Lock()
	defer in.mu.Unlock()

	if !in.chestsBuilt {
		for _, c := range in.tmpl.Chests {
			loot := c.MinLoot
			if c.MaxLoot > c.MinLoot {
				loot += rand.Intn(c.MaxLoot - c.MinLoot + 1)
			}
			in.chests = append(in.chests, obj.NewChest(c.X, c.Y, loot))
		}
		in.chestsBuilt = true
	}
	return in.chests
}

func (in *Instance) Pickups() []*obj.Pickup {
	in.mu.Lock()
	defer in.mu.Unlock()

	if !in.pickupsBuilt {
		for _, p := range in.tmpl.Pickups {
			in.pickups = append(in.pickups, obj.NewPickup(p.X, p.Y, p.Heal))
		}
		in.pickupsBuilt = true
	}
	return in.pickups
}

func (in *Instance) Doors() []*obj.Door {
	in.mu.Lock()
	defer in.mu.Unlock()

	if !in.doorsBuilt {
		for _, d := range in.tmpl.Doors {
			in.doors = append(in.doors, obj.NewDoor(d.X, d.Y))
		}
		in.doorsBuilt = true
	}
	return in.doors
}

func (in *Instance) Background() *obj.Background {
	in.mu.Lock()
	defer in.mu.Unlock()

	if !in.bgBuilt {
		tex := in.textureSet().Image(texture.RoleBackground)
		in.bg = obj.NewBackground(in.tmpl.Width, in.tmpl.Height, tex)
		in.bgBuilt = true
	}
	return in.bg
}
