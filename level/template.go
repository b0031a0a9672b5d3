package level

import "github.com/wzooom/AI-Game-Texture-Pipeline/common"

// EnemyKind selects behavior and texture role at materialization time.
type EnemyKind string

const (
	EnemyBasic EnemyKind = "basic"
	EnemyBoss  EnemyKind = "boss"
)

type PlatformSpec struct {
	X, Y          float64
	Width, Height float64
}

func (p PlatformSpec) Rect() common.Rect {
	return common.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

type EnemySpec struct {
	X, Y float64
	Kind EnemyKind
}

// ChestSpec carries the loot range; the concrete value is rolled at
// materialization so it stays cosmetic and never affects geometry.
type ChestSpec struct {
	X, Y             float64
	MinLoot, MaxLoot int
}

type PickupSpec struct {
	X, Y float64
	Heal int
}

type DoorSpec struct {
	X, Y float64
}

// Template is one level's immutable geometry. Created once per Key by the
// factory, validated for reachability, then shared read-only by every
// instance built from it.
type Template struct {
	Key    Key
	Width  float64
	Height float64

	Ground    []PlatformSpec
	Platforms []PlatformSpec
	Enemies   []EnemySpec
	Chests    []ChestSpec
	Pickups   []PickupSpec
	Doors     []DoorSpec
}

func (t *Template) platformRects() []common.Rect {
	rects := make([]common.Rect, len(t.Platforms))
	for i, p := range t.Platforms {
		rects[i] = p.Rect()
	}
	return rects
}

func (t *Template) groundRects() []common.Rect {
	rects := make([]common.Rect, len(t.Ground))
	for i, g := range t.Ground {
		rects[i] = g.Rect()
	}
	return rects
}
