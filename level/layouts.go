package level

import "github.com/wzooom/AI-Game-Texture-Pipeline/common"

// Layout tables are fixed and versioned: the same Key always yields the same
// geometry, with only a per-level vertical offset distinguishing difficulty.
// Loot values are the single non-deterministic element and they are rolled at
// materialization, never here.

const (
	regularWidth = 3200.0
	bossWidth    = 1600.0

	platformWidth  = 120.0
	platformHeight = 20.0
)

func generate(key Key) *Template {
	t := &Template{
		Key:    key,
		Height: common.BaseHeight,
	}
	if key.BossRoom {
		t.Width = bossWidth
		generateBossRoom(t)
	} else {
		t.Width = regularWidth
		generateRegular(t, key.Level)
	}
	return t
}

func generateRegular(t *Template, levelNum int) {
	groundY := t.Height - common.GroundThickness
	t.Ground = []PlatformSpec{
		{X: 0, Y: groundY, Width: 800, Height: common.GroundThickness},
		{X: 950, Y: groundY, Width: 500, Height: common.GroundThickness},
		{X: 1600, Y: groundY, Width: 600, Height: common.GroundThickness},
		{X: 2400, Y: groundY, Width: 800, Height: common.GroundThickness},
	}

	// Higher levels shift the whole platform field upward a little, which is
	// what makes later levels tighter against the jump envelope.
	yOffset := float64(levelNum-1) * 10

	positions := [][2]float64{
		{200, 520}, {400, 470}, {650, 430}, {850, 380},
		{1050, 430}, {1250, 500}, {1450, 430}, {1650, 380},
		{1900, 470}, {2050, 420}, {2200, 370}, {2350, 320},
		{2500, 370}, {2650, 420}, {2800, 470}, {3000, 370},
	}
	for _, pos := range positions {
		t.Platforms = append(t.Platforms, PlatformSpec{
			X:      pos[0],
			Y:      pos[1] - yOffset,
			Width:  platformWidth,
			Height: platformHeight,
		})
	}

	for _, pos := range [][2]float64{{300, 490}, {700, 400}, {1100, 400}, {1500, 400}, {2000, 390}} {
		t.Enemies = append(t.Enemies, EnemySpec{X: pos[0], Y: pos[1], Kind: EnemyBasic})
	}

	for _, pos := range [][2]float64{{500, 440}, {1200, 470}, {2100, 390}} {
		t.Chests = append(t.Chests, ChestSpec{X: pos[0], Y: pos[1], MinLoot: 10, MaxLoot: 50})
	}

	for _, pos := range [][2]float64{{800, 350}, {1600, 350}, {2400, 290}} {
		t.Pickups = append(t.Pickups, PickupSpec{X: pos[0], Y: pos[1], Heal: 25})
	}

	t.Doors = []DoorSpec{{X: t.Width - 100, Y: t.Height - 120}}
}

func generateBossRoom(t *Template) {
	groundY := t.Height - common.GroundThickness
	t.Ground = []PlatformSpec{
		{X: 0, Y: groundY, Width: t.Width, Height: common.GroundThickness},
	}

	for _, pos := range [][2]float64{{200, 520}, {500, 470}, {800, 420}, {1100, 470}, {1400, 520}} {
		t.Platforms = append(t.Platforms, PlatformSpec{
			X:      pos[0],
			Y:      pos[1],
			Width:  platformWidth,
			Height: platformHeight,
		})
	}

	t.Enemies = []EnemySpec{{X: t.Width / 2, Y: 300, Kind: EnemyBoss}}

	// Victory chest: guaranteed high value range.
	t.Chests = []ChestSpec{{X: t.Width / 2, Y: 490, MinLoot: 40, MaxLoot: 80}}
}
