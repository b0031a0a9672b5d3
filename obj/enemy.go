package obj

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wzooom/AI-Game-Texture-Pipeline/common"
)

const (
	enemySize = 40.0
	bossSize  = 80.0

	enemySpeed  = 2.0
	patrolRange = 50.0

	enemyHealth = 50
	bossHealth  = 300
)

var enemyFallback = color.RGBA{R: 220, G: 20, B: 60, A: 255}

// Enemy patrols a short horizontal range around its spawn point. Bosses are
// bigger, tougher and stationary until aggroed; their patrol range is zero.
type Enemy struct {
	X, Y   float64
	Size   float64
	Boss   bool
	Health int

	spawnX    float64
	direction float64
	sprite    sprite
}

func NewEnemy(x, y float64, boss bool, tex image.Image) *Enemy {
	e := &Enemy{
		X:         x,
		Y:         y,
		Size:      enemySize,
		Boss:      boss,
		Health:    enemyHealth,
		spawnX:    x,
		direction: 1,
		sprite:    newSprite(tex, enemyFallback),
	}
	if boss {
		e.Size = bossSize
		e.Health = bossHealth
	}
	return e
}

func (e *Enemy) Alive() bool { return e.Health > 0 }

func (e *Enemy) Damage(amount int) {
	e.Health -= amount
	if e.Health < 0 {
		e.Health = 0
	}
}

func (e *Enemy) Rect() common.Rect {
	return common.Rect{X: e.X, Y: e.Y, Width: e.Size, Height: e.Size}
}

func (e *Enemy) Update() {
	if !e.Alive() || e.Boss {
		return
	}
	e.X += enemySpeed * e.direction
	if e.X > e.spawnX+patrolRange {
		e.X = e.spawnX + patrolRange
		e.direction = -1
	} else if e.X < e.spawnX-patrolRange {
		e.X = e.spawnX - patrolRange
		e.direction = 1
	}
}

func (e *Enemy) Draw(screen *ebiten.Image, camX, camY float64) {
	if !e.Alive() {
		return
	}
	e.sprite.drawScaled(screen, e.X, e.Y, e.Size, e.Size, camX, camY)
}
