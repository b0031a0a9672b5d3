package obj

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wzooom/AI-Game-Texture-Pipeline/common"
)

const (
	pickupSize      = 20.0
	pickupBobRange  = 4.0
	pickupBobPeriod = 60.0
)

var pickupFallback = color.RGBA{R: 0, G: 255, B: 0, A: 255}

// Pickup restores health on contact. It bobs in place so it reads as
// collectible even with a placeholder texture.
type Pickup struct {
	X, Y      float64
	Heal      int
	Collected bool

	tick   int
	sprite sprite
}

func NewPickup(x, y float64, heal int) *Pickup {
	return &Pickup{
		X:      x,
		Y:      y,
		Heal:   heal,
		sprite: newSprite(nil, pickupFallback),
	}
}

func (p *Pickup) Rect() common.Rect {
	return common.Rect{X: p.X, Y: p.Y, Width: pickupSize, Height: pickupSize}
}

// Collect returns the heal amount on first call and 0 afterwards.
func (p *Pickup) Collect() int {
	if p.Collected {
		return 0
	}
	p.Collected = true
	return p.Heal
}

func (p *Pickup) Update() {
	p.tick++
}

func (p *Pickup) Draw(screen *ebiten.Image, camX, camY float64) {
	if p.Collected {
		return
	}
	bob := math.Sin(float64(p.tick)*2*math.Pi/pickupBobPeriod) * pickupBobRange
	p.sprite.drawScaled(screen, p.X, p.Y+bob, pickupSize, pickupSize, camX, camY)
}
