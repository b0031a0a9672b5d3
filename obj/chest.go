package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wzooom/AI-Game-Texture-Pipeline/common"
)

const chestSize = 30.0

var (
	chestClosed = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	chestOpened = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// Chest holds a loot value rolled at materialization time. Opening is
// one-shot; a second Open returns 0.
type Chest struct {
	X, Y   float64
	Loot   int
	Opened bool

	closed sprite
	opened sprite
}

func NewChest(x, y float64, loot int) *Chest {
	return &Chest{
		X:      x,
		Y:      y,
		Loot:   loot,
		closed: newSprite(nil, chestClosed),
		opened: newSprite(nil, chestOpened),
	}
}

func (c *Chest) Rect() common.Rect {
	return common.Rect{X: c.X, Y: c.Y, Width: chestSize, Height: chestSize}
}

// Open returns the loot value on first call and 0 afterwards.
func (c *Chest) Open() int {
	if c.Opened {
		return 0
	}
	c.Opened = true
	return c.Loot
}

func (c *Chest) Draw(screen *ebiten.Image, camX, camY float64) {
	s := &c.closed
	if c.Opened {
		s = &c.opened
	}
	s.drawScaled(screen, c.X, c.Y, chestSize, chestSize, camX, camY)
}
