package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wzooom/AI-Game-Texture-Pipeline/common"
)

const (
	doorWidth  = 60.0
	doorHeight = 100.0
)

var doorFallback = color.RGBA{R: 101, G: 67, B: 33, A: 255}

// Door marks the level exit. Contact with the player triggers a transition;
// the door itself is a sensor, not a solid.
type Door struct {
	X, Y float64

	sprite sprite
}

func NewDoor(x, y float64) *Door {
	return &Door{X: x, Y: y, sprite: newSprite(nil, doorFallback)}
}

func (d *Door) Rect() common.Rect {
	return common.Rect{X: d.X, Y: d.Y, Width: doorWidth, Height: doorHeight}
}

func (d *Door) Draw(screen *ebiten.Image, camX, camY float64) {
	d.sprite.drawScaled(screen, d.X, d.Y, doorWidth, doorHeight, camX, camY)
}
