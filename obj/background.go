package obj

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

var backgroundFallback = color.RGBA{R: 173, G: 216, B: 230, A: 255}

// Background is the level backdrop, stretched over the full level size.
type Background struct {
	Width, Height float64

	sprite sprite
}

func NewBackground(width, height float64, tex image.Image) *Background {
	return &Background{
		Width:  width,
		Height: height,
		sprite: newSprite(tex, backgroundFallback),
	}
}

// Draw applies only a fraction of the camera offset for a cheap parallax
// effect.
func (b *Background) Draw(screen *ebiten.Image, camX, camY float64) {
	b.sprite.drawScaled(screen, 0, 0, b.Width, b.Height, camX*0.3, camY*0.3)
}
