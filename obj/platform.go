package obj

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wzooom/AI-Game-Texture-Pipeline/common"
)

var platformFallback = color.RGBA{R: 139, G: 69, B: 19, A: 255}

// Platform is a solid, standable rectangle. Ground segments are platforms
// too, just wider and flush with the level floor.
type Platform struct {
	Rect   common.Rect
	Ground bool

	sprite sprite
}

func NewPlatform(rect common.Rect, tex image.Image, ground bool) *Platform {
	return &Platform{
		Rect:   rect,
		Ground: ground,
		sprite: newSprite(tex, platformFallback),
	}
}

func (p *Platform) Draw(screen *ebiten.Image, camX, camY float64) {
	p.sprite.drawScaled(screen, p.Rect.X, p.Rect.Y, p.Rect.Width, p.Rect.Height, camX, camY)
}
