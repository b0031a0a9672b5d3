package obj

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// sprite wraps a decoded texture and converts it to an *ebiten.Image only on
// first draw. Materialization happens on whatever goroutine asks for level
// entities, so it must never touch the GPU itself; the draw loop is the only
// place that may.
type sprite struct {
	src      image.Image
	fallback color.Color

	img *ebiten.Image
}

func newSprite(src image.Image, fallback color.Color) sprite {
	return sprite{src: src, fallback: fallback}
}

// image returns the drawable, building it lazily. With no source texture it
// synthesizes a 1x1 solid fill in the fallback color that callers scale up.
func (s *sprite) image() *ebiten.Image {
	if s.img != nil {
		return s.img
	}
	if s.src != nil {
		s.img = ebiten.NewImageFromImage(s.src)
		return s.img
	}
	s.img = ebiten.NewImage(1, 1)
	s.img.Fill(s.fallback)
	return s.img
}

// drawScaled draws the sprite stretched to w x h at world position (x, y),
// shifted by the camera offset.
func (s *sprite) drawScaled(screen *ebiten.Image, x, y, w, h, camX, camY float64) {
	img := s.image()
	bounds := img.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
	op.GeoM.Translate(x-camX, y-camY)
	screen.DrawImage(img, op)
}
