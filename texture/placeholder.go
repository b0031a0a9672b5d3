package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Placeholder synthesizes a stand-in texture for a role/level: a solid base
// color, a simple procedural pattern, and a text label so a playtester can
// tell at a glance which asset failed to generate.
func Placeholder(role Role, level, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(BaseColor(role, level)), image.Point{}, draw.Src)

	switch role {
	case RoleBackground:
		drawGradientBands(img, size)
	case RolePlatform:
		drawBlockGrid(img, size)
	case RoleEnemy, RoleBoss:
		drawDisc(img, size)
	}

	drawLabel(img, size, fmt.Sprintf("%s\nL%d", strings.ToUpper(string(role)), level))
	return img
}

func drawGradientBands(img *image.RGBA, size int) {
	for y := 0; y < size; y += 20 {
		intensity := uint8(255 * (1 - float64(y)/float64(size)))
		band := color.RGBA{R: intensity, G: intensity / 2, B: intensity / 3, A: 255}
		r := image.Rect(0, y, size, min(y+10, size))
		draw.Draw(img, r, image.NewUniform(band), image.Point{}, draw.Src)
	}
}

func drawBlockGrid(img *image.RGBA, size int) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for x := 0; x < size; x += 32 {
		for y := 0; y < size; y += 16 {
			drawRectOutline(img, image.Rect(x, y, min(x+30, size), min(y+14, size)), white)
		}
	}
}

func drawRectOutline(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetRGBA(x, r.Min.Y, c)
		img.SetRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetRGBA(r.Min.X, y, c)
		img.SetRGBA(r.Max.X-1, y, c)
	}
}

func drawDisc(img *image.RGBA, size int) {
	cx, cy := size/2, size/2
	radius := size / 4
	fill := color.RGBA{R: 255, G: 100, B: 100, A: 255}
	for x := cx - radius; x <= cx+radius; x++ {
		for y := cy - radius; y <= cy+radius; y++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= radius*radius {
				img.SetRGBA(x, y, fill)
			}
		}
	}
}

func drawLabel(img *image.RGBA, size int, text string) {
	face := basicfont.Face7x13
	lines := strings.Split(text, "\n")
	lineHeight := face.Metrics().Height.Ceil()
	totalHeight := lineHeight * len(lines)

	for i, line := range lines {
		width := font.MeasureString(face, line).Ceil()
		d := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255}),
			Face: face,
			Dot: fixed.P(
				(size-width)/2,
				(size-totalHeight)/2+face.Metrics().Ascent.Ceil()+i*lineHeight,
			),
		}
		d.DrawString(line)
	}
}
