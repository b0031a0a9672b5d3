package common

// Rect is an axis-aligned rectangle with Y growing downward, matching the
// screen coordinate system the rest of the game uses.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// HorizontalGap returns the distance between the nearer vertical edges of r
// and other, or 0 if they overlap horizontally.
func (r Rect) HorizontalGap(other Rect) float64 {
	if r.Right() < other.Left() {
		return other.Left() - r.Right()
	}
	if r.Left() > other.Right() {
		return r.Left() - other.Right()
	}
	return 0
}
