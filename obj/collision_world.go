package obj

import (
	"github.com/jakecoffman/cp/v2"

	"github.com/wzooom/AI-Game-Texture-Pipeline/common"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeSolid
)

const groundedProbe = 2.0

// World is the chipmunk space a materialized level is dropped into: one
// static box per ground segment and platform, plus the player body. It only
// resolves player-versus-geometry; enemy and pickup contacts are simple rect
// overlaps handled by the game loop.
type World struct {
	space *cp.Space

	playerBody  *cp.Body
	playerShape *cp.Shape
	playerW     float64
	playerH     float64
}

func NewWorld(platforms []*Platform) *World {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})

	w := &World{space: space}
	for _, p := range platforms {
		w.addStatic(p.Rect)
	}
	return w
}

func (w *World) Space() *cp.Space { return w.space }

func (w *World) addStatic(r common.Rect) {
	bb := cp.BB{L: r.Left(), B: r.Top(), R: r.Right(), T: r.Bottom()}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypeSolid)
	w.space.AddShape(shape)
}

// AddPlayer creates the player body at (x, y) with the given box size.
// Infinite moment keeps the box from rotating.
func (w *World) AddPlayer(x, y, width, height float64) *cp.Body {
	body := cp.NewBody(1, cp.INFINITY)
	body.SetPosition(cp.Vector{X: x, Y: y})

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypePlayer)

	w.space.AddBody(body)
	w.space.AddShape(shape)

	w.playerBody = body
	w.playerShape = shape
	w.playerW = width
	w.playerH = height
	return body
}

func (w *World) Step(dt float64) {
	w.space.Step(dt)
}

// Grounded queries a thin strip under the player's feet for solid geometry.
func (w *World) Grounded() bool {
	if w.playerBody == nil {
		return false
	}
	pos := w.playerBody.Position()
	feet := cp.BB{
		L: pos.X - w.playerW/2 + 1,
		B: pos.Y + w.playerH/2,
		R: pos.X + w.playerW/2 - 1,
		T: pos.Y + w.playerH/2 + groundedProbe,
	}

	grounded := false
	w.space.BBQuery(feet, cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, cp.ALL_CATEGORIES), func(shape *cp.Shape, _ interface{}) {
		if shape.CollisionType() == collisionTypeSolid {
			grounded = true
		}
	}, nil)
	return grounded
}
