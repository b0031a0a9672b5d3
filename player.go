package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp/v2"
	"golang.org/x/image/colornames"

	"github.com/wzooom/AI-Game-Texture-Pipeline/common"
	"github.com/wzooom/AI-Game-Texture-Pipeline/obj"
)

const (
	playerWidth  = 28.0
	playerHeight = 44.0

	playerMoveSpeed = 200.0
	// jumpSpeed is sized so the apex matches common.MaxJumpHeight under
	// common.Gravity: v = sqrt(2*g*h).
	playerJumpSpeed = -380.0

	playerMaxHealth = 100
)

// Player is the controllable body. Physics lives in the chipmunk world; this
// type only translates input into velocity changes and tracks game stats.
type Player struct {
	world *obj.World
	body  *cp.Body

	Health int
	Coins  int

	prevJump bool
	img      *ebiten.Image
}

func NewPlayer(world *obj.World, x, y float64) *Player {
	p := &Player{
		world:  world,
		Health: playerMaxHealth,
	}
	p.body = world.AddPlayer(x, y, playerWidth, playerHeight)
	return p
}

func (p *Player) Update() {
	v := p.body.Velocity()

	moveX := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		moveX += 1
	}

	jump := ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW)
	if jump && !p.prevJump && p.world.Grounded() {
		v.Y = playerJumpSpeed
	}
	p.prevJump = jump

	p.body.SetVelocity(moveX*playerMoveSpeed, v.Y)
}

func (p *Player) Falling() bool {
	return p.body.Velocity().Y > 0
}

// Bounce is the stomp rebound, a shallower hop than a full jump.
func (p *Player) Bounce() {
	v := p.body.Velocity()
	p.body.SetVelocity(v.X, playerJumpSpeed*0.6)
}

func (p *Player) Position() (float64, float64) {
	pos := p.body.Position()
	return pos.X, pos.Y
}

func (p *Player) SetPosition(x, y float64) {
	p.body.SetPosition(cp.Vector{X: x, Y: y})
	p.body.SetVelocity(0, 0)
}

func (p *Player) Rect() common.Rect {
	pos := p.body.Position()
	return common.Rect{
		X:      pos.X - playerWidth/2,
		Y:      pos.Y - playerHeight/2,
		Width:  playerWidth,
		Height: playerHeight,
	}
}

func (p *Player) Heal(amount int) {
	p.Health += amount
	if p.Health > playerMaxHealth {
		p.Health = playerMaxHealth
	}
}

func (p *Player) Damage(amount int) {
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
}

func (p *Player) Draw(screen *ebiten.Image, camX, camY float64) {
	r := p.Rect()
	if p.img == nil {
		p.img = ebiten.NewImage(1, 1)
		p.img.Fill(colornames.White)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X-camX, r.Y-camY)
	screen.DrawImage(p.img, op)
}
