package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/wzooom/AI-Game-Texture-Pipeline/common"
	"github.com/wzooom/AI-Game-Texture-Pipeline/config"
	"github.com/wzooom/AI-Game-Texture-Pipeline/level"
	"github.com/wzooom/AI-Game-Texture-Pipeline/obj"
	"github.com/wzooom/AI-Game-Texture-Pipeline/texture"
)

const (
	physicsDT   = 1.0 / 60.0
	enemyDamage = 10
	stompDamage = 25

	// hurtFrames is the post-hit invulnerability window.
	hurtFrames = 45
)

// Game wires the provisioning core into ebiten's loop. All services are
// constructed in main and passed in; nothing here is package-global, so tests
// and tools can build their own stacks.
type Game struct {
	cfg         config.Config
	provisioner *texture.Provisioner
	levels      *level.InstanceCache

	current *level.Instance
	world   *obj.World
	player  *Player

	camX, camY float64

	paused   bool
	ui       *ebitenui.UI
	won      bool
	frames   int
	hurtCool int
}

func NewGame(cfg config.Config, provisioner *texture.Provisioner, levels *level.InstanceCache, start level.Key) *Game {
	g := &Game{
		cfg:         cfg,
		provisioner: provisioner,
		levels:      levels,
	}
	g.ui = NewPauseUI(g)
	g.enterLevel(start)
	return g
}

// enterLevel materializes (or re-fetches) the level instance and rebuilds the
// physics world around its platforms.
func (g *Game) enterLevel(key level.Key) {
	g.current = g.levels.CreateOrGet(key)
	g.world = obj.NewWorld(g.current.Platforms())
	g.player = NewPlayer(g.world, 60, g.current.Height()-common.GroundThickness-playerHeight)
	log.Printf("game: entered %s", key)
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	g.player.Update()
	g.world.Step(physicsDT)
	if g.hurtCool > 0 {
		g.hurtCool--
	}

	for _, e := range g.current.Enemies() {
		e.Update()
		if !e.Alive() || !e.Rect().Intersects(g.player.Rect()) {
			continue
		}
		// Landing on an enemy stomps it; any other contact hurts the player.
		if g.player.Falling() && g.player.Rect().Bottom() < e.Rect().Top()+e.Size/2 {
			e.Damage(stompDamage)
			g.player.Bounce()
		} else if g.hurtCool == 0 {
			g.player.Damage(enemyDamage)
			g.hurtCool = hurtFrames
		}
	}
	for _, p := range g.current.Pickups() {
		p.Update()
		if !p.Collected && p.Rect().Intersects(g.player.Rect()) {
			g.player.Heal(p.Collect())
		}
	}
	for _, c := range g.current.Chests() {
		if !c.Opened && c.Rect().Intersects(g.player.Rect()) {
			g.player.Coins += c.Open()
		}
	}
	for _, d := range g.current.Doors() {
		if d.Rect().Intersects(g.player.Rect()) {
			g.advance()
			return nil
		}
	}
	if _, y := g.player.Position(); y > g.current.Height()+200 {
		g.player.Damage(enemyDamage)
		g.player.SetPosition(60, g.current.Height()-common.GroundThickness-playerHeight)
	}
	if g.player.Health == 0 {
		log.Printf("game: player down, restarting %s", g.current.Key())
		g.enterLevel(g.current.Key())
		return nil
	}

	if g.current.Key().BossRoom {
		g.checkBossDefeated()
	}

	g.updateCamera()
	return nil
}

// advance moves through regular levels in order, then into the final boss
// room.
func (g *Game) advance() {
	key := g.current.Key()
	next := level.Key{Level: key.Level + 1}
	if key.Level >= g.cfg.NumLevels {
		next = level.Key{Level: g.cfg.NumLevels, BossRoom: true}
	}
	g.enterLevel(next)
}

func (g *Game) checkBossDefeated() {
	for _, e := range g.current.Enemies() {
		if e.Boss && e.Alive() {
			return
		}
	}
	if !g.won {
		g.won = true
		log.Printf("game: boss defeated, run complete")
	}
}

func (g *Game) updateCamera() {
	x, y := g.player.Position()
	g.camX = common.Clamp(x-common.BaseWidth/2, 0, g.current.Width()-common.BaseWidth)
	g.camY = common.Clamp(y-common.BaseHeight/2, 0, g.current.Height()-common.BaseHeight)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Background().Draw(screen, g.camX, g.camY)
	for _, p := range g.current.Platforms() {
		p.Draw(screen, g.camX, g.camY)
	}
	for _, c := range g.current.Chests() {
		c.Draw(screen, g.camX, g.camY)
	}
	for _, p := range g.current.Pickups() {
		p.Draw(screen, g.camX, g.camY)
	}
	for _, e := range g.current.Enemies() {
		e.Draw(screen, g.camX, g.camY)
	}
	for _, d := range g.current.Doors() {
		d.Draw(screen, g.camX, g.camY)
	}
	g.player.Draw(screen, g.camX, g.camY)

	status := "textures: ready"
	if !g.provisioner.Ready() {
		status = "textures: generating..."
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  HP: %d  Coins: %d  FPS: %.0f",
		status, g.player.Health, g.player.Coins, ebiten.ActualFPS()))

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
