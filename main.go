package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wzooom/AI-Game-Texture-Pipeline/common"
	"github.com/wzooom/AI-Game-Texture-Pipeline/config"
	"github.com/wzooom/AI-Game-Texture-Pipeline/level"
	"github.com/wzooom/AI-Game-Texture-Pipeline/texture"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the yaml config file")
	themeName := flag.String("theme", "", "override the configured texture theme")
	startLevel := flag.Int("level", 1, "level to start on")
	bossRoom := flag.Bool("boss", false, "start in the boss room variant")
	regen := flag.Bool("regen", false, "force texture regeneration even if files exist")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *themeName != "" {
		cfg.Theme = *themeName
	}

	themes, err := config.LoadThemes("")
	if err != nil {
		log.Fatal(err)
	}
	if !themes.Has(cfg.Theme) {
		log.Printf("main: unknown theme %q, known themes: %v", cfg.Theme, themes.Names())
	}
	theme := themes.Theme(cfg.Theme)

	store, err := texture.NewStore(cfg.TextureDir, cfg.VerificationDir)
	if err != nil {
		log.Fatal(err)
	}

	prompts, err := texture.NewPromptBuilder(cfg.Theme, cfg.PromptScript)
	if err != nil {
		log.Fatal(err)
	}

	pipeline := texture.NewPipeline(
		theme,
		texture.NewOpenAIDescriber(cfg, theme),
		texture.NewPixelLabClient(cfg.PixelLabURL, cfg.PixelLabKey),
		prompts,
		store,
		cfg.TextureSize,
	)

	provisioner := texture.NewProvisioner(store, pipeline, cfg.NumLevels, cfg.TextureTimeout())
	if *regen {
		provisioner.Regenerate()
	} else {
		provisioner.Begin()
	}

	watcher, err := texture.NewWatcher(provisioner, cfg.TextureDir)
	if err != nil {
		log.Printf("main: texture watcher unavailable: %v", err)
	} else {
		defer watcher.Close()
	}

	factory := level.NewFactory(level.NewValidator(cfg.MaxJumpHeight, cfg.MaxJumpDistance))
	levels := level.NewInstanceCache(factory, provisioner)

	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("AI Texture Platformer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := NewGame(cfg, provisioner, levels, level.Key{Level: *startLevel, BossRoom: *bossRoom})
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
