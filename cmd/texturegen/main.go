package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/wzooom/AI-Game-Texture-Pipeline/config"
	"github.com/wzooom/AI-Game-Texture-Pipeline/texture"
)

// texturegen runs the texture pipeline once, headless, and exits. Useful for
// pre-baking assets in CI or inspecting verification copies without starting
// the game.
func main() {
	configPath := flag.String("config", "config.yaml", "path to the yaml config file")
	themeName := flag.String("theme", "", "override the configured texture theme")
	listThemes := flag.Bool("themes", false, "list known themes and exit")
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
	if *listThemes {
		for _, name := range themes.Names() {
			fmt.Println(name)
		}
		return
	}

	store, err := texture.NewStore(cfg.TextureDir, cfg.VerificationDir)
	if err != nil {
		log.Fatal(err)
	}
	prompts, err := texture.NewPromptBuilder(cfg.Theme, cfg.PromptScript)
	if err != nil {
		log.Fatal(err)
	}

	theme := themes.Theme(cfg.Theme)
	pipeline := texture.NewPipeline(
		theme,
		texture.NewOpenAIDescriber(cfg, theme),
		texture.NewPixelLabClient(cfg.PixelLabURL, cfg.PixelLabKey),
		prompts,
		store,
		cfg.TextureSize,
	)

	log.Printf("texturegen: generating %d levels with theme %q", cfg.NumLevels, cfg.Theme)
	sets := pipeline.GenerateAll(context.Background(), cfg.NumLevels)
	for lvl := 1; lvl <= cfg.NumLevels; lvl++ {
		log.Printf("texturegen: level %d: %d textures", lvl, sets[lvl].Len())
	}
}
