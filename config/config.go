package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wzooom/AI-Game-Texture-Pipeline/common"
)

// Config is the full configuration surface consumed by the asset and level
// provisioning core. Everything has a usable default so the game runs with no
// config file at all.
type Config struct {
	Theme     string `yaml:"theme"`
	NumLevels int    `yaml:"num_levels"`

	MaxJumpHeight   float64 `yaml:"max_jump_height"`
	MaxJumpDistance float64 `yaml:"max_jump_distance"`

	TextureTimeoutSeconds int    `yaml:"texture_timeout_seconds"`
	TextureDir            string `yaml:"texture_dir"`
	VerificationDir       string `yaml:"verification_dir"`
	TextureSize           int    `yaml:"texture_size"`

	// PromptScript is an optional Tengo script that can rewrite image prompts
	// before they are sent to the image generator.
	PromptScript string `yaml:"prompt_script"`

	OpenAIURL   string `yaml:"openai_url"`
	PixelLabURL string `yaml:"pixellab_url"`

	OpenAIKey   string `yaml:"-"`
	PixelLabKey string `yaml:"-"`
}

func Default() Config {
	return Config{
		Theme:                 "desert ruins",
		NumLevels:             3,
		MaxJumpHeight:         common.MaxJumpHeight,
		MaxJumpDistance:       common.MaxJumpDistance,
		TextureTimeoutSeconds: 30,
		TextureDir:            "assets/textures",
		VerificationDir:       "assets/pixellab_generated",
		TextureSize:           256,
		OpenAIURL:             "https://api.openai.com/v1/chat/completions",
		PixelLabURL:           "https://api.pixellab.ai/v1/generate",
		OpenAIKey:             os.Getenv("OPENAI_API_KEY"),
		PixelLabKey:           os.Getenv("PIXEL_LAB_API_KEY"),
	}
}

// Load reads a yaml config from path layered over the defaults. A missing
// file is not an error; it just means defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if cfg.NumLevels < 1 {
		return cfg, fmt.Errorf("config: num_levels must be >= 1, got %d", cfg.NumLevels)
	}
	return cfg, nil
}

func (c Config) TextureTimeout() time.Duration {
	return time.Duration(c.TextureTimeoutSeconds) * time.Second
}
