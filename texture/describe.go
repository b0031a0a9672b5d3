package texture

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/wzooom/AI-Game-Texture-Pipeline/config"
)

// Describer produces a short natural-language description of a texture for
// the image generator to draw. Implementations may fail; the pipeline
// substitutes the theme's default prompt on any error, so failures here never
// surface past the provisioning boundary.
type Describer interface {
	Describe(ctx context.Context, role Role, level int, finalLevel bool) (string, error)
}

// OpenAIDescriber asks a chat-completion endpoint for descriptions.
type OpenAIDescriber struct {
	URL    string
	APIKey string
	Theme  config.Theme
	Client *http.Client
}

func NewOpenAIDescriber(cfg config.Config, theme config.Theme) *OpenAIDescriber {
	return &OpenAIDescriber{
		URL:    cfg.OpenAIURL,
		APIKey: cfg.OpenAIKey,
		Theme:  theme,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (d *OpenAIDescriber) Describe(ctx context.Context, role Role, level int, finalLevel bool) (string, error) {
	if d.APIKey == "" {
		return "", fmt.Errorf("texture: no description API key configured")
	}

	body, err := json.Marshal(chatRequest{
		Model: "gpt-3.5-turbo",
		Messages: []chatMessage{
			{Role: "system", Content: "You are a game asset designer specializing in pixel art descriptions."},
			{Role: "user", Content: d.descriptionPrompt(role, level, finalLevel)},
		},
		MaxTokens:   150,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("texture: marshal description request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.URL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("texture: build description request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+d.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("texture: description request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("texture: description request status %d", resp.StatusCode)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("texture: decode description response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("texture: description response has no choices")
	}

	desc := strings.TrimSpace(out.Choices[0].Message.Content)
	if desc == "" {
		return "", fmt.Errorf("texture: empty description")
	}
	return desc, nil
}

func (d *OpenAIDescriber) descriptionPrompt(role Role, level int, finalLevel bool) string {
	base := fmt.Sprintf(
		"Create a detailed description for a %s texture in a %s themed level %d of a 2D platformer game.",
		role, d.Theme.Description, level)

	switch {
	case role == RoleBackground:
		return base + " The background should set the mood and atmosphere for the level."
	case role == RolePlatform:
		return base + " The platform should be sturdy and fit the theme, suitable for jumping."
	case role == RoleEnemy:
		return base + " The enemy should be challenging but not overwhelming, fitting the theme."
	case role == RoleBoss && finalLevel:
		return base + " This is the final boss - make it imposing, large, and thematically appropriate."
	}
	return base
}

// FallbackDescription is the theme-keyed default used when the describer
// fails or is not configured.
func FallbackDescription(theme config.Theme, role Role, level int) string {
	if p, ok := theme.Prompts[string(role)]; ok && p != "" {
		return p
	}
	return fmt.Sprintf("A %s for level %d", role, level)
}
