package texture

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

const (
	promptBaseStyle    = "pixel art, 16-bit style, game asset"
	promptQualityTerms = "high quality, detailed, crisp, vibrant colors, good contrast, clean pixel art, no blur, sharp edges, optimized for game sprites"
)

// PromptBuilder composes image-generation prompts from descriptions. An
// optional Tengo hook script can rewrite the composed prompt; the script sees
// `prompt`, `role`, `level` and `theme` variables and leaves its result in
// `prompt`.
type PromptBuilder struct {
	theme string

	mu       sync.Mutex
	compiled *tengo.Compiled
}

func NewPromptBuilder(theme, scriptPath string) (*PromptBuilder, error) {
	b := &PromptBuilder{theme: theme}
	if scriptPath == "" {
		return b, nil
	}

	src, err := os.ReadFile(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("texture: read prompt script %s: %w", scriptPath, err)
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("text", "fmt"))
	for name, v := range map[string]interface{}{
		"prompt": "",
		"role":   "",
		"level":  0,
		"theme":  "",
	} {
		if err := script.Add(name, v); err != nil {
			return nil, fmt.Errorf("texture: bind prompt script var %s: %w", name, err)
		}
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("texture: compile prompt script %s: %w", scriptPath, err)
	}
	b.compiled = compiled
	return b, nil
}

// Build turns a description into the full prompt sent to the image
// generator. Hook failures fall back to the un-hooked prompt; a broken
// user script must not break provisioning.
func (b *PromptBuilder) Build(ctx context.Context, description string, role Role, level int) string {
	prompt := fmt.Sprintf("%s, %s, %s", promptBaseStyle, description, promptQualityTerms)
	if b.compiled == nil {
		return prompt
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	c := b.compiled.Clone()
	_ = c.Set("prompt", prompt)
	_ = c.Set("role", string(role))
	_ = c.Set("level", level)
	_ = c.Set("theme", b.theme)
	if err := c.RunContext(ctx); err != nil {
		return prompt
	}
	if out := c.Get("prompt").String(); out != "" {
		return out
	}
	return prompt
}
