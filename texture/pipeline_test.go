package texture

import (
	"context"
	"fmt"
	"image"
	"os"
	"testing"

	"github.com/wzooom/AI-Game-Texture-Pipeline/config"
)

type stubDescriber struct {
	desc string
	err  error
}

func (d *stubDescriber) Describe(ctx context.Context, role Role, level int, finalLevel bool) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	return fmt.Sprintf("%s %s %d", d.desc, role, level), nil
}

type failingImages struct{}

func (failingImages) Generate(ctx context.Context, prompt string, size int) (image.Image, error) {
	return nil, fmt.Errorf("offline")
}

type fixedImages struct{}

func (fixedImages) Generate(ctx context.Context, prompt string, size int) (image.Image, error) {
	return image.NewRGBA(image.Rect(0, 0, size, size)), nil
}

func testTheme() config.Theme {
	return config.Theme{
		Name:        "desert ruins",
		Description: "ancient desert ruins",
		Prompts: map[string]string{
			"background": "crumbling sandstone horizon",
			"platform":   "weathered sandstone ledge",
			"enemy":      "sand scarab",
			"boss":       "colossal sand golem",
		},
	}
}

func newTestPipeline(t *testing.T, describer Describer, images ImageGenerator) (*Pipeline, *Store) {
	t.Helper()
	store := newTestStore(t)
	prompts, err := NewPromptBuilder("desert ruins", "")
	if err != nil {
		t.Fatalf("NewPromptBuilder: %v", err)
	}
	return NewPipeline(testTheme(), describer, images, prompts, store, 16), store
}

func TestPipelineAllFailuresYieldCompletePlaceholderSets(t *testing.T) {
	p, store := newTestPipeline(t,
		&stubDescriber{err: fmt.Errorf("no api key")},
		failingImages{},
	)

	const numLevels = 2
	sets := p.GenerateAll(context.Background(), numLevels)
	if len(sets) != numLevels {
		t.Fatalf("got %d sets, want %d", len(sets), numLevels)
	}

	for level := 1; level <= numLevels; level++ {
		roles := RolesFor(level, numLevels)
		if sets[level].Len() != len(roles) {
			t.Fatalf("level %d has %d textures, want %d", level, sets[level].Len(), len(roles))
		}
		for _, role := range roles {
			tex, ok := sets[level].Lookup(role)
			if !ok {
				t.Fatalf("level %d missing %s", level, role)
			}
			if !tex.Placeholder {
				t.Fatalf("level %d %s should be marked placeholder", level, role)
			}
			if _, err := os.Stat(store.TexturePath(level, role)); err != nil {
				t.Fatalf("level %d %s not persisted: %v", level, role, err)
			}
		}
	}

	if !store.Complete(numLevels) {
		t.Fatalf("placeholder run should still persist the full file set")
	}
}

func TestPipelineFailedDescriptionUsesThemeFallback(t *testing.T) {
	p, store := newTestPipeline(t,
		&stubDescriber{err: fmt.Errorf("rate limited")},
		fixedImages{},
	)

	p.GenerateAll(context.Background(), 1)

	descs, err := store.LoadDescriptions(1)
	if err != nil {
		t.Fatalf("LoadDescriptions: %v", err)
	}
	if got := descs[RolePlatform]; got != "weathered sandstone ledge" {
		t.Fatalf("platform description = %q, want theme fallback", got)
	}
}

func TestPipelineSuccessfulRun(t *testing.T) {
	p, store := newTestPipeline(t,
		&stubDescriber{desc: "vivid"},
		fixedImages{},
	)

	sets := p.GenerateAll(context.Background(), 1)
	tex, ok := sets[1].Lookup(RoleBoss)
	if !ok {
		t.Fatalf("single-level run should include the boss texture")
	}
	if tex.Placeholder {
		t.Fatalf("successful generation should not be marked placeholder")
	}
	if tex.Path != store.TexturePath(1, RoleBoss) {
		t.Fatalf("texture path = %q", tex.Path)
	}

	descs, err := store.LoadDescriptions(1)
	if err != nil {
		t.Fatalf("LoadDescriptions: %v", err)
	}
	if got := descs[RoleEnemy]; got != "vivid enemy 1" {
		t.Fatalf("enemy description = %q", got)
	}
}

func TestFallbackDescription(t *testing.T) {
	theme := testTheme()
	if got := FallbackDescription(theme, RoleEnemy, 2); got != "sand scarab" {
		t.Fatalf("themed fallback = %q", got)
	}
	if got := FallbackDescription(config.Theme{}, RoleEnemy, 2); got != "A enemy for level 2" {
		t.Fatalf("generic fallback = %q", got)
	}
}
