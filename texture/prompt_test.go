package texture

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPromptBuildComposition(t *testing.T) {
	b, err := NewPromptBuilder("desert ruins", "")
	if err != nil {
		t.Fatalf("NewPromptBuilder: %v", err)
	}

	got := b.Build(context.Background(), "a sandstone ledge", RolePlatform, 2)
	if !strings.HasPrefix(got, promptBaseStyle) {
		t.Fatalf("prompt %q missing base style prefix", got)
	}
	if !strings.Contains(got, "a sandstone ledge") {
		t.Fatalf("prompt %q missing description", got)
	}
	if !strings.HasSuffix(got, promptQualityTerms) {
		t.Fatalf("prompt %q missing quality terms suffix", got)
	}
}

func TestPromptHookRewrites(t *testing.T) {
	script := filepath.Join(t.TempDir(), "hook.tengo")
	src := `prompt = prompt + ", " + theme + " level " + string(level) + " " + role`
	if err := os.WriteFile(script, []byte(src), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}

	b, err := NewPromptBuilder("enchanted forest", script)
	if err != nil {
		t.Fatalf("NewPromptBuilder: %v", err)
	}

	got := b.Build(context.Background(), "a mossy log", RolePlatform, 3)
	if !strings.HasSuffix(got, "enchanted forest level 3 platform") {
		t.Fatalf("hook did not rewrite prompt: %q", got)
	}
}

func TestPromptHookFailureFallsBack(t *testing.T) {
	script := filepath.Join(t.TempDir(), "hook.tengo")
	// Compiles fine but fails at run time.
	src := `prompt = prompt[100000]`
	if err := os.WriteFile(script, []byte(src), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}

	b, err := NewPromptBuilder("desert ruins", script)
	if err != nil {
		t.Fatalf("NewPromptBuilder: %v", err)
	}

	got := b.Build(context.Background(), "a dune", RoleBackground, 1)
	if !strings.Contains(got, "a dune") || !strings.HasPrefix(got, promptBaseStyle) {
		t.Fatalf("runtime hook failure should fall back to composed prompt, got %q", got)
	}
}

func TestPromptScriptCompileErrors(t *testing.T) {
	script := filepath.Join(t.TempDir(), "hook.tengo")
	if err := os.WriteFile(script, []byte(`prompt = = broken`), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}

	if _, err := NewPromptBuilder("desert ruins", script); err == nil {
		t.Fatalf("expected compile error for broken script")
	}
}

func TestPromptScriptMissingFile(t *testing.T) {
	if _, err := NewPromptBuilder("desert ruins", filepath.Join(t.TempDir(), "nope.tengo")); err == nil {
		t.Fatalf("expected error for missing script file")
	}
}
