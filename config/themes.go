package config

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed themes.yaml
var defaultThemesYAML []byte

// Theme holds the prompt templates for one visual theme. Prompts is keyed by
// texture role name and doubles as the fallback description when the
// description generator is unavailable.
type Theme struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Prompts     map[string]string `yaml:"prompts"`
}

type themeFile struct {
	Themes map[string]Theme `yaml:"themes"`
}

// Catalog is the set of known themes, keyed by theme id ("desert ruins").
type Catalog struct {
	themes map[string]Theme
}

// LoadThemes reads a theme catalog from path, falling back to the embedded
// defaults when path is empty or missing.
func LoadThemes(path string) (*Catalog, error) {
	data := defaultThemesYAML
	if path != "" {
		b, err := os.ReadFile(path)
		if err == nil {
			data = b
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: read themes %s: %w", path, err)
		}
	}

	var f themeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: unmarshal themes: %w", err)
	}
	if len(f.Themes) == 0 {
		return nil, fmt.Errorf("config: theme catalog is empty")
	}
	return &Catalog{themes: f.Themes}, nil
}

// Theme returns the named theme, or the fallback generic theme if the name is
// unknown. Unknown names are not an error; the pipeline degrades to generic
// prompts instead of refusing to start.
func (c *Catalog) Theme(name string) Theme {
	if t, ok := c.themes[name]; ok {
		return t
	}
	return Theme{
		Name:        name,
		Description: "generic game environment",
		Prompts:     map[string]string{},
	}
}

func (c *Catalog) Has(name string) bool {
	_, ok := c.themes[name]
	return ok
}

func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.themes))
	for name := range c.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
