package texture

import (
	"context"
	"log"

	"github.com/wzooom/AI-Game-Texture-Pipeline/config"
)

// Pipeline runs the full description -> prompt -> image -> disk chain for
// every (level, role) unit. Every external failure is absorbed here: a failed
// description falls back to the theme's default prompt, a failed image falls
// back to a synthesized placeholder. GenerateAll never returns an error.
type Pipeline struct {
	theme     config.Theme
	describer Describer
	images    ImageGenerator
	prompts   *PromptBuilder
	store     *Store
	size      int
}

func NewPipeline(theme config.Theme, describer Describer, images ImageGenerator, prompts *PromptBuilder, store *Store, size int) *Pipeline {
	return &Pipeline{
		theme:     theme,
		describer: describer,
		images:    images,
		prompts:   prompts,
		store:     store,
		size:      size,
	}
}

// GenerateAll produces one Set per level. Levels whose persistence fails end
// up with partial or empty Sets, never with an error.
func (p *Pipeline) GenerateAll(ctx context.Context, numLevels int) map[int]*Set {
	sets := make(map[int]*Set, numLevels)
	for level := 1; level <= numLevels; level++ {
		sets[level] = p.generateLevel(ctx, level, numLevels)
	}
	return sets
}

func (p *Pipeline) generateLevel(ctx context.Context, level, numLevels int) *Set {
	finalLevel := level == numLevels
	descriptions := make(map[Role]string)
	var textures []Texture

	for _, role := range RolesFor(level, numLevels) {
		desc, err := p.describer.Describe(ctx, role, level, finalLevel)
		if err != nil {
			desc = FallbackDescription(p.theme, role, level)
			log.Printf("texture: description for level %d %s unavailable, using theme default: %v", level, role, err)
		}
		descriptions[role] = desc

		prompt := p.prompts.Build(ctx, desc, role, level)
		img, err := p.images.Generate(ctx, prompt, p.size)
		placeholder := false
		if err != nil {
			log.Printf("texture: image for level %d %s failed, using placeholder: %v", level, role, err)
			img = Placeholder(role, level, p.size)
			placeholder = true
		}

		path, err := p.store.Save(level, role, img)
		if err != nil {
			log.Printf("texture: persist level %d %s: %v", level, role, err)
		}
		textures = append(textures, Texture{
			Role:        role,
			Path:        path,
			Image:       img,
			Placeholder: placeholder,
		})
	}

	if err := p.store.SaveDescriptions(level, descriptions); err != nil {
		log.Printf("texture: %v", err)
	}
	return NewSet(level, textures)
}
