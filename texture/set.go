package texture

import "image"

// Texture is one resolved per-level asset: the decoded pixels plus where it
// lives on disk. Placeholder is set when the asset was synthesized locally
// instead of fetched from the image generator.
type Texture struct {
	Role        Role
	Path        string
	Image       image.Image
	Placeholder bool
}

// Set maps texture roles to resolved assets for a single level. A Set is
// populated once by the provisioner and treated as immutable afterwards;
// regeneration swaps whole Sets, it never mutates one in place.
type Set struct {
	Level    int
	textures map[Role]Texture
}

// EmptySet is what callers get when provisioning timed out or failed
// wholesale for a level. Lookups on it miss, and materialization falls back
// to placeholders.
func EmptySet(level int) *Set {
	return &Set{Level: level, textures: map[Role]Texture{}}
}

func NewSet(level int, textures []Texture) *Set {
	s := EmptySet(level)
	for _, t := range textures {
		s.textures[t.Role] = t
	}
	return s
}

func (s *Set) Lookup(role Role) (Texture, bool) {
	if s == nil {
		return Texture{}, false
	}
	t, ok := s.textures[role]
	return t, ok
}

// Image returns the decoded image for role, or nil when absent.
func (s *Set) Image(role Role) image.Image {
	t, ok := s.Lookup(role)
	if !ok {
		return nil
	}
	return t.Image
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.textures)
}
