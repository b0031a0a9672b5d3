package texture

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// Store owns the on-disk texture layout: one png per (level, role) in the
// textures directory, a verification copy per generated image for manual
// inspection, and one descriptions json per level. Presence of the full
// expected png set is the fast-path signal that skips regeneration.
type Store struct {
	TextureDir      string
	VerificationDir string
}

func NewStore(textureDir, verificationDir string) (*Store, error) {
	for _, dir := range []string{textureDir, verificationDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("texture: create dir %s: %w", dir, err)
		}
	}
	return &Store{TextureDir: textureDir, VerificationDir: verificationDir}, nil
}

func (s *Store) TexturePath(level int, role Role) string {
	return filepath.Join(s.TextureDir, fmt.Sprintf("level_%d_%s.png", level, role))
}

func (s *Store) verificationPath(level int, role Role) string {
	return filepath.Join(s.VerificationDir, fmt.Sprintf("pixellab_level_%d_%s.png", level, role))
}

func (s *Store) descriptionsPath(level int) string {
	return filepath.Join(s.TextureDir, fmt.Sprintf("level_%d_descriptions.json", level))
}

// Complete reports whether every expected texture file already exists.
func (s *Store) Complete(numLevels int) bool {
	for level := 1; level <= numLevels; level++ {
		for _, role := range RolesFor(level, numLevels) {
			if _, err := os.Stat(s.TexturePath(level, role)); err != nil {
				return false
			}
		}
	}
	return true
}

// LoadExisting decodes the persisted texture files for every level. Files
// that fail to decode are skipped; the level still gets a Set with whatever
// did load.
func (s *Store) LoadExisting(numLevels int) map[int]*Set {
	sets := make(map[int]*Set, numLevels)
	for level := 1; level <= numLevels; level++ {
		var textures []Texture
		for _, role := range RolesFor(level, numLevels) {
			path := s.TexturePath(level, role)
			img, err := loadPNG(path)
			if err != nil {
				continue
			}
			textures = append(textures, Texture{Role: role, Path: path, Image: img})
		}
		sets[level] = NewSet(level, textures)
	}
	return sets
}

// Save writes the texture png plus its verification copy and returns the
// game-facing path.
func (s *Store) Save(level int, role Role, img image.Image) (string, error) {
	path := s.TexturePath(level, role)
	if err := writePNG(path, img); err != nil {
		return "", err
	}
	if err := writePNG(s.verificationPath(level, role), img); err != nil {
		return "", err
	}
	return path, nil
}

func (s *Store) SaveDescriptions(level int, descriptions map[Role]string) error {
	data, err := json.MarshalIndent(descriptions, "", "  ")
	if err != nil {
		return fmt.Errorf("texture: marshal descriptions: %w", err)
	}
	path := s.descriptionsPath(level)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("texture: write %s: %w", path, err)
	}
	return nil
}

func (s *Store) LoadDescriptions(level int) (map[Role]string, error) {
	data, err := os.ReadFile(s.descriptionsPath(level))
	if err != nil {
		return nil, fmt.Errorf("texture: read descriptions: %w", err)
	}
	var out map[Role]string
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("texture: unmarshal descriptions: %w", err)
	}
	return out, nil
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return img, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("texture: create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("texture: encode %s: %w", path, err)
	}
	return nil
}
