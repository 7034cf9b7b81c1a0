// Package texture provides texture atlas metadata and GL texture loading.
package texture

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/voxelgard/internal/logger"
)

// UV is a texture's rectangle in normalized [0,1] atlas space.
type UV struct {
	MinU, MinV float32
	MaxU, MaxV float32
}

// Atlas maps texture names to their UV rectangles inside a packed atlas image.
type Atlas struct {
	uvs      map[string]UV
	fallback string // lowest-index texture, used for unknown names

	atlasSize      int
	textureSize    int
	texturesPerRow int
}

// atlasMeta mirrors the JSON produced by the atlas packer.
type atlasMeta struct {
	TextureSize    int `json:"texture_size"`
	AtlasSize      int `json:"atlas_size"`
	TexturesPerRow int `json:"textures_per_row"`
	Textures       map[string]struct {
		Index int `json:"index"`
		UV    struct {
			Min [2]float32 `json:"min"`
			Max [2]float32 `json:"max"`
		} `json:"uv"`
	} `json:"textures"`
}

// LoadAtlas reads atlas UV metadata from a JSON file.
func LoadAtlas(path string) (*Atlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading atlas metadata: %w", err)
	}

	var meta atlasMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parsing atlas metadata: %w", err)
	}

	a := &Atlas{
		uvs:            make(map[string]UV, len(meta.Textures)),
		atlasSize:      meta.AtlasSize,
		textureSize:    meta.TextureSize,
		texturesPerRow: meta.TexturesPerRow,
	}

	lowest := -1
	for name, tex := range meta.Textures {
		a.uvs[name] = UV{
			MinU: tex.UV.Min[0],
			MinV: tex.UV.Min[1],
			MaxU: tex.UV.Max[0],
			MaxV: tex.UV.Max[1],
		}
		if lowest < 0 || tex.Index < lowest {
			lowest = tex.Index
			a.fallback = name
		}
	}

	logger.Info("loaded texture atlas",
		zap.String("path", path),
		zap.Int("textures", len(a.uvs)),
		zap.Int("atlas_size", a.atlasSize),
		zap.Int("texture_size", a.textureSize),
	)

	return a, nil
}

// UV returns the atlas rectangle for the named texture. Unknown names
// resolve to the first packed texture so a missing entry shows up as a
// wrong texture rather than a crash.
func (a *Atlas) UV(name string) UV {
	if uv, ok := a.uvs[name]; ok {
		return uv
	}

	logger.Warn("texture not in atlas, using fallback",
		zap.String("name", name),
		zap.String("fallback", a.fallback),
	)

	if uv, ok := a.uvs[a.fallback]; ok {
		return uv
	}
	return UV{MaxU: 1, MaxV: 1}
}

// HasTexture reports whether the named texture exists in the atlas.
func (a *Atlas) HasTexture(name string) bool {
	_, ok := a.uvs[name]
	return ok
}

// TextureCount returns the number of textures in the atlas.
func (a *Atlas) TextureCount() int {
	return len(a.uvs)
}
