package generator

import (
	"math"

	"github.com/Faultbox/voxelgard/internal/game/blocks"
)

// Params tunes the terrain shape.
type Params struct {
	// Scale converts world XZ to noise space; smaller values stretch
	// features out.
	Scale       float64
	Octaves     int
	Persistence float64

	// BaseHeight is the surface elevation where noise is zero;
	// Amplitude is the maximum deviation in either direction.
	BaseHeight int
	Amplitude  int

	// WaterLevel is the Y up to which empty columns are flooded.
	WaterLevel int
}

// DefaultParams returns gently rolling terrain with shallow lakes.
func DefaultParams() Params {
	return Params{
		Scale:       0.05,
		Octaves:     4,
		Persistence: 0.5,
		BaseHeight:  32,
		Amplitude:   32,
		WaterLevel:  28,
	}
}

// Block is one generated block at a world position.
type Block struct {
	X, Y, Z int
	Type    uint32
}

// Terrain generates block columns from seeded noise. It is stateless
// apart from the noise table, so the same seed and params always
// produce the same world.
type Terrain struct {
	noise  *PerlinNoise
	params Params
}

// NewTerrain builds a terrain generator for the given seed.
func NewTerrain(seed int64, params Params) *Terrain {
	return &Terrain{
		noise:  NewPerlinNoise(seed),
		params: params,
	}
}

// Params returns the generator's tuning parameters.
func (t *Terrain) Params() Params {
	return t.params
}

// HeightAt returns the surface Y for a world column. Noise in [-1, 1]
// maps to BaseHeight +- Amplitude, rounded to the nearest block.
func (t *Terrain) HeightAt(x, z int) int {
	n := t.noise.FBM(float64(x)*t.params.Scale, float64(z)*t.params.Scale,
		t.params.Octaves, t.params.Persistence)

	return t.params.BaseHeight + int(math.Round(n*float64(t.params.Amplitude)))
}

// GenerateChunk produces all terrain and water blocks for the chunk at
// (chunkX, chunkZ). Columns whose surface sits below the water level
// are flooded up to it.
func (t *Terrain) GenerateChunk(chunkX, chunkZ, chunkSize int) []Block {
	var out []Block

	startX := chunkX * chunkSize
	startZ := chunkZ * chunkSize

	for x := 0; x < chunkSize; x++ {
		for z := 0; z < chunkSize; z++ {
			worldX := startX + x
			worldZ := startZ + z

			height := t.HeightAt(worldX, worldZ)

			for y := 0; y <= height; y++ {
				if bt := t.blockTypeAt(y, height); bt != blocks.AirID {
					out = append(out, Block{X: worldX, Y: y, Z: worldZ, Type: bt})
				}
			}

			if height < t.params.WaterLevel {
				for y := height + 1; y <= t.params.WaterLevel; y++ {
					out = append(out, Block{X: worldX, Y: y, Z: worldZ, Type: blocks.WaterID})
				}
			}
		}
	}

	return out
}

// GenerateRegion produces terrain for a sizeX by sizeZ rectangle
// centered at (centerX, centerZ). Unlike GenerateChunk it emits no
// water, matching its use for spawn platforms and previews.
func (t *Terrain) GenerateRegion(sizeX, sizeZ, centerX, centerZ int) []Block {
	var out []Block

	startX := centerX - sizeX/2
	startZ := centerZ - sizeZ/2

	for x := 0; x < sizeX; x++ {
		for z := 0; z < sizeZ; z++ {
			worldX := startX + x
			worldZ := startZ + z

			height := t.HeightAt(worldX, worldZ)

			for y := 0; y <= height; y++ {
				if bt := t.blockTypeAt(y, height); bt != blocks.AirID {
					out = append(out, Block{X: worldX, Y: y, Z: worldZ, Type: bt})
				}
			}
		}
	}

	return out
}

// blockTypeAt picks the block for depth y in a column with the given
// surface height. Layers from top down: biome surface block, a sand or
// dirt band, stone below, stone again as bedrock at y 0.
func (t *Terrain) blockTypeAt(y, surface int) uint32 {
	if y == 0 {
		return blocks.StoneID
	}

	if y == surface {
		switch {
		case float64(y) > float64(t.params.BaseHeight)+float64(t.params.Amplitude)*0.7:
			return blocks.StoneID
		case y <= t.params.WaterLevel+2:
			return blocks.SandID
		default:
			return blocks.GrassID
		}
	}

	if y > surface-3 && y < surface {
		if surface <= t.params.WaterLevel+2 {
			return blocks.SandID
		}
		return blocks.DirtID
	}

	if y < surface-3 {
		return blocks.StoneID
	}

	return blocks.AirID
}
