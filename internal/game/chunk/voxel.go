// Package chunk stores the world as fixed-size voxel grids and turns
// them into renderable meshes.
package chunk

import "github.com/Faultbox/voxelgard/internal/game/blocks"

// Chunk dimensions in blocks. A chunk is a full-height vertical column
// of the world.
const (
	SizeX = 16
	SizeY = 256
	SizeZ = 16
)

// VoxelChunk is a dense grid of block type IDs. Reads outside the
// bounds return air and writes outside are dropped, so neighbor probes
// at chunk edges need no range checks.
type VoxelChunk struct {
	registry *blocks.Registry
	voxels   []uint32
}

// NewVoxelChunk creates an all-air chunk resolving block properties
// through the given registry.
func NewVoxelChunk(registry *blocks.Registry) *VoxelChunk {
	return &VoxelChunk{
		registry: registry,
		voxels:   make([]uint32, SizeX*SizeY*SizeZ),
	}
}

func index(x, y, z int) int {
	return x + y*SizeX + z*SizeX*SizeY
}

func inBounds(x, y, z int) bool {
	return x >= 0 && x < SizeX &&
		y >= 0 && y < SizeY &&
		z >= 0 && z < SizeZ
}

// Get returns the block type at a local position, or air out of bounds.
func (c *VoxelChunk) Get(x, y, z int) uint32 {
	if !inBounds(x, y, z) {
		return blocks.AirID
	}
	return c.voxels[index(x, y, z)]
}

// Set writes a block type at a local position. Out-of-bounds writes
// are ignored.
func (c *VoxelChunk) Set(x, y, z int, typeID uint32) {
	if inBounds(x, y, z) {
		c.voxels[index(x, y, z)] = typeID
	}
}

// IsSolid reports whether the block at a position occludes its
// neighbors. Air, unknown IDs and non-solid blocks such as water do
// not occlude.
func (c *VoxelChunk) IsSolid(x, y, z int) bool {
	id := c.Get(x, y, z)
	if id == blocks.AirID {
		return false
	}
	def := c.registry.ByID(id)
	return def != nil && def.Solid
}

// ShouldRenderFace reports whether the given face of the block at
// (x, y, z) is exposed. Air renders nothing; a face against a solid
// neighbor is hidden.
func (c *VoxelChunk) ShouldRenderFace(x, y, z int, face blocks.Face) bool {
	if c.Get(x, y, z) == blocks.AirID {
		return false
	}

	nx, ny, nz := x, y, z
	switch face {
	case blocks.FaceFront:
		nz++
	case blocks.FaceBack:
		nz--
	case blocks.FaceLeft:
		nx--
	case blocks.FaceRight:
		nx++
	case blocks.FaceTop:
		ny++
	case blocks.FaceBottom:
		ny--
	}

	return !c.IsSolid(nx, ny, nz)
}

// Registry returns the registry the chunk resolves block types with.
func (c *VoxelChunk) Registry() *blocks.Registry {
	return c.registry
}
