package chunk

import (
	"fmt"

	"github.com/Faultbox/voxelgard/internal/engine/mesh"
	"github.com/Faultbox/voxelgard/internal/game/blocks"
)

// FaceMesher emits one quad per exposed block face without merging.
// Slower and heavier than the greedy mesher, but each quad maps to
// exactly one block face, which makes it the reference to compare
// optimized meshers against.
type FaceMesher struct {
	atlas    AtlasUV
	registry *blocks.Registry
}

// NewFaceMesher creates a per-face mesher.
func NewFaceMesher(atlas AtlasUV, registry *blocks.Registry) (*FaceMesher, error) {
	if atlas == nil {
		return nil, fmt.Errorf("face mesher: atlas is nil")
	}
	if registry == nil {
		return nil, fmt.Errorf("face mesher: registry is nil")
	}
	return &FaceMesher{atlas: atlas, registry: registry}, nil
}

// Cube corners relative to the block's min corner, indexed 0..7.
var cubeCorners = [8][3]float32{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

// faceGeometry picks four cube corners in counter-clockwise order as
// seen from outside, plus the face normal.
var faceGeometry = [blocks.FaceCount]struct {
	corners [4]int
	normal  [3]float32
}{
	blocks.FaceFront:  {corners: [4]int{4, 5, 6, 7}, normal: [3]float32{0, 0, 1}},
	blocks.FaceBack:   {corners: [4]int{1, 0, 3, 2}, normal: [3]float32{0, 0, -1}},
	blocks.FaceLeft:   {corners: [4]int{0, 4, 7, 3}, normal: [3]float32{-1, 0, 0}},
	blocks.FaceRight:  {corners: [4]int{5, 1, 2, 6}, normal: [3]float32{1, 0, 0}},
	blocks.FaceTop:    {corners: [4]int{7, 6, 2, 3}, normal: [3]float32{0, 1, 0}},
	blocks.FaceBottom: {corners: [4]int{0, 1, 5, 4}, normal: [3]float32{0, -1, 0}},
}

// Mesh generates one quad for every exposed face, grouped by block
// type. Positions are chunk-local like the greedy mesher's.
func (m *FaceMesher) Mesh(c *VoxelChunk) BlockMeshes {
	meshes := make(BlockMeshes)

	for x := 0; x < SizeX; x++ {
		for y := 0; y < SizeY; y++ {
			for z := 0; z < SizeZ; z++ {
				typeID := c.Get(x, y, z)
				if typeID == blocks.AirID {
					continue
				}

				def := m.registry.ByID(typeID)
				if def == nil {
					continue
				}

				for face := blocks.Face(0); face < blocks.FaceCount; face++ {
					if c.ShouldRenderFace(x, y, z, face) {
						m.addFace(meshes, def, x, y, z, face)
					}
				}
			}
		}
	}

	return meshes
}

func (m *FaceMesher) addFace(meshes BlockMeshes, def *blocks.Definition, x, y, z int, face blocks.Face) {
	uv := m.atlas.UV(def.Texture(face))
	geo := faceGeometry[face]

	bounds := [4]float32{uv.MinU, uv.MinV, uv.MaxU, uv.MaxV}
	uvs := [4][2]float32{
		{uv.MinU + uvInset, uv.MinV + uvInset},
		{uv.MaxU - uvInset, uv.MinV + uvInset},
		{uv.MaxU - uvInset, uv.MaxV - uvInset},
		{uv.MinU + uvInset, uv.MaxV - uvInset},
	}

	data := meshes[def.ID]
	if data == nil {
		data = &mesh.Data{}
		meshes[def.ID] = data
	}

	vertex := func(i int) mesh.Vertex {
		corner := cubeCorners[geo.corners[i]]
		return mesh.Vertex{
			Position: [3]float32{
				float32(x) + corner[0],
				float32(y) + corner[1],
				float32(z) + corner[2],
			},
			Normal:        geo.normal,
			TexCoord:      uvs[i],
			TextureBounds: bounds,
		}
	}
	data.AddQuad(vertex(0), vertex(1), vertex(2), vertex(3))
}
