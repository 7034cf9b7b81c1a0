// Package mesh holds CPU-side mesh data ready for GPU upload.
package mesh

import "github.com/Faultbox/voxelgard/pkg/math"

// Vertex represents a block mesh vertex with all attributes.
// TextureBounds carries the atlas cell rectangle (minU, minV, maxU, maxV)
// so the fragment shader can tile merged faces inside their cell.
type Vertex struct {
	Position      [3]float32
	Normal        [3]float32
	TexCoord      [2]float32
	TextureBounds [4]float32
}

// Data holds vertices and triangle indices for one draw batch.
type Data struct {
	Vertices []Vertex
	Indices  []uint32
}

// AddQuad appends four vertices and the two triangles covering them.
// Vertices must be given in counter-clockwise order.
func (d *Data) AddQuad(v0, v1, v2, v3 Vertex) {
	base := uint32(len(d.Vertices))
	d.Vertices = append(d.Vertices, v0, v1, v2, v3)
	d.Indices = append(d.Indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}

// Append merges other into d, offsetting the appended indices by d's
// current vertex count so they stay valid.
func (d *Data) Append(other *Data) {
	base := uint32(len(d.Vertices))
	d.Vertices = append(d.Vertices, other.Vertices...)
	for _, idx := range other.Indices {
		d.Indices = append(d.Indices, base+idx)
	}
}

// Empty reports whether the mesh has no geometry.
func (d *Data) Empty() bool {
	return len(d.Vertices) == 0
}

// AABB is an axis-aligned bounding box with world-space corners.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// Contains reports whether the point lies inside the box (inclusive).
func (b AABB) Contains(p math.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Center returns the box center point.
func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}
