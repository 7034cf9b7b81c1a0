package camera

import (
	"github.com/Faultbox/voxelgard/internal/engine/mesh"
	"github.com/Faultbox/voxelgard/pkg/math"
)

// Plane is a world-space plane in normal/distance form.
// Points with DistanceToPoint >= 0 are on the inside.
type Plane struct {
	Normal   math.Vec3
	Distance float32
}

// DistanceToPoint returns the signed distance from the plane to a point.
func (p Plane) DistanceToPoint(pt math.Vec3) float32 {
	return p.Normal.Dot(pt) + p.Distance
}

// Frustum holds the six planes of a camera view volume.
type Frustum struct {
	planes [6]Plane
}

const (
	planeLeft = iota
	planeRight
	planeBottom
	planeTop
	planeNear
	planeFar
)

// ExtractFromMatrix rebuilds the frustum planes from a combined
// view-projection matrix using the Gribb-Hartmann method: each plane
// is a sum or difference of two rows of the matrix.
func (f *Frustum) ExtractFromMatrix(viewProj math.Mat4) {
	// Row i of the column-major matrix is (m[i], m[4+i], m[8+i], m[12+i])
	row := func(i int) (x, y, z, w float32) {
		return viewProj[i], viewProj[4+i], viewProj[8+i], viewProj[12+i]
	}

	x3, y3, z3, w3 := row(3)

	set := func(idx int, x, y, z, w float32) {
		f.planes[idx] = Plane{Normal: math.Vec3{X: x, Y: y, Z: z}, Distance: w}
	}

	x0, y0, z0, w0 := row(0)
	set(planeLeft, x3+x0, y3+y0, z3+z0, w3+w0)
	set(planeRight, x3-x0, y3-y0, z3-z0, w3-w0)

	x1, y1, z1, w1 := row(1)
	set(planeBottom, x3+x1, y3+y1, z3+z1, w3+w1)
	set(planeTop, x3-x1, y3-y1, z3-z1, w3-w1)

	x2, y2, z2, w2 := row(2)
	set(planeNear, x3+x2, y3+y2, z3+z2, w3+w2)
	set(planeFar, x3-x2, y3-y2, z3-z2, w3-w2)

	// Normalize so plane distances are in world units
	for i := range f.planes {
		l := f.planes[i].Normal.Length()
		if l > 0 {
			f.planes[i].Normal = f.planes[i].Normal.Scale(1 / l)
			f.planes[i].Distance /= l
		}
	}
}

// IsBoxVisible reports whether an AABB intersects the frustum.
// Uses the positive-vertex test: for each plane, only the box corner
// furthest along the plane normal needs checking.
func (f *Frustum) IsBoxVisible(box mesh.AABB) bool {
	for _, plane := range f.planes {
		positive := box.Min
		if plane.Normal.X >= 0 {
			positive.X = box.Max.X
		}
		if plane.Normal.Y >= 0 {
			positive.Y = box.Max.Y
		}
		if plane.Normal.Z >= 0 {
			positive.Z = box.Max.Z
		}

		if plane.DistanceToPoint(positive) < 0 {
			return false
		}
	}
	return true
}

// IsSphereVisible reports whether a sphere intersects the frustum.
func (f *Frustum) IsSphereVisible(center math.Vec3, radius float32) bool {
	for _, plane := range f.planes {
		if plane.DistanceToPoint(center) < -radius {
			return false
		}
	}
	return true
}
