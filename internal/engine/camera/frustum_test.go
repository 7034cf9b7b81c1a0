package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/voxelgard/internal/engine/mesh"
	"github.com/Faultbox/voxelgard/pkg/math"
)

// testFrustum builds a frustum for a camera at the origin looking down -Z
// with a 90 degree FOV and a 0.1..100 depth range.
func testFrustum() *Frustum {
	proj := math.Perspective(float32(gomath.Pi/2), 1.0, 0.1, 100)
	view := math.LookAt(
		math.Vec3{X: 0, Y: 0, Z: 0},
		math.Vec3{X: 0, Y: 0, Z: -1},
		math.Vec3{X: 0, Y: 1, Z: 0},
	)

	var f Frustum
	f.ExtractFromMatrix(proj.Mul(view))
	return &f
}

func box(minX, minY, minZ, maxX, maxY, maxZ float32) mesh.AABB {
	return mesh.AABB{
		Min: math.Vec3{X: minX, Y: minY, Z: minZ},
		Max: math.Vec3{X: maxX, Y: maxY, Z: maxZ},
	}
}

func TestBoxInFrontVisible(t *testing.T) {
	f := testFrustum()

	if !f.IsBoxVisible(box(-1, -1, -10, 1, 1, -5)) {
		t.Error("expected box directly ahead to be visible")
	}
}

func TestBoxBehindCulled(t *testing.T) {
	f := testFrustum()

	if f.IsBoxVisible(box(-1, -1, 5, 1, 1, 10)) {
		t.Error("expected box behind the camera to be culled")
	}
}

func TestBoxBeyondFarPlaneCulled(t *testing.T) {
	f := testFrustum()

	if f.IsBoxVisible(box(-1, -1, -250, 1, 1, -200)) {
		t.Error("expected box beyond the far plane to be culled")
	}
}

func TestBoxStraddlingPlaneVisible(t *testing.T) {
	f := testFrustum()

	// Partially intersecting boxes count as visible
	if !f.IsBoxVisible(box(-5, -5, -20, 200, 5, -10)) {
		t.Error("expected box straddling the right plane to be visible")
	}
}

func TestBoxFarOffAxisCulled(t *testing.T) {
	f := testFrustum()

	// At z=-10 with a 90 degree FOV the half-width is 10; x in [50,60] is well outside
	if f.IsBoxVisible(box(50, -1, -10, 60, 1, -9)) {
		t.Error("expected box far to the side to be culled")
	}
}

func TestSphereVisibility(t *testing.T) {
	f := testFrustum()

	if !f.IsSphereVisible(math.Vec3{X: 0, Y: 0, Z: -10}, 1) {
		t.Error("expected sphere ahead to be visible")
	}
	if f.IsSphereVisible(math.Vec3{X: 0, Y: 0, Z: 10}, 1) {
		t.Error("expected sphere behind the camera to be culled")
	}

	// Sphere center outside but radius reaching in counts as visible
	if !f.IsSphereVisible(math.Vec3{X: 0, Y: 0, Z: 2}, 5) {
		t.Error("expected large sphere overlapping the near plane to be visible")
	}
}

func TestChunkBoundsVisibility(t *testing.T) {
	f := testFrustum()

	// A chunk-sized column ahead of the camera
	if !f.IsBoxVisible(box(-8, -50, -40, 8, 206, -24)) {
		t.Error("expected chunk column ahead to be visible")
	}

	// The same column behind the camera
	if f.IsBoxVisible(box(-8, -50, 24, 8, 206, 40)) {
		t.Error("expected chunk column behind to be culled")
	}
}

func TestFlyCameraForward(t *testing.T) {
	c := NewFlyCamera(math.Vec3{})
	c.Yaw = 0
	c.Pitch = 0

	fwd := c.Forward()
	if fwd.Z >= 0 {
		t.Errorf("expected yaw 0 to look down -Z, got %v", fwd)
	}
	if l := fwd.Length(); l < 0.999 || l > 1.001 {
		t.Errorf("Forward() length = %v, want ~1", l)
	}
}

func TestFlyCameraPitchClamp(t *testing.T) {
	c := NewFlyCamera(math.Vec3{})

	// Drag far past the clamp range
	c.HandleMouse(0, -100000)
	if c.Pitch > c.MaxPitch {
		t.Errorf("pitch %v exceeds max %v", c.Pitch, c.MaxPitch)
	}
	c.HandleMouse(0, 100000)
	if c.Pitch < c.MinPitch {
		t.Errorf("pitch %v below min %v", c.Pitch, c.MinPitch)
	}
}

func TestFlyCameraMove(t *testing.T) {
	c := NewFlyCamera(math.Vec3{})
	c.Yaw = 0
	c.Pitch = 0
	c.MoveSpeed = 10

	c.Move(1, 0, 0, 0.5) // Forward half a second
	if c.Position.Z >= 0 {
		t.Errorf("expected forward move along -Z, position %v", c.Position)
	}

	start := c.Position
	c.Move(0, 0, 1, 1) // Straight up
	if c.Position.Y <= start.Y {
		t.Errorf("expected upward move, position %v", c.Position)
	}
}
