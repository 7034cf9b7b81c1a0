// Package camera provides camera and frustum culling for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/Faultbox/voxelgard/pkg/math"
)

// FlyCamera is a free-flying first-person camera.
type FlyCamera struct {
	Position math.Vec3

	// Orientation (radians)
	Yaw   float32 // Horizontal angle, 0 looks down -Z
	Pitch float32 // Vertical angle, clamped short of straight up/down

	// Tuning
	MoveSpeed        float32 // World units per second
	MouseSensitivity float32

	MinPitch float32
	MaxPitch float32
}

// NewFlyCamera creates a fly camera at the given position with defaults.
func NewFlyCamera(pos math.Vec3) *FlyCamera {
	return &FlyCamera{
		Position:         pos,
		Yaw:              0,
		Pitch:            -0.4,
		MoveSpeed:        24.0,
		MouseSensitivity: 0.0025,
		MinPitch:         -1.55,
		MaxPitch:         1.55,
	}
}

// Forward returns the camera's view direction.
func (c *FlyCamera) Forward() math.Vec3 {
	cosPitch := float32(gomath.Cos(float64(c.Pitch)))
	return math.Vec3{
		X: float32(gomath.Sin(float64(c.Yaw))) * cosPitch,
		Y: float32(gomath.Sin(float64(c.Pitch))),
		Z: -float32(gomath.Cos(float64(c.Yaw))) * cosPitch,
	}
}

// Right returns the camera's right direction on the XZ plane.
func (c *FlyCamera) Right() math.Vec3 {
	return math.Vec3{
		X: float32(gomath.Cos(float64(c.Yaw))),
		Y: 0,
		Z: float32(gomath.Sin(float64(c.Yaw))),
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	target := c.Position.Add(c.Forward())
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(c.Position, target, up)
}

// HandleMouse updates orientation from a relative mouse delta.
func (c *FlyCamera) HandleMouse(deltaX, deltaY float32) {
	c.Yaw += deltaX * c.MouseSensitivity
	c.Pitch -= deltaY * c.MouseSensitivity

	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
}

// Move translates the camera along its local axes.
// forward/right/up are -1..1 input axes, dt is the frame time in seconds.
func (c *FlyCamera) Move(forward, right, up, dt float32) {
	step := c.MoveSpeed * dt

	c.Position = c.Position.
		Add(c.Forward().Scale(forward * step)).
		Add(c.Right().Scale(right * step))
	c.Position.Y += up * step
}
