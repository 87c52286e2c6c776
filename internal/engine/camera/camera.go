// Package camera provides the orbit camera used to view the plane.
package camera

import (
	gomath "math"

	"github.com/Faultbox/glowplane/pkg/math"
)

// Lens holds the perspective projection parameters.
type Lens struct {
	FOV    float32 // Vertical field of view, degrees
	Aspect float32 // Width / height
	Near   float32
	Far    float32
}

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	// Center point to orbit around
	CenterX, CenterY, CenterZ float32

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	Lens Lens

	home float32
}

// NewOrbitCamera creates an orbit camera on the +Z axis looking at the origin.
func NewOrbitCamera(distance float32, lens Lens) *OrbitCamera {
	return &OrbitCamera{
		Distance:        distance,
		RotationX:       0,
		RotationY:       0,
		MinDistance:     1.0,
		MaxDistance:     500.0,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		Lens:            lens,
		home:            distance,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	pitch := float64(c.RotationX)
	offset := math.Vec3{
		Y: float32(gomath.Sin(pitch)),
		Z: float32(gomath.Cos(pitch)),
	}.Scale(c.Distance)

	orbit := math.Translate(c.CenterX, c.CenterY, c.CenterZ).Mul(math.RotateY(c.RotationY))
	p := orbit.TransformPoint(offset.Array())
	return math.Vec3{X: p[0], Y: p[1], Z: p[2]}
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	pos := c.Position()
	center := math.Vec3{X: c.CenterX, Y: c.CenterY, Z: c.CenterZ}
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(pos, center, up)
}

// ProjectionMatrix returns the perspective projection for the current lens.
func (c *OrbitCamera) ProjectionMatrix() math.Mat4 {
	fov := c.Lens.FOV * gomath.Pi / 180
	return math.Perspective(fov, c.Lens.Aspect, c.Lens.Near, c.Lens.Far)
}

// ViewProj returns projection * view.
func (c *OrbitCamera) ViewProj() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// SetAspect updates the lens aspect ratio from a viewport size.
func (c *OrbitCamera) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Lens.Aspect = float32(width) / float32(height)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity

	// Clamp pitch
	if c.RotationX < c.MinPitch {
		c.RotationX = c.MinPitch
	}
	if c.RotationX > c.MaxPitch {
		c.RotationX = c.MaxPitch
	}
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// Reset returns to the initial front view.
func (c *OrbitCamera) Reset() {
	c.CenterX, c.CenterY, c.CenterZ = 0, 0, 0
	c.RotationX = 0
	c.RotationY = 0
	c.Distance = c.home
}
