// Package picking provides ray casting against the plane mesh.
package picking

import (
	gomath "math"

	"github.com/Faultbox/glowplane/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    [3]float32
	Direction [3]float32 // Normalized direction
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min [3]float32
	Max [3]float32
}

// ScreenToNDC converts pixel coordinates to normalized device coordinates
// with +Y up.
func ScreenToNDC(screenX, screenY, viewportW, viewportH float32) (x, y float32) {
	return screenX/viewportW*2 - 1, -(screenY/viewportH)*2 + 1
}

// NDCToRay unprojects normalized device coordinates through the camera.
func NDCToRay(ndcX, ndcY float32, invViewProj math.Mat4) Ray {
	nearWorld := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, -1.0, 1.0})
	farWorld := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, 1.0, 1.0})

	// Perspective divide
	if nearWorld[3] != 0 {
		nearWorld[0] /= nearWorld[3]
		nearWorld[1] /= nearWorld[3]
		nearWorld[2] /= nearWorld[3]
	}
	if farWorld[3] != 0 {
		farWorld[0] /= farWorld[3]
		farWorld[1] /= farWorld[3]
		farWorld[2] /= farWorld[3]
	}

	origin := [3]float32{nearWorld[0], nearWorld[1], nearWorld[2]}
	dir := [3]float32{
		farWorld[0] - nearWorld[0],
		farWorld[1] - nearWorld[1],
		farWorld[2] - nearWorld[2],
	}

	// Normalize direction
	rayLen := float32(gomath.Sqrt(float64(dir[0]*dir[0] + dir[1]*dir[1] + dir[2]*dir[2])))
	if rayLen > 0 {
		dir[0] /= rayLen
		dir[1] /= rayLen
		dir[2] /= rayLen
	}

	return Ray{Origin: origin, Direction: dir}
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	for axis := 0; axis < 3; axis++ {
		if r.Direction[axis] != 0 {
			t1 := (box.Min[axis] - r.Origin[axis]) / r.Direction[axis]
			t2 := (box.Max[axis] - r.Origin[axis]) / r.Direction[axis]
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			if t1 > tmin {
				tmin = t1
			}
			if t2 < tmax {
				tmax = t2
			}
		} else if r.Origin[axis] < box.Min[axis] || r.Origin[axis] > box.Max[axis] {
			return 0, false
		}
	}

	// Check if intersection is valid
	if tmax < tmin || tmax < 0 {
		return 0, false
	}

	// Return entry point, or exit point if starting inside
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// NewAABB creates an AABB from min and max corners, growing it by pad on
// every side so flat boxes stay hittable.
func NewAABB(min, max [3]float32, pad float32) AABB {
	box := AABB{Min: min, Max: max}
	for i := 0; i < 3; i++ {
		// Ensure min < max for each axis
		if box.Min[i] > box.Max[i] {
			box.Min[i], box.Max[i] = box.Max[i], box.Min[i]
		}
		box.Min[i] -= pad
		box.Max[i] += pad
	}
	return box
}

const epsilon = 1e-7

// IntersectTriangle tests the ray against triangle (v0, v1, v2) from either
// side. Returns the hit distance along the ray.
func (r Ray) IntersectTriangle(v0, v1, v2 [3]float32) (t float32, hit bool) {
	e1 := sub(v1, v0)
	e2 := sub(v2, v0)
	p := cross(r.Direction, e2)
	det := dot(e1, p)
	if det > -epsilon && det < epsilon {
		return 0, false // Ray parallel to triangle
	}
	inv := 1 / det

	s := sub(r.Origin, v0)
	u := dot(s, p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}

	q := cross(s, e1)
	v := dot(r.Direction, q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t = dot(e2, q) * inv
	if t < 0 {
		return 0, false // Behind ray origin
	}
	return t, true
}

func sub(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func dot(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
