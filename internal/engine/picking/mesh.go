package picking

import (
	"github.com/Faultbox/glowplane/internal/engine/plane"
)

// Hit is the nearest intersection of a ray with a mesh.
type Hit struct {
	Distance  float32
	FaceIndex int
	Face      plane.Face
	Point     [3]float32
}

// IntersectMesh returns the nearest triangle of g hit by r. The mesh is
// tested in its current (animated) pose with an identity model transform.
func IntersectMesh(r Ray, g *plane.Geometry) (Hit, bool) {
	if g == nil || g.FaceCount() == 0 {
		return Hit{}, false
	}

	min, max := g.Bounds()
	if _, ok := r.IntersectAABB(NewAABB(min, max, 1e-3)); !ok {
		return Hit{}, false
	}

	best := Hit{FaceIndex: -1}
	for i := 0; i < g.FaceCount(); i++ {
		f := g.Face(i)
		t, ok := r.IntersectTriangle(g.Vertex(f.A), g.Vertex(f.B), g.Vertex(f.C))
		if !ok {
			continue
		}
		if best.FaceIndex < 0 || t < best.Distance {
			best = Hit{Distance: t, FaceIndex: i, Face: f}
		}
	}

	if best.FaceIndex < 0 {
		return Hit{}, false
	}
	best.Point = [3]float32{
		r.Origin[0] + r.Direction[0]*best.Distance,
		r.Origin[1] + r.Direction[1]*best.Distance,
		r.Origin[2] + r.Direction[2]*best.Distance,
	}
	return best, true
}
