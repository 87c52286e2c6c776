// Package plane builds the animated plane mesh: grid geometry, generation-time
// displacement, per-frame vertex jitter and vertex colors.
package plane

import "github.com/Faultbox/glowplane/pkg/math"

// Geometry is a triangle mesh with per-vertex colors.
// Positions and Colors are flat x,y,z / r,g,b arrays of the same length.
type Geometry struct {
	Positions []float32
	Colors    []float32
	Indices   []uint32

	WidthSegments  int
	HeightSegments int
}

// Face is a triangle given by three vertex indices.
type Face struct {
	A, B, C uint32
}

// NewGeometry builds a grid in the XY plane centered on the origin, facing +Z.
// Vertices are ordered row by row from +Y to -Y, left to right; each cell
// contributes the triangles (a,b,d) and (b,c,d).
func NewGeometry(width, height float32, widthSegments, heightSegments int) *Geometry {
	if widthSegments < 1 {
		widthSegments = 1
	}
	if heightSegments < 1 {
		heightSegments = 1
	}

	gridX1 := widthSegments + 1
	gridY1 := heightSegments + 1
	segW := width / float32(widthSegments)
	segH := height / float32(heightSegments)
	halfW := width / 2
	halfH := height / 2

	g := &Geometry{
		Positions:      make([]float32, 0, gridX1*gridY1*3),
		Colors:         make([]float32, gridX1*gridY1*3),
		Indices:        make([]uint32, 0, widthSegments*heightSegments*6),
		WidthSegments:  widthSegments,
		HeightSegments: heightSegments,
	}

	for iy := 0; iy < gridY1; iy++ {
		y := halfH - float32(iy)*segH
		for ix := 0; ix < gridX1; ix++ {
			x := float32(ix)*segW - halfW
			g.Positions = append(g.Positions, x, y, 0)
		}
	}

	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := uint32(ix + gridX1*iy)
			b := uint32(ix + gridX1*(iy+1))
			c := uint32(ix + 1 + gridX1*(iy+1))
			d := uint32(ix + 1 + gridX1*iy)
			g.Indices = append(g.Indices, a, b, d, b, c, d)
		}
	}

	return g
}

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() int {
	return len(g.Positions) / 3
}

// FaceCount returns the number of triangles.
func (g *Geometry) FaceCount() int {
	return len(g.Indices) / 3
}

// Face returns the i-th triangle.
func (g *Geometry) Face(i int) Face {
	return Face{A: g.Indices[i*3], B: g.Indices[i*3+1], C: g.Indices[i*3+2]}
}

// Vertex returns the current position of vertex i.
func (g *Geometry) Vertex(i uint32) [3]float32 {
	p := g.Positions[i*3 : i*3+3]
	return [3]float32{p[0], p[1], p[2]}
}

// SetColor writes c into the color slot of vertex i.
func (g *Geometry) SetColor(i uint32, c math.Color) {
	g.Colors[i*3] = c.R
	g.Colors[i*3+1] = c.G
	g.Colors[i*3+2] = c.B
}

// ColorAt reads the color slot of vertex i.
func (g *Geometry) ColorAt(i uint32) math.Color {
	return math.Color{R: g.Colors[i*3], G: g.Colors[i*3+1], B: g.Colors[i*3+2]}
}

// Bounds returns the axis-aligned bounds of the current positions.
func (g *Geometry) Bounds() (min, max [3]float32) {
	if len(g.Positions) == 0 {
		return min, max
	}
	min = [3]float32{g.Positions[0], g.Positions[1], g.Positions[2]}
	max = min
	for i := 3; i < len(g.Positions); i += 3 {
		for k := 0; k < 3; k++ {
			v := g.Positions[i+k]
			if v < min[k] {
				min[k] = v
			}
			if v > max[k] {
				max[k] = v
			}
		}
	}
	return min, max
}
