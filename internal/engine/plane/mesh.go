package plane

import (
	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/glowplane/internal/logger"
	"github.com/Faultbox/glowplane/pkg/math"
)

// Jitter is the per-axis scale of the per-frame vertex perturbation.
type Jitter struct {
	X, Y, Z float32
}

// DefaultJitter matches the classic look: a little more vertical sway than
// horizontal or depth sway.
var DefaultJitter = Jitter{X: 0.005, Y: 0.008, Z: 0.005}

// Spec describes the grid to generate.
type Spec struct {
	Width          float32
	Height         float32
	WidthSegments  int
	HeightSegments int
}

// Mesh is the animated plane: its geometry plus the animation buffers
// captured at generation time.
type Mesh struct {
	Geometry *Geometry

	// Original holds the post-displacement positions, Amplitudes the random
	// jitter amplitude per component. Both share the Positions index space.
	Original   []float32
	Amplitudes []float32

	Jitter Jitter

	generation     uint64
	positionsDirty bool
	colorsDirty    bool
	geometryDirty  bool
}

// NewMesh creates an empty mesh. Call Regenerate before use.
func NewMesh(jitter Jitter) *Mesh {
	return &Mesh{Jitter: jitter}
}

// Regenerate replaces the geometry with a fresh grid, displaces every vertex
// upward by d.Offset, records per-axis amplitudes, and paints it base.
func (m *Mesh) Regenerate(spec Spec, d Displacer, base math.Color) {
	m.Geometry = NewGeometry(spec.Width, spec.Height, spec.WidthSegments, spec.HeightSegments)

	pos := m.Geometry.Positions
	m.Amplitudes = make([]float32, len(pos))
	for i := 0; i < len(pos); i += 3 {
		pos[i+2] += d.Offset(pos[i], pos[i+1])
		m.Amplitudes[i] = d.Amplitude()
		m.Amplitudes[i+1] = d.Amplitude()
		m.Amplitudes[i+2] = d.Amplitude()
	}

	m.Original = make([]float32, len(pos))
	copy(m.Original, pos)

	m.generation++
	m.geometryDirty = true
	m.positionsDirty = true

	logger.Named("plane").Debug("plane regenerated",
		zap.Int("vertices", m.Geometry.VertexCount()),
		zap.Int("array_length", len(pos)),
		zap.Int("faces", m.Geometry.FaceCount()),
	)

	m.SetVertexColors(base)
}

// Perturb rewrites every position from its original value and the phase.
// The output depends only on Original, Amplitudes, Jitter and phase.
func (m *Mesh) Perturb(phase float32) {
	if m.Geometry == nil {
		return
	}
	c := math32.Cos(phase)
	s := math32.Sin(phase)
	kx := c * m.Jitter.X
	ky := s * m.Jitter.Y
	kz := c * m.Jitter.Z

	pos := m.Geometry.Positions
	for i := 0; i < len(pos); i += 3 {
		pos[i] = m.Original[i] + kx*m.Amplitudes[i]
		pos[i+1] = m.Original[i+1] + ky*m.Amplitudes[i+1]
		pos[i+2] = m.Original[i+2] + kz*m.Amplitudes[i+2]
	}
	m.positionsDirty = true
}

// SetVertexColors replaces the whole color attribute with c.
func (m *Mesh) SetVertexColors(c math.Color) {
	if m.Geometry == nil {
		return
	}
	n := m.Geometry.VertexCount()
	colors := make([]float32, n*3)
	for i := 0; i < n; i++ {
		colors[i*3] = c.R
		colors[i*3+1] = c.G
		colors[i*3+2] = c.B
	}
	m.Geometry.Colors = colors
	m.colorsDirty = true
}

// SetColor writes one vertex color and flags the color attribute.
func (m *Mesh) SetColor(vertex uint32, c math.Color) {
	m.Geometry.SetColor(vertex, c)
	m.colorsDirty = true
}

// Generation increments on every Regenerate.
func (m *Mesh) Generation() uint64 {
	return m.generation
}

// Dirty reports which attributes changed since the last ClearDirty.
// A geometry change implies both attributes must be reallocated.
func (m *Mesh) Dirty() (geometry, positions, colors bool) {
	return m.geometryDirty, m.positionsDirty, m.colorsDirty
}

// ClearDirty resets the change flags after the renderer has uploaded.
func (m *Mesh) ClearDirty() {
	m.geometryDirty = false
	m.positionsDirty = false
	m.colorsDirty = false
}
