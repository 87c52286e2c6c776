// Package demo ties the plane, its animation, hover glow and camera together
// into the per-frame simulation driven by the binaries.
package demo

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/glowplane/internal/config"
	"github.com/Faultbox/glowplane/internal/engine/anim"
	"github.com/Faultbox/glowplane/internal/engine/camera"
	"github.com/Faultbox/glowplane/internal/engine/glow"
	"github.com/Faultbox/glowplane/internal/engine/picking"
	"github.com/Faultbox/glowplane/internal/engine/plane"
	"github.com/Faultbox/glowplane/internal/logger"
	"github.com/Faultbox/glowplane/pkg/math"
)

// Pointer is the last known pointer position in normalized device
// coordinates. It is invalid until the first pointer move.
type Pointer struct {
	X, Y  float32
	Valid bool
}

// Stats is a snapshot of the simulation for the readouts.
type Stats struct {
	Vertices int
	Faces    int
	Phase    float32
	Frames   uint64
	Fades    int
	Hits     uint64
}

// Demo owns the simulation state of one plane scene.
type Demo struct {
	World  World
	Mesh   *plane.Mesh
	Phase  *anim.Phase
	Camera *camera.OrbitCamera
	Fader  *glow.Fader

	displacement config.DisplacementConfig
	displacer    plane.Displacer
	seed         uint64

	pointer Pointer
	hits    uint64

	log *zap.Logger
}

// New builds the demo from configuration and generates the first mesh.
func New(cfg *config.Config) (*Demo, error) {
	easing, err := glow.EaseByName(cfg.Glow.Ease)
	if err != nil {
		return nil, fmt.Errorf("glow.ease: %w", err)
	}

	d := &Demo{
		World:        WorldFromConfig(cfg.World),
		Mesh:         plane.NewMesh(plane.Jitter(cfg.Animation.Jitter)),
		Phase:        anim.NewPhase(cfg.Animation.PhaseStep),
		Fader:        glow.NewFader(cfg.Glow.Duration, easing),
		displacement: cfg.Displacement,
		log:          logger.Named("demo"),
	}
	d.Camera = camera.NewOrbitCamera(cfg.Camera.Distance, camera.Lens{
		FOV:    cfg.Camera.FOV,
		Aspect: float32(cfg.Graphics.Width) / float32(max(cfg.Graphics.Height, 1)),
		Near:   cfg.Camera.Near,
		Far:    cfg.Camera.Far,
	})

	d.Reseed(cfg.Displacement.Seed)
	return d, nil
}

// Seed returns the seed of the current displacer.
func (d *Demo) Seed() uint64 {
	return d.seed
}

// Reseed replaces the displacer and regenerates. A zero seed picks one from
// the clock.
func (d *Demo) Reseed(seed uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	d.seed = seed
	d.displacer = plane.NewDisplacer(d.displacement.Mode, seed, d.displacement.Frequency)
	d.log.Info("displacer seeded",
		zap.String("mode", d.displacement.Mode),
		zap.Uint64("seed", seed),
	)
	d.Regenerate()
}

// Regenerate rebuilds the mesh from the world and cancels running glows,
// which point into the discarded color buffer.
func (d *Demo) Regenerate() {
	d.Fader.Cancel()
	d.Mesh.Regenerate(d.World.Plane, d.displacer, d.World.BaseColor)
}

// SetPlane applies panel dimensions and regenerates if anything changed.
func (d *Demo) SetPlane(spec plane.Spec) bool {
	changed := d.World.SetWidth(spec.Width)
	changed = d.World.SetHeight(spec.Height) || changed
	changed = d.World.SetWidthSegments(spec.WidthSegments) || changed
	changed = d.World.SetHeightSegments(spec.HeightSegments) || changed
	if changed {
		d.Regenerate()
	}
	return changed
}

// SetBaseColor recolors the whole mesh. Running glows are canceled so they
// do not finish on the previous base color.
func (d *Demo) SetBaseColor(c math.Color) {
	if !d.World.SetBaseColor(c) {
		return
	}
	d.Fader.Cancel()
	d.Mesh.SetVertexColors(c)
}

// SetHoverColor changes the glow color for future hovers.
func (d *Demo) SetHoverColor(c math.Color) {
	d.World.SetHoverColor(c)
}

// ApplyWorld replaces the world wholesale, as when loading settings. The
// loaded plane is kept as is; only the panel clamps to PlaneLimits.
func (d *Demo) ApplyWorld(w World) {
	d.World.SetHoverColor(w.HoverColor)
	recolor := d.World.SetBaseColor(w.BaseColor)
	if w.Plane != d.World.Plane {
		d.World.Plane = w.Plane
		d.Regenerate()
		return
	}
	if recolor {
		d.Fader.Cancel()
		d.Mesh.SetVertexColors(d.World.BaseColor)
	}
}

// SetPointerNDC records the pointer in normalized device coordinates.
func (d *Demo) SetPointerNDC(x, y float32) {
	d.pointer = Pointer{X: x, Y: y, Valid: true}
}

// SetPointerPixels records the pointer from window pixel coordinates.
func (d *Demo) SetPointerPixels(px, py, width, height float32) {
	if width <= 0 || height <= 0 {
		return
	}
	x, y := picking.ScreenToNDC(px, py, width, height)
	d.SetPointerNDC(x, y)
}

// ClearPointer stops hover testing until the next pointer move.
func (d *Demo) ClearPointer() {
	d.pointer = Pointer{}
}

// Pointer returns the current pointer state.
func (d *Demo) Pointer() Pointer {
	return d.pointer
}

// Resize follows the window: the camera aspect tracks the viewport.
func (d *Demo) Resize(width, height int) {
	d.Camera.SetAspect(width, height)
}

// Update runs one frame: advance the phase, perturb the vertices, run the
// glows by dt seconds, then test the pointer and start a glow on a hit.
func (d *Demo) Update(dt float32) {
	d.Mesh.Perturb(d.Phase.Advance())
	d.Fader.Tick(dt, d.Mesh)
	d.hover()
}

// hover starts a glow on the triangle under the pointer, if any.
// Nothing is written when the ray misses.
func (d *Demo) hover() (plane.Face, bool) {
	if !d.pointer.Valid || d.Mesh.Geometry == nil {
		return plane.Face{}, false
	}

	inv := d.Camera.ViewProj().Inverse()
	ray := picking.NDCToRay(d.pointer.X, d.pointer.Y, inv)
	hit, ok := picking.IntersectMesh(ray, d.Mesh.Geometry)
	if !ok {
		return plane.Face{}, false
	}

	d.hits++
	d.Fader.Trigger(hit.Face, d.World.HoverColor, d.World.BaseColor, d.Mesh)
	return hit.Face, true
}

// Stats returns the current readout values.
func (d *Demo) Stats() Stats {
	s := Stats{
		Phase:  d.Phase.Value(),
		Frames: d.Phase.Frames(),
		Fades:  d.Fader.Active(),
		Hits:   d.hits,
	}
	if g := d.Mesh.Geometry; g != nil {
		s.Vertices = g.VertexCount()
		s.Faces = g.FaceCount()
	}
	return s
}

// Snapshot returns cfg with the world section replaced by the live values
// and the current seed recorded, ready to be saved.
func (d *Demo) Snapshot(cfg *config.Config) *config.Config {
	out := *cfg
	out.World = d.World.Config()
	out.Displacement.Seed = d.seed
	return &out
}
