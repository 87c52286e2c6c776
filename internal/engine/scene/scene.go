// Package scene renders the lit plane into an offscreen framebuffer.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/glowplane/internal/engine/camera"
	"github.com/Faultbox/glowplane/internal/engine/framebuffer"
	"github.com/Faultbox/glowplane/internal/engine/lighting"
	"github.com/Faultbox/glowplane/internal/engine/plane"
	"github.com/Faultbox/glowplane/pkg/math"
)

// Config contains scene configuration options.
type Config struct {
	Width      int32
	Height     int32
	Background math.Color
}

// Scene owns the render target, the plane renderer and the light rig.
type Scene struct {
	framebuffer *framebuffer.Framebuffer
	plane       *PlaneRenderer

	Lights     *lighting.Rig
	Background math.Color
}

// New creates a new scene with the given configuration.
func New(cfg Config) (*Scene, error) {
	s := &Scene{
		Lights:     lighting.DefaultRig(),
		Background: cfg.Background,
	}

	var err error
	s.framebuffer, err = framebuffer.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("creating framebuffer: %w", err)
	}

	s.plane, err = NewPlaneRenderer()
	if err != nil {
		s.Destroy()
		return nil, fmt.Errorf("creating plane renderer: %w", err)
	}

	return s, nil
}

// Resize matches the render target to the viewport.
func (s *Scene) Resize(width, height int32) bool {
	return s.framebuffer.Resize(width, height)
}

// Render uploads pending mesh changes and draws the mesh from cam.
func (s *Scene) Render(cam *camera.OrbitCamera, mesh *plane.Mesh) {
	restore := s.framebuffer.Bind()
	defer restore()

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.BLEND)

	s.framebuffer.Clear(s.Background.R, s.Background.G, s.Background.B, 1)

	s.plane.Sync(mesh)
	s.plane.Render(cam.ViewProj(), cam.Position(), s.Lights)
}

// Present copies the last frame to the window, for callers without an
// ImGui layer.
func (s *Scene) Present(width, height int32) {
	s.framebuffer.BlitToDefault(width, height)
}

// Texture returns the color texture holding the last rendered frame.
func (s *Scene) Texture() uint32 {
	return s.framebuffer.ColorTexture()
}

// Size returns the render target size.
func (s *Scene) Size() (width, height int32) {
	return s.framebuffer.Size()
}

// ReadPixels returns the last rendered frame as RGBA, bottom row first.
func (s *Scene) ReadPixels() []byte {
	return s.framebuffer.ReadPixels()
}

// Destroy releases all GPU resources.
func (s *Scene) Destroy() {
	if s.plane != nil {
		s.plane.Destroy()
		s.plane = nil
	}
	if s.framebuffer != nil {
		s.framebuffer.Destroy()
		s.framebuffer = nil
	}
}
