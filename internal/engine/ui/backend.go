// Package ui provides the ImGui window, the parameter panel and overlays.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Backend wraps the ImGui SDL backend that owns the window and GL context.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
}

// NewBackend creates the window and initializes OpenGL function pointers.
func NewBackend(title string, width, height int) (*Backend, error) {
	b := &Backend{}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetBgColor(imgui.NewVec4(0, 0, 0, 1))
	b.backend.CreateWindow(title, width, height)

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}

	return b, nil
}

// Run starts the main render loop. It returns when the window is closed.
func (b *Backend) Run(renderFunc func()) {
	b.backend.Run(renderFunc)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// DisplaySize returns the window size in logical pixels.
func DisplaySize() (width, height float32) {
	size := imgui.CurrentIO().DisplaySize()
	return size.X, size.Y
}

// FramebufferSize returns the window size in physical pixels, which differs
// from DisplaySize on HiDPI screens.
func FramebufferSize() (width, height int32) {
	io := imgui.CurrentIO()
	size := io.DisplaySize()
	scale := io.DisplayFramebufferScale()
	if scale.X <= 0 || scale.Y <= 0 {
		return int32(size.X), int32(size.Y)
	}
	return int32(size.X * scale.X), int32(size.Y * scale.Y)
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}

// DrawSceneBackground shows a rendered scene texture behind every other window.
func DrawSceneBackground(texID uint32, width, height float32) {
	if texID == 0 {
		return
	}

	imgui.SetNextWindowPos(imgui.NewVec2(0, 0))
	imgui.SetNextWindowSize(imgui.NewVec2(width, height))

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoScrollWithMouse | imgui.WindowFlagsNoBringToFrontOnFocus |
		imgui.WindowFlagsNoInputs | imgui.WindowFlagsNoSavedSettings

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	if imgui.BeginV("##SceneBackground", nil, flags) {
		texRef := imgui.NewTextureRefTextureID(imgui.TextureID(texID))
		imgui.ImageV(*texRef,
			imgui.NewVec2(width, height),
			imgui.NewVec2(0, 1), // GL textures are bottom-up
			imgui.NewVec2(1, 0))
	}
	imgui.End()
	imgui.PopStyleVar()
}
