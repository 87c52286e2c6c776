package ui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
)

// StatsOverlay shows the frame rate in the top-left corner.
type StatsOverlay struct {
	fps           float64
	frameTime     float64 // ms
	fpsUpdateTime float64 // seconds since last FPS update
	frameAccum    int

	Enabled bool
}

// NewStatsOverlay creates an overlay.
func NewStatsOverlay(enabled bool) *StatsOverlay {
	return &StatsOverlay{Enabled: enabled}
}

// Update records one frame. deltaMs is the frame time in milliseconds.
func (o *StatsOverlay) Update(deltaMs float64) {
	o.frameTime = deltaMs
	o.frameAccum++
	o.fpsUpdateTime += deltaMs / 1000.0

	// Update FPS every 0.5 seconds
	if o.fpsUpdateTime >= 0.5 {
		o.fps = float64(o.frameAccum) / o.fpsUpdateTime
		o.frameAccum = 0
		o.fpsUpdateTime = 0
	}
}

// FPS returns the last averaged frame rate.
func (o *StatsOverlay) FPS() float64 {
	return o.fps
}

// Render draws the overlay.
func (o *StatsOverlay) Render() {
	if !o.Enabled {
		return
	}

	imgui.SetNextWindowPos(imgui.NewVec2(10, 10))
	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoSavedSettings | imgui.WindowFlagsNoFocusOnAppearing |
		imgui.WindowFlagsNoInputs | imgui.WindowFlagsAlwaysAutoResize
	imgui.SetNextWindowBgAlpha(0.6)

	if imgui.BeginV("##StatsOverlay", nil, flags) {
		fpsColor := imgui.NewVec4(0.2, 1.0, 0.2, 1.0)
		if o.fps < 30 {
			fpsColor = imgui.NewVec4(1.0, 0.2, 0.2, 1.0)
		} else if o.fps < 60 {
			fpsColor = imgui.NewVec4(1.0, 1.0, 0.2, 1.0)
		}
		imgui.TextColored(fpsColor, fmt.Sprintf("FPS: %.1f", o.fps))
		imgui.SameLine()
		imgui.TextDisabled(fmt.Sprintf("(%.2f ms)", o.frameTime))
	}
	imgui.End()
}

// Notice is a short status message shown at the bottom of the window.
type Notice struct {
	text  string
	shown time.Time
	ttl   time.Duration
}

// Show replaces the current message.
func (n *Notice) Show(format string, args ...any) {
	n.text = fmt.Sprintf(format, args...)
	n.shown = time.Now()
	if n.ttl == 0 {
		n.ttl = 2 * time.Second
	}
}

// Render draws the message until it expires.
func (n *Notice) Render(viewportWidth, viewportHeight float32) {
	if n.text == "" {
		return
	}
	if time.Since(n.shown) > n.ttl {
		n.text = ""
		return
	}

	msgWidth := float32(360)
	imgui.SetNextWindowPos(imgui.NewVec2((viewportWidth-msgWidth)/2, viewportHeight-60))
	imgui.SetNextWindowSize(imgui.NewVec2(msgWidth, 0))
	imgui.SetNextWindowBgAlpha(0.8)
	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoInputs |
		imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoSavedSettings
	if imgui.BeginV("##Notice", nil, flags) {
		imgui.TextColored(imgui.NewVec4(0.2, 1.0, 0.2, 1.0), n.text)
	}
	imgui.End()
}
