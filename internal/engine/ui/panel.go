package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/glowplane/pkg/math"
)

// PanelValues are the values shown and edited by the parameter panel.
type PanelValues struct {
	Width          float32
	Height         float32
	WidthSegments  int
	HeightSegments int
	MeshColor      math.Color
	GlowColor      math.Color
}

// PanelLimits are the slider ranges.
type PanelLimits struct {
	SizeMin, SizeMax         float32
	SegmentsMin, SegmentsMax int
}

// Readouts are the read-only values printed under the controls.
type Readouts struct {
	Vertices int
	Faces    int
	Phase    float32
	Fades    int
	Seed     uint64
}

// PanelCallbacks are invoked when the user edits a control. Nil callbacks
// are skipped.
type PanelCallbacks struct {
	OnPlane      func(width, height float32, widthSegments, heightSegments int)
	OnMeshColor  func(c math.Color)
	OnGlowColor  func(c math.Color)
	OnRegenerate func()
	OnSave       func()
	OnLoad       func()
}

// Panel is the "Controls" window.
type Panel struct {
	limits    PanelLimits
	callbacks PanelCallbacks

	// Widget state
	width, height         float32
	widthSegs, heightSegs int32
	meshColor             [3]float32
	glowColor             [3]float32

	Visible bool
}

// NewPanel creates the panel with initial values.
func NewPanel(values PanelValues, limits PanelLimits, callbacks PanelCallbacks) *Panel {
	p := &Panel{
		limits:    limits,
		callbacks: callbacks,
		Visible:   true,
	}
	p.Sync(values)
	return p
}

// Sync overwrites the widget state, as after loading settings.
func (p *Panel) Sync(v PanelValues) {
	p.width = v.Width
	p.height = v.Height
	p.widthSegs = int32(v.WidthSegments)
	p.heightSegs = int32(v.HeightSegments)
	p.meshColor = v.MeshColor.Array()
	p.glowColor = v.GlowColor.Array()
}

// Values returns the current widget state.
func (p *Panel) Values() PanelValues {
	return PanelValues{
		Width:          p.width,
		Height:         p.height,
		WidthSegments:  int(p.widthSegs),
		HeightSegments: int(p.heightSegs),
		MeshColor:      math.ColorFromArray(p.meshColor),
		GlowColor:      math.ColorFromArray(p.glowColor),
	}
}

// Render draws the panel in the top-right corner.
func (p *Panel) Render(viewportWidth float32, r Readouts) {
	if !p.Visible {
		return
	}

	panelWidth := float32(280)
	imgui.SetNextWindowPosV(imgui.NewVec2(viewportWidth-panelWidth-10, 10), imgui.CondFirstUseEver, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(panelWidth, 0), imgui.CondFirstUseEver)
	imgui.SetNextWindowBgAlpha(0.85)

	if imgui.BeginV("Controls", &p.Visible, imgui.WindowFlagsAlwaysAutoResize) {
		p.renderPlane()
		imgui.Separator()
		p.renderColors()
		imgui.Separator()
		p.renderActions()
		imgui.Separator()
		renderReadouts(r)
	}
	imgui.End()
}

func (p *Panel) renderPlane() {
	changed := false
	if imgui.SliderFloat("Width", &p.width, p.limits.SizeMin, p.limits.SizeMax) {
		changed = true
	}
	if imgui.SliderFloat("Height", &p.height, p.limits.SizeMin, p.limits.SizeMax) {
		changed = true
	}
	segMin, segMax := int32(p.limits.SegmentsMin), int32(p.limits.SegmentsMax)
	if imgui.SliderInt("Segment Wd", &p.widthSegs, segMin, segMax) {
		changed = true
	}
	if imgui.SliderInt("Segment Ht", &p.heightSegs, segMin, segMax) {
		changed = true
	}

	if changed && p.callbacks.OnPlane != nil {
		p.callbacks.OnPlane(p.width, p.height, int(p.widthSegs), int(p.heightSegs))
	}
}

func (p *Panel) renderColors() {
	if imgui.ColorEdit3("Mesh Color", &p.meshColor) && p.callbacks.OnMeshColor != nil {
		p.callbacks.OnMeshColor(math.ColorFromArray(p.meshColor))
	}
	if imgui.ColorEdit3("Glow Color", &p.glowColor) && p.callbacks.OnGlowColor != nil {
		p.callbacks.OnGlowColor(math.ColorFromArray(p.glowColor))
	}
}

func (p *Panel) renderActions() {
	if imgui.Button("Regenerate") && p.callbacks.OnRegenerate != nil {
		p.callbacks.OnRegenerate()
	}
	if imgui.IsItemHovered() {
		imgui.SetTooltip("Rebuild the mesh with a new random seed")
	}
	imgui.SameLine()
	if imgui.Button("Save settings") && p.callbacks.OnSave != nil {
		p.callbacks.OnSave()
	}
	imgui.SameLine()
	if imgui.Button("Load settings...") && p.callbacks.OnLoad != nil {
		p.callbacks.OnLoad()
	}
}

func renderReadouts(r Readouts) {
	imgui.Text(fmt.Sprintf("Vertices: %d", r.Vertices))
	imgui.Text(fmt.Sprintf("Triangles: %d", r.Faces))
	imgui.Text(fmt.Sprintf("Phase: %.3f", r.Phase))
	imgui.Text(fmt.Sprintf("Active glows: %d", r.Fades))
	imgui.TextDisabled(fmt.Sprintf("Seed: %d", r.Seed))
	imgui.TextDisabled("(Drag to orbit, scroll to zoom, F12 screenshot)")
}
