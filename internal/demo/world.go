package demo

import (
	"github.com/Faultbox/glowplane/internal/config"
	"github.com/Faultbox/glowplane/internal/engine/plane"
	"github.com/Faultbox/glowplane/pkg/math"
)

// Range is an inclusive slider range.
type Range struct {
	Min, Max float32
}

// Clamp limits v to the range.
func (r Range) Clamp(v float32) float32 {
	return min(max(v, r.Min), r.Max)
}

// ClampInt limits v to the range.
func (r Range) ClampInt(v int) int {
	return min(max(v, int(r.Min)), int(r.Max))
}

// PlaneLimits bounds the values the parameter panel may set.
var PlaneLimits = struct {
	Size     Range
	Segments Range
}{
	Size:     Range{Min: 10, Max: 150},
	Segments: Range{Min: 10, Max: 150},
}

// World is the live configuration edited from the parameter panel.
type World struct {
	Plane      plane.Spec
	BaseColor  math.Color
	HoverColor math.Color
}

// WorldFromConfig converts the persisted world section.
func WorldFromConfig(c config.WorldConfig) World {
	return World{
		Plane: plane.Spec{
			Width:          c.Plane.Width,
			Height:         c.Plane.Height,
			WidthSegments:  c.Plane.WidthSegments,
			HeightSegments: c.Plane.HeightSegments,
		},
		BaseColor:  c.BaseColor.Color(),
		HoverColor: c.HoverColor.Color(),
	}
}

// Config converts the world back to its persisted form.
func (w World) Config() config.WorldConfig {
	return config.WorldConfig{
		Plane: config.PlaneConfig{
			Width:          w.Plane.Width,
			Height:         w.Plane.Height,
			WidthSegments:  w.Plane.WidthSegments,
			HeightSegments: w.Plane.HeightSegments,
		},
		BaseColor:  config.HexColorOf(w.BaseColor),
		HoverColor: config.HexColorOf(w.HoverColor),
	}
}

// SetWidth clamps and stores the plane width. Returns true if the mesh must
// be regenerated.
func (w *World) SetWidth(v float32) bool {
	v = PlaneLimits.Size.Clamp(v)
	if v == w.Plane.Width {
		return false
	}
	w.Plane.Width = v
	return true
}

// SetHeight clamps and stores the plane height.
func (w *World) SetHeight(v float32) bool {
	v = PlaneLimits.Size.Clamp(v)
	if v == w.Plane.Height {
		return false
	}
	w.Plane.Height = v
	return true
}

// SetWidthSegments clamps and stores the horizontal segment count.
func (w *World) SetWidthSegments(v int) bool {
	v = PlaneLimits.Segments.ClampInt(v)
	if v == w.Plane.WidthSegments {
		return false
	}
	w.Plane.WidthSegments = v
	return true
}

// SetHeightSegments clamps and stores the vertical segment count.
func (w *World) SetHeightSegments(v int) bool {
	v = PlaneLimits.Segments.ClampInt(v)
	if v == w.Plane.HeightSegments {
		return false
	}
	w.Plane.HeightSegments = v
	return true
}

// SetBaseColor stores the mesh color. Returns true if the mesh must be
// recolored.
func (w *World) SetBaseColor(c math.Color) bool {
	if c == w.BaseColor {
		return false
	}
	w.BaseColor = c
	return true
}

// SetHoverColor stores the glow color. Only glows triggered afterwards use it.
func (w *World) SetHoverColor(c math.Color) {
	w.HoverColor = c
}
