// Package glow fades hovered triangles from a highlight color back to the
// mesh base color.
package glow

import (
	"fmt"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/Faultbox/glowplane/internal/engine/plane"
	"github.com/Faultbox/glowplane/pkg/math"
)

// Target receives interpolated vertex colors.
type Target interface {
	SetColor(vertex uint32, c math.Color)
}

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
	"outExpo":    ease.OutExpo,
}

// EaseByName looks up an easing curve by its config name.
func EaseByName(name string) (ease.TweenFunc, error) {
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown ease %q", name)
	}
	return fn, nil
}

type fade struct {
	face  plane.Face
	from  math.Color
	to    math.Color
	tween *gween.Tween
}

// Fader runs color fades on mesh vertices. Every vertex is owned by at most
// one fade: triggering a face takes its three vertices away from whatever
// fade held them, so the latest trigger always decides the final color.
type Fader struct {
	duration float32
	easing   ease.TweenFunc

	owner map[uint32]*fade
	fades []*fade
}

// NewFader creates a fader. A non-positive duration is treated as 1ms.
func NewFader(duration time.Duration, easing ease.TweenFunc) *Fader {
	if duration <= 0 {
		duration = time.Millisecond
	}
	if easing == nil {
		easing = ease.OutQuad
	}
	return &Fader{
		duration: float32(duration.Seconds()),
		easing:   easing,
		owner:    make(map[uint32]*fade),
	}
}

// Trigger starts a fade on face from one color to another and writes the
// starting color immediately.
func (f *Fader) Trigger(face plane.Face, from, to math.Color, target Target) {
	fd := &fade{
		face:  face,
		from:  from,
		to:    to,
		tween: gween.New(0, 1, f.duration, f.easing),
	}
	for _, v := range [3]uint32{face.A, face.B, face.C} {
		f.owner[v] = fd
		target.SetColor(v, from)
	}
	f.fades = append(f.fades, fd)
}

// Tick advances every fade by dt seconds and writes the interpolated colors
// of the vertices each fade still owns. It returns true if anything was written.
func (f *Fader) Tick(dt float32, target Target) bool {
	if len(f.fades) == 0 {
		return false
	}

	wrote := false
	live := f.fades[:0]
	for _, fd := range f.fades {
		t, finished := fd.tween.Update(dt)
		c := fd.from.Lerp(fd.to, t)
		if finished {
			c = fd.to
		}

		owned := false
		for _, v := range [3]uint32{fd.face.A, fd.face.B, fd.face.C} {
			if f.owner[v] != fd {
				continue
			}
			owned = true
			target.SetColor(v, c)
			wrote = true
			if finished {
				delete(f.owner, v)
			}
		}

		if owned && !finished {
			live = append(live, fd)
		}
	}

	// Release references held past the live prefix.
	for i := len(live); i < len(f.fades); i++ {
		f.fades[i] = nil
	}
	f.fades = live
	return wrote
}

// Cancel drops every running fade without touching colors. Used when the
// geometry the fades point into is replaced.
func (f *Fader) Cancel() {
	f.fades = nil
	f.owner = make(map[uint32]*fade)
}

// Active returns the number of running fades.
func (f *Fader) Active() int {
	return len(f.fades)
}

// Duration returns the fade length in seconds.
func (f *Fader) Duration() float32 {
	return f.duration
}
