// Package anim provides the frame-driven phase signal behind the vertex jitter.
package anim

import "github.com/chewxy/math32"

// TwoPi is one full period of the phase.
const TwoPi = 2 * math32.Pi

// DefaultStep is the phase advance per rendered frame.
const DefaultStep = 0.01

// Phase is a periodic driver advanced once per frame. It wraps at 2π so the
// value never grows without bound; only its sine and cosine are observed.
type Phase struct {
	value  float32
	step   float32
	frames uint64
}

// NewPhase creates a phase starting at zero.
func NewPhase(step float32) *Phase {
	if step <= 0 {
		step = DefaultStep
	}
	return &Phase{step: step}
}

// Advance moves the phase forward by one frame and returns the new value.
func (p *Phase) Advance() float32 {
	p.value = math32.Mod(p.value+p.step, TwoPi)
	p.frames++
	return p.value
}

// Value returns the current phase in [0, 2π).
func (p *Phase) Value() float32 {
	return p.value
}

// Frames returns how many times Advance has been called.
func (p *Phase) Frames() uint64 {
	return p.frames
}

// Step returns the per-frame increment.
func (p *Phase) Step() float32 {
	return p.step
}
