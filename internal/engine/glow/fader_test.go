package glow

import (
	"testing"
	"time"

	"github.com/Faultbox/glowplane/internal/engine/plane"
	"github.com/Faultbox/glowplane/pkg/math"
)

var (
	hover = math.ColorFromHex(0x2A9DF4)
	base  = math.ColorFromHex(0x03254C)
)

func newTarget() *plane.Geometry {
	g := plane.NewGeometry(10, 10, 2, 2)
	for i := 0; i < g.VertexCount(); i++ {
		g.SetColor(uint32(i), base)
	}
	return g
}

func mustEase(t *testing.T, name string) func(t, b, c, d float32) float32 {
	t.Helper()
	fn, err := EaseByName(name)
	if err != nil {
		t.Fatal(err)
	}
	return fn
}

func run(f *Fader, g *plane.Geometry, seconds float32) {
	const dt = float32(1.0 / 60)
	for elapsed := float32(0); elapsed < seconds; elapsed += dt {
		f.Tick(dt, g)
	}
}

func TestTriggerWritesStartColor(t *testing.T) {
	g := newTarget()
	f := NewFader(500*time.Millisecond, nil)
	face := g.Face(0)

	f.Trigger(face, hover, base, g)

	for _, v := range []uint32{face.A, face.B, face.C} {
		if got := g.ColorAt(v); got != hover {
			t.Errorf("vertex %d = %v, want hover %v", v, got, hover)
		}
	}
	if f.Active() != 1 {
		t.Errorf("Active() = %d, want 1", f.Active())
	}
}

func TestFadeEndsAtBaseColor(t *testing.T) {
	g := newTarget()
	f := NewFader(500*time.Millisecond, nil)
	face := g.Face(3)

	target := math.Color{R: 0.2, G: 0.4, B: 0.6}
	f.Trigger(face, hover, target, g)
	run(f, g, 1)

	for _, v := range []uint32{face.A, face.B, face.C} {
		if got := g.ColorAt(v); got != target {
			t.Errorf("vertex %d = %v, want %v", v, got, target)
		}
	}
	if f.Active() != 0 {
		t.Errorf("Active() = %d after completion, want 0", f.Active())
	}
}

func TestFadeIsMonotonicTowardBase(t *testing.T) {
	g := newTarget()
	f := NewFader(500*time.Millisecond, mustEase(t, "linear"))
	face := g.Face(0)

	f.Trigger(face, hover, base, g)
	prev := g.ColorAt(face.A).B
	for i := 0; i < 40; i++ {
		f.Tick(1.0/60, g)
		b := g.ColorAt(face.A).B
		if b > prev {
			t.Fatalf("tick %d: blue rose from %f to %f", i, prev, b)
		}
		prev = b
	}
}

func TestRetriggerReplacesFade(t *testing.T) {
	g := newTarget()
	f := NewFader(500*time.Millisecond, nil)
	face := g.Face(0)

	first := math.Color{R: 1}
	second := math.Color{G: 1}

	f.Trigger(face, hover, first, g)
	run(f, g, 0.2)
	f.Trigger(face, hover, second, g)
	run(f, g, 1)

	for _, v := range []uint32{face.A, face.B, face.C} {
		if got := g.ColorAt(v); got != second {
			t.Errorf("vertex %d = %v, want latest target %v", v, got, second)
		}
	}
}

func TestSharedVertexOwnedByLatestFade(t *testing.T) {
	g := newTarget()
	f := NewFader(500*time.Millisecond, nil)

	// Faces 0 and 1 of a cell share two vertices.
	f0 := g.Face(0)
	f1 := g.Face(1)
	first := math.Color{R: 1}
	second := math.Color{B: 1}

	f.Trigger(f0, hover, first, g)
	f.Trigger(f1, hover, second, g)
	run(f, g, 1)

	for _, v := range []uint32{f1.A, f1.B, f1.C} {
		if got := g.ColorAt(v); got != second {
			t.Errorf("shared vertex %d = %v, want %v", v, got, second)
		}
	}
	// f0.A is not part of f1 and keeps the first fade's target.
	if got := g.ColorAt(f0.A); got != first {
		t.Errorf("vertex %d = %v, want %v", f0.A, got, first)
	}
}

func TestCancelStopsWrites(t *testing.T) {
	g := newTarget()
	f := NewFader(500*time.Millisecond, nil)
	face := g.Face(2)

	f.Trigger(face, hover, base, g)
	f.Cancel()

	if f.Active() != 0 {
		t.Fatalf("Active() = %d after Cancel, want 0", f.Active())
	}
	if f.Tick(0.1, g) {
		t.Error("Tick after Cancel should write nothing")
	}
	if got := g.ColorAt(face.A); got != hover {
		t.Errorf("Cancel must not touch colors, vertex = %v", got)
	}
}

func TestTickIdle(t *testing.T) {
	g := newTarget()
	f := NewFader(time.Second, nil)
	if f.Tick(0.016, g) {
		t.Error("idle Tick should report no writes")
	}
}

func TestEaseByName(t *testing.T) {
	for name := range easings {
		if _, err := EaseByName(name); err != nil {
			t.Errorf("EaseByName(%q): %v", name, err)
		}
	}
	if _, err := EaseByName("wobble"); err == nil {
		t.Error("expected error for unknown ease")
	}
}

func TestNewFaderDefaults(t *testing.T) {
	f := NewFader(0, nil)
	if f.Duration() <= 0 {
		t.Errorf("Duration() = %f, want positive", f.Duration())
	}
}
