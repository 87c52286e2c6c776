package camera

import "testing"

func testLens() Lens {
	return Lens{FOV: 75, Aspect: 16.0 / 9.0, Near: 0.1, Far: 1000}
}

func TestInitialPosition(t *testing.T) {
	c := NewOrbitCamera(20, testLens())
	pos := c.Position()
	if pos.X != 0 || pos.Y != 0 || pos.Z != 20 {
		t.Errorf("Position() = %+v, want (0, 0, 20)", pos)
	}
}

func TestViewProjMapsOriginToCenter(t *testing.T) {
	c := NewOrbitCamera(20, testLens())
	p := c.ViewProj().TransformPoint([3]float32{0, 0, 0})
	if abs(p[0]) > 1e-5 || abs(p[1]) > 1e-5 {
		t.Errorf("origin projects to %v, want screen center", p)
	}
	if p[2] < -1 || p[2] > 1 {
		t.Errorf("origin depth %f outside clip range", p[2])
	}
}

func TestHandleDragClampsPitch(t *testing.T) {
	c := NewOrbitCamera(20, testLens())
	c.HandleDrag(0, 10000)
	if c.RotationX != c.MaxPitch {
		t.Errorf("RotationX = %f, want %f", c.RotationX, c.MaxPitch)
	}
	c.HandleDrag(0, -20000)
	if c.RotationX != c.MinPitch {
		t.Errorf("RotationX = %f, want %f", c.RotationX, c.MinPitch)
	}
}

func TestHandleZoomClamps(t *testing.T) {
	c := NewOrbitCamera(20, testLens())
	for i := 0; i < 200; i++ {
		c.HandleZoom(1)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("Distance = %f, want %f", c.Distance, c.MinDistance)
	}
	for i := 0; i < 200; i++ {
		c.HandleZoom(-1)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("Distance = %f, want %f", c.Distance, c.MaxDistance)
	}
}

func TestResetAndAspect(t *testing.T) {
	c := NewOrbitCamera(20, testLens())
	c.HandleDrag(100, 50)
	c.HandleZoom(2)
	c.Reset()
	if c.Distance != 20 || c.RotationX != 0 || c.RotationY != 0 {
		t.Errorf("after Reset: %+v", c)
	}

	c.SetAspect(800, 400)
	if c.Lens.Aspect != 2 {
		t.Errorf("Aspect = %f, want 2", c.Lens.Aspect)
	}
	c.SetAspect(0, 400)
	if c.Lens.Aspect != 2 {
		t.Error("SetAspect must ignore empty viewports")
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
