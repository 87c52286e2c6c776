package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
		want float32
	}{
		{"axis", Vec3{0, 0, 5}, 1},
		{"diagonal", Vec3{0, 1, 1}, 1},
		{"zero", Vec3{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := tt.in.Normalize().Length()
			if abs(l-tt.want) > 1e-5 {
				t.Errorf("Normalize().Length() = %v, want %v", l, tt.want)
			}
		})
	}
}
