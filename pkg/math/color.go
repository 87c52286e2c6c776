package math

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGB color with components in [0, 1].
type Color struct {
	R, G, B float32
}

// ColorFromHex converts a 0xRRGGBB value to a Color.
// Components are the byte values divided by 255, no gamma conversion is applied.
func ColorFromHex(hex uint32) Color {
	return Color{
		R: float32((hex>>16)&0xFF) / 255,
		G: float32((hex>>8)&0xFF) / 255,
		B: float32(hex&0xFF) / 255,
	}
}

// ParseHexColor parses "#RRGGBB", "0xRRGGBB" or "RRGGBB".
func ParseHexColor(s string) (Color, error) {
	v := strings.TrimSpace(s)
	v = strings.TrimPrefix(v, "#")
	v = strings.TrimPrefix(strings.TrimPrefix(v, "0x"), "0X")
	if len(v) != 6 {
		return Color{}, fmt.Errorf("invalid color %q: want 6 hex digits", s)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return ColorFromHex(uint32(n)), nil
}

// Hex returns the color packed as 0xRRGGBB, rounding each component.
func (c Color) Hex() uint32 {
	return uint32(toByte(c.R))<<16 | uint32(toByte(c.G))<<8 | uint32(toByte(c.B))
}

// String formats the color as "#RRGGBB".
func (c Color) String() string {
	return fmt.Sprintf("#%06X", c.Hex())
}

// Lerp interpolates between c and other at t.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

// Array returns the color as an RGB triple, the layout ImGui color editors use.
func (c Color) Array() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

// ColorFromArray is the inverse of Array.
func ColorFromArray(a [3]float32) Color {
	return Color{R: a[0], G: a[1], B: a[2]}
}

func toByte(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
