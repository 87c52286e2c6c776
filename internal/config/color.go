package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/glowplane/pkg/math"
)

// HexColor is a 0xRRGGBB color written in YAML as "#RRGGBB".
type HexColor uint32

// Color converts to the renderer color type.
func (h HexColor) Color() math.Color {
	return math.ColorFromHex(uint32(h))
}

// HexColorOf packs a renderer color back into a HexColor.
func HexColorOf(c math.Color) HexColor {
	return HexColor(c.Hex())
}

// String formats the color as "#RRGGBB".
func (h HexColor) String() string {
	return fmt.Sprintf("#%06X", uint32(h)&0xFFFFFF)
}

// UnmarshalYAML accepts "#RRGGBB", "0xRRGGBB" and bare integers.
func (h *HexColor) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: color must be a scalar", node.Line)
	}

	if node.Tag == "!!int" {
		var n uint32
		if err := node.Decode(&n); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*h = HexColor(n & 0xFFFFFF)
		return nil
	}

	c, err := math.ParseHexColor(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*h = HexColorOf(c)
	return nil
}

// MarshalYAML writes the color as "#RRGGBB".
func (h HexColor) MarshalYAML() (interface{}, error) {
	return h.String(), nil
}
