// Package lighting provides the directional light rig for the plane scene.
package lighting

import "github.com/Faultbox/glowplane/pkg/math"

// MaxDirectionalLights is the number of directional lights supported in shaders.
const MaxDirectionalLights = 4

// DirectionalLight is a light at infinity shining from Direction toward the origin.
type DirectionalLight struct {
	Direction math.Vec3  // Points from the scene toward the light
	Color     math.Color // RGB color (0-1 range)
	Intensity float32    // Light intensity multiplier
}

// Rig holds directional lights for GPU upload.
type Rig struct {
	Lights []DirectionalLight
}

// DefaultRig returns two white lights of intensity 1, one from (0,1,1) and one
// from (0,-1,-1), so both faces of the plane are lit.
func DefaultRig() *Rig {
	white := math.Color{R: 1, G: 1, B: 1}
	r := &Rig{}
	r.Add(DirectionalLight{Direction: math.Vec3{X: 0, Y: 1, Z: 1}, Color: white, Intensity: 1})
	r.Add(DirectionalLight{Direction: math.Vec3{X: 0, Y: -1, Z: -1}, Color: white, Intensity: 1})
	return r
}

// Add appends a light to the rig.
// Returns false if the rig is full.
func (r *Rig) Add(light DirectionalLight) bool {
	if len(r.Lights) >= MaxDirectionalLights {
		return false
	}
	light.Direction = light.Direction.Normalize()
	if light.Intensity < 0 {
		light.Intensity = 0
	}
	r.Lights = append(r.Lights, light)
	return true
}

// Count returns the number of lights in the rig.
func (r *Rig) Count() int {
	return len(r.Lights)
}

// Directions returns normalized directions as a flat float32 slice for GPU upload.
// Format: [x0, y0, z0, x1, y1, z1, ...]
func (r *Rig) Directions() []float32 {
	result := make([]float32, MaxDirectionalLights*3)
	for i, light := range r.Lights {
		result[i*3+0] = light.Direction.X
		result[i*3+1] = light.Direction.Y
		result[i*3+2] = light.Direction.Z
	}
	return result
}

// Colors returns color * intensity as a flat float32 slice for GPU upload.
func (r *Rig) Colors() []float32 {
	result := make([]float32, MaxDirectionalLights*3)
	for i, light := range r.Lights {
		result[i*3+0] = light.Color.R * light.Intensity
		result[i*3+1] = light.Color.G * light.Intensity
		result[i*3+2] = light.Color.B * light.Intensity
	}
	return result
}
