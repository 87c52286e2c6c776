package plane

import (
	"math/rand/v2"

	"github.com/ojrac/opensimplex-go"
)

// Displacer supplies the generation-time upward offset and the per-axis
// jitter amplitudes for each vertex.
type Displacer interface {
	// Offset returns an upward offset in [0, 1) for the vertex at (x, y).
	Offset(x, y float32) float32
	// Amplitude returns a jitter amplitude in [-0.5, 0.5).
	Amplitude() float32
}

// RandomDisplacer draws offsets and amplitudes uniformly.
type RandomDisplacer struct {
	rng *rand.Rand
}

// NewRandomDisplacer creates a uniform displacer with a fixed seed.
func NewRandomDisplacer(seed uint64) *RandomDisplacer {
	return &RandomDisplacer{rng: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))}
}

// Offset implements Displacer.
func (d *RandomDisplacer) Offset(_, _ float32) float32 {
	return d.rng.Float32()
}

// Amplitude implements Displacer.
func (d *RandomDisplacer) Amplitude() float32 {
	return d.rng.Float32() - 0.5
}

// SimplexDisplacer samples normalized simplex noise for the offset, giving
// rolling hills instead of white-noise spikes. Amplitudes stay uniform.
type SimplexDisplacer struct {
	noise     opensimplex.Noise
	frequency float64
	rng       *rand.Rand
}

// NewSimplexDisplacer creates a noise-based displacer.
func NewSimplexDisplacer(seed uint64, frequency float64) *SimplexDisplacer {
	if frequency <= 0 {
		frequency = 0.08
	}
	return &SimplexDisplacer{
		noise:     opensimplex.NewNormalized(int64(seed)),
		frequency: frequency,
		rng:       rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
	}
}

// Offset implements Displacer.
func (d *SimplexDisplacer) Offset(x, y float32) float32 {
	v := float32(d.noise.Eval2(float64(x)*d.frequency, float64(y)*d.frequency))
	// Normalized noise is [0, 1]; keep the half-open range of the uniform mode.
	if v >= 1 {
		v = 0.99999994
	}
	if v < 0 {
		v = 0
	}
	return v
}

// Amplitude implements Displacer.
func (d *SimplexDisplacer) Amplitude() float32 {
	return d.rng.Float32() - 0.5
}

// NewDisplacer builds the displacer for a configured mode.
// Unknown modes fall back to uniform random.
func NewDisplacer(mode string, seed uint64, frequency float64) Displacer {
	if mode == "simplex" {
		return NewSimplexDisplacer(seed, frequency)
	}
	return NewRandomDisplacer(seed)
}
