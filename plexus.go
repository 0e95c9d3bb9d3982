package plexus

import (
	"math"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// HSLA is a color in hue/saturation/lightness space with straight alpha.
// H is in degrees [0, 360); S, L and A are in [0, 1].
//
// HSLA implements color.Color, so it can be handed directly to any Go
// drawing API. The conversion premultiplies alpha.
type HSLA struct {
	H, S, L, A float64
}

// RGBA implements color.Color.
func (c HSLA) RGBA() (r, g, b, a uint32) {
	rgb := colorful.Hsl(c.H, c.S, c.L).Clamped()
	alpha := clamp(c.A, 0, 1)
	r = uint32(rgb.R*alpha*0xffff + 0.5)
	g = uint32(rgb.G*alpha*0xffff + 0.5)
	b = uint32(rgb.B*alpha*0xffff + 0.5)
	a = uint32(alpha*0xffff + 0.5)
	return r, g, b, a
}

// Vec2 is a 2D vector used for positions and velocities.
type Vec2 struct {
	X, Y float64
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	dx := o.X - v.X
	dy := o.Y - v.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Range is a general-purpose min/max range. Random draws are half-open,
// [Min, Max), matching the way the field seeds particles.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max) drawn from rng.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// wrapHue folds h into [0, 360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -tiny + 360 rounds to 360 in float64.
	if h >= 360 {
		h = 0
	}
	return h
}

// clamp restricts v to [lo, hi]. When hi < lo the result is lo, so a
// degenerate surface pins everything to its origin. A NaN v or hi also
// maps to lo.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || math.IsNaN(hi) || hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
