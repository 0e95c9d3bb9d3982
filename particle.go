package plexus

import "math/rand/v2"

// Particle is one moving point of the field. Position and velocity are in
// surface pixels and pixels per frame. The radius is fixed at spawn.
type Particle struct {
	X, Y   float64
	VX, VY float64
	radius float64
}

// Radius returns the particle's radius in pixels.
func (p Particle) Radius() float64 {
	return p.radius
}

// Pos returns the particle position as a Vec2.
func (p Particle) Pos() Vec2 {
	return Vec2{p.X, p.Y}
}

// spawnParticle draws a particle uniformly over a w×h surface.
func spawnParticle(rng *rand.Rand, cfg *Config, w, h float64) Particle {
	half := cfg.MaxSpeed / 2
	speed := Range{-half, half}
	return Particle{
		X:      Range{0, w}.Random(rng),
		Y:      Range{0, h}.Random(rng),
		VX:     speed.Random(rng),
		VY:     speed.Random(rng),
		radius: cfg.Radius.Random(rng),
	}
}

// step advances p by one frame inside a w×h surface. A component that ends
// up outside the surface has its velocity mirrored, then the position is
// clamped so no overshoot survives the frame.
func (p *Particle) step(w, h float64) {
	p.X += p.VX
	p.Y += p.VY

	if p.X < 0 || p.X > w {
		p.VX = -p.VX
	}
	if p.Y < 0 || p.Y > h {
		p.VY = -p.VY
	}

	p.X = clamp(p.X, 0, w)
	p.Y = clamp(p.Y, 0, h)
}
