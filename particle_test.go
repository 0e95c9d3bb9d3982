package plexus

import "testing"

func TestSpawnParticleRanges(t *testing.T) {
	rng := testRNG()
	cfg := DefaultConfig()
	for i := 0; i < 500; i++ {
		p := spawnParticle(rng, &cfg, 800, 600)
		if p.X < 0 || p.X >= 800 || p.Y < 0 || p.Y >= 600 {
			t.Fatalf("position (%v, %v) outside 800x600", p.X, p.Y)
		}
		if p.VX < -0.25 || p.VX >= 0.25 || p.VY < -0.25 || p.VY >= 0.25 {
			t.Fatalf("velocity (%v, %v) outside [-0.25, 0.25)", p.VX, p.VY)
		}
		if p.Radius() < 1 || p.Radius() >= 3 {
			t.Fatalf("radius %v outside [1, 3)", p.Radius())
		}
	}
}

func TestStepMoves(t *testing.T) {
	p := Particle{X: 10, Y: 20, VX: 0.25, VY: -0.5, radius: 2}
	p.step(100, 100)
	assertNear(t, "x", p.X, 10.25)
	assertNear(t, "y", p.Y, 19.5)
	assertNear(t, "vx", p.VX, 0.25)
	assertNear(t, "vy", p.VY, -0.5)
	assertNear(t, "radius", p.Radius(), 2)
}

func TestStepBouncesAndClamps(t *testing.T) {
	tests := []struct {
		name           string
		p              Particle
		wantX, wantY   float64
		wantVX, wantVY float64
	}{
		{"right edge", Particle{X: 100, Y: 50, VX: 0.3}, 100, 50, -0.3, 0},
		{"left edge", Particle{X: 0, Y: 50, VX: -0.3}, 0, 50, 0.3, 0},
		{"bottom edge", Particle{X: 50, Y: 80, VY: 0.4}, 50, 80, 0, -0.4},
		{"top edge", Particle{X: 50, Y: 0.1, VY: -0.4}, 50, 0, 0, 0.4},
		{"corner", Particle{X: 100, Y: 80, VX: 1, VY: 1}, 100, 80, -1, -1},
		{"on edge, moving in", Particle{X: 100, Y: 50, VX: -0.3}, 99.7, 50, -0.3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.p
			p.step(100, 80)
			assertNear(t, "x", p.X, tt.wantX)
			assertNear(t, "y", p.Y, tt.wantY)
			assertNear(t, "vx", p.VX, tt.wantVX)
			assertNear(t, "vy", p.VY, tt.wantVY)
		})
	}
}

func TestStepDegenerateSurface(t *testing.T) {
	p := Particle{X: -3, Y: -4, VX: 0.1, VY: 0.1}
	p.step(-10, -10)
	if p.X != 0 || p.Y != 0 {
		t.Errorf("position = (%v, %v), want (0, 0) on a negative-size surface", p.X, p.Y)
	}
}
