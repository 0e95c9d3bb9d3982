package plexus

import (
	"errors"
	"log"
	"math/rand/v2"
)

var (
	// ErrNoSurface is returned by Initialize when the Field was built
	// without a Surface. The Field stays empty and never schedules frames.
	ErrNoSurface = errors.New("plexus: no rendering surface")
	// ErrNotInitialized is returned by Start before a successful Initialize.
	ErrNotInitialized = errors.New("plexus: field not initialized")
	// ErrRunning is returned by Start when the frame loop is already active.
	ErrRunning = errors.New("plexus: frame loop already running")
	// ErrStopped is returned by any lifecycle call after Teardown.
	ErrStopped = errors.New("plexus: field torn down")
)

// PointerSentinel is the pointer position stored while the pointer is away
// from the surface.
var PointerSentinel = Vec2{-1000, -1000}

// State is the Field's lifecycle state.
type State uint8

const (
	StateActive  State = iota // visible; Tick updates and renders
	StateIdle                 // hidden; Tick is a no-op
	StateStopped              // torn down; permanent
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateIdle:
		return "idle"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// FrameStats summarizes the draw calls of one active Tick.
type FrameStats struct {
	Links        int // particle-to-particle lines
	PointerLinks int // particle-to-pointer lines
	Circles      int // particles drawn
}

// Field is an animated network of drifting particles joined by faded lines,
// the decorative background of the portfolio page. It owns its particles,
// pointer, hue phase and visibility flag exclusively.
//
// All methods must be called from one goroutine: the host's input and frame
// callbacks share it. A Field is created with NewField, sized with
// Initialize, driven either by calling Tick directly or by Start with a
// Scheduler, and released with Teardown.
type Field struct {
	cfg     Config
	rng     *rand.Rand
	surface Surface

	particles     []Particle
	width, height float64
	initialized   bool

	pointer        Vec2
	pointerPresent bool
	hue            float64
	visible        bool

	sched    Scheduler
	frame    FrameID
	stopped  bool
	releases []func()

	last FrameStats
}

// NewField creates a Field that renders to surface. Zero Config fields take
// their DefaultConfig values. rng seeds positions, velocities and radii; nil
// selects a randomly seeded source.
func NewField(cfg Config, surface Surface, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Field{
		cfg:     cfg.withDefaults(),
		rng:     rng,
		surface: surface,
		pointer: PointerSentinel,
		visible: true,
	}
}

// Config returns the effective configuration.
func (f *Field) Config() Config {
	return f.cfg
}

// Initialize discards any existing particles and spawns a fresh population
// over a w×h surface. It must be called again whenever the surface is
// resized; positions are not carried over.
func (f *Field) Initialize(w, h float64) error {
	if f.stopped {
		return ErrStopped
	}
	if f.surface == nil {
		log.Printf("plexus: no surface to render to, background disabled")
		return ErrNoSurface
	}

	f.width, f.height = w, h
	if cap(f.particles) < f.cfg.Particles {
		f.particles = make([]Particle, f.cfg.Particles)
	}
	f.particles = f.particles[:f.cfg.Particles]
	for i := range f.particles {
		f.particles[i] = spawnParticle(f.rng, &f.cfg, w, h)
	}
	f.initialized = true
	return nil
}

// Resize re-initializes the field when w or h differs from the current
// size. Hosts that learn the surface size every frame can call it
// unconditionally.
func (f *Field) Resize(w, h float64) error {
	if f.initialized && w == f.width && h == f.height {
		return nil
	}
	return f.Initialize(w, h)
}

// Size returns the surface size the particles were spawned for.
func (f *Field) Size() (w, h float64) {
	return f.width, f.height
}

// PointerMove records the pointer position in surface coordinates. Values
// outside the surface are accepted.
func (f *Field) PointerMove(x, y float64) {
	f.pointer = Vec2{x, y}
	f.pointerPresent = true
}

// PointerLeave parks the pointer at PointerSentinel. No pointer links are
// drawn until the next PointerMove.
func (f *Field) PointerLeave() {
	f.pointer = PointerSentinel
	f.pointerPresent = false
}

// Pointer returns the current pointer position and whether the pointer is
// over the surface.
func (f *Field) Pointer() (Vec2, bool) {
	return f.pointer, f.pointerPresent
}

// SetVisible records whether the surface is at least partly on screen.
// While hidden, Tick does no work. What was drawn last stays on the surface.
func (f *Field) SetVisible(visible bool) {
	f.visible = visible
}

// Visible reports the visibility flag.
func (f *Field) Visible() bool {
	return f.visible
}

// State returns the lifecycle state.
func (f *Field) State() State {
	switch {
	case f.stopped:
		return StateStopped
	case f.visible:
		return StateActive
	default:
		return StateIdle
	}
}

// Hue returns the shared hue phase in degrees, in [0, 360).
func (f *Field) Hue() float64 {
	return f.hue
}

// Particles returns a copy of the particle set.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// LastFrame returns the draw counts of the most recent active Tick.
func (f *Field) LastFrame() FrameStats {
	return f.last
}

// Tick advances the animation by one frame and renders it. Motion is per
// call, not per elapsed second, so perceived speed follows the host's frame
// rate. Tick does nothing while the field is hidden, torn down or not yet
// initialized.
func (f *Field) Tick() {
	if f.stopped || !f.visible || !f.initialized {
		return
	}

	f.surface.Clear()
	f.hue = wrapHue(f.hue + f.cfg.HueStep)

	for i := range f.particles {
		f.particles[i].step(f.width, f.height)
	}

	f.last = FrameStats{}
	n := len(f.particles)
	for i := 0; i < n; i++ {
		p := &f.particles[i]
		for j := i + 1; j < n; j++ {
			q := &f.particles[j]
			d := p.Pos().Dist(q.Pos())
			if d < f.cfg.LinkDistance {
				f.surface.StrokeLine(p.X, p.Y, q.X, q.Y, f.cfg.LineWidth, f.linkColor(d))
				f.last.Links++
			}
		}

		if f.pointerPresent {
			d := p.Pos().Dist(f.pointer)
			if d < f.cfg.PointerDistance {
				f.surface.StrokeLine(p.X, p.Y, f.pointer.X, f.pointer.Y, f.cfg.PointerLineWidth, f.pointerColor(d))
				f.last.PointerLinks++
			}
		}

		f.surface.FillCircle(p.X, p.Y, p.radius, f.particleColor(i))
		f.last.Circles++
	}
}

// linkColor is the stroke color of a particle link of length d.
func (f *Field) linkColor(d float64) HSLA {
	ratio := d / f.cfg.LinkDistance
	return HSLA{
		H: wrapHue(f.hue + ratio*f.cfg.HueSpread),
		S: 0.70,
		L: 0.60,
		A: (1 - ratio) * f.cfg.LineOpacity,
	}
}

// pointerColor is the stroke color of a pointer link of length d.
func (f *Field) pointerColor(d float64) HSLA {
	ratio := d / f.cfg.PointerDistance
	return HSLA{
		H: wrapHue(f.hue + ratio*f.cfg.HueSpread),
		S: 0.80,
		L: 0.65,
		A: (1 - ratio) * f.cfg.LineOpacity * f.cfg.PointerBoost,
	}
}

// particleColor spreads HueSpread degrees evenly over the particle indices.
func (f *Field) particleColor(i int) HSLA {
	return HSLA{
		H: wrapHue(f.hue + float64(i)/float64(len(f.particles))*f.cfg.HueSpread),
		S: 0.70,
		L: 0.60,
		A: f.cfg.ParticleOpacity,
	}
}

// Start hands the frame loop to s: every frame callback ticks the field and
// requests the next frame, until Teardown.
func (f *Field) Start(s Scheduler) error {
	switch {
	case f.stopped:
		return ErrStopped
	case !f.initialized:
		return ErrNotInitialized
	case f.sched != nil:
		return ErrRunning
	}
	f.sched = s
	f.frame = s.RequestFrame(f.onFrame)
	return nil
}

// onFrame is the self-rescheduling frame callback.
func (f *Field) onFrame() {
	f.frame = 0
	if f.stopped {
		return
	}
	f.Tick()
	if !f.stopped {
		f.frame = f.sched.RequestFrame(f.onFrame)
	}
}

// OnTeardown registers fn to run once when the field is torn down. Hosts
// use it to detach their input listeners. If the field is already torn down
// fn runs immediately.
func (f *Field) OnTeardown(fn func()) {
	if f.stopped {
		fn()
		return
	}
	f.releases = append(f.releases, fn)
}

// Teardown cancels the pending frame request, runs the OnTeardown hooks in
// reverse registration order and stops the field for good. Calling it again
// has no effect.
func (f *Field) Teardown() {
	if f.stopped {
		return
	}
	f.stopped = true

	if f.sched != nil && f.frame != 0 {
		f.sched.CancelFrame(f.frame)
	}
	f.frame = 0

	for i := len(f.releases) - 1; i >= 0; i-- {
		f.releases[i]()
	}
	f.releases = nil
}
