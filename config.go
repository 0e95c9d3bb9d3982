package plexus

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config controls the look and motion of a Field. Distances are in surface
// pixels; speeds and hue steps are per frame, not per second.
type Config struct {
	// Particles is the fixed population size.
	Particles int `json:"particles"`
	// LinkDistance is the maximum distance at which two particles are joined.
	LinkDistance float64 `json:"linkDistance"`
	// PointerDistance is the maximum distance at which a particle is joined
	// to the pointer.
	PointerDistance float64 `json:"pointerDistance"`
	// MaxSpeed bounds the initial velocity: each axis is drawn from
	// [-MaxSpeed/2, +MaxSpeed/2).
	MaxSpeed float64 `json:"maxSpeed"`
	// Radius is the range particle radii are drawn from.
	Radius Range `json:"radius"`
	// LineOpacity is the alpha of a particle link at zero distance.
	LineOpacity float64 `json:"lineOpacity"`
	// PointerBoost multiplies LineOpacity for pointer links.
	PointerBoost float64 `json:"pointerBoost"`
	// ParticleOpacity is the alpha every particle is filled with.
	ParticleOpacity float64 `json:"particleOpacity"`
	// HueStep is added to the shared hue phase every active frame.
	HueStep float64 `json:"hueStep"`
	// HueSpread is the hue offset, in degrees, at the far end of a link or of
	// the particle index range.
	HueSpread float64 `json:"hueSpread"`
	// LineWidth and PointerLineWidth are stroke widths in pixels.
	LineWidth        float64 `json:"lineWidth"`
	PointerLineWidth float64 `json:"pointerLineWidth"`
}

// DefaultConfig returns the tuning the portfolio background ships with.
func DefaultConfig() Config {
	return Config{
		Particles:        50,
		LinkDistance:     120,
		PointerDistance:  150,
		MaxSpeed:         0.5,
		Radius:           Range{1, 3},
		LineOpacity:      0.15,
		PointerBoost:     1.5,
		ParticleOpacity:  0.4,
		HueStep:          0.5,
		HueSpread:        60,
		LineWidth:        1,
		PointerLineWidth: 1.5,
	}
}

// withDefaults returns c with every zero field replaced by its default.
// HueStep is the exception: it is kept as-is so a frozen palette is possible,
// and only filled when the whole config is zero.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c == (Config{}) {
		return d
	}
	if c.Particles <= 0 {
		c.Particles = d.Particles
	}
	if c.LinkDistance <= 0 {
		c.LinkDistance = d.LinkDistance
	}
	if c.PointerDistance <= 0 {
		c.PointerDistance = d.PointerDistance
	}
	if c.MaxSpeed < 0 {
		c.MaxSpeed = -c.MaxSpeed
	}
	if c.Radius == (Range{}) {
		c.Radius = d.Radius
	}
	if c.LineOpacity <= 0 {
		c.LineOpacity = d.LineOpacity
	}
	if c.PointerBoost <= 0 {
		c.PointerBoost = d.PointerBoost
	}
	if c.ParticleOpacity <= 0 {
		c.ParticleOpacity = d.ParticleOpacity
	}
	if c.HueSpread == 0 {
		c.HueSpread = d.HueSpread
	}
	if c.LineWidth <= 0 {
		c.LineWidth = d.LineWidth
	}
	if c.PointerLineWidth <= 0 {
		c.PointerLineWidth = d.PointerLineWidth
	}
	return c
}

// LoadConfig parses JSON on top of DefaultConfig. Fields absent from the
// document keep their default values.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg.withDefaults(), nil
}

// envPrefix is prepended to every variable ConfigFromEnv reads.
const envPrefix = "PLEXUS_"

// ConfigFromEnv overlays PLEXUS_* variables on base. lookup is usually
// os.LookupEnv; nil means os.LookupEnv. Recognized names are the upper-case
// snake forms of the Config fields, e.g. PLEXUS_LINK_DISTANCE. Radius is
// split into PLEXUS_RADIUS_MIN and PLEXUS_RADIUS_MAX.
func ConfigFromEnv(base Config, lookup func(string) (string, bool)) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	cfg := base

	floats := []struct {
		name string
		dst  *float64
	}{
		{"LINK_DISTANCE", &cfg.LinkDistance},
		{"POINTER_DISTANCE", &cfg.PointerDistance},
		{"MAX_SPEED", &cfg.MaxSpeed},
		{"RADIUS_MIN", &cfg.Radius.Min},
		{"RADIUS_MAX", &cfg.Radius.Max},
		{"LINE_OPACITY", &cfg.LineOpacity},
		{"POINTER_BOOST", &cfg.PointerBoost},
		{"PARTICLE_OPACITY", &cfg.ParticleOpacity},
		{"HUE_STEP", &cfg.HueStep},
		{"HUE_SPREAD", &cfg.HueSpread},
		{"LINE_WIDTH", &cfg.LineWidth},
		{"POINTER_LINE_WIDTH", &cfg.PointerLineWidth},
	}
	for _, f := range floats {
		raw, ok := lookup(envPrefix + f.name)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return Config{}, fmt.Errorf("env %s%s: %w", envPrefix, f.name, err)
		}
		*f.dst = v
	}

	if raw, ok := lookup(envPrefix + "PARTICLES"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return Config{}, fmt.Errorf("env %sPARTICLES: %w", envPrefix, err)
		}
		cfg.Particles = n
	}

	return cfg.withDefaults(), nil
}
