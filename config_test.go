package plexus

import "testing"

func TestDefaultConfigValues(t *testing.T) {
	c := DefaultConfig()
	if c.Particles != 50 {
		t.Errorf("Particles = %d, want 50", c.Particles)
	}
	assertNear(t, "LinkDistance", c.LinkDistance, 120)
	assertNear(t, "PointerDistance", c.PointerDistance, 150)
	assertNear(t, "MaxSpeed", c.MaxSpeed, 0.5)
	assertNear(t, "LineOpacity", c.LineOpacity, 0.15)
	assertNear(t, "PointerBoost", c.PointerBoost, 1.5)
	assertNear(t, "ParticleOpacity", c.ParticleOpacity, 0.4)
	assertNear(t, "HueStep", c.HueStep, 0.5)
	assertNear(t, "HueSpread", c.HueSpread, 60)
	if c.Radius != (Range{1, 3}) {
		t.Errorf("Radius = %v, want {1 3}", c.Radius)
	}
}

func TestWithDefaultsFillsZeroFields(t *testing.T) {
	c := Config{Particles: 10, LinkDistance: 80}.withDefaults()
	if c.Particles != 10 {
		t.Errorf("Particles = %d, want 10", c.Particles)
	}
	assertNear(t, "LinkDistance", c.LinkDistance, 80)
	assertNear(t, "PointerDistance", c.PointerDistance, 150)
	assertNear(t, "LineOpacity", c.LineOpacity, 0.15)
	// A partially set config may freeze the hue on purpose.
	assertNear(t, "HueStep", c.HueStep, 0)
}

func TestWithDefaultsNegativeSpeed(t *testing.T) {
	c := Config{Particles: 5, MaxSpeed: -2}.withDefaults()
	assertNear(t, "MaxSpeed", c.MaxSpeed, 2)
}

func TestLoadConfig(t *testing.T) {
	c, err := LoadConfig([]byte(`{"particles": 80, "linkDistance": 90, "radius": {"Min": 2, "Max": 4}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Particles != 80 {
		t.Errorf("Particles = %d, want 80", c.Particles)
	}
	assertNear(t, "LinkDistance", c.LinkDistance, 90)
	if c.Radius != (Range{2, 4}) {
		t.Errorf("Radius = %v, want {2 4}", c.Radius)
	}
	// Untouched fields keep defaults.
	assertNear(t, "HueStep", c.HueStep, 0.5)
	assertNear(t, "PointerDistance", c.PointerDistance, 150)
}

func TestLoadConfig_Invalid(t *testing.T) {
	if _, err := LoadConfig([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestConfigFromEnv(t *testing.T) {
	env := map[string]string{
		"PLEXUS_PARTICLES":     "20",
		"PLEXUS_LINK_DISTANCE": " 200 ",
		"PLEXUS_HUE_STEP":      "1.25",
		"PLEXUS_RADIUS_MAX":    "5",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	c, err := ConfigFromEnv(DefaultConfig(), lookup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Particles != 20 {
		t.Errorf("Particles = %d, want 20", c.Particles)
	}
	assertNear(t, "LinkDistance", c.LinkDistance, 200)
	assertNear(t, "HueStep", c.HueStep, 1.25)
	assertNear(t, "Radius.Min", c.Radius.Min, 1)
	assertNear(t, "Radius.Max", c.Radius.Max, 5)
	assertNear(t, "PointerDistance", c.PointerDistance, 150)
}

func TestConfigFromEnv_Invalid(t *testing.T) {
	tests := map[string]string{
		"PLEXUS_PARTICLES":    "many",
		"PLEXUS_LINE_OPACITY": "0.1.2",
	}
	for k, v := range tests {
		lookup := func(name string) (string, bool) {
			if name == k {
				return v, true
			}
			return "", false
		}
		if _, err := ConfigFromEnv(DefaultConfig(), lookup); err == nil {
			t.Errorf("%s=%q: expected error", k, v)
		}
	}
}
