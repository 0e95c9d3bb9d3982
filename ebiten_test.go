package plexus

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestNewGameDefaults(t *testing.T) {
	g := NewGame(RunConfig{Width: 320, Height: 200, Seed: 7})
	if g.Field() == nil {
		t.Fatal("Field() = nil")
	}
	if g.Field().Config() != DefaultConfig() {
		t.Error("zero RunConfig.Field should use defaults")
	}
	if g.layoutW != 320 || g.layoutH != 200 {
		t.Errorf("initial layout = %d x %d, want 320 x 200", g.layoutW, g.layoutH)
	}
}

func TestGameLayoutTracksWindow(t *testing.T) {
	g := NewGame(RunConfig{Width: 320, Height: 200})
	w, h := g.Layout(640, 480)
	if w != 640 || h != 480 {
		t.Errorf("Layout() = %d x %d, want 640 x 480", w, h)
	}
	if g.layoutW != 640 || g.layoutH != 480 {
		t.Errorf("recorded layout = %d x %d, want 640 x 480", g.layoutW, g.layoutH)
	}
}

func TestGameTrackPointer(t *testing.T) {
	g := NewGame(RunConfig{Width: 100, Height: 100})

	g.trackPointer(40, 60)
	if p, ok := g.Field().Pointer(); !ok || p != (Vec2{40, 60}) {
		t.Errorf("Pointer() = %v, %v; want (40, 60), true", p, ok)
	}

	g.trackPointer(-1, 60)
	if _, ok := g.Field().Pointer(); ok {
		t.Error("cursor outside the window should leave")
	}

	// Repeated outside samples keep the sentinel without re-leaving.
	g.trackPointer(500, 500)
	if p, _ := g.Field().Pointer(); p != PointerSentinel {
		t.Errorf("Pointer() = %v, want sentinel", p)
	}
}

func TestGameCloseTerminates(t *testing.T) {
	g := NewGame(RunConfig{Width: 100, Height: 100})
	g.Close()
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() = %v, want ebiten.Termination", err)
	}
	if g.Field().State() != StateStopped {
		t.Errorf("State() = %v, want stopped", g.Field().State())
	}
}

func TestEbitenSurfaceUnboundIsNoop(t *testing.T) {
	s := &ebitenSurface{}
	s.Clear()
	s.StrokeLine(0, 0, 10, 10, 1, red)
	s.FillCircle(5, 5, 2, red)
}
