package plexus

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ebitenSurface draws onto whatever image is bound for the current frame.
// Outside Draw no image is bound and every call is dropped.
type ebitenSurface struct {
	dst        *ebiten.Image
	background color.Color
}

func (s *ebitenSurface) Clear() {
	if s.dst == nil {
		return
	}
	if s.background != nil {
		s.dst.Fill(s.background)
		return
	}
	s.dst.Clear()
}

func (s *ebitenSurface) StrokeLine(x0, y0, x1, y1, width float64, c HSLA) {
	if s.dst == nil {
		return
	}
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

func (s *ebitenSurface) FillCircle(cx, cy, r float64, c HSLA) {
	if s.dst == nil {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), c, true)
}

// RunConfig configures Run and NewGame.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the initial window size in pixels.
	Width, Height int
	// ShowFPS overlays frame rate and link counts in the top-left corner.
	ShowFPS bool
	// Field tunes the animation. The zero value uses DefaultConfig.
	Field Config
	// Background fills the window before each frame. Nil leaves it black.
	Background color.Color
	// Seed, when non-zero, makes the particle layout reproducible.
	Seed uint64
}

// Game hosts a Field in an Ebitengine window. It implements ebiten.Game.
//
// Layout feeds the window size to Field.Resize, Update maps the cursor to
// PointerMove/PointerLeave and window minimization to SetVisible, and Draw
// flushes the frame queue with the screen bound as the surface.
type Game struct {
	field   *Field
	surface *ebitenSurface
	frames  FrameQueue
	showFPS bool

	layoutW, layoutH int
	pointerIn        bool
	started          bool
	closed           bool
}

// NewGame creates a Game for cfg. The field is sized on the first Update.
func NewGame(cfg RunConfig) *Game {
	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}
	surface := &ebitenSurface{background: cfg.Background}
	return &Game{
		field:   NewField(cfg.Field, surface, rng),
		surface: surface,
		showFPS: cfg.ShowFPS,
		layoutW: cfg.Width,
		layoutH: cfg.Height,
	}
}

// Field returns the hosted field.
func (g *Game) Field() *Field {
	return g.field
}

// Close tears the field down. The next Update ends the game loop.
func (g *Game) Close() {
	g.closed = true
	g.field.Teardown()
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.closed {
		return ebiten.Termination
	}

	if g.layoutW > 0 && g.layoutH > 0 {
		if err := g.field.Resize(float64(g.layoutW), float64(g.layoutH)); err != nil {
			return fmt.Errorf("resize field: %w", err)
		}
		if !g.started {
			if err := g.field.Start(&g.frames); err != nil {
				return fmt.Errorf("start field: %w", err)
			}
			g.started = true
		}
	}

	g.field.SetVisible(!ebiten.IsWindowMinimized())

	mx, my := ebiten.CursorPosition()
	g.trackPointer(mx, my)
	return nil
}

// trackPointer forwards a cursor sample: inside the window it is a move,
// the first sample outside is a leave.
func (g *Game) trackPointer(x, y int) {
	inside := x >= 0 && y >= 0 && x < g.layoutW && y < g.layoutH
	switch {
	case inside:
		g.field.PointerMove(float64(x), float64(y))
		g.pointerIn = true
	case g.pointerIn:
		g.field.PointerLeave()
		g.pointerIn = false
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.dst = screen
	g.frames.Flush()
	g.surface.dst = nil

	if g.showFPS {
		st := g.field.LastFrame()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nLinks: %d\nPointer: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), st.Links, st.PointerLinks))
	}
}

// Layout implements ebiten.Game. The logical screen tracks the window so
// particle coordinates are window pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.layoutW, g.layoutH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens a resizable window and animates a Field in it until the window
// is closed.
func Run(cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if cfg.Title == "" {
		cfg.Title = "plexus"
	}

	g := NewGame(cfg)
	defer g.Close()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
