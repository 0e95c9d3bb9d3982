// Package tui hosts a plexus field in a terminal through tcell.
//
// Each terminal cell stands for a block of virtual pixels, mouse motion
// becomes pointer input, focus changes become pointer-leave and visibility
// signals, and a ticker flushes the frame queue at roughly display rate.
// Input handling and frame callbacks share the single goroutine that runs
// Run.
package tui

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/plexus"
)

// Options configures Run.
type Options struct {
	// Field tunes the animation. The zero value uses plexus.DefaultConfig.
	Field plexus.Config
	// CellW and CellH are the virtual pixels per cell. Zero means 8×16,
	// about the aspect of a terminal glyph.
	CellW, CellH float64
	// Interval is the frame period. Zero means 16ms (~60 Hz).
	Interval time.Duration
	// PauseOnBlur hides the field while the terminal is unfocused.
	PauseOnBlur bool
	// Seed, when non-zero, makes the particle layout reproducible.
	Seed uint64
}

func (o Options) withDefaults() Options {
	if o.CellW <= 0 {
		o.CellW = 8
	}
	if o.CellH <= 0 {
		o.CellH = 16
	}
	if o.Interval <= 0 {
		o.Interval = 16 * time.Millisecond
	}
	return o
}

// host wires one screen to one field.
type host struct {
	screen  tcell.Screen
	surface *Surface
	field   *plexus.Field
	frames  plexus.FrameQueue
	opts    Options
	paused  bool
	err     error // why handle asked to quit, if it failed
}

func newHost(screen tcell.Screen, opts Options) (*host, error) {
	opts = opts.withDefaults()
	var rng *rand.Rand
	if opts.Seed != 0 {
		rng = rand.New(rand.NewPCG(opts.Seed, opts.Seed))
	}

	cols, rows := screen.Size()
	h := &host{
		screen:  screen,
		surface: NewSurface(cols, rows, opts.CellW, opts.CellH),
		opts:    opts,
	}
	h.field = plexus.NewField(opts.Field, h.surface, rng)
	if err := h.field.Initialize(h.surface.PixelSize()); err != nil {
		return nil, err
	}

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()
	h.field.OnTeardown(func() {
		screen.DisableMouse()
		screen.DisableFocus()
	})

	if err := h.field.Start(&h.frames); err != nil {
		return nil, err
	}
	return h, nil
}

// handle applies one terminal event and reports whether the host should
// quit.
func (h *host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q',
			ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0:
			return true
		case ev.Rune() == 'p':
			h.paused = !h.paused
			h.field.SetVisible(!h.paused)
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		h.field.PointerMove(h.surface.ToPixel(x, y))
	case *tcell.EventFocus:
		if !ev.Focused {
			h.field.PointerLeave()
		}
		if h.opts.PauseOnBlur && !h.paused {
			h.field.SetVisible(ev.Focused)
		}
	case *tcell.EventResize:
		cols, rows := ev.Size()
		h.surface.Resize(cols, rows)
		if err := h.field.Resize(h.surface.PixelSize()); err != nil {
			h.err = fmt.Errorf("resize to %dx%d cells: %w", cols, rows, err)
			return true
		}
		h.screen.Sync()
	}
	return false
}

// frame runs pending frame callbacks and shows the result.
func (h *host) frame() {
	h.frames.Flush()
	h.surface.Present(h.screen)
	h.screen.Show()
}

// Run animates a field on screen until ctx is cancelled or the user presses
// q, Esc or Ctrl-C; p pauses. A terminal resize the field cannot follow
// ends Run with that error. The screen must already be initialized and is
// left initialized; the caller owns Fini.
func Run(ctx context.Context, screen tcell.Screen, opts Options) error {
	h, err := newHost(screen, opts)
	if err != nil {
		return err
	}
	defer h.field.Teardown()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(h.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if h.handle(ev) {
				return h.err
			}
		case <-ticker.C:
			h.frame()
		}
	}
}
