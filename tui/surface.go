package tui

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/plexus"
)

const (
	glyphLink     = '·'
	glyphParticle = '•'
)

// cell accumulates composited color for one terminal cell, over black.
type cell struct {
	r, g, b float64
	glyph   rune
}

// Surface is a plexus.Surface that maps a virtual pixel grid onto terminal
// cells. Each cell covers CellW×CellH virtual pixels, so the field keeps its
// pixel-based tuning on a terminal.
type Surface struct {
	// Gain scales alpha before compositing. Terminal cells are coarse, and
	// the field's faint strokes would otherwise vanish.
	Gain float64

	cellW, cellH float64
	cols, rows   int
	cells        []cell
}

// NewSurface creates a surface of cols×rows cells, each cellW×cellH virtual
// pixels.
func NewSurface(cols, rows int, cellW, cellH float64) *Surface {
	s := &Surface{Gain: 3, cellW: cellW, cellH: cellH}
	s.Resize(cols, rows)
	return s
}

// Resize changes the cell grid and clears it.
func (s *Surface) Resize(cols, rows int) {
	s.cols, s.rows = max(cols, 0), max(rows, 0)
	s.cells = make([]cell, s.cols*s.rows)
}

// Cells returns the grid size.
func (s *Surface) Cells() (cols, rows int) {
	return s.cols, s.rows
}

// PixelSize returns the virtual pixel size of the grid.
func (s *Surface) PixelSize() (w, h float64) {
	return float64(s.cols) * s.cellW, float64(s.rows) * s.cellH
}

// ToPixel returns the virtual pixel at the center of cell (col, row).
func (s *Surface) ToPixel(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * s.cellW, (float64(row) + 0.5) * s.cellH
}

// Clear implements plexus.Surface.
func (s *Surface) Clear() {
	clear(s.cells)
}

// StrokeLine implements plexus.Surface. The segment is walked one cell at a
// time; stroke width is below cell resolution and ignored.
func (s *Surface) StrokeLine(x0, y0, x1, y1, _ float64, c plexus.HSLA) {
	c0, r0 := x0/s.cellW, y0/s.cellH
	c1, r1 := x1/s.cellW, y1/s.cellH
	steps := int(math.Ceil(math.Max(math.Abs(c1-c0), math.Abs(r1-r0))))
	if steps < 0 || steps > 4*(s.cols+s.rows) {
		// NaN, or an endpoint far outside the grid.
		steps = 4 * (s.cols + s.rows)
	}
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		s.blend(c0+(c1-c0)*t, r0+(r1-r0)*t, c, glyphLink)
	}
}

// FillCircle implements plexus.Surface. Particles are smaller than a cell, so
// a particle marks the single cell under its center.
func (s *Surface) FillCircle(cx, cy, _ float64, c plexus.HSLA) {
	s.blend(cx/s.cellW, cy/s.cellH, c, glyphParticle)
}

func (s *Surface) blend(col, row float64, c plexus.HSLA, glyph rune) {
	if math.IsNaN(col) || math.IsNaN(row) {
		return
	}
	x, y := int(math.Floor(col)), int(math.Floor(row))
	if x < 0 || y < 0 || x >= s.cols || y >= s.rows {
		return
	}
	dst := &s.cells[y*s.cols+x]

	a := math.Min(c.A*s.Gain, 1)
	opaque := c
	opaque.A = 1
	r, g, b, _ := opaque.RGBA()
	dst.r = dst.r*(1-a) + float64(r)/0xffff*a
	dst.g = dst.g*(1-a) + float64(g)/0xffff*a
	dst.b = dst.b*(1-a) + float64(b)/0xffff*a

	if glyph == glyphParticle || dst.glyph == 0 {
		dst.glyph = glyph
	}
}

// Present copies the grid onto screen. Untouched cells are blanked.
func (s *Surface) Present(screen tcell.Screen) {
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			c := s.cells[y*s.cols+x]
			if c.glyph == 0 {
				screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
				continue
			}
			fg := tcell.NewRGBColor(channel(c.r), channel(c.g), channel(c.b))
			screen.SetContent(x, y, c.glyph, nil, tcell.StyleDefault.Foreground(fg))
		}
	}
}

func channel(v float64) int32 {
	return int32(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
