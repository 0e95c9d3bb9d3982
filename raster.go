package plexus

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// circleSegments is the polygon resolution used for discs. Particles are a
// few pixels across, so this is well past what the eye can tell apart.
const circleSegments = 24

// ImageSurface is a software Surface backed by an *image.RGBA. It needs no
// GPU or window and is what the headless recorder renders into.
type ImageSurface struct {
	// Background is painted by Clear. Nil means transparent.
	Background color.Color

	img *image.RGBA
	z   *vector.Rasterizer
	box image.Rectangle // pixels covered by the primitive being drawn
}

// NewImageSurface creates a w×h surface cleared to transparent.
func NewImageSurface(w, h int) *ImageSurface {
	w, h = max(w, 1), max(h, 1)
	return &ImageSurface{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		z:   vector.NewRasterizer(w, h),
	}
}

// Image returns the backing image. It is overwritten by later draws.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Size returns the surface dimensions in pixels.
func (s *ImageSurface) Size() (w, h int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear implements Surface.
func (s *ImageSurface) Clear() {
	bg := s.Background
	if bg == nil {
		bg = color.Transparent
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

// StrokeLine implements Surface. The segment is filled as a quad of the
// given width; zero-length segments draw nothing.
func (s *ImageSurface) StrokeLine(x0, y0, x1, y1, width float64, c HSLA) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return
	}
	// Unit normal scaled to half the stroke width.
	nx, ny := -dy/l*width/2, dx/l*width/2
	pad := math.Abs(width) / 2

	if !s.begin(math.Min(x0, x1)-pad, math.Min(y0, y1)-pad, math.Max(x0, x1)+pad, math.Max(y0, y1)+pad) {
		return
	}
	s.moveTo(x0+nx, y0+ny)
	s.lineTo(x1+nx, y1+ny)
	s.lineTo(x1-nx, y1-ny)
	s.lineTo(x0-nx, y0-ny)
	s.z.ClosePath()
	s.flush(c)
}

// FillCircle implements Surface.
func (s *ImageSurface) FillCircle(cx, cy, r float64, c HSLA) {
	if r <= 0 || math.IsNaN(cx) || math.IsNaN(cy) {
		return
	}
	if !s.begin(cx-r, cy-r, cx+r, cy+r) {
		return
	}
	s.moveTo(cx+r, cy)
	for i := 1; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		s.lineTo(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	s.z.ClosePath()
	s.flush(c)
}

// begin sizes the rasterizer to the pixel box covering [x0,x1]×[y0,y1],
// clipped to the image. It reports false when nothing would be visible.
func (s *ImageSurface) begin(x0, y0, x1, y1 float64) bool {
	b := s.img.Bounds()
	if !(x1 >= float64(b.Min.X) && y1 >= float64(b.Min.Y) &&
		x0 <= float64(b.Max.X) && y0 <= float64(b.Max.Y)) {
		return false
	}
	// One extra pixel each side for antialiased edges.
	box := image.Rect(
		int(math.Max(math.Floor(x0)-1, float64(b.Min.X))),
		int(math.Max(math.Floor(y0)-1, float64(b.Min.Y))),
		int(math.Min(math.Ceil(x1)+1, float64(b.Max.X))),
		int(math.Min(math.Ceil(y1)+1, float64(b.Max.Y))),
	).Intersect(b)
	if box.Empty() {
		return false
	}
	s.box = box
	s.z.Reset(box.Dx(), box.Dy())
	s.z.DrawOp = draw.Over
	return true
}

func (s *ImageSurface) moveTo(x, y float64) {
	s.z.MoveTo(float32(x-float64(s.box.Min.X)), float32(y-float64(s.box.Min.Y)))
}

func (s *ImageSurface) lineTo(x, y float64) {
	s.z.LineTo(float32(x-float64(s.box.Min.X)), float32(y-float64(s.box.Min.Y)))
}

func (s *ImageSurface) flush(c HSLA) {
	s.z.Draw(s.img, s.box, image.NewUniform(c), image.Point{})
}
