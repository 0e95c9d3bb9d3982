package plexus

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// CaptureFrame writes img as <dir>/<frame>_<label>.png, creating dir if
// needed, and returns the path written.
func CaptureFrame(dir, label string, frame int, img image.Image) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("capture: mkdir %s: %w", dir, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%06d_%s.png", frame, sanitizeLabel(label)))
	if err := writePNG(path, img); err != nil {
		return "", fmt.Errorf("capture: %w", err)
	}
	return path, nil
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Animation accumulates frames for an animated GIF. Frames are quantized to
// the Plan 9 palette with Floyd-Steinberg dithering as they are added.
type Animation struct {
	// Delay is the per-frame delay in hundredths of a second.
	Delay int

	g gif.GIF
}

// NewAnimation creates an empty animation with the given frame delay.
func NewAnimation(delay int) *Animation {
	return &Animation{Delay: max(delay, 1)}
}

// AddFrame appends a snapshot of img.
func (a *Animation) AddFrame(img image.Image) {
	b := img.Bounds()
	p := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(p, b, img, b.Min)
	a.g.Image = append(a.g.Image, p)
	a.g.Delay = append(a.g.Delay, a.Delay)
}

// Len returns the number of frames added.
func (a *Animation) Len() int {
	return len(a.g.Image)
}

// Encode writes the animation to w. It fails when no frame was added.
func (a *Animation) Encode(w io.Writer) error {
	if len(a.g.Image) == 0 {
		return fmt.Errorf("encode gif: no frames")
	}
	if err := gif.EncodeAll(w, &a.g); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}
