package plexus

// Surface is the drawing capability a Field renders through. Coordinates are
// surface-local pixels with the origin at the top-left and Y growing down.
type Surface interface {
	// Clear erases everything drawn since the previous Clear.
	Clear()
	// StrokeLine draws a straight segment of the given width.
	StrokeLine(x0, y0, x1, y1, width float64, c HSLA)
	// FillCircle draws a filled disc.
	FillCircle(cx, cy, r float64, c HSLA)
}

// CommandType identifies the kind of draw command.
type CommandType uint8

const (
	CommandLine   CommandType = iota // StrokeLine
	CommandCircle                    // FillCircle
)

// DrawCommand is a single recorded draw call. For lines, (X0, Y0)-(X1, Y1)
// are the endpoints and Size is the stroke width. For circles, (X0, Y0) is
// the center and Size the radius.
type DrawCommand struct {
	Type           CommandType
	X0, Y0, X1, Y1 float64
	Size           float64
	Color          HSLA
}

// Recorder is a Surface that keeps the draw calls issued since the last
// Clear. It backs the tests and is useful for inspecting a frame without a
// display.
type Recorder struct {
	Commands []DrawCommand
	// Clears counts Clear calls over the recorder's lifetime.
	Clears int
}

// Clear implements Surface.
func (r *Recorder) Clear() {
	r.Commands = r.Commands[:0]
	r.Clears++
}

// StrokeLine implements Surface.
func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c HSLA) {
	r.Commands = append(r.Commands, DrawCommand{
		Type: CommandLine,
		X0:   x0, Y0: y0, X1: x1, Y1: y1,
		Size:  width,
		Color: c,
	})
}

// FillCircle implements Surface.
func (r *Recorder) FillCircle(cx, cy, radius float64, c HSLA) {
	r.Commands = append(r.Commands, DrawCommand{
		Type: CommandCircle,
		X0:   cx, Y0: cy,
		Size:  radius,
		Color: c,
	})
}

// Count returns how many recorded commands have type t.
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for i := range r.Commands {
		if r.Commands[i].Type == t {
			n++
		}
	}
	return n
}

// Of returns the recorded commands of type t, in draw order.
func (r *Recorder) Of(t CommandType) []DrawCommand {
	var out []DrawCommand
	for _, c := range r.Commands {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}
