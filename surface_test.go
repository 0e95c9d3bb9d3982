package plexus

import "testing"

func TestRecorderCapturesCommands(t *testing.T) {
	r := &Recorder{}
	c := HSLA{H: 10, S: 0.5, L: 0.5, A: 1}
	r.StrokeLine(1, 2, 3, 4, 1.5, c)
	r.FillCircle(5, 6, 2, c)
	r.StrokeLine(0, 0, 1, 1, 1, c)

	if r.Count(CommandLine) != 2 || r.Count(CommandCircle) != 1 {
		t.Errorf("counts = %d lines, %d circles; want 2, 1", r.Count(CommandLine), r.Count(CommandCircle))
	}
	circles := r.Of(CommandCircle)
	if len(circles) != 1 || circles[0].X0 != 5 || circles[0].Y0 != 6 || circles[0].Size != 2 {
		t.Errorf("circle = %+v, want center (5, 6) radius 2", circles)
	}
	line := r.Commands[0]
	if line.X0 != 1 || line.Y0 != 2 || line.X1 != 3 || line.Y1 != 4 || line.Size != 1.5 {
		t.Errorf("line = %+v", line)
	}
}

func TestRecorderClear(t *testing.T) {
	r := &Recorder{}
	r.FillCircle(0, 0, 1, HSLA{})
	r.Clear()
	r.Clear()
	if len(r.Commands) != 0 {
		t.Errorf("commands = %d after Clear, want 0", len(r.Commands))
	}
	if r.Clears != 2 {
		t.Errorf("Clears = %d, want 2", r.Clears)
	}
}
