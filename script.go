package plexus

import (
	"encoding/json"
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ScriptStep is a single action in a pointer script.
type ScriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Ease   string  `json:"ease,omitempty"`
}

// script is the top-level JSON structure of a pointer script.
type script struct {
	Steps []ScriptStep `json:"steps"`
}

// easings maps the names accepted in a glide step's "ease" field.
var easings = map[string]ease.TweenFunc{
	"":           ease.Linear,
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
	"outBounce":  ease.OutBounce,
}

// Runner replays a script of pointer, visibility and resize events against a
// Field, one step per frame. Call Step once per frame before the field
// ticks. It is what the headless recorder uses to produce repeatable
// recordings.
type Runner struct {
	// OnCapture, if set, receives the label of every capture step.
	OnCapture func(label string)

	steps     []ScriptStep
	cursor    int
	waitCount int
	glideX    *gween.Tween
	glideY    *gween.Tween
	done      bool
	err       error
}

// LoadScript parses a JSON pointer script and returns a Runner for it.
func LoadScript(jsonData []byte) (*Runner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "move", "leave", "hide", "show", "resize", "wait", "capture":
		case "glide":
			if _, ok := easings[st.Ease]; !ok {
				return nil, fmt.Errorf("parse script: step %d: unknown ease %q", i, st.Ease)
			}
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Runner{steps: s.Steps}, nil
}

// Done reports whether every step has been executed.
func (r *Runner) Done() bool {
	return r.done
}

// Err returns the first error a resize step produced, if any.
func (r *Runner) Err() error {
	return r.err
}

// Step advances the runner by one frame.
func (r *Runner) Step(f *Field) {
	if r.done {
		return
	}
	if r.glideX != nil {
		r.advanceGlide(f)
		r.checkDone()
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		r.checkDone()
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "move":
		f.PointerMove(st.X, st.Y)
	case "leave":
		f.PointerLeave()
	case "hide":
		f.SetVisible(false)
	case "show":
		f.SetVisible(true)
	case "resize":
		if err := f.Resize(st.Width, st.Height); err != nil && r.err == nil {
			r.err = err
		}
	case "capture":
		if r.OnCapture != nil {
			r.OnCapture(st.Label)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "glide":
		frames := float32(max(st.Frames, 1))
		fn := easings[st.Ease]
		r.glideX = gween.New(float32(st.FromX), float32(st.ToX), frames, fn)
		r.glideY = gween.New(float32(st.FromY), float32(st.ToY), frames, fn)
		r.advanceGlide(f)
	}

	r.checkDone()
}

// advanceGlide moves the pointer one frame further along the active glide.
func (r *Runner) advanceGlide(f *Field) {
	x, doneX := r.glideX.Update(1)
	y, doneY := r.glideY.Update(1)
	f.PointerMove(float64(x), float64(y))
	if doneX && doneY {
		r.glideX, r.glideY = nil, nil
	}
}

func (r *Runner) checkDone() {
	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.glideX == nil {
		r.done = true
	}
}
