// Package plexus renders a decorative particle network: a fixed population
// of slowly drifting points, joined by faded lines when they come close,
// reaching toward the pointer, and tinted by a hue that sweeps over time.
//
// # Quick start
//
// The simplest way to see it is [Run], which opens an [Ebitengine] window:
//
//	plexus.Run(plexus.RunConfig{Title: "Background", Width: 800, Height: 600})
//
// For full control, build a [Field] over any [Surface] and drive it
// yourself:
//
//	rec := &plexus.Recorder{}
//	f := plexus.NewField(plexus.DefaultConfig(), rec, rand.New(rand.NewPCG(1, 2)))
//	if err := f.Initialize(800, 600); err != nil {
//		// no surface: the page carries on without a background
//	}
//	f.PointerMove(400, 300)
//	f.Tick()
//	// rec.Commands now holds one frame of lines and circles
//
// # Frames
//
// A Field advances by a fixed step per [Field.Tick]; it does not look at the
// clock, so the animation runs faster on faster displays. Hosts either call
// Tick once per display refresh or hand the loop to a [Scheduler] with
// [Field.Start]. [FrameQueue] is the scheduler every bundled host uses; it
// runs requested callbacks when the host calls [FrameQueue.Flush].
//
// Hidden fields (see [Field.SetVisible]) skip their ticks entirely.
// [Field.Teardown] cancels the outstanding frame and runs the release hooks
// registered with [Field.OnTeardown].
//
// # Surfaces
//
// [Recorder] captures draw calls, [ImageSurface] rasterizes in software,
// the ebiten host draws on the GPU, and package tui maps the field onto
// terminal cells. [Runner] replays a JSON pointer script so recordings are
// repeatable.
//
// [Ebitengine]: https://ebitengine.org
package plexus
