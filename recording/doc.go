// Package recording captures chart render passes as typed commands.
//
// A Recorder implements ggchart.Surface and ggchart.FrameSurface. Instead of
// drawing, it appends one Command per call. The commands can be inspected,
// compared in tests, or replayed to any other surface.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(640, 480)
//	c := ggchart.NewChart(ggchart.WithSurface(rec))
//	...
//	c.OnFrameTick(elapsed)
//
//	r := rec.FinishRecording()
//	for _, cmd := range r.Commands() {
//	    fmt.Println(cmd.Type())
//	}
//
// # Playback
//
// A Recording replays onto another surface, frame boundaries included:
//
//	img, _ := surface.Open("image", surface.DefaultOptions(640, 480))
//	err := r.Playback(img)
//
// The recorder is also registered in the surface registry as "recording".
//
// # Thread Safety
//
// A Recorder is not safe for concurrent use. A finished Recording is
// immutable and may be replayed from any goroutine.
package recording
