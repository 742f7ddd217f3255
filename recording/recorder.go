package recording

import (
	"slices"

	"github.com/gogpu/ggchart"
)

// Recorder captures surface calls as commands.
// Use FinishRecording to obtain an immutable Recording.
//
// Example:
//
//	rec := recording.NewRecorder(800, 600)
//	chart.SetSurface(rec)
//	chart.OnFrameTick(0)
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	frames        int

	// Current state, kept for inspection.
	viewport   SetViewportCommand
	projection ggchart.Projection
}

var _ ggchart.FrameSurface = (*Recorder)(nil)

// NewRecorder creates a Recorder for a surface of the given pixel size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 256),
	}
}

// Width returns the width the recorder was created with.
func (r *Recorder) Width() int { return r.width }

// Height returns the height the recorder was created with.
func (r *Recorder) Height() int { return r.height }

// Resize records a new surface size. Recorded commands are kept.
func (r *Recorder) Resize(width, height int) error {
	r.width, r.height = width, height
	return nil
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int { return len(r.commands) }

// Frames returns the number of completed render passes.
func (r *Recorder) Frames() int { return r.frames }

// Viewport returns the most recent viewport rectangle.
func (r *Recorder) Viewport() (x, y, width, height int) {
	v := r.viewport
	return v.X, v.Y, v.Width, v.Height
}

// Projection returns the most recent projection.
func (r *Recorder) Projection() ggchart.Projection { return r.projection }

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	clear(r.commands)
	r.commands = r.commands[:0]
	r.frames = 0
}

// FinishRecording returns an immutable Recording containing all recorded
// commands. The Recorder keeps its commands and can continue recording.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: slices.Clip(slices.Clone(r.commands)),
	}
}

// LastFrame returns the commands of the most recent complete render pass,
// BeginFrame and EndFrame included. It returns nil if no pass has ended.
func (r *Recorder) LastFrame() []Command {
	end := -1
	for i := len(r.commands) - 1; i >= 0; i-- {
		if r.commands[i].Type() == CmdEndFrame {
			end = i
			break
		}
	}
	if end < 0 {
		return nil
	}
	for i := end; i >= 0; i-- {
		if r.commands[i].Type() == CmdBeginFrame {
			return slices.Clone(r.commands[i : end+1])
		}
	}
	return nil
}

// --------------------------------------------------------------------------
// ggchart.FrameSurface
// --------------------------------------------------------------------------

// BeginFrame implements ggchart.FrameSurface.
func (r *Recorder) BeginFrame() {
	r.commands = append(r.commands, BeginFrameCommand{})
}

// EndFrame implements ggchart.FrameSurface.
func (r *Recorder) EndFrame() error {
	r.commands = append(r.commands, EndFrameCommand{})
	r.frames++
	return nil
}

// SetViewport implements ggchart.Surface.
func (r *Recorder) SetViewport(x, y, width, height int) {
	r.viewport = SetViewportCommand{X: x, Y: y, Width: width, Height: height}
	r.commands = append(r.commands, r.viewport)
}

// SetProjection implements ggchart.Surface.
func (r *Recorder) SetProjection(p ggchart.Projection) {
	r.projection = p
	r.commands = append(r.commands, SetProjectionCommand{Projection: p})
}

// DrawLineSegment implements ggchart.Surface.
func (r *Recorder) DrawLineSegment(p0, p1 ggchart.Point, c ggchart.RGBA) {
	r.commands = append(r.commands, DrawLineSegmentCommand{P0: p0, P1: p1, Color: c})
}

// DrawMarker implements ggchart.Surface.
func (r *Recorder) DrawMarker(center ggchart.Point, shape ggchart.MarkerShape, size float64, c ggchart.RGBA) {
	r.commands = append(r.commands, DrawMarkerCommand{Center: center, Shape: shape, Size: size, Color: c})
}

// DrawCursorOverlay implements ggchart.Surface.
func (r *Recorder) DrawCursorOverlay(center ggchart.Point, c ggchart.RGBA) {
	r.commands = append(r.commands, DrawCursorOverlayCommand{Center: center, Color: c})
}

// DrawText implements ggchart.Surface.
func (r *Recorder) DrawText(anchor ggchart.Point, text string, c ggchart.RGBA) {
	r.commands = append(r.commands, DrawTextCommand{Anchor: anchor, Text: text, Color: c})
}

// --------------------------------------------------------------------------
// Recording
// --------------------------------------------------------------------------

// Recording is an immutable container for recorded commands.
// It can be replayed to any ggchart.Surface.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the surface width at the time of recording.
func (r *Recording) Width() int { return r.width }

// Height returns the surface height at the time of recording.
func (r *Recording) Height() int { return r.height }

// Commands returns the recorded commands. The slice must not be modified.
func (r *Recording) Commands() []Command { return r.commands }

// Count returns the number of commands of the given type.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// Primitives returns the drawing commands as primitives, in order.
func (r *Recording) Primitives() []ggchart.Primitive {
	out := make([]ggchart.Primitive, 0, len(r.commands))
	for _, cmd := range r.commands {
		if p, ok := primitive(cmd); ok {
			out = append(out, p)
		}
	}
	return out
}

// Playback replays the recording to the given surface. Frame commands are
// forwarded only when s implements ggchart.FrameSurface. Playback stops at
// the first EndFrame error.
func (r *Recording) Playback(s ggchart.Surface) error {
	fs, hasFrame := s.(ggchart.FrameSurface)

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case BeginFrameCommand:
			if hasFrame {
				fs.BeginFrame()
			}
		case EndFrameCommand:
			if hasFrame {
				if err := fs.EndFrame(); err != nil {
					return err
				}
			}
		case SetViewportCommand:
			s.SetViewport(c.X, c.Y, c.Width, c.Height)
		case SetProjectionCommand:
			s.SetProjection(c.Projection)
		case DrawLineSegmentCommand:
			s.DrawLineSegment(c.P0, c.P1, c.Color)
		case DrawMarkerCommand:
			s.DrawMarker(c.Center, c.Shape, c.Size, c.Color)
		case DrawCursorOverlayCommand:
			s.DrawCursorOverlay(c.Center, c.Color)
		case DrawTextCommand:
			s.DrawText(c.Anchor, c.Text, c.Color)
		}
	}
	return nil
}
