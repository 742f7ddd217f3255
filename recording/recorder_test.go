package recording

import (
	"errors"
	"testing"

	"github.com/gogpu/ggchart"
)

func TestNewRecorder(t *testing.T) {
	rec := NewRecorder(800, 600)

	if rec.Width() != 800 {
		t.Errorf("Width() = %d, want 800", rec.Width())
	}
	if rec.Height() != 600 {
		t.Errorf("Height() = %d, want 600", rec.Height())
	}
	if rec.Len() != 0 {
		t.Errorf("Len() = %d, want 0", rec.Len())
	}
	if rec.LastFrame() != nil {
		t.Error("LastFrame() should be nil before any frame")
	}
}

func newRecordedChart(t *testing.T) (*ggchart.Chart, *Recorder) {
	t.Helper()
	rec := NewRecorder(100, 100)
	c := ggchart.NewChart(
		ggchart.WithSurface(rec),
		ggchart.WithViewport(ggchart.Viewport{XMin: 0, XMax: 10, YRange: 10, Width: 100, Height: 100}),
	)
	s := c.NewSeries()
	s.SetData([]float64{0, 1, 2}, []float64{0, 1, 0})
	s.SetPlot(true)
	s.SetLegend("line")
	return c, rec
}

func TestRecorderCapturesChartFrame(t *testing.T) {
	c, rec := newRecordedChart(t)
	if _, err := c.OnFrameTick(0); err != nil {
		t.Fatal(err)
	}

	r := rec.FinishRecording()
	want := []CommandType{
		CmdBeginFrame,
		CmdSetViewport,
		CmdSetProjection,
		CmdDrawLineSegment, CmdDrawLineSegment,
		CmdDrawMarker, CmdDrawMarker, CmdDrawMarker,
		CmdDrawText,
		CmdEndFrame,
	}
	cmds := r.Commands()
	if len(cmds) != len(want) {
		t.Fatalf("recorded %d commands, want %d", len(cmds), len(want))
	}
	for i, w := range want {
		if cmds[i].Type() != w {
			t.Errorf("cmd[%d] = %v, want %v", i, cmds[i].Type(), w)
		}
	}
	if rec.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", rec.Frames())
	}
	if _, _, w, h := rec.Viewport(); w != 100 || h != 100 {
		t.Errorf("Viewport() size = %dx%d, want 100x100", w, h)
	}
	if p := rec.Projection(); p.Width != 10 || p.Height != 10 {
		t.Errorf("Projection() = %+v", p)
	}
}

func TestRecordingMatchesChartFrame(t *testing.T) {
	c, rec := newRecordedChart(t)
	if _, err := c.OnFrameTick(0); err != nil {
		t.Fatal(err)
	}
	want, err := c.Frame()
	if err != nil {
		t.Fatal(err)
	}
	got := rec.FinishRecording().Primitives()
	if len(got) != len(want) {
		t.Fatalf("Primitives() = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("prims[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestRecordingPlayback(t *testing.T) {
	c, rec := newRecordedChart(t)
	if _, err := c.OnFrameTick(0); err != nil {
		t.Fatal(err)
	}
	original := rec.FinishRecording()

	replay := NewRecorder(100, 100)
	if err := original.Playback(replay); err != nil {
		t.Fatalf("Playback() error = %v", err)
	}
	copied := replay.FinishRecording()
	if len(copied.Commands()) != len(original.Commands()) {
		t.Fatalf("replayed %d commands, want %d", len(copied.Commands()), len(original.Commands()))
	}
	for i, cmd := range original.Commands() {
		if copied.Commands()[i] != cmd {
			t.Errorf("cmd[%d] = %+v, want %+v", i, copied.Commands()[i], cmd)
		}
	}
}

// plainSurface implements only ggchart.Surface.
type plainSurface struct{ draws int }

func (p *plainSurface) SetViewport(int, int, int, int) {}
func (p *plainSurface) SetProjection(ggchart.Projection) {}
func (p *plainSurface) DrawLineSegment(_, _ ggchart.Point, _ ggchart.RGBA) { p.draws++ }
func (p *plainSurface) DrawCursorOverlay(ggchart.Point, ggchart.RGBA) { p.draws++ }
func (p *plainSurface) DrawText(ggchart.Point, string, ggchart.RGBA) { p.draws++ }

func (p *plainSurface) DrawMarker(ggchart.Point, ggchart.MarkerShape, float64, ggchart.RGBA) {
	p.draws++
}

type failingSurface struct{ plainSurface }

func (f *failingSurface) BeginFrame()     {}
func (f *failingSurface) EndFrame() error { return errors.New("present failed") }

func TestRecordingPlaybackPlainSurface(t *testing.T) {
	c, rec := newRecordedChart(t)
	if _, err := c.OnFrameTick(0); err != nil {
		t.Fatal(err)
	}
	var p plainSurface
	if err := rec.FinishRecording().Playback(&p); err != nil {
		t.Fatal(err)
	}
	if p.draws != 6 {
		t.Errorf("draw calls = %d, want 6", p.draws)
	}

	if err := rec.FinishRecording().Playback(&failingSurface{}); err == nil {
		t.Error("Playback() should return the EndFrame error")
	}
}

func TestRecorderLastFrameAndReset(t *testing.T) {
	c, rec := newRecordedChart(t)
	if _, err := c.OnFrameTick(0); err != nil {
		t.Fatal(err)
	}
	c.Series()[0].SetPlot(false)
	if _, err := c.OnFrameTick(0); err != nil {
		t.Fatal(err)
	}

	last := rec.LastFrame()
	if len(last) == 0 || last[0].Type() != CmdBeginFrame || last[len(last)-1].Type() != CmdEndFrame {
		t.Fatalf("LastFrame() = %v", last)
	}
	r := &Recording{commands: last}
	if r.Count(CmdDrawMarker) != 0 || r.Count(CmdDrawLineSegment) != 2 {
		t.Errorf("last frame has %d markers and %d segments, want 0 and 2",
			r.Count(CmdDrawMarker), r.Count(CmdDrawLineSegment))
	}
	if rec.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", rec.Frames())
	}

	rec.Reset()
	if rec.Len() != 0 || rec.Frames() != 0 {
		t.Errorf("after Reset: Len=%d Frames=%d", rec.Len(), rec.Frames())
	}
}

func TestFinishRecordingIsSnapshot(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.DrawText(ggchart.Pt(0, 0), "a", ggchart.White)
	r := rec.FinishRecording()
	rec.DrawText(ggchart.Pt(0, 0), "b", ggchart.White)
	if len(r.Commands()) != 1 {
		t.Errorf("recording changed after FinishRecording: %d commands", len(r.Commands()))
	}
}
