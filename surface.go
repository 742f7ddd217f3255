package ggchart

// Surface is the immediate-mode drawing target a Chart renders into.
//
// Vertices handed to DrawLineSegment, DrawMarker and DrawCursorOverlay are
// in data space; the surface maps them with the most recent projection and
// viewport. DrawText anchors are already in surface pixels.
//
// Surfaces are NOT thread-safe. A chart and its surface are owned by one
// goroutine.
type Surface interface {
	// SetViewport sets the pixel rectangle the projection maps onto.
	SetViewport(x, y, width, height int)

	// SetProjection sets the orthographic projection used for the
	// following draw calls.
	SetProjection(p Projection)

	// DrawLineSegment draws a line between two data points.
	DrawLineSegment(p0, p1 Point, c RGBA)

	// DrawMarker draws a marker of the given pixel size at a data point.
	DrawMarker(center Point, shape MarkerShape, size float64, c RGBA)

	// DrawCursorOverlay draws a cursor crosshair through a data point.
	DrawCursorOverlay(center Point, c RGBA)

	// DrawText draws a label with its top-left corner at anchor (pixels).
	DrawText(anchor Point, text string, c RGBA)
}

// FrameSurface is an optional interface for surfaces that need to know
// where a frame starts and ends, for example to clear or present.
type FrameSurface interface {
	Surface

	// BeginFrame is called before SetViewport at the start of a render pass.
	BeginFrame()

	// EndFrame is called after the last primitive of a render pass.
	EndFrame() error
}

// Drawable is content that renders inside a chart. Series is the line,
// marker and cursor variant; other chart types implement the same method.
type Drawable interface {
	// Render appends the drawable's primitives to f. An error skips the
	// drawable for this frame without affecting the others.
	Render(f *Frame) error
}

// TextMeasurer reports the horizontal advance of a label in pixels.
// The text package provides a shaping implementation.
type TextMeasurer interface {
	Advance(text string, size float64) float64
}

// FrameObserver receives statistics for every frame tick that attempted
// a render pass.
type FrameObserver interface {
	ObserveFrame(stats FrameStats)
}
