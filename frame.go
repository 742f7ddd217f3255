package ggchart

import "time"

// Frame collects the primitives of one render pass. A Chart reuses a single
// Frame across passes, so drawables must not retain it.
type Frame struct {
	viewport   Viewport
	legend     LegendLayout
	prims      []Primitive
	legendSlot int
}

// reset prepares the frame for a new pass, keeping the primitive buffer.
func (f *Frame) reset(vp Viewport, legend LegendLayout) {
	f.viewport = vp
	f.legend = legend
	clear(f.prims)
	f.prims = f.prims[:0]
	f.legendSlot = 0
}

// Viewport returns the viewport the frame is built for.
func (f *Frame) Viewport() Viewport { return f.viewport }

// Emit appends a primitive.
func (f *Frame) Emit(p Primitive) { f.prims = append(f.prims, p) }

// Primitives returns the primitives emitted so far. The slice is only valid
// until the next render pass.
func (f *Frame) Primitives() []Primitive { return f.prims }

// LegendAnchor returns where the next legend label would be placed.
// It does not consume a slot.
func (f *Frame) LegendAnchor(text string) Point {
	if text == "" {
		return Point{}
	}
	return f.legend.Anchor(f.legendSlot, text, f.viewport)
}

// NextLegendSlot consumes a legend slot. Drawables other than Series call it
// after emitting a LegendGlyph.
func (f *Frame) NextLegendSlot() { f.legendSlot++ }

// FrameStats describes one attempted render pass.
type FrameStats struct {
	// Rendered is false when the pass was skipped.
	Rendered bool
	// Primitives is the number of primitives submitted.
	Primitives int
	// Rejected is the number of drawables skipped as malformed.
	Rejected int
	// Duration is the wall time spent in the pass.
	Duration time.Duration
	// Err is the reason a pass was skipped, if any.
	Err error
}
