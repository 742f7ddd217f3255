// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package chartcanvas hosts a ggchart.Chart in a GPU-accelerated window.
//
// The data flow is:
//
//	Chart (frame tick) -> ImageSurface (CPU) -> GPU Texture -> Window
//
// # Architecture
//
// Canvas owns a chart and the CPU surface it renders into, and manages the
// texture upload:
//
//   - Tick() forwards the display refresh to the chart; only dirty charts
//     redraw, and only redrawn frames are uploaded
//   - Flush() converts pixels to the window's surface format and uploads them
//   - RenderTo() draws the texture into the window frame
//
// # Usage
//
//	canvas, err := chartcanvas.New(provider, 800, 600)
//	if err != nil {
//	    return err
//	}
//	defer canvas.Close()
//
//	s := canvas.Chart().NewSeries()
//	s.SetData(xs, ys)
//
//	// per frame
//	canvas.Tick(elapsed)
//	canvas.RenderTo(dc)
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. It belongs to the goroutine that
// drives the window's frames.
package chartcanvas
