// Package ggchart provides an embeddable 2D line-chart rendering core.
//
// # Overview
//
// A Chart owns a scene: a Viewport (the visible data window plus the pixel
// size of the drawing surface) and an ordered list of Drawables, usually
// Series. Every attribute write marks the scene dirty; the next frame tick
// rebuilds the whole scene into draw primitives and submits them to a
// Surface. Pointer positions are mapped back into data space for the host.
//
// # Quick Start
//
//	s := surface.NewImageSurface(640, 480)
//	c := ggchart.NewChart(ggchart.WithSurface(s))
//	c.SetXMin(0)
//	c.SetXMax(10)
//	c.SetYRange(4)
//	c.OnSurfaceResized(640, 480)
//
//	line := c.NewSeries()
//	line.SetData([]float64{0, 1, 2}, []float64{0, 1, 0})
//	line.SetLineColor(ggchart.Hex("#4e79a7"))
//
//	// once per display refresh
//	c.OnFrameTick(elapsed)
//
// # Coordinate Spaces
//
//   - Data space: the units of the series. X spans [XMin, XMax], Y spans
//     YCenter ± YRange/2.
//   - Clip space: data space shifted so the center of the data window is
//     the origin; an orthographic projection of XRange x YRange scales it.
//   - Surface space: pixels, origin top-left, Y increases down.
//
// Primitives carry data-space coordinates and are mapped by the surface
// using the projection it was given for the frame. The inverse mapping,
// from surface pixels to data space, is plain arithmetic in Viewport.ToData.
//
// # Threading
//
// A Chart and its Surface are owned by one goroutine. The package logger is
// the only shared state and is safe for concurrent use.
package ggchart
