// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface provides drawing backends for ggchart.
//
// A ggchart.Chart renders into any ggchart.Surface. This package supplies
// the built-in implementations and a registry to select them by name:
//
//   - "image": ImageSurface, CPU rendering into an *image.RGBA with
//     anti-aliased lines and markers (golang.org/x/image/vector) and
//     legend labels (package text).
//   - "recording": recording.Recorder, which captures commands instead of
//     drawing. Useful in tests and for replaying a frame elsewhere.
//
// # Registry
//
// Other packages can register additional backends:
//
//	func init() {
//	    surface.Register(surface.Backend{Name: "svg", Priority: 20, New: newSVGSurface})
//	}
//
//	// Later, usually with the backend key of a chart config:
//	s, err := surface.Open("svg", surface.DefaultOptions(800, 600))
//
// Open with an empty name picks the available backend with the highest
// priority. Backends reports each backend and, when it cannot run, why.
//
// # Usage
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	c := ggchart.NewChart(ggchart.WithSurface(s))
//	c.OnSurfaceResized(800, 600)
//	...
//	c.OnFrameTick(0)
//	img := s.Snapshot()
//
// Surfaces are NOT thread-safe. A surface belongs to the goroutine that
// owns its chart.
package surface
