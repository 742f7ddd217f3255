// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/text"
)

// Options configures surface creation.
type Options struct {
	// Width is the surface width in pixels.
	Width int

	// Height is the surface height in pixels.
	Height int

	// Background is the color a frame is cleared to.
	// Default: opaque black
	Background ggchart.RGBA

	// LineWidth is the stroke width of line segments in pixels.
	// Default: 1
	LineWidth float64

	// FontSize is the legend label size in pixels.
	// Default: 12
	FontSize float64

	// Font is the legend font. Nil selects text.DefaultFont.
	Font *text.Font

	// Custom options for specific backends.
	Custom map[string]any
}

// DefaultOptions returns Options with default values.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:      width,
		Height:     height,
		Background: ggchart.Black,
		LineWidth:  1,
		FontSize:   12,
	}
}

// withDefaults fills zero-valued style fields.
func (o Options) withDefaults() Options {
	d := DefaultOptions(o.Width, o.Height)
	if o.Background == (ggchart.RGBA{}) {
		o.Background = d.Background
	}
	if o.LineWidth <= 0 {
		o.LineWidth = d.LineWidth
	}
	if o.FontSize <= 0 {
		o.FontSize = d.FontSize
	}
	return o
}
