// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"image"

	"github.com/gogpu/ggchart"
)

// ErrClosed is returned by operations on a closed surface.
var ErrClosed = errors.New("surface: closed")

// Resizable is an optional interface for surfaces that follow the host
// window size.
type Resizable interface {
	ggchart.Surface

	// Resize changes the surface dimensions.
	// Existing content is discarded.
	Resize(width, height int) error
}

// ImageSource is an optional interface for surfaces backed by CPU memory.
type ImageSource interface {
	ggchart.Surface

	// Image returns the backing image. It is valid until the next Resize.
	Image() *image.RGBA
}
