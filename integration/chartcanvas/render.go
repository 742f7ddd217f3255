// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chartcanvas

import (
	"errors"
	"fmt"
)

// Rendering errors.
var (
	// ErrInvalidRenderer is returned when the draw context has no texture creator.
	ErrInvalidRenderer = errors.New("chartcanvas: draw context has no texture creator")
)

// TextureCreator creates GPU textures from premultiplied pixel data in the
// window's surface format.
type TextureCreator interface {
	NewTextureFromRGBA(width, height int, data []byte) (any, error)
}

// TextureDrawer draws GPU textures into the current window frame.
type TextureDrawer interface {
	DrawTexture(tex any, x, y float32) error
	TextureCreator() TextureCreator
}

// RenderOptions controls how canvas is rendered to the target.
type RenderOptions struct {
	// X, Y is the position to draw the texture (default: 0, 0)
	X, Y float32
}

// DefaultRenderOptions returns options with sensible defaults.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{}
}

// RenderTo uploads pending chart pixels and draws them at (0, 0).
//
// Example:
//
//	app.OnDraw(func(dc Frame) {
//	    canvas.Tick(dc.Elapsed())
//	    canvas.RenderTo(dc)
//	})
func (c *Canvas) RenderTo(dc TextureDrawer) error {
	return c.RenderToEx(dc, DefaultRenderOptions())
}

// RenderToEx draws the canvas with additional options.
func (c *Canvas) RenderToEx(dc TextureDrawer, opts RenderOptions) error {
	if c.closed {
		return ErrCanvasClosed
	}

	tex, err := c.Flush()
	if err != nil {
		return err
	}

	if pending, isPending := tex.(*pendingTexture); isPending {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrInvalidRenderer
		}

		realTex, err := creator.NewTextureFromRGBA(pending.width, pending.height, pending.data)
		if err != nil {
			return fmt.Errorf("chartcanvas: NewTextureFromRGBA failed: %w", err)
		}

		// image.RGBA data is premultiplied alpha.
		if pt, ok := realTex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(true)
		}

		c.texture = realTex
		tex = realTex

		// The creator waits for the GPU, so the old texture is no longer in use.
		destroy(c.oldTexture)
		c.oldTexture = nil
	}

	return dc.DrawTexture(tex, opts.X, opts.Y)
}

// RenderToPosition is a convenience method for rendering at a specific position.
func (c *Canvas) RenderToPosition(dc TextureDrawer, x, y float32) error {
	return c.RenderToEx(dc, RenderOptions{X: x, Y: y})
}
