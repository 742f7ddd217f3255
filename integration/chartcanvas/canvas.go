// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chartcanvas

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/surface"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("chartcanvas: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("chartcanvas: invalid dimensions")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("chartcanvas: nil DeviceProvider")
)

// textureDestroyer is implemented by GPU textures that own resources.
type textureDestroyer interface {
	Destroy()
}

// textureUpdater is implemented by GPU textures that accept new pixel data.
type textureUpdater interface {
	UpdateData(data []byte) error
}

// Canvas hosts a chart in a GPU window.
//
// The chart renders into a CPU ImageSurface. When a frame tick produced a
// new image, the pixels are uploaded to a GPU texture on the next Flush or
// RenderTo. Clean ticks upload nothing.
//
// Canvas is NOT safe for concurrent use. It belongs to the window's render
// goroutine, as does the chart it owns.
type Canvas struct {
	chart    *ggchart.Chart
	surface  *surface.ImageSurface
	provider gpucontext.DeviceProvider

	texture     any  // Lazy-created texture
	oldTexture  any  // Previous texture awaiting deferred destruction
	dirty       bool // Needs GPU upload
	sizeChanged bool // Resize pending, texture must be recreated
	width       int
	height      int
	closed      bool

	// upload holds pixel data converted to the provider's surface format.
	upload []byte
}

// New creates a Canvas of the given size for a GPU window.
// The provider comes from the windowing host. Chart options are passed to
// ggchart.NewChart; the canvas always supplies the surface.
func New(provider gpucontext.DeviceProvider, width, height int, opts ...ggchart.ChartOption) (*Canvas, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	s, err := surface.NewImageSurfaceWithOptions(surface.DefaultOptions(width, height))
	if err != nil {
		return nil, fmt.Errorf("chartcanvas: create surface: %w", err)
	}

	chart := ggchart.NewChart(append(opts, ggchart.WithSurface(s))...)
	chart.OnSurfaceResized(width, height)

	return &Canvas{
		chart:    chart,
		surface:  s,
		provider: provider,
		width:    width,
		height:   height,
		dirty:    true, // first Flush creates the texture
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(provider gpucontext.DeviceProvider, width, height int, opts ...ggchart.ChartOption) *Canvas {
	c, err := New(provider, width, height, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Chart returns the hosted chart. Returns nil if the canvas is closed.
func (c *Canvas) Chart() *ggchart.Chart {
	if c.closed {
		return nil
	}
	return c.chart
}

// Surface returns the CPU surface the chart renders into.
func (c *Canvas) Surface() *surface.ImageSurface {
	return c.surface
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Size returns width and height as a convenience.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// IsDirty returns true if the canvas has pending pixels that need to be
// uploaded to the GPU.
func (c *Canvas) IsDirty() bool {
	return c.dirty
}

// Tick forwards a frame tick to the chart. When the chart rendered, the
// canvas is marked for upload. It reports whether the chart rendered.
func (c *Canvas) Tick(elapsed time.Duration) (bool, error) {
	if c.closed {
		return false, ErrCanvasClosed
	}
	rendered, err := c.chart.OnFrameTick(elapsed)
	if rendered {
		c.dirty = true
	}
	return rendered, err
}

// OnPointerMoved forwards a pointer position in canvas pixels to the chart.
func (c *Canvas) OnPointerMoved(x, y float64) ggchart.Point {
	if c.closed {
		return ggchart.Point{}
	}
	return c.chart.OnPointerMoved(x, y)
}

// Resize changes canvas dimensions. The surface is reallocated and the chart
// is told about the new size, which schedules a render pass.
//
// Returns error if dimensions are invalid or canvas is closed.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	// No-op if dimensions haven't changed
	if c.width == width && c.height == height {
		return nil
	}

	if err := c.surface.Resize(width, height); err != nil {
		return fmt.Errorf("chartcanvas: surface resize failed: %w", err)
	}
	c.chart.OnSurfaceResized(width, height)

	c.width = width
	c.height = height
	c.sizeChanged = true
	c.dirty = true

	return nil
}

// Flush uploads the surface content to the GPU texture if dirty.
// Returns the texture for manual drawing if needed.
//
// The texture is created lazily during RenderTo; until then Flush returns a
// pending placeholder holding the pixel data.
func (c *Canvas) Flush() (any, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}

	// The old texture may still be referenced by in-flight GPU command
	// buffers, so its destruction is deferred until the new one is written.
	if c.sizeChanged {
		if c.texture != nil {
			destroy(c.oldTexture)
			c.oldTexture = c.texture
			c.texture = nil
		}
		c.sizeChanged = false
	}

	// Skip if not dirty
	if !c.dirty && c.texture != nil {
		return c.texture, nil
	}

	data := c.pixels()

	if c.texture == nil {
		c.texture = &pendingTexture{width: c.width, height: c.height, data: data}
		c.dirty = false
		return c.texture, nil
	}

	switch tex := c.texture.(type) {
	case *pendingTexture:
		tex.width, tex.height, tex.data = c.width, c.height, data
	case textureUpdater:
		if err := tex.UpdateData(data); err != nil {
			return nil, fmt.Errorf("chartcanvas: texture update failed: %w", err)
		}
	}

	c.dirty = false
	return c.texture, nil
}

// pixels returns the surface pixels in the provider's surface format.
// image.RGBA holds premultiplied RGBA; BGRA swapchains get a swizzled copy.
func (c *Canvas) pixels() []byte {
	src := c.surface.Image().Pix
	if c.provider.SurfaceFormat() != gputypes.TextureFormatBGRA8Unorm {
		return src
	}
	if cap(c.upload) < len(src) {
		c.upload = make([]byte, len(src))
	}
	dst := c.upload[:len(src)]
	for i := 0; i+3 < len(src); i += 4 {
		dst[i+0] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i+0]
		dst[i+3] = src[i+3]
	}
	return dst
}

// Texture returns the current GPU texture without flushing.
// Returns nil if texture hasn't been created yet.
func (c *Canvas) Texture() any {
	return c.texture
}

// Provider returns the DeviceProvider associated with this canvas.
// Returns nil if the canvas is closed.
func (c *Canvas) Provider() gpucontext.DeviceProvider {
	if c.closed {
		return nil
	}
	return c.provider
}

// Close releases all resources associated with the Canvas.
// Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	destroy(c.oldTexture)
	destroy(c.texture)
	c.oldTexture = nil
	c.texture = nil

	err := c.surface.Close()
	c.provider = nil
	return err
}

func destroy(tex any) {
	if d, ok := tex.(textureDestroyer); ok {
		d.Destroy()
	}
}

// pendingTexture holds the data needed to create a real texture once a
// TextureCreator is available during RenderTo.
type pendingTexture struct {
	width  int
	height int
	data   []byte
}
