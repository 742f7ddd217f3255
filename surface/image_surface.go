// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/text"
)

// cursorRadius is the radius in pixels of the ring drawn around a cursor.
const cursorRadius = 5

// circleSegments is the number of edges used to approximate circles.
const circleSegments = 24

// ImageSurface is a CPU-based surface that renders into an *image.RGBA.
//
// Shapes are anti-aliased with golang.org/x/image/vector. Legend labels are
// drawn with the text package. Primitives far outside the viewport are
// culled before rasterization, so arbitrarily large data coordinates are safe.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	chart := ggchart.NewChart(ggchart.WithSurface(s))
//	...
//	chart.OnFrameTick(0)
//	png.Encode(w, s.Image())
type ImageSurface struct {
	img  *image.RGBA
	opts Options
	font *text.Font

	// requested viewport and its intersection with the image
	viewport image.Rectangle
	clip     image.Rectangle

	projection ggchart.Projection
	toPixel    ggchart.Matrix

	ras *vector.Rasterizer
	// pts collects the current path in pixel space
	pts []ggchart.Point

	closed bool
}

var (
	_ ggchart.FrameSurface = (*ImageSurface)(nil)
	_ Resizable            = (*ImageSurface)(nil)
	_ ImageSource          = (*ImageSurface)(nil)
)

// NewImageSurface creates a surface with default options. Non-positive
// dimensions are raised to 1.
func NewImageSurface(width, height int) *ImageSurface {
	s, err := NewImageSurfaceWithOptions(DefaultOptions(width, height))
	if err != nil {
		// Only font loading can fail; fall back to a surface without labels.
		s = newImageSurface(DefaultOptions(width, height).withDefaults(), nil)
	}
	return s
}

// NewImageSurfaceWithOptions creates a surface with the given options.
func NewImageSurfaceWithOptions(opts Options) (*ImageSurface, error) {
	opts = opts.withDefaults()
	f := opts.Font
	if f == nil {
		var err error
		if f, err = text.DefaultFont(); err != nil {
			return nil, fmt.Errorf("surface: load font: %w", err)
		}
	}
	return newImageSurface(opts, f), nil
}

func newImageSurface(opts Options, f *text.Font) *ImageSurface {
	opts.Width = max(opts.Width, 1)
	opts.Height = max(opts.Height, 1)

	s := &ImageSurface{
		img:  image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height)),
		opts: opts,
		font: f,
		ras:  vector.NewRasterizer(opts.Width, opts.Height),
	}
	s.SetViewport(0, 0, opts.Width, opts.Height)
	return s
}

// Width returns the surface width.
func (s *ImageSurface) Width() int { return s.opts.Width }

// Height returns the surface height.
func (s *ImageSurface) Height() int { return s.opts.Height }

// Image returns the backing image.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// Snapshot returns a copy of the current contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	out := image.NewRGBA(s.img.Bounds())
	copy(out.Pix, s.img.Pix)
	return out
}

// Clear fills the entire surface with c.
func (s *ImageSurface) Clear(c ggchart.RGBA) {
	if s.closed {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c.Color()), image.Point{}, draw.Src)
}

// Resize reallocates the backing image. The viewport is reset to the full
// surface.
func (s *ImageSurface) Resize(width, height int) error {
	if s.closed {
		return ErrClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("surface: invalid size %dx%d", width, height)
	}
	if width == s.opts.Width && height == s.opts.Height {
		return nil
	}
	s.opts.Width, s.opts.Height = width, height
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.SetViewport(0, 0, width, height)
	return nil
}

// Close releases the backing image. Close is idempotent.
func (s *ImageSurface) Close() error {
	s.closed = true
	s.img = image.NewRGBA(image.Rectangle{})
	return nil
}

// --------------------------------------------------------------------------
// ggchart.FrameSurface
// --------------------------------------------------------------------------

// BeginFrame clears the surface to the background color.
func (s *ImageSurface) BeginFrame() {
	s.Clear(s.opts.Background)
}

// EndFrame implements ggchart.FrameSurface. CPU rendering is synchronous,
// so there is nothing to flush.
func (s *ImageSurface) EndFrame() error {
	if s.closed {
		return ErrClosed
	}
	return nil
}

// SetViewport implements ggchart.Surface.
func (s *ImageSurface) SetViewport(x, y, width, height int) {
	s.viewport = image.Rect(x, y, x+width, y+height)
	s.clip = s.viewport.Intersect(s.img.Bounds())
	s.updateTransform()
}

// SetProjection implements ggchart.Surface.
func (s *ImageSurface) SetProjection(p ggchart.Projection) {
	s.projection = p
	s.updateTransform()
}

// updateTransform composes projection, NDC-to-pixel and viewport offset.
func (s *ImageSurface) updateTransform() {
	w := float64(s.viewport.Dx())
	h := float64(s.viewport.Dy())
	ndcToPixel := ggchart.Translate(float64(s.viewport.Min.X)+w/2, float64(s.viewport.Min.Y)+h/2).
		Multiply(ggchart.Scale(w/2, -h/2))
	if s.projection.Width == 0 || s.projection.Height == 0 {
		s.toPixel = ggchart.Identity()
		return
	}
	s.toPixel = ndcToPixel.Multiply(s.projection.Matrix())
}

// DrawLineSegment implements ggchart.Surface.
func (s *ImageSurface) DrawLineSegment(p0, p1 ggchart.Point, c ggchart.RGBA) {
	if !s.drawable() {
		return
	}
	lw := s.strokeWidth()
	a := s.toPixel.TransformPoint(p0)
	b := s.toPixel.TransformPoint(p1)
	a, b, ok := clipSegment(a, b, s.cullRect(lw))
	if !ok {
		return
	}
	s.begin()
	s.thickLine(a, b, lw)
	s.fill(c)
}

// DrawMarker implements ggchart.Surface. Size is the marker diameter in
// pixels; markers of size zero or less are not drawn. Sizes beyond the
// extent of the clip rectangle draw at that extent.
func (s *ImageSurface) DrawMarker(center ggchart.Point, shape ggchart.MarkerShape, size float64, c ggchart.RGBA) {
	if !s.drawable() || !(size > 0) {
		return
	}
	size = min(size, s.maxExtent())
	p := s.toPixel.TransformPoint(center)
	if !p.IsFinite() || !contains(s.cullRect(size), p) {
		return
	}

	r := size / 2
	lw := s.strokeWidth()
	s.begin()
	switch shape {
	case ggchart.Circle:
		s.polygon(regularPolygon(p, r, circleSegments, 0))
	case ggchart.Ring:
		s.outline(regularPolygon(p, r, circleSegments, 0), lw)
	case ggchart.Box:
		s.polygon(square(p, r))
	case ggchart.Square:
		s.outline(square(p, r), lw)
	case ggchart.Pyramid:
		s.polygon(regularPolygon(p, r, 3, -math.Pi/2))
	case ggchart.Triangle:
		s.outline(regularPolygon(p, r, 3, -math.Pi/2), lw)
	case ggchart.Plus:
		s.thickLine(ggchart.Pt(p.X-r, p.Y), ggchart.Pt(p.X+r, p.Y), lw)
		s.thickLine(ggchart.Pt(p.X, p.Y-r), ggchart.Pt(p.X, p.Y+r), lw)
	case ggchart.Cross:
		d := r / math.Sqrt2
		s.thickLine(ggchart.Pt(p.X-d, p.Y-d), ggchart.Pt(p.X+d, p.Y+d), lw)
		s.thickLine(ggchart.Pt(p.X-d, p.Y+d), ggchart.Pt(p.X+d, p.Y-d), lw)
	default:
		s.polygon(regularPolygon(p, r, circleSegments, 0))
	}
	s.fill(c)
}

// DrawCursorOverlay implements ggchart.Surface. The overlay is a crosshair
// spanning the viewport plus a ring around the sample.
func (s *ImageSurface) DrawCursorOverlay(center ggchart.Point, c ggchart.RGBA) {
	if !s.drawable() {
		return
	}
	p := s.toPixel.TransformPoint(center)
	if !p.IsFinite() {
		return
	}
	v := s.viewport
	lw := s.strokeWidth()

	s.begin()
	if p.X >= float64(v.Min.X) && p.X <= float64(v.Max.X) {
		s.thickLine(ggchart.Pt(p.X, float64(v.Min.Y)), ggchart.Pt(p.X, float64(v.Max.Y)), lw)
	}
	if p.Y >= float64(v.Min.Y) && p.Y <= float64(v.Max.Y) {
		s.thickLine(ggchart.Pt(float64(v.Min.X), p.Y), ggchart.Pt(float64(v.Max.X), p.Y), lw)
	}
	if contains(s.cullRect(cursorRadius), p) {
		s.outline(regularPolygon(p, cursorRadius, circleSegments, 0), lw)
	}
	s.fill(c)
}

// DrawText implements ggchart.Surface. The anchor is the top-left corner of
// the label in surface pixels.
func (s *ImageSurface) DrawText(anchor ggchart.Point, label string, c ggchart.RGBA) {
	if s.closed || s.font == nil || label == "" {
		return
	}
	if err := text.DrawLabel(s.img, label, s.font, s.opts.FontSize, anchor.X, anchor.Y, c.Color()); err != nil {
		ggchart.Logger().Warn("surface: draw label", "label", label, "err", err)
	}
}

// --------------------------------------------------------------------------
// Rasterization
// --------------------------------------------------------------------------

func (s *ImageSurface) drawable() bool {
	return !s.closed && !s.clip.Empty()
}

// cullRect returns the clip rectangle grown by pad pixels on every side.
func (s *ImageSurface) cullRect(pad float64) rect {
	pad += 1
	return rect{
		minX: float64(s.clip.Min.X) - pad,
		minY: float64(s.clip.Min.Y) - pad,
		maxX: float64(s.clip.Max.X) + pad,
		maxY: float64(s.clip.Max.Y) + pad,
	}
}

// maxExtent is the largest marker size or stroke width drawn, in pixels.
// Anything larger covers the whole clip rectangle from any point of it,
// and unbounded values overflow the rasterizer's float32 coordinates.
func (s *ImageSurface) maxExtent() float64 {
	return 4 * (math.Hypot(float64(s.clip.Dx()), float64(s.clip.Dy())) + 1)
}

// strokeWidth is the configured line width bounded by maxExtent.
func (s *ImageSurface) strokeWidth() float64 {
	lw := s.opts.LineWidth
	if !(lw > 0) {
		return 0
	}
	return min(lw, s.maxExtent())
}

// begin starts a new mask covering the clip rectangle.
func (s *ImageSurface) begin() {
	s.ras.Reset(s.clip.Dx(), s.clip.Dy())
}

// polygon adds a closed polygon in pixel space to the mask.
func (s *ImageSurface) polygon(pts []ggchart.Point) {
	if len(pts) < 3 {
		return
	}
	for _, p := range pts {
		if !p.IsFinite() {
			return
		}
	}
	if signedArea(pts) < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	ox, oy := float64(s.clip.Min.X), float64(s.clip.Min.Y)
	s.ras.MoveTo(float32(pts[0].X-ox), float32(pts[0].Y-oy))
	for _, p := range pts[1:] {
		s.ras.LineTo(float32(p.X-ox), float32(p.Y-oy))
	}
	s.ras.ClosePath()
}

// thickLine adds the quad covering a line of width w from a to b.
func (s *ImageSurface) thickLine(a, b ggchart.Point, w float64) {
	d := b.Sub(a)
	l := math.Hypot(d.X, d.Y)
	if l == 0 || !(w > 0) {
		return
	}
	n := ggchart.Pt(-d.Y/l, d.X/l).Mul(w / 2)
	s.pts = append(s.pts[:0], a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
	s.polygon(s.pts)
}

// outline strokes the edges of a closed polygon.
func (s *ImageSurface) outline(pts []ggchart.Point, w float64) {
	for i := range pts {
		s.thickLine(pts[i], pts[(i+1)%len(pts)], w)
	}
}

// fill composites c through the current mask.
func (s *ImageSurface) fill(c ggchart.RGBA) {
	dst, ok := s.img.SubImage(s.clip).(*image.RGBA)
	if !ok {
		return
	}
	s.ras.Draw(dst, dst.Bounds(), image.NewUniform(c.Color()), image.Point{})
}

func regularPolygon(c ggchart.Point, r float64, n int, phase float64) []ggchart.Point {
	pts := make([]ggchart.Point, n)
	for i := range pts {
		a := phase + 2*math.Pi*float64(i)/float64(n)
		pts[i] = ggchart.Pt(c.X+r*math.Cos(a), c.Y+r*math.Sin(a))
	}
	return pts
}

func square(c ggchart.Point, r float64) []ggchart.Point {
	return []ggchart.Point{
		{X: c.X - r, Y: c.Y - r},
		{X: c.X + r, Y: c.Y - r},
		{X: c.X + r, Y: c.Y + r},
		{X: c.X - r, Y: c.Y + r},
	}
}

// signedArea is positive for clockwise polygons in a Y-down space.
func signedArea(pts []ggchart.Point) float64 {
	var a float64
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}
