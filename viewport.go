package ggchart

import "fmt"

// Orthographic depth planes used for every projection. They are fixed and
// never derived from data.
const (
	ProjectionNear = 0.01
	ProjectionFar  = 1000.0
)

// Viewport is the visible data window and the pixel size of the surface it
// is drawn into.
//
// X spans [XMin, XMax]. Y is centered: it spans YCenter ± YRange/2.
// Surface pixels have their origin at the top-left corner with Y growing
// downwards, so larger data Y values appear nearer the top.
type Viewport struct {
	XMin, XMax float64
	YRange     float64
	YCenter    float64
	Width      int
	Height     int
}

// XRange returns XMax - XMin.
func (v Viewport) XRange() float64 {
	return v.XMax - v.XMin
}

// YMin returns the lowest visible data Y value.
func (v Viewport) YMin() float64 {
	return v.YCenter - v.YRange/2
}

// YMax returns the highest visible data Y value.
func (v Viewport) YMax() float64 {
	return v.YCenter + v.YRange/2
}

// Valid reports whether the viewport can be rendered.
func (v Viewport) Valid() bool {
	return v.Validate() == nil
}

// Validate returns an error wrapping ErrDegenerateViewport when any extent
// of the viewport is not positive.
func (v Viewport) Validate() error {
	switch {
	case !(v.XRange() > 0):
		return fmt.Errorf("%w: xrange=%g", ErrDegenerateViewport, v.XRange())
	case !(v.YRange > 0):
		return fmt.Errorf("%w: yrange=%g", ErrDegenerateViewport, v.YRange)
	case v.Width <= 0 || v.Height <= 0:
		return fmt.Errorf("%w: width=%d, height=%d", ErrDegenerateViewport, v.Width, v.Height)
	}
	return nil
}

// Projection returns the orthographic projection for the viewport: an
// extent of XRange x YRange centered on the middle of the data window.
func (v Viewport) Projection() Projection {
	return Projection{
		Width:  v.XRange(),
		Height: v.YRange,
		Near:   ProjectionNear,
		Far:    ProjectionFar,
		Origin: Pt(v.XMin+v.XRange()/2, v.YCenter),
	}
}

// ToClip maps a data point into clip space, whose origin is the center of
// the data window. The orthographic projection then scales clip space to
// the surface.
func (v Viewport) ToClip(p Point) Point {
	return v.Projection().ToClip(p)
}

// SurfaceMatrix maps normalized device coordinates ([-1, 1] on both axes,
// Y up) to surface pixels (origin top-left, Y down).
func (v Viewport) SurfaceMatrix() Matrix {
	w, h := float64(v.Width), float64(v.Height)
	return Translate(w/2, h/2).Multiply(Scale(w/2, -h/2))
}

// DataToSurface returns the full forward transform from data space to
// surface pixels. It is only meaningful for a valid viewport.
func (v Viewport) DataToSurface() Matrix {
	return v.SurfaceMatrix().Multiply(v.Projection().Matrix())
}

// ToSurface maps a data point to surface pixels. It reports false when the
// viewport is degenerate.
func (v Viewport) ToSurface(p Point) (Point, bool) {
	if !v.Valid() {
		return Point{}, false
	}
	return v.DataToSurface().TransformPoint(p), true
}

// ToData maps a surface pixel position to data space:
//
//	x = px*XRange/Width + XMin
//	y = -(py*YRange/Height) + YRange/2 + YCenter
//
// It reports false, and returns the zero Point, when the surface has no
// area or the result is not finite. Ranges are not required to be positive
// since the mapping never divides by them.
func (v Viewport) ToData(p Point) (Point, bool) {
	if v.Width <= 0 || v.Height <= 0 {
		return Point{}, false
	}
	d := Point{
		X: p.X*v.XRange()/float64(v.Width) + v.XMin,
		Y: -(p.Y * v.YRange / float64(v.Height)) + v.YRange/2 + v.YCenter,
	}
	if !d.IsFinite() {
		return Point{}, false
	}
	return d, true
}

// Projection describes an orthographic projection of a data window.
type Projection struct {
	// Width and Height are the extents of the projected window in data units.
	Width, Height float64
	// Near and Far are the depth clipping planes.
	Near, Far float64
	// Origin is the data point that lands at the center of the surface.
	Origin Point
}

// ToClip maps a data point into clip space.
func (p Projection) ToClip(d Point) Point {
	return d.Sub(p.Origin)
}

// Matrix returns the affine transform from data space to normalized device
// coordinates. Depth is dropped since every primitive lies on z=0.
func (p Projection) Matrix() Matrix {
	if p.Width == 0 || p.Height == 0 {
		return Identity()
	}
	return Scale(2/p.Width, 2/p.Height).Multiply(Translate(-p.Origin.X, -p.Origin.Y))
}
