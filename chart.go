package ggchart

import (
	"log/slog"
	"slices"
	"time"
)

// RenderState is the invalidation state of a Chart.
type RenderState uint8

const (
	// Clean means the surface shows the current scene.
	Clean RenderState = iota
	// Dirty means a render pass is owed before the next frame is up to date.
	Dirty
)

// String returns "Clean" or "Dirty".
func (s RenderState) String() string {
	if s == Dirty {
		return "Dirty"
	}
	return "Clean"
}

// Chart owns a scene (viewport plus drawables) and renders it into a Surface.
//
// Any attribute write marks the chart Dirty, even when the value does not
// change. The next OnFrameTick runs exactly one render pass and returns the
// chart to Clean. A new chart starts Dirty so the first frame always renders.
//
// Chart is NOT safe for concurrent use. Parameter writes, frame ticks and
// pointer events must all come from the goroutine that owns the chart.
type Chart struct {
	viewport Viewport
	items    []Drawable
	legend   LegendLayout
	surface  Surface

	state   RenderState
	pointer PointerMapper
	frame   Frame

	logger   *slog.Logger
	onError  func(error)
	observer FrameObserver
}

// NewChart creates a chart in the Dirty state.
func NewChart(opts ...ChartOption) *Chart {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Chart{
		viewport: o.viewport,
		legend:   o.legend,
		surface:  o.surface,
		state:    Dirty,
		logger:   o.logger,
		onError:  o.onError,
		observer: o.observer,
	}
	c.pointer.SetHandler(o.pointer)
	return c
}

// log returns the chart logger, falling back to the package logger.
func (c *Chart) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}

// invalidate implements invalidator.
func (c *Chart) invalidate(Attribute) {
	c.state = Dirty
}

// OnAttributeChanged marks the scene dirty. Hosts that mutate state through
// their own binding layer call it after each write.
func (c *Chart) OnAttributeChanged(a Attribute) {
	c.invalidate(a)
}

// State returns the current invalidation state.
func (c *Chart) State() RenderState { return c.state }

// Dirty reports whether a render pass is pending.
func (c *Chart) Dirty() bool { return c.state == Dirty }

// --------------------------------------------------------------------------
// Scene
// --------------------------------------------------------------------------

// NewSeries creates a series with default styling, appends it to the scene
// and returns it.
func (c *Chart) NewSeries() *Series {
	s := NewSeries()
	c.Add(s)
	return s
}

// Add appends drawables to the scene. Later drawables draw on top of
// earlier ones. A Series belongs to at most one chart at a time: adding it
// here removes it from the chart that held it before.
func (c *Chart) Add(ds ...Drawable) {
	for _, d := range ds {
		if s, ok := d.(*Series); ok {
			if prev, ok := s.owner.(*Chart); ok && prev != c {
				for prev.Remove(s) {
				}
			}
			s.setOwner(c)
		}
		c.items = append(c.items, d)
	}
	c.invalidate(AttrSeriesList)
}

// Remove removes a drawable from the scene and reports whether it was present.
func (c *Chart) Remove(d Drawable) bool {
	i := slices.Index(c.items, d)
	if i < 0 {
		return false
	}
	c.items = slices.Delete(c.items, i, i+1)
	if !slices.Contains(c.items, d) {
		c.release(d)
	}
	c.invalidate(AttrSeriesList)
	return true
}

// Clear removes every drawable from the scene.
func (c *Chart) Clear() {
	for _, d := range c.items {
		c.release(d)
	}
	clear(c.items)
	c.items = c.items[:0]
	c.invalidate(AttrSeriesList)
}

// release detaches a series owned by c.
func (c *Chart) release(d Drawable) {
	if s, ok := d.(*Series); ok && s.owner == c {
		s.setOwner(nil)
	}
}

// Items returns the drawables in declaration order. The returned slice must
// not be modified.
func (c *Chart) Items() []Drawable { return c.items }

// Series returns the series in the scene, in declaration order.
func (c *Chart) Series() []*Series {
	out := make([]*Series, 0, len(c.items))
	for _, d := range c.items {
		if s, ok := d.(*Series); ok {
			out = append(out, s)
		}
	}
	return out
}

// LegendLayout returns the legend layout.
func (c *Chart) LegendLayout() LegendLayout { return c.legend }

// SetLegendLayout replaces the legend layout.
func (c *Chart) SetLegendLayout(l LegendLayout) {
	c.legend = l
	c.invalidate(AttrLegendLayout)
}

// Surface returns the attached drawing surface.
func (c *Chart) Surface() Surface { return c.surface }

// SetSurface attaches a drawing surface.
func (c *Chart) SetSurface(s Surface) {
	c.surface = s
	c.invalidate(AttrSurface)
}

// SetPointerHandler replaces the pointer callback.
func (c *Chart) SetPointerHandler(h PointerHandler) {
	c.pointer.SetHandler(h)
	c.invalidate(AttrPointerHandler)
}

// --------------------------------------------------------------------------
// Viewport
// --------------------------------------------------------------------------

// Viewport returns the current viewport.
func (c *Chart) Viewport() Viewport { return c.viewport }

// SetViewport replaces the whole viewport.
func (c *Chart) SetViewport(vp Viewport) {
	c.viewport = vp
	c.invalidate(AttrSurfaceSize)
}

// SetXMin sets the left edge of the data window.
func (c *Chart) SetXMin(v float64) {
	c.viewport.XMin = v
	c.invalidate(AttrXMin)
}

// SetXMax sets the right edge of the data window.
func (c *Chart) SetXMax(v float64) {
	c.viewport.XMax = v
	c.invalidate(AttrXMax)
}

// SetXRange keeps XMin and moves XMax so that XMax-XMin equals r.
func (c *Chart) SetXRange(r float64) {
	c.viewport.XMax = c.viewport.XMin + r
	c.invalidate(AttrXRange)
}

// SetYRange sets the visible Y extent around YCenter.
func (c *Chart) SetYRange(r float64) {
	c.viewport.YRange = r
	c.invalidate(AttrYRange)
}

// SetYCenter sets the data Y value at the vertical middle of the surface.
func (c *Chart) SetYCenter(v float64) {
	c.viewport.YCenter = v
	c.invalidate(AttrYCenter)
}

// SetYMin keeps YMax and moves the bottom edge of the data window.
func (c *Chart) SetYMin(v float64) {
	c.setYBounds(v, c.viewport.YMax())
	c.invalidate(AttrYMin)
}

// SetYMax keeps YMin and moves the top edge of the data window.
func (c *Chart) SetYMax(v float64) {
	c.setYBounds(c.viewport.YMin(), v)
	c.invalidate(AttrYMax)
}

func (c *Chart) setYBounds(lo, hi float64) {
	c.viewport.YRange = hi - lo
	c.viewport.YCenter = (hi + lo) / 2
}

// --------------------------------------------------------------------------
// Host events
// --------------------------------------------------------------------------

// OnSurfaceResized records the new surface size. The projection depends on
// the pixel size, so a resize always dirties the chart.
func (c *Chart) OnSurfaceResized(width, height int) {
	c.viewport.Width = width
	c.viewport.Height = height
	c.invalidate(AttrSurfaceSize)
}

// OnPointerMoved maps a pixel position to data space and forwards it to the
// pointer handler. It returns the mapped coordinate.
func (c *Chart) OnPointerMoved(px, py float64) Point {
	return c.pointer.OnPointerMove(px, py, c.viewport)
}

// PointerMapper returns the chart's pointer mapper.
func (c *Chart) PointerMapper() *PointerMapper { return &c.pointer }

// OnFrameTick runs a render pass if the chart is dirty. It reports whether
// the surface was redrawn. elapsed is the time since the previous tick and
// only feeds diagnostics.
//
// A degenerate viewport skips the pass, returns an error wrapping
// ErrDegenerateViewport and leaves the chart dirty so the next tick retries.
func (c *Chart) OnFrameTick(elapsed time.Duration) (bool, error) {
	if c.state == Clean {
		return false, nil
	}
	if err := c.Render(); err != nil {
		return false, err
	}
	c.log().Debug("ggchart: frame rendered", "elapsed", elapsed, "primitives", len(c.frame.prims))
	return true, nil
}

// Render runs a render pass now, whatever the state. On success the chart
// becomes Clean.
//
// The pass sets the surface viewport and projection from the current
// viewport, asks each drawable for its primitives in declaration order and
// submits them. Drawables that fail are skipped and reported; they never
// abort the frame.
func (c *Chart) Render() error {
	if c.surface == nil {
		return ErrNilSurface
	}
	start := time.Now()

	vp := c.viewport
	if err := vp.Validate(); err != nil {
		c.log().Warn("ggchart: render pass skipped", "err", err)
		c.report(err)
		c.observe(FrameStats{Err: err, Duration: time.Since(start)})
		return err
	}

	fs, hasFrame := c.surface.(FrameSurface)
	if hasFrame {
		fs.BeginFrame()
	}
	c.surface.SetViewport(0, 0, vp.Width, vp.Height)
	c.surface.SetProjection(vp.Projection())

	rejected := c.build(vp, true)
	Submit(c.surface, c.frame.prims)

	var endErr error
	if hasFrame {
		endErr = fs.EndFrame()
	}

	c.state = Clean
	c.observe(FrameStats{
		Rendered:   true,
		Primitives: len(c.frame.prims),
		Rejected:   rejected,
		Duration:   time.Since(start),
		Err:        endErr,
	})
	return endErr
}

// Frame builds the primitives for the current scene without touching the
// surface or the render state. The result is a fresh copy. Malformed
// series are left out silently; only Render logs and reports them. It
// returns an error wrapping ErrDegenerateViewport when nothing can be
// rendered.
func (c *Chart) Frame() ([]Primitive, error) {
	if err := c.viewport.Validate(); err != nil {
		return nil, err
	}
	c.build(c.viewport, false)
	return slices.Clone(c.frame.prims), nil
}

// build fills c.frame from the scene and returns the number of skipped
// drawables. When report is set, each skipped drawable is logged and passed
// to the error handler.
func (c *Chart) build(vp Viewport, report bool) int {
	c.frame.reset(vp, c.legend)
	rejected := 0
	for i, d := range c.items {
		err := d.Render(&c.frame)
		if err == nil {
			continue
		}
		rejected++
		if !report {
			continue
		}
		serr := &SeriesError{Index: i, Err: err}
		if s, ok := d.(*Series); ok {
			serr.Label = s.legend
		}
		c.log().Warn("ggchart: series skipped", "index", i, "err", err)
		c.report(serr)
	}
	return rejected
}

func (c *Chart) report(err error) {
	if c.onError != nil {
		c.onError(err)
	}
}

func (c *Chart) observe(stats FrameStats) {
	if c.observer != nil {
		c.observer.ObserveFrame(stats)
	}
}
