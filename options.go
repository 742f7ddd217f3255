package ggchart

import "log/slog"

// ChartOption configures a Chart during creation.
// Use functional options to customize Chart behavior.
//
// Example:
//
//	c := ggchart.NewChart(
//	    ggchart.WithSurface(s),
//	    ggchart.WithPointerHandler(func(x, y float64) { ... }),
//	)
type ChartOption func(*chartOptions)

// chartOptions holds optional configuration for Chart creation.
type chartOptions struct {
	surface  Surface
	viewport Viewport
	legend   LegendLayout
	logger   *slog.Logger
	pointer  PointerHandler
	onError  func(error)
	observer FrameObserver
}

// defaultOptions returns the default chart options.
func defaultOptions() chartOptions {
	return chartOptions{
		legend: DefaultLegendLayout(),
	}
}

// WithSurface sets the drawing surface. It can also be attached later with
// Chart.SetSurface.
func WithSurface(s Surface) ChartOption {
	return func(o *chartOptions) {
		o.surface = s
	}
}

// WithViewport sets the initial viewport.
func WithViewport(vp Viewport) ChartOption {
	return func(o *chartOptions) {
		o.viewport = vp
	}
}

// WithLegendLayout sets how legend labels are placed.
func WithLegendLayout(l LegendLayout) ChartOption {
	return func(o *chartOptions) {
		o.legend = l
	}
}

// WithLogger sets a chart-specific logger. Without it the chart uses the
// package logger returned by Logger at the time of each call.
func WithLogger(l *slog.Logger) ChartOption {
	return func(o *chartOptions) {
		o.logger = l
	}
}

// WithPointerHandler sets the callback receiving pointer data coordinates.
func WithPointerHandler(h PointerHandler) ChartOption {
	return func(o *chartOptions) {
		o.pointer = h
	}
}

// WithErrorHandler sets a callback receiving every recoverable render
// error: skipped series and degenerate viewports.
func WithErrorHandler(fn func(error)) ChartOption {
	return func(o *chartOptions) {
		o.onError = fn
	}
}

// WithFrameObserver sets an observer notified after each attempted pass.
func WithFrameObserver(obs FrameObserver) ChartOption {
	return func(o *chartOptions) {
		o.observer = obs
	}
}
