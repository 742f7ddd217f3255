// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config reads chart descriptions from TOML files.
//
// A description sets the visible window, the surface, the legend and the
// series list:
//
//	[viewport]
//	xmin = 0
//	xmax = 10
//	yrange = 4
//
//	[surface]
//	width = 640
//	height = 480
//	background = "#101018"
//
//	[[series]]
//	legend = "sine"
//	x = [0, 1, 2, 3]
//	y = [0, 0.84, 0.91, 0.14]
//	line_color = "#ff0000"
//
// Apply turns a description into ordinary attribute writes on a Chart, so
// the chart redraws on its next frame tick.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/surface"
)

// ErrInvalid is returned when a description decodes but cannot be applied.
var ErrInvalid = errors.New("config: invalid chart description")

// File is a chart description.
type File struct {
	Viewport Viewport `toml:"viewport"`
	Surface  Surface  `toml:"surface"`
	Legend   Legend   `toml:"legend"`
	Series   []Series `toml:"series"`
}

// Viewport is the visible data window. When both YMin and YMax are set they
// replace YRange and YCenter.
type Viewport struct {
	XMin    float64  `toml:"xmin"`
	XMax    float64  `toml:"xmax"`
	YRange  float64  `toml:"yrange"`
	YCenter float64  `toml:"ycenter"`
	YMin    *float64 `toml:"ymin,omitempty"`
	YMax    *float64 `toml:"ymax,omitempty"`
}

// Surface selects and sizes the drawing backend.
type Surface struct {
	Backend    string  `toml:"backend"`
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Background string  `toml:"background"`
	LineWidth  float64 `toml:"line_width"`
	FontSize   float64 `toml:"font_size"`
}

// Legend places the legend list.
type Legend struct {
	Align      string  `toml:"align"`
	Margin     float64 `toml:"margin"`
	LineHeight float64 `toml:"line_height"`
	FontSize   float64 `toml:"font_size"`
}

// Series describes one series. Colors are hex strings; empty keeps the
// series default.
type Series struct {
	Legend      string    `toml:"legend"`
	X           []float64 `toml:"x"`
	Y           []float64 `toml:"y"`
	LineColor   string    `toml:"line_color"`
	Plot        bool      `toml:"plot"`
	PlotType    string    `toml:"plot_type"`
	PlotSize    float64   `toml:"plot_size"`
	PlotColor   string    `toml:"plot_color"`
	Cursor      bool      `toml:"cursor"`
	CursorIndex int       `toml:"cursor_index"`
	CursorColor string    `toml:"cursor_color"`
}

// Default returns the description used for keys a file leaves out.
func Default() File {
	l := ggchart.DefaultLegendLayout()
	return File{
		Viewport: Viewport{XMin: 0, XMax: 1, YRange: 2},
		Surface: Surface{
			Width:      640,
			Height:     480,
			Background: "#000000",
			LineWidth:  1,
			FontSize:   l.FontSize,
		},
		Legend: Legend{
			Align:      "top-left",
			Margin:     l.Margin,
			LineHeight: l.LineHeight,
			FontSize:   l.FontSize,
		},
	}
}

// Decode reads a description from r. Unknown keys are an error.
func Decode(r io.Reader) (File, error) {
	f := Default()
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&f); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return File{}, fmt.Errorf("config: %w\n%s", err, strict.String())
		}
		return File{}, fmt.Errorf("config: %w", err)
	}
	return f, nil
}

// Load reads and validates the description at path.
func Load(path string) (File, error) {
	fd, err := os.Open(path)
	if err != nil {
		return File{}, err
	}
	defer fd.Close()

	f, err := Decode(fd)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Encode writes f to w as TOML.
func (f File) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(f)
}

// ChartViewport returns the chart viewport, sized to the surface.
func (f File) ChartViewport() ggchart.Viewport {
	v := f.Viewport
	vp := ggchart.Viewport{
		XMin:    v.XMin,
		XMax:    v.XMax,
		YRange:  v.YRange,
		YCenter: v.YCenter,
		Width:   f.Surface.Width,
		Height:  f.Surface.Height,
	}
	if v.YMin != nil && v.YMax != nil {
		vp.YRange = *v.YMax - *v.YMin
		vp.YCenter = (*v.YMax + *v.YMin) / 2
	}
	return vp
}

// SurfaceOptions returns options for creating the surface.
func (f File) SurfaceOptions() (surface.Options, error) {
	opts := surface.DefaultOptions(f.Surface.Width, f.Surface.Height)
	if f.Surface.Background != "" {
		bg, err := ggchart.ParseHex(f.Surface.Background)
		if err != nil {
			return opts, fmt.Errorf("%w: surface background: %w", ErrInvalid, err)
		}
		opts.Background = bg
	}
	if f.Surface.LineWidth > 0 {
		opts.LineWidth = f.Surface.LineWidth
	}
	if f.Surface.FontSize > 0 {
		opts.FontSize = f.Surface.FontSize
	}
	return opts, nil
}

// LegendLayout returns the legend layout. The measurer is left for the
// caller to fill in.
func (f File) LegendLayout() (ggchart.LegendLayout, error) {
	l := ggchart.DefaultLegendLayout()
	align, err := parseAlign(f.Legend.Align)
	if err != nil {
		return l, err
	}
	l.Align = align
	l.Margin = f.Legend.Margin
	if f.Legend.LineHeight > 0 {
		l.LineHeight = f.Legend.LineHeight
	}
	if f.Legend.FontSize > 0 {
		l.FontSize = f.Legend.FontSize
	}
	return l, nil
}

func parseAlign(s string) (ggchart.LegendAlign, error) {
	switch strings.ToLower(s) {
	case "", "top-left", "left":
		return ggchart.LegendTopLeft, nil
	case "top-right", "right":
		return ggchart.LegendTopRight, nil
	}
	return 0, fmt.Errorf("%w: legend align %q", ErrInvalid, s)
}

// Validate reports the first problem that would stop Apply.
// Series data lengths are not checked: a malformed series is skipped at
// render time like any other.
func (f File) Validate() error {
	if err := f.ChartViewport().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := f.SurfaceOptions(); err != nil {
		return err
	}
	if _, err := f.LegendLayout(); err != nil {
		return err
	}
	for i := range f.Series {
		if err := f.Series[i].apply(ggchart.NewSeries()); err != nil {
			return fmt.Errorf("series %d: %w", i, err)
		}
	}
	return nil
}

// Apply replaces the chart's viewport, legend layout and series with the
// description. Nothing is changed when the description is invalid. The
// chart keeps its surface and its legend measurer.
func (f File) Apply(c *ggchart.Chart) error {
	if err := f.Validate(); err != nil {
		return err
	}
	legend, _ := f.LegendLayout()
	legend.Measurer = c.LegendLayout().Measurer

	c.SetViewport(f.ChartViewport())
	c.SetLegendLayout(legend)
	c.Clear()
	for i := range f.Series {
		// Validated above.
		_ = f.Series[i].apply(c.NewSeries())
	}
	return nil
}

// apply writes the description onto s.
func (sc *Series) apply(s *ggchart.Series) error {
	colors := []struct {
		name string
		hex  string
		set  func(ggchart.RGBA)
	}{
		{"line_color", sc.LineColor, s.SetLineColor},
		{"plot_color", sc.PlotColor, s.SetPlotColor},
		{"cursor_color", sc.CursorColor, s.SetGraphCursorColor},
	}
	for _, c := range colors {
		if c.hex == "" {
			continue
		}
		rgba, err := ggchart.ParseHex(c.hex)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, c.name, err)
		}
		c.set(rgba)
	}
	if sc.PlotType != "" {
		shape, err := ggchart.ParseMarkerShape(sc.PlotType)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		s.SetPlotType(shape)
	}

	s.SetData(sc.X, sc.Y)
	s.SetLegend(sc.Legend)
	s.SetPlot(sc.Plot)
	s.SetPlotSize(sc.PlotSize)
	s.SetGraphCursor(sc.Cursor)
	s.SetCursorIndex(sc.CursorIndex)
	return nil
}
