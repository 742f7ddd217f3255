// Package app wires configuration, surfaces and charts for the ggchart
// command.
package app

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/config"
	"github.com/gogpu/ggchart/surface"
	"github.com/gogpu/ggchart/text"
)

// ErrNoImage is returned when the selected backend does not produce pixels.
var ErrNoImage = errors.New("app: surface backend has no image output")

// NewSurface creates the surface named in f, or the best available backend
// when none is named.
func NewSurface(f config.File) (ggchart.Surface, error) {
	opts, err := f.SurfaceOptions()
	if err != nil {
		return nil, err
	}
	return surface.Open(f.Surface.Backend, opts)
}

// NewChart builds a chart on s from f. Legend labels are measured with the
// default font so right-aligned legends line up with what the surface draws.
func NewChart(f config.File, s ggchart.Surface, opts ...ggchart.ChartOption) (*ggchart.Chart, error) {
	legend, err := f.LegendLayout()
	if err != nil {
		return nil, err
	}
	if font, err := text.DefaultFont(); err == nil {
		legend.Measurer = text.NewMeasurer(font)
	} else {
		ggchart.Logger().Warn("app: legend measurer unavailable", "err", err)
	}

	opts = append([]ggchart.ChartOption{ggchart.WithLegendLayout(legend)}, opts...)
	c := ggchart.NewChart(append(opts, ggchart.WithSurface(s))...)
	if err := f.Apply(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Render draws f once and writes the result to w as PNG.
func Render(f config.File, w io.Writer, opts ...ggchart.ChartOption) error {
	s, err := NewSurface(f)
	if err != nil {
		return err
	}
	if c, ok := s.(io.Closer); ok {
		defer c.Close()
	}
	src, ok := s.(surface.ImageSource)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNoImage, s)
	}

	c, err := NewChart(f, s, opts...)
	if err != nil {
		return err
	}
	if err := c.Render(); err != nil {
		return err
	}
	return png.Encode(w, src.Image())
}

// RenderFile renders the description at in to the PNG file out.
func RenderFile(in, out string, opts ...ggchart.ChartOption) error {
	f, err := config.Load(in)
	if err != nil {
		return err
	}
	fd, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := Render(f, fd, opts...); err != nil {
		fd.Close()
		return err
	}
	if err := fd.Close(); err != nil {
		return err
	}
	ggchart.Logger().Info("app: chart written", "path", out, "series", len(f.Series))
	return nil
}
