// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/recording"
)

const sample = `
[viewport]
xmin = 0
xmax = 10
yrange = 4
ycenter = 1

[surface]
width = 320
height = 200
background = "#102030"
line_width = 2

[legend]
align = "top-right"
margin = 4

[[series]]
legend = "sine"
x = [0, 1, 2]
y = [0, 1, 0]
line_color = "#ff0000"
plot = true
plot_type = "ring"
plot_size = 6

[[series]]
cursor = true
cursor_index = 9
x = [0, 1, 2]
y = [0, 1, 0]
cursor_color = "#ffff00"
`

func decode(t *testing.T, s string) File {
	t.Helper()
	f, err := Decode(strings.NewReader(s))
	require.NoError(t, err)
	return f
}

func TestDecode(t *testing.T) {
	f := decode(t, sample)

	assert.Equal(t, ggchart.Viewport{XMin: 0, XMax: 10, YRange: 4, YCenter: 1, Width: 320, Height: 200}, f.ChartViewport())
	require.Len(t, f.Series, 2)
	assert.Equal(t, "sine", f.Series[0].Legend)
	assert.Equal(t, []float64{0, 1, 0}, f.Series[0].Y)
	assert.True(t, f.Series[1].Cursor)
	// Keys left out keep their defaults.
	assert.Equal(t, Default().Legend.LineHeight, f.Legend.LineHeight)
	require.NoError(t, f.Validate())
}

func TestDecodeUnknownKey(t *testing.T) {
	_, err := Decode(strings.NewReader("[viewport]\nxmn = 1\n"))
	require.Error(t, err)

	var strict *toml.StrictMissingError
	assert.True(t, errors.As(err, &strict))
}

func TestDecodeSyntaxError(t *testing.T) {
	_, err := Decode(strings.NewReader("[viewport\n"))
	assert.Error(t, err)
}

func TestYBounds(t *testing.T) {
	f := decode(t, "[viewport]\nxmax = 1\nymin = -1\nymax = 3\n")
	vp := f.ChartViewport()
	assert.Equal(t, 4.0, vp.YRange)
	assert.Equal(t, 1.0, vp.YCenter)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty x range", "[viewport]\nxmin = 1\nxmax = 1\n"},
		{"zero y range", "[viewport]\nyrange = 0\n"},
		{"zero surface", "[surface]\nwidth = 0\n"},
		{"bad background", "[surface]\nbackground = \"#zz\"\n"},
		{"bad align", "[legend]\nalign = \"middle\"\n"},
		{"bad color", "[[series]]\nline_color = \"red\"\n"},
		{"bad shape", "[[series]]\nplot_type = \"hexagon\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := decode(t, tt.doc).Validate()
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestApply(t *testing.T) {
	rec := recording.NewRecorder(320, 200)
	c := ggchart.NewChart(ggchart.WithSurface(rec))
	old := c.NewSeries()

	require.NoError(t, decode(t, sample).Apply(c))

	assert.NotContains(t, c.Series(), old, "previous series should be removed")
	assert.Equal(t, 320, c.Viewport().Width)
	assert.Equal(t, ggchart.LegendTopRight, c.LegendLayout().Align)
	assert.Equal(t, 4.0, c.LegendLayout().Margin)

	series := c.Series()
	require.Len(t, series, 2)
	line := series[0]
	assert.Equal(t, ggchart.Hex("#ff0000"), line.LineColor())
	assert.Equal(t, ggchart.Ring, line.PlotType())
	assert.True(t, line.IsPlot())
	assert.Equal(t, 6.0, line.PlotSize())

	cursor := series[1]
	assert.True(t, cursor.IsGraphCursor())
	assert.Equal(t, 9, cursor.CursorIndex())
	assert.Equal(t, ggchart.Yellow, cursor.GraphCursorColor())

	rendered, err := c.OnFrameTick(0)
	require.NoError(t, err)
	assert.True(t, rendered)
}

func TestApplyInvalidLeavesChart(t *testing.T) {
	c := ggchart.NewChart(ggchart.WithViewport(ggchart.Viewport{XMax: 1, YRange: 1, Width: 10, Height: 10}))
	s := c.NewSeries()
	before := c.Viewport()

	err := decode(t, "[[series]]\nplot_type = \"blob\"\n").Apply(c)
	require.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, before, c.Viewport())
	assert.Equal(t, []*ggchart.Series{s}, c.Series())
}

func TestApplyKeepsMeasurer(t *testing.T) {
	l := ggchart.DefaultLegendLayout()
	l.Measurer = fixedMeasurer(3)
	c := ggchart.NewChart(ggchart.WithLegendLayout(l))

	require.NoError(t, Default().Apply(c))
	assert.Equal(t, fixedMeasurer(3), c.LegendLayout().Measurer)
}

type fixedMeasurer float64

func (m fixedMeasurer) Advance(string, float64) float64 { return float64(m) }

func TestSurfaceOptions(t *testing.T) {
	opts, err := decode(t, sample).SurfaceOptions()
	require.NoError(t, err)
	assert.Equal(t, 320, opts.Width)
	assert.Equal(t, ggchart.Hex("#102030"), opts.Background)
	assert.Equal(t, 2.0, opts.LineWidth)
}

func TestEncodeRoundTrip(t *testing.T) {
	f := decode(t, sample)
	var buf bytes.Buffer
	require.NoError(t, f.Encode(&buf))

	g, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, f, g)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.toml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Series, 2)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[viewport]\nxmax = -1\n"), 0o644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "bad.toml")
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.toml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	reloads, err := Watch(ctx, path)
	require.NoError(t, err)

	// Unrelated files in the directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("[viewport]\nxmax = 5\n"), 0o644))

	// A single write can arrive as several events; wait for the final content.
	timeout := time.After(5 * time.Second)
	for done := false; !done; {
		select {
		case r := <-reloads:
			done = r.Err == nil && r.File.Viewport.XMax == 5
		case <-timeout:
			t.Fatal("no reload after write")
		}
	}

	cancel()
	for range reloads {
	}
}

func TestWatchMissingDir(t *testing.T) {
	_, err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "chart.toml"))
	assert.Error(t, err)
}
