package ggchart

import (
	"fmt"
	"strings"
)

// MarkerShape selects the glyph drawn at each sample when markers are on.
type MarkerShape uint8

const (
	// Circle is a solid circle.
	Circle MarkerShape = iota
	// Ring is the outline of a circle.
	Ring
	// Square is the outline of a square.
	Square
	// Box is a filled square.
	Box
	// Triangle is the outline of a triangle.
	Triangle
	// Pyramid is a filled triangle.
	Pyramid
	// Plus is a plus sign.
	Plus
	// Cross is a big X.
	Cross
)

var markerShapeNames = [...]string{
	Circle:   "Circle",
	Ring:     "Ring",
	Square:   "Square",
	Box:      "Box",
	Triangle: "Triangle",
	Pyramid:  "Pyramid",
	Plus:     "Plus",
	Cross:    "Cross",
}

// String returns the shape name.
func (s MarkerShape) String() string {
	if int(s) < len(markerShapeNames) {
		return markerShapeNames[s]
	}
	return "Unknown"
}

// ParseMarkerShape returns the shape with the given case-insensitive name.
// "Ellipse" is accepted as an alias for Circle.
func ParseMarkerShape(name string) (MarkerShape, error) {
	if strings.EqualFold(name, "ellipse") {
		return Circle, nil
	}
	for i, n := range markerShapeNames {
		if strings.EqualFold(name, n) {
			return MarkerShape(i), nil
		}
	}
	return 0, fmt.Errorf("ggchart: unknown marker shape %q", name)
}

// Series is one sequence of (x, y) samples plus its styling.
//
// Every setter notifies the owning Chart, which marks the scene dirty even
// when the new value equals the old one. Setters copy nothing: slices passed
// to SetXData and SetYData are retained and must not be modified afterwards
// without another Set call.
type Series struct {
	owner invalidator

	xData       []float64
	yData       []float64
	cursorIndex int

	lineColor        RGBA
	plotType         MarkerShape
	plotSize         float64
	plotColor        RGBA
	isPlot           bool
	isGraphCursor    bool
	graphCursorColor RGBA
	legend           string
}

// NewSeries returns a detached series with default styling: white line,
// marker and cursor colors, circle markers of size 0, markers off.
// Use Chart.NewSeries to create a series that is already attached.
func NewSeries() *Series {
	return &Series{
		lineColor:        White,
		plotType:         Circle,
		plotColor:        White,
		graphCursorColor: White,
	}
}

func (s *Series) changed(a Attribute) {
	if s.owner != nil {
		s.owner.invalidate(a)
	}
}

// XData returns the X samples.
func (s *Series) XData() []float64 { return s.xData }

// SetXData replaces the X samples.
func (s *Series) SetXData(x []float64) {
	s.xData = x
	s.changed(AttrXData)
}

// YData returns the Y samples.
func (s *Series) YData() []float64 { return s.yData }

// SetYData replaces the Y samples.
func (s *Series) SetYData(y []float64) {
	s.yData = y
	s.changed(AttrYData)
}

// SetData replaces both sample sequences.
func (s *Series) SetData(x, y []float64) {
	s.SetXData(x)
	s.SetYData(y)
}

// Len returns the number of samples, or -1 when X and Y lengths differ.
func (s *Series) Len() int {
	if len(s.xData) != len(s.yData) {
		return -1
	}
	return len(s.xData)
}

// CursorIndex returns the sample index shown by a cursor series.
func (s *Series) CursorIndex() int { return s.cursorIndex }

// SetCursorIndex selects the sample a cursor series is drawn at. The host
// owns this choice; out of range values are clamped when rendering.
func (s *Series) SetCursorIndex(i int) {
	s.cursorIndex = i
	s.changed(AttrCursorIndex)
}

// LineColor returns the color of the connecting line.
func (s *Series) LineColor() RGBA { return s.lineColor }

// SetLineColor sets the color of the connecting line.
func (s *Series) SetLineColor(c RGBA) {
	s.lineColor = c
	s.changed(AttrLineColor)
}

// PlotType returns the marker shape.
func (s *Series) PlotType() MarkerShape { return s.plotType }

// SetPlotType sets the marker shape.
func (s *Series) SetPlotType(shape MarkerShape) {
	s.plotType = shape
	s.changed(AttrPlotType)
}

// PlotSize returns the marker size in pixels.
func (s *Series) PlotSize() float64 { return s.plotSize }

// SetPlotSize sets the marker size in pixels. The value is not validated.
func (s *Series) SetPlotSize(size float64) {
	s.plotSize = size
	s.changed(AttrPlotSize)
}

// PlotColor returns the marker color.
func (s *Series) PlotColor() RGBA { return s.plotColor }

// SetPlotColor sets the marker color.
func (s *Series) SetPlotColor(c RGBA) {
	s.plotColor = c
	s.changed(AttrPlotColor)
}

// IsPlot reports whether a marker is drawn at every sample.
func (s *Series) IsPlot() bool { return s.isPlot }

// SetPlot turns per-sample markers on or off.
func (s *Series) SetPlot(on bool) {
	s.isPlot = on
	s.changed(AttrIsPlot)
}

// IsGraphCursor reports whether the series is drawn as a cursor overlay.
func (s *Series) IsGraphCursor() bool { return s.isGraphCursor }

// SetGraphCursor switches the series between a line graph and a cursor
// overlay drawn at CursorIndex.
func (s *Series) SetGraphCursor(on bool) {
	s.isGraphCursor = on
	s.changed(AttrIsGraphCursor)
}

// GraphCursorColor returns the cursor overlay color.
func (s *Series) GraphCursorColor() RGBA { return s.graphCursorColor }

// SetGraphCursorColor sets the cursor overlay color.
func (s *Series) SetGraphCursorColor(c RGBA) {
	s.graphCursorColor = c
	s.changed(AttrGraphCursorColor)
}

// Legend returns the legend label.
func (s *Series) Legend() string { return s.legend }

// SetLegend sets the legend label. An empty label hides the legend entry.
func (s *Series) SetLegend(label string) {
	s.legend = label
	s.changed(AttrLegend)
}

// Render implements Drawable.
func (s *Series) Render(f *Frame) error {
	prims, err := BuildPrimitives(f.prims, s, f.LegendAnchor(s.legend))
	if err != nil {
		return err
	}
	f.prims = prims
	if s.hasLegendEntry() {
		f.legendSlot++
	}
	return nil
}

// hasLegendEntry reports whether the series takes a legend slot.
// Cursor overlays are not listed in the legend.
func (s *Series) hasLegendEntry() bool {
	return s.legend != "" && !s.isGraphCursor
}

// setOwner attaches the series to a chart.
func (s *Series) setOwner(o invalidator) { s.owner = o }
