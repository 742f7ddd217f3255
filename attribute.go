package ggchart

// Attribute identifies a chart or series property whose write invalidates
// the scene.
type Attribute uint8

const (
	// Series data
	AttrXData Attribute = iota
	AttrYData
	AttrCursorIndex

	// Series style
	AttrLineColor
	AttrPlotType
	AttrPlotSize
	AttrPlotColor
	AttrIsPlot
	AttrIsGraphCursor
	AttrGraphCursorColor
	AttrLegend

	// Viewport
	AttrXMin
	AttrXMax
	AttrXRange
	AttrYRange
	AttrYCenter
	AttrYMin
	AttrYMax
	AttrSurfaceSize

	// Scene structure
	AttrSeriesList
	AttrLegendLayout
	AttrPointerHandler
	AttrSurface
)

// attributeNames maps Attribute values to their string representation.
var attributeNames = [...]string{
	AttrXData:            "XData",
	AttrYData:            "YData",
	AttrCursorIndex:      "CursorIndex",
	AttrLineColor:        "LineColor",
	AttrPlotType:         "PlotType",
	AttrPlotSize:         "PlotSize",
	AttrPlotColor:        "PlotColor",
	AttrIsPlot:           "IsPlot",
	AttrIsGraphCursor:    "IsGraphCursor",
	AttrGraphCursorColor: "GraphCursorColor",
	AttrLegend:           "Legend",
	AttrXMin:             "XMin",
	AttrXMax:             "XMax",
	AttrXRange:           "XRange",
	AttrYRange:           "YRange",
	AttrYCenter:          "YCenter",
	AttrYMin:             "YMin",
	AttrYMax:             "YMax",
	AttrSurfaceSize:      "SurfaceSize",
	AttrSeriesList:       "SeriesList",
	AttrLegendLayout:     "LegendLayout",
	AttrPointerHandler:   "PointerHandler",
	AttrSurface:          "Surface",
}

// String returns the attribute name.
func (a Attribute) String() string {
	if int(a) < len(attributeNames) {
		return attributeNames[a]
	}
	return "Unknown"
}

// invalidator is notified of every attribute write. Chart implements it.
type invalidator interface {
	invalidate(Attribute)
}
