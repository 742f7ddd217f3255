package recording

import "github.com/gogpu/ggchart"

// CommandType identifies the type of a command.
// Each command type corresponds to one ggchart.Surface call.
type CommandType uint8

const (
	// Frame commands
	CmdBeginFrame CommandType = iota // Start of a render pass
	CmdEndFrame                      // End of a render pass

	// State commands
	CmdSetViewport   // Set the pixel viewport
	CmdSetProjection // Set the orthographic projection

	// Drawing commands
	CmdDrawLineSegment   // Draw a line between two data points
	CmdDrawMarker        // Draw a marker at a data point
	CmdDrawCursorOverlay // Draw a cursor crosshair
	CmdDrawText          // Draw a legend label
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdBeginFrame:        "BeginFrame",
	CmdEndFrame:          "EndFrame",
	CmdSetViewport:       "SetViewport",
	CmdSetProjection:     "SetProjection",
	CmdDrawLineSegment:   "DrawLineSegment",
	CmdDrawMarker:        "DrawMarker",
	CmdDrawCursorOverlay: "DrawCursorOverlay",
	CmdDrawText:          "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// --------------------------------------------------------------------------
// Frame Commands
// --------------------------------------------------------------------------

// BeginFrameCommand marks the start of a render pass.
type BeginFrameCommand struct{}

// Type implements Command.
func (BeginFrameCommand) Type() CommandType { return CmdBeginFrame }

// EndFrameCommand marks the end of a render pass.
type EndFrameCommand struct{}

// Type implements Command.
func (EndFrameCommand) Type() CommandType { return CmdEndFrame }

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// SetViewportCommand sets the pixel rectangle the projection maps onto.
type SetViewportCommand struct {
	X, Y, Width, Height int
}

// Type implements Command.
func (SetViewportCommand) Type() CommandType { return CmdSetViewport }

// SetProjectionCommand sets the projection for the following draw commands.
type SetProjectionCommand struct {
	Projection ggchart.Projection
}

// Type implements Command.
func (SetProjectionCommand) Type() CommandType { return CmdSetProjection }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// DrawLineSegmentCommand draws a line between two data points.
type DrawLineSegmentCommand struct {
	P0, P1 ggchart.Point
	Color  ggchart.RGBA
}

// Type implements Command.
func (DrawLineSegmentCommand) Type() CommandType { return CmdDrawLineSegment }

// DrawMarkerCommand draws a marker at a data point.
type DrawMarkerCommand struct {
	Center ggchart.Point
	Shape  ggchart.MarkerShape
	// Size is in surface pixels.
	Size  float64
	Color ggchart.RGBA
}

// Type implements Command.
func (DrawMarkerCommand) Type() CommandType { return CmdDrawMarker }

// DrawCursorOverlayCommand draws a cursor crosshair through a data point.
type DrawCursorOverlayCommand struct {
	Center ggchart.Point
	Color  ggchart.RGBA
}

// Type implements Command.
func (DrawCursorOverlayCommand) Type() CommandType { return CmdDrawCursorOverlay }

// DrawTextCommand draws a label. Anchor is in surface pixels.
type DrawTextCommand struct {
	Anchor ggchart.Point
	Text   string
	Color  ggchart.RGBA
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }

// primitive converts a drawing command back into the primitive that produced
// it. It returns false for frame and state commands.
func primitive(cmd Command) (ggchart.Primitive, bool) {
	switch c := cmd.(type) {
	case DrawLineSegmentCommand:
		return ggchart.LineSegment{P0: c.P0, P1: c.P1, Color: c.Color}, true
	case DrawMarkerCommand:
		return ggchart.Marker{Center: c.Center, Shape: c.Shape, Size: c.Size, Color: c.Color}, true
	case DrawCursorOverlayCommand:
		return ggchart.CursorOverlay{Center: c.Center, Color: c.Color}, true
	case DrawTextCommand:
		return ggchart.LegendGlyph{Anchor: c.Anchor, Text: c.Text, Color: c.Color}, true
	}
	return nil, false
}
